package optargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationCollisions(t *testing.T) {
	p := New("test_app")
	AddOption(p, "verbose", "v", "Enable verbose output", false, false)

	assert.Panics(t, func() {
		AddOption(p, "verbose", "", "again", false, false)
	})
	assert.Panics(t, func() {
		AddOption(p, "vertical", "v", "short collides", false, false)
	})
	assert.Panics(t, func() {
		AddOption(p, "", "x", "empty long name", false, false)
	})
	assert.Panics(t, func() {
		AddOption(p, "extra", "ex", "short too long", false, false)
	})
}

func TestFlagsAreNeverRequired(t *testing.T) {
	p := New("test_app")
	verbose := AddOption(p, "verbose", "v", "Enable verbose output", true, false)
	assert.False(t, verbose.Required())
	assert.EqualValues(t, Success, p.Parse(nil))
}

func TestFlagDefaultTrue(t *testing.T) {
	p := New("test_app")
	color := AddOption(p, "color", "", "Colorize output", false, true)
	require.EqualValues(t, Success, p.Parse(nil))
	assert.True(t, color.Value())
	assert.False(t, color.IsSet())

	require.EqualValues(t, Success, p.Parse([]string{"--color"}))
	assert.True(t, color.Value())
	assert.True(t, color.IsSet())
}

func TestHandleQueries(t *testing.T) {
	p := New("test_app")
	input := AddOption(p, "input", "i", "Input file path", true, "")
	assert.EqualValues(t, "input", input.Name())
	assert.EqualValues(t, "Input file path", input.Description())
	assert.True(t, input.Required())
	assert.False(t, input.IsSet())
}

func TestGetValueMismatches(t *testing.T) {
	p := New("test_app")
	AddOption[int32](p, "count", "c", "Number of iterations", false, 7)
	require.EqualValues(t, Success, p.Parse(nil))

	// Wrong type and unknown name both come back as a fresh zero.
	assert.EqualValues(t, "", GetValue[string](p, "count"))
	assert.EqualValues(t, 0, GetValue[int32](p, "absent"))
	assert.EqualValues(t, 7, GetValue[int32](p, "count"))
}

func TestOptionPositionalShadowing(t *testing.T) {
	// The namespaces are separate; lookups check options first, and
	// GetValue falls through to positionals on a type mismatch.
	p := New("test_app")
	AddOption(p, "input", "i", "Input option", false, "")
	AddPositional[int64](p, "input", "Input positional", false, 0)

	require.EqualValues(t, Success, p.Parse([]string{"--input", "opt.txt", "42"}))
	assert.EqualValues(t, "opt.txt", GetValue[string](p, "input"))
	assert.EqualValues(t, 42, GetValue[int64](p, "input"))
	assert.True(t, p.IsSet("input"))
}

func TestIsSetUnknownName(t *testing.T) {
	p := New("test_app")
	assert.False(t, p.IsSet("anything"))
}
