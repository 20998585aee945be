package optargs

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value is the closed set of slot types. The approximation terms admit
// defined types such as Bytes; those may implement Unmarshaler to take
// over conversion.
type Value interface {
	~bool | ~string | ~int16 | ~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Unmarshaler is implemented by custom value types that convert their
// own argument string.
type Unmarshaler interface {
	UnmarshalArg(s string) error
}

// Converts a raw argument string into *dst. Conversions are
// locale-independent and reject trailing characters and out-of-width
// values.
func unmarshalValue(dst any, s string) error {
	if u, ok := dst.(Unmarshaler); ok {
		return u.UnmarshalArg(s)
	}
	v := reflect.ValueOf(dst).Elem()
	switch v.Kind() {
	case reflect.Bool:
		// Presence alone means true.
		v.SetBool(true)
		return nil
	case reflect.String:
		v.SetString(s)
		return nil
	case reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "parsing %q", s)
		}
		v.SetInt(n)
		return nil
	case reflect.Uint32, reflect.Uint64:
		// strtoul-style wrapping of negatives into range is not wanted.
		if strings.HasPrefix(s, "-") {
			return errors.Errorf("negative value %q for unsigned type", s)
		}
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "parsing %q", s)
		}
		v.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "parsing %q", s)
		}
		v.SetFloat(f)
		return nil
	}
	return errors.Errorf("can't set type %s", v.Type())
}
