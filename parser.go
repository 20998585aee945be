package optargs

import (
	"fmt"
)

// Parser owns the registered argument definitions and their typed
// slots. It is not safe for concurrent use; callers needing that must
// serialize externally.
//
// Option and positional names live in separate namespaces: a
// positional may shadow an option of the same name, and IsSet resolves
// options first.
type Parser struct {
	program     string
	description string

	options     []slot
	longNames   map[string]slot
	shortNames  map[string]slot
	positionals []slot

	lastError string
	err       error
}

type Option func(p *Parser)

// Description sets the program description shown between the usage
// line and the option help.
func Description(desc string) Option {
	return func(p *Parser) {
		p.description = desc
	}
}

// New returns a parser for the named program. The program name and
// description are used only for help rendering.
func New(program string, opts ...Option) *Parser {
	p := &Parser{
		program:    program,
		longNames:  make(map[string]slot),
		shortNames: make(map[string]slot),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddOption registers a long/short option of type T and returns its
// slot handle. Panics if the long name is empty, the short name is
// longer than one character, or either name collides with an existing
// option, in the manner of the standard flag package. Bool options are
// flags and can never be required.
func AddOption[T Value](p *Parser, long, short, description string, required bool, def T) *Arg[T] {
	if long == "" {
		panic("optargs: option long name must not be empty")
	}
	if len(short) > 1 {
		panic(fmt.Sprintf("optargs: bad short name %q for option %q", short, long))
	}
	if _, ok := p.longNames[long]; ok {
		panic(fmt.Sprintf("optargs: option %q defined more than once", long))
	}
	if short != "" {
		if _, ok := p.shortNames[short]; ok {
			panic(fmt.Sprintf("optargs: short name %q defined more than once", short))
		}
	}
	a := newArg(long, short, description, required, def)
	p.options = append(p.options, a)
	p.longNames[long] = a
	if short != "" {
		p.shortNames[short] = a
	}
	return a
}

// AddPositional registers a positional argument of type T, consumed in
// registration order from the leftover non-option tokens. No collision
// check is made against option names.
func AddPositional[T Value](p *Parser, name, description string, required bool, def T) *Arg[T] {
	a := newArg(name, "", description, required, def)
	p.positionals = append(p.positionals, a)
	return a
}

// IsSet reports whether the named argument was supplied by the most
// recent Parse. Options are checked before positionals.
func (p *Parser) IsSet(name string) bool {
	if s, ok := p.longNames[name]; ok {
		return s.wasSet()
	}
	for _, s := range p.positionals {
		if s.longName() == name {
			return s.wasSet()
		}
	}
	return false
}

// GetValue looks an argument up by name, checking options then
// positionals. On a name or type mismatch it returns a zero T rather
// than panicking.
func GetValue[T Value](p *Parser, name string) T {
	if s, ok := p.longNames[name]; ok {
		if a, ok := s.(*Arg[T]); ok {
			return a.value
		}
	}
	for _, s := range p.positionals {
		if s.longName() == name {
			if a, ok := s.(*Arg[T]); ok {
				return a.value
			}
		}
	}
	var zero T
	return zero
}

// LastError returns the message for the most recent Parse failure. It
// is overwritten on each call to Parse.
func (p *Parser) LastError() string {
	return p.lastError
}

// Err returns the most recent Parse failure as an error, or nil after
// Success or HelpRequested.
func (p *Parser) Err() error {
	return p.err
}
