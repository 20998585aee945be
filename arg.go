package optargs

import (
	"fmt"
	"reflect"
	"strconv"
)

// Implemented by custom value types that want a type annotation in
// usage output.
type typeLabeler interface {
	ArgTypeLabel() string
}

// Arg is the typed slot for one registered option or positional
// argument. Handles stay valid for the owning Parser's lifetime.
type Arg[T Value] struct {
	long      string
	short     string
	help      string
	required  bool
	flag      bool
	def       T
	value     T
	set       bool
	validator func(T) bool
}

func newArg[T Value](long, short, help string, required bool, def T) *Arg[T] {
	me := &Arg[T]{
		long:     long,
		short:    short,
		help:     help,
		required: required,
		def:      def,
		value:    def,
	}
	me.flag = reflect.TypeOf(def).Kind() == reflect.Bool
	if me.flag {
		// Presence means true, absence means the default, so a flag is
		// never required.
		me.required = false
	}
	return me
}

// SetValidator attaches a predicate run after successful conversion. A
// nil validator always passes. Validators are never consulted for
// flags, which have no invalid values.
func (me *Arg[T]) SetValidator(f func(T) bool) {
	me.validator = f
}

// Value returns the parsed value, or the registration default if the
// argument was never set.
func (me *Arg[T]) Value() T {
	return me.value
}

func (me *Arg[T]) IsSet() bool {
	return me.set
}

func (me *Arg[T]) Name() string {
	return me.long
}

func (me *Arg[T]) Description() string {
	return me.help
}

func (me *Arg[T]) Required() bool {
	return me.required
}

// consume converts raw into the slot, runs the validator, and marks the
// slot set. A rejected candidate never overwrites the stored value.
func (me *Arg[T]) consume(raw string) error {
	if me.flag {
		setBool(&me.value)
		me.set = true
		return nil
	}
	var v T
	if err := unmarshalValue(&v, raw); err != nil {
		return err
	}
	if me.validator != nil && !me.validator(v) {
		return fmt.Errorf("value %q rejected by validator", raw)
	}
	me.value = v
	me.set = true
	return nil
}

func setBool[T Value](v *T) {
	reflect.ValueOf(v).Elem().SetBool(true)
}

func (me *Arg[T]) longName() string { return me.long }
func (me *Arg[T]) shortName() string { return me.short }
func (me *Arg[T]) desc() string      { return me.help }
func (me *Arg[T]) isRequired() bool  { return me.required }
func (me *Arg[T]) wasSet() bool      { return me.set }
func (me *Arg[T]) isFlag() bool      { return me.flag }
func (me *Arg[T]) resetSet()         { me.set = false }

func (me *Arg[T]) typeLabel() string {
	if tl, ok := any(me.def).(typeLabeler); ok {
		return tl.ArgTypeLabel()
	}
	switch reflect.TypeOf(me.def).Kind() {
	case reflect.Int16:
		return "(16-bit integer)"
	case reflect.Int32:
		return "(32-bit integer)"
	case reflect.Int64:
		return "(64-bit integer)"
	case reflect.Uint32:
		return "(32-bit unsigned integer)"
	case reflect.Uint64:
		return "(64-bit unsigned integer)"
	case reflect.Float32:
		return "(float)"
	case reflect.Float64:
		return "(double)"
	}
	return ""
}

func (me *Arg[T]) hasDefault() bool {
	return !reflect.ValueOf(me.def).IsZero()
}

func (me *Arg[T]) defaultLabel() string {
	if str, ok := any(me.def).(fmt.Stringer); ok {
		return str.String()
	}
	v := reflect.ValueOf(me.def)
	switch v.Kind() {
	case reflect.Bool:
		return "true"
	case reflect.String:
		return v.String()
	case reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', 6, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', 15, 64)
	}
	return ""
}

// slot is the type-erased face of Arg[T] that the parser works
// against. The flag question is a variant-tag check, not a downcast.
type slot interface {
	longName() string
	shortName() string
	desc() string
	isRequired() bool
	wasSet() bool
	isFlag() bool
	resetSet()
	consume(raw string) error
	typeLabel() string
	hasDefault() bool
	defaultLabel() string
}
