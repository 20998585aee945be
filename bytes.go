package optargs

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// A nice builtin type that will parse human readable byte quantities to
// int64. For example 100GB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var (
	_ Unmarshaler  = (*Bytes)(nil)
	_ typeLabeler  = Bytes(0)
	_ fmt.Stringer = Bytes(0)
)

func (me *Bytes) UnmarshalArg(s string) error {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	*me = Bytes(ui64)
	return nil
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

func (Bytes) ArgTypeLabel() string {
	return "(bytes)"
}
