// Package optargs registers typed command-line options and positional
// arguments and parses an argument slice into them.
//
// For example:
//
//	p := optargs.New("frobnicate", optargs.Description("frobnicates inputs"))
//	verbose := optargs.AddOption(p, "verbose", "v", "enable verbose output", false, false)
//	count := optargs.AddOption[int32](p, "count", "c", "number of iterations", false, 10)
//	src := optargs.AddPositional(p, "source", "source file", true, "")
//	switch p.Parse(os.Args[1:]) {
//	case optargs.HelpRequested:
//	    p.WriteUsage(os.Stdout)
//	case optargs.Success:
//	    _ = verbose.Value()
//	default:
//	    fmt.Fprintln(os.Stderr, p.LastError())
//	}
//
// Supported value types are bool, string, int16, int32, int64, uint32,
// uint64, float32 and float64, plus defined types over those kinds.
// Bool options are flags: their presence alone sets them true, and
// grouped short flags like -abc expand to one flag per character.
// Values attach inline (--opt=val, -oval) or as the following token.
// Parse returns a five-way Result and keeps a human-readable message
// in LastError; it fails on the first violation.
package optargs
