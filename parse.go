package optargs

import (
	"fmt"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/pkg/errors"
)

// Parse walks the token list (argv[0] excluded) against the registered
// definitions and returns the terminal outcome. It fails fast on the
// first violation; LastError then names the offending option or value.
// Re-parsing overwrites any state from a prior call.
func (p *Parser) Parse(args []string) Result {
	p.lastError = ""
	p.err = nil

	// Help works no matter what else is in the token list.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return HelpRequested
		}
	}

	for _, s := range p.options {
		s.resetSet()
	}
	for _, s := range p.positionals {
		s.resetSet()
	}

	var positionalValues []string

	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "" || tok[0] != '-' {
			positionalValues = append(positionalValues, tok)
			continue
		}

		var name, value string
		hasValue := false
		isLong := len(tok) > 1 && tok[1] == '-'

		if isLong {
			body := tok[2:]
			if eq := strings.IndexByte(body, '='); eq != -1 {
				name = body[:eq]
				value = body[eq+1:]
				hasValue = true
			} else {
				name = body
			}
		} else if len(tok) > 2 {
			// -c123 (inline value), -abc (flag cluster), or a
			// multi-character short name. Type information breaks the
			// tie: a value-bearing first character wins, then a full
			// cluster of flags, then the fallback single name.
			first := tok[1:2]
			if s, ok := p.shortNames[first]; ok && !s.isFlag() {
				name = first
				value = tok[2:]
				hasValue = true
			} else if cluster := tok[1:]; p.flagCluster(cluster) {
				for j := range iter.N(len(cluster)) {
					p.shortNames[string(cluster[j])].consume("true")
				}
				continue
			} else {
				name = tok[1:]
			}
		} else {
			name = tok[1:]
		}

		dash := "-"
		if isLong {
			dash = "--"
		}

		var s slot
		var ok bool
		if isLong {
			s, ok = p.longNames[name]
		} else {
			s, ok = p.shortNames[name]
		}
		if !ok {
			return p.fail(UnknownOption, "Unknown option: "+dash+name)
		}

		if s.isFlag() {
			// Any inline value is ignored; presence sets the flag.
			s.consume("true")
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				return p.fail(MissingValue, "Missing value for option: "+dash+name)
			}
			i++
			value = args[i]
		}

		if err := s.consume(value); err != nil {
			return p.fail(InvalidValue, fmt.Sprintf("Invalid value for option: %s%s = %s", dash, name, value))
		}
	}

	idx := 0
	for _, s := range p.positionals {
		if idx >= len(positionalValues) {
			if s.isRequired() {
				return p.fail(MissingValue, "Missing required positional argument: "+s.longName())
			}
			continue
		}
		if err := s.consume(positionalValues[idx]); err != nil {
			return p.fail(InvalidValue, fmt.Sprintf("Invalid value for positional argument: %s = %s", s.longName(), positionalValues[idx]))
		}
		idx++
	}
	if idx < len(positionalValues) {
		return p.fail(InvalidValue, "Too many positional arguments")
	}

	// Required options are only checked after the full token scan.
	for _, s := range p.options {
		if s.isRequired() && !s.wasSet() {
			return p.fail(MissingValue, "Missing required option: --"+s.longName())
		}
	}

	return Success
}

// flagCluster reports whether every character of cluster names a
// registered flag short option.
func (p *Parser) flagCluster(cluster string) bool {
	for i := range iter.N(len(cluster)) {
		s, ok := p.shortNames[string(cluster[i])]
		if !ok || !s.isFlag() {
			return false
		}
	}
	return true
}

func (p *Parser) fail(r Result, msg string) Result {
	p.lastError = msg
	p.err = errors.WithStack(parseError{r, msg})
	return r
}
