package optargs

import (
	"fmt"
	"io"
	"strings"

	"github.com/anacrolix/missinggo/v2"
	"github.com/huandu/xstrings"
)

// WriteUsage renders the usage line, program description, option and
// positional help blocks, and the trailing help flag line.
func (p *Parser) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s", p.program)
	if len(p.options) != 0 {
		fmt.Fprintf(w, " [OPTIONS]")
	}
	for _, s := range p.positionals {
		ph := posPlaceholder(s.longName())
		if s.isRequired() {
			fmt.Fprintf(w, " <%s>", ph)
		} else {
			fmt.Fprintf(w, " [<%s>]", ph)
		}
	}
	fmt.Fprintf(w, "\n")
	if p.description != "" {
		fmt.Fprintf(w, "%s\n", missinggo.Unchomp(p.description))
	}
	if len(p.options) != 0 {
		fmt.Fprintf(w, "Options:\n")
		for _, s := range p.options {
			writeArgUsage(w, s)
		}
		fmt.Fprintf(w, "\n")
	}
	if len(p.positionals) != 0 {
		fmt.Fprintf(w, "Positional arguments:\n")
		for _, s := range p.positionals {
			writeArgUsage(w, s)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "  -h, --help\n    Show this help message\n")
}

// One entry: a names line, then an indented description line carrying
// the type and default annotations.
func writeArgUsage(w io.Writer, s slot) {
	if s.shortName() != "" {
		fmt.Fprintf(w, "  -%s, --%s", s.shortName(), s.longName())
	} else {
		fmt.Fprintf(w, "  --%s", s.longName())
	}
	if s.isRequired() {
		fmt.Fprintf(w, " (required)")
	}
	fmt.Fprintf(w, "\n    %s", s.desc())
	if tl := s.typeLabel(); tl != "" {
		fmt.Fprintf(w, " %s", tl)
	}
	if s.hasDefault() {
		if d := s.defaultLabel(); d != "" {
			fmt.Fprintf(w, " (default: %s)", d)
		}
	}
	fmt.Fprintf(w, "\n")
}

func posPlaceholder(name string) string {
	return strings.ToUpper(xstrings.ToSnakeCase(name))
}
