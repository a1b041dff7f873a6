package types

import (
	"fmt"
	"strings"
)

// quoteString renders s as a double-quoted, escaped string literal, the
// inverse of the parser's string escape handling (§4.1).
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// renderList renders a (possibly improper) list headed by p using
// render for each leaf/sub-list element: "(a b c)" or "(a b . c)".
func renderList(p *Pair, render func(Value) string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(render(p.Car))
	rest := p.Cdr
	for {
		switch r := rest.(type) {
		case *Pair:
			b.WriteByte(' ')
			b.WriteString(render(r.Car))
			rest = r.Cdr
		default:
			if IsNil(rest) {
				b.WriteByte(')')
				return b.String()
			}
			b.WriteString(" . ")
			b.WriteString(render(rest))
			b.WriteByte(')')
			return b.String()
		}
	}
}
