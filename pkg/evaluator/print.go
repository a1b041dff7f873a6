package evaluator

import (
	"strings"

	"lwhlisp/pkg/types"
)

// prettyHeads are the special-form heads whose first operand stays on the
// same line as the head when a list is rendered multi-line.
var prettyHeads = map[string]bool{
	"if":       true,
	"define":   true,
	"defmacro": true,
	"lambda":   true,
}

// Pretty renders v using an indented, reflowing layout: a list collapses
// to one line when its structural weight is at most 12, otherwise each
// subsequent element goes on its own line, indented three spaces per
// depth level.
func Pretty(v types.Value) string {
	return prettyValue(v, 0)
}

func prettyValue(v types.Value, depth int) string {
	if s, ok := v.(types.String); ok {
		return string(s)
	}
	p, ok := v.(*types.Pair)
	if !ok {
		return v.Debug()
	}

	elements, tail := splitList(p)

	if weight(p) <= 12 {
		var b strings.Builder
		b.WriteByte('(')
		for i, e := range elements {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(prettyValue(e, depth+1))
		}
		if tail != nil {
			b.WriteString(" . ")
			b.WriteString(prettyValue(tail, depth+1))
		}
		b.WriteByte(')')
		return b.String()
	}

	indent := strings.Repeat("   ", depth+1)
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(prettyValue(elements[0], depth+1))

	start := 1
	if headName, ok := elements[0].(types.Symbol); ok && prettyHeads[string(headName)] && len(elements) > 1 {
		b.WriteByte(' ')
		b.WriteString(prettyValue(elements[1], depth+1))
		start = 2
	}

	for i := start; i < len(elements); i++ {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(prettyValue(elements[i], depth+1))
	}
	if tail != nil {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(". ")
		b.WriteString(prettyValue(tail, depth+1))
	}
	b.WriteByte(')')
	return b.String()
}

// splitList decomposes a (possibly improper) list into its elements and
// dotted tail (nil if the list is proper).
func splitList(p *types.Pair) (elements []types.Value, tail types.Value) {
	var cur types.Value = p
	for {
		pp, ok := cur.(*types.Pair)
		if !ok {
			if !types.IsNil(cur) {
				tail = cur
			}
			return
		}
		elements = append(elements, pp.Car)
		cur = pp.Cdr
	}
}

// weight estimates how much horizontal space v would take to render: the
// sum of leaf token lengths, plus one per non-symbol leaf, over every
// leaf reachable from v. It decides one-line vs. multi-line rendering.
func weight(v types.Value) int {
	if p, ok := v.(*types.Pair); ok {
		elements, tail := splitList(p)
		total := 0
		for _, e := range elements {
			total += weight(e)
		}
		if tail != nil {
			total += weight(tail)
		}
		return total
	}
	w := len(v.Debug())
	if !types.IsSymbol(v) {
		w++
	}
	return w
}
