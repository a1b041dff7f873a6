package repl

import (
	"fmt"

	"github.com/fatih/color"

	"lwhlisp/pkg/lisperr"
)

// ErrorFormatter colorizes an evaluation error by its lisperr.Kind so
// different failure categories are visually distinct at the prompt.
type ErrorFormatter struct {
	colors map[lisperr.Kind]*color.Color
	prefix *color.Color
}

func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		colors: map[lisperr.Kind]*color.Color{
			lisperr.KindParseError:          color.New(color.FgRed, color.Bold),
			lisperr.KindUnboundSymbol:       color.New(color.FgYellow, color.Bold),
			lisperr.KindBadArity:            color.New(color.FgMagenta, color.Bold),
			lisperr.KindTypeMismatch:        color.New(color.FgCyan, color.Bold),
			lisperr.KindImproperApplication: color.New(color.FgMagenta, color.Bold),
			lisperr.KindNotApplicable:       color.New(color.FgMagenta, color.Bold),
			lisperr.KindInvalidClosureForm:  color.New(color.FgCyan, color.Bold),
			lisperr.KindMacroEvaluated:      color.New(color.FgCyan, color.Bold),
			lisperr.KindIoError:             color.New(color.FgBlue, color.Bold),
		},
		prefix: color.New(color.FgRed, color.Bold),
	}
}

// Format renders the original input followed by "!! " and the full
// context-frame chain.
func (f *ErrorFormatter) Format(input string, err error) string {
	c := color.New(color.FgWhite)
	if le, ok := lisperr.As(err); ok {
		if col, ok := f.colors[le.Kind]; ok {
			c = col
		}
	}
	return fmt.Sprintf("%s\n%s %s", input, f.prefix.Sprint("!!"), c.Sprint(err.Error()))
}
