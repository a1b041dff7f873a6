// Package interp glues the parser and evaluator together into the
// session-level facade the CLI and REPL drive: a persistent environment
// that source text is repeatedly parsed and evaluated against.
package interp

import (
	"fmt"
	"os"
	"strings"

	"lwhlisp/pkg/evaluator"
	"lwhlisp/pkg/lisperr"
	"lwhlisp/pkg/parser"
	"lwhlisp/pkg/types"
)

// Interpreter holds the persistent environment a REPL session or a file
// load runs against.
type Interpreter struct {
	Env *evaluator.Environment
}

func New() *Interpreter {
	return &Interpreter{Env: evaluator.NewRootEnvironment()}
}

// Interpret parses input into its top-level forms and evaluates each in
// turn against the persistent environment, returning the last result.
// A parse diagnostic aborts before any evaluation happens.
func (i *Interpreter) Interpret(input string) (types.Value, error) {
	forms, diagnostics := parser.Parse(input)
	if len(diagnostics) > 0 {
		return nil, lisperr.ParseError(joinDiagnostics(diagnostics))
	}
	var result types.Value = types.Nil
	for _, form := range forms {
		v, err := evaluator.Eval(form, i.Env)
		if err != nil {
			return nil, lisperr.Wrapf(err, "evaluating %s", form.Debug())
		}
		result = v
	}
	return result, nil
}

// LoadFile reads path and interprets its contents as a sequence of
// top-level forms, optionally tracing each form and its result to w
// (the --debug/--debug-library behavior).
func (i *Interpreter) LoadFile(path string, trace bool, w *os.File) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return lisperr.IoError(err.Error())
	}
	forms, diagnostics := parser.Parse(string(src))
	if len(diagnostics) > 0 {
		return lisperr.ParseError(fmt.Sprintf("%s: %s", path, joinDiagnostics(diagnostics)))
	}
	for _, form := range forms {
		v, err := evaluator.Eval(form, i.Env)
		if err != nil {
			return lisperr.Wrapf(err, "evaluating %s (%s)", form.Debug(), path)
		}
		if trace {
			fmt.Fprintf(w, "%s => %s\n", form.Debug(), v.Debug())
		}
	}
	return nil
}

func joinDiagnostics(diagnostics []parser.Diagnostic) string {
	parts := make([]string, len(diagnostics))
	for i, d := range diagnostics {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}
