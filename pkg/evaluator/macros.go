package evaluator

import (
	"lwhlisp/pkg/lisperr"
	"lwhlisp/pkg/types"
)

// applyMacro invokes macro with the unevaluated operand list: operands
// are bound as received (no evaluation), the body is evaluated once to
// produce the expansion, and the expansion is evaluated again in the
// macro's call environment.
func applyMacro(macro *types.Macro, operands types.Value, callerEnv *Environment) (types.Value, error) {
	captured, ok := macro.Env.(*Environment)
	if !ok {
		return nil, lisperr.InvalidClosureForm("macro captured a foreign environment")
	}
	callEnv := newCallEnvironment(captured, callerEnv)

	identity := func(v types.Value) (types.Value, error) { return v, nil }
	if err := bindFormals("macro", macro.Formals, operands, callEnv, identity); err != nil {
		return nil, err
	}
	expansion, err := evalBody(macro.Body, callEnv)
	if err != nil {
		return nil, lisperr.Wrap(err, "expanding macro")
	}
	return Eval(expansion, callEnv)
}
