package evaluator

import (
	"lwhlisp/pkg/lisperr"
	"lwhlisp/pkg/types"
)

// applyClosure invokes closure with the unevaluated operand list: a fresh
// call environment, formals bound to operands evaluated one at a time in
// the caller's environment, then the body evaluated in sequence.
func applyClosure(closure *types.Closure, operands types.Value, callerEnv *Environment) (types.Value, error) {
	captured, ok := closure.Env.(*Environment)
	if !ok {
		return nil, lisperr.InvalidClosureForm("closure captured a foreign environment")
	}
	callEnv := newCallEnvironment(captured, callerEnv)

	evalOperand := func(v types.Value) (types.Value, error) { return Eval(v, callerEnv) }
	if err := bindFormals("closure", closure.Formals, operands, callEnv, evalOperand); err != nil {
		return nil, err
	}
	return evalBody(closure.Body, callEnv)
}

// bindFormals walks formals and operands in parallel, binding each
// formal in target. evalOperand decides whether (and how) an operand
// expression is turned into the bound value: closures evaluate in the
// caller's environment, macros bind the raw operand unchanged.
func bindFormals(form string, formals, operands types.Value, target *Environment, evalOperand func(types.Value) (types.Value, error)) error {
	for {
		if sym, ok := formals.(types.Symbol); ok && !types.IsNil(formals) {
			values, err := evalRemaining(operands, evalOperand)
			if err != nil {
				return err
			}
			target.Set(string(sym), types.SliceToList(values))
			return nil
		}

		if types.IsNil(formals) {
			if !types.IsNil(operands) {
				return lisperr.TooManyArguments(form)
			}
			return nil
		}

		fp, ok := formals.(*types.Pair)
		if !ok {
			return lisperr.InvalidClosureForm("formals must be a symbol or a list of symbols")
		}
		if types.IsNil(operands) {
			return lisperr.TooFewArguments(form)
		}
		op, ok := operands.(*types.Pair)
		if !ok {
			return lisperr.ImproperApplication()
		}
		formalSym, ok := fp.Car.(types.Symbol)
		if !ok {
			return lisperr.InvalidClosureForm("every formal parameter must be a symbol")
		}
		val, err := evalOperand(op.Car)
		if err != nil {
			return err
		}
		target.Set(string(formalSym), val)

		formals = fp.Cdr
		operands = op.Cdr
	}
}

func evalRemaining(operands types.Value, evalOperand func(types.Value) (types.Value, error)) ([]types.Value, error) {
	var out []types.Value
	for cur := operands; !types.IsNil(cur); {
		p, ok := cur.(*types.Pair)
		if !ok {
			return nil, lisperr.ImproperApplication()
		}
		v, err := evalOperand(p.Car)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		cur = p.Cdr
	}
	return out, nil
}

// evalBody evaluates every expression in body in sequence against env;
// the result of the last one is returned. The validator guarantees body
// is never empty.
func evalBody(body []types.Value, env *Environment) (types.Value, error) {
	var result types.Value = types.Nil
	for _, expr := range body {
		v, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
