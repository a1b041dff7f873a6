// Package evaluator implements the core of lwhlisp: the environment
// model, the dispatch rules for atoms/combinations/closures/macros, the
// six special forms, and the primitive procedures.
package evaluator

import (
	"lwhlisp/pkg/lisperr"
	"lwhlisp/pkg/types"
)

// specialForms are the keywords recognized at the head of a combination.
// Recognition requires that looking the symbol up in env still yields the
// identically-named symbol: shadowing one of these names with `define`
// disables the special form, by design.
var specialForms = map[string]bool{
	"quote":    true,
	"define":   true,
	"defmacro": true,
	"lambda":   true,
	"if":       true,
	"apply":    true,
}

// NewRootEnvironment builds the root environment: nil/t, the special-form
// keywords bound to themselves, and every built-in primitive.
func NewRootEnvironment() *Environment {
	root := NewEnvironment(nil)
	root.Set("nil", types.Nil)
	root.Set("t", types.T)
	for name := range specialForms {
		root.Set(name, types.Symbol(name))
	}
	registerPrimitives(root)
	return root
}

// Eval evaluates expr against env, dispatching on its variant.
func Eval(expr types.Value, env *Environment) (types.Value, error) {
	switch v := expr.(type) {
	case types.Number, types.String, *types.Primitive, *types.Closure:
		return v, nil
	case *types.Macro:
		return nil, lisperr.MacroEvaluated()
	case types.Symbol:
		if types.IsNil(v) || v == types.T {
			return v, nil
		}
		val, ok := env.Get(string(v))
		if !ok {
			return nil, lisperr.UnboundSymbol(string(v))
		}
		return val, nil
	case *types.Pair:
		return evalCombination(v, env)
	default:
		return nil, lisperr.TypeMismatch("a value", "unknown")
	}
}

// evalCombination evaluates expr = (op . args): the operator is evaluated
// first, then dispatched on its runtime type.
func evalCombination(expr *types.Pair, env *Environment) (types.Value, error) {
	if !types.IsProperList(expr) {
		return nil, lisperr.ImproperApplication()
	}

	opVal, err := Eval(expr.Car, env)
	if err != nil {
		return nil, lisperr.Wrapf(err, "evaluating operator %s", debugOrPlaceholder(expr.Car))
	}

	args := expr.Cdr

	if sym, ok := opVal.(types.Symbol); ok && specialForms[string(sym)] {
		return evalSpecialForm(string(sym), args, env)
	}

	switch op := opVal.(type) {
	case *types.Primitive:
		evaluated, err := evalArgs(args, env)
		if err != nil {
			return nil, err
		}
		result, err := op.Fn(evaluated)
		if err != nil {
			return nil, lisperr.Wrapf(err, "calling %s", op.Name)
		}
		return result, nil
	case *types.Closure:
		// Closures evaluate their operands one at a time, in lockstep
		// with binding formals, not as a pre-evaluated batch.
		return applyClosure(op, args, env)
	case *types.Macro:
		return applyMacro(op, args, env)
	default:
		return nil, lisperr.NotApplicable(opVal.Debug())
	}
}

// evalArgs evaluates every element of a proper-list operand chain
// left-to-right into a new list.
func evalArgs(args types.Value, env *Environment) (types.Value, error) {
	var out []types.Value
	for cur := args; !types.IsNil(cur); {
		p, ok := cur.(*types.Pair)
		if !ok {
			return nil, lisperr.ImproperApplication()
		}
		v, err := Eval(p.Car, env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		cur = p.Cdr
	}
	return types.SliceToList(out), nil
}

func debugOrPlaceholder(v types.Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.Debug()
}
