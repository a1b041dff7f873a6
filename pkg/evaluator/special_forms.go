package evaluator

import (
	"lwhlisp/pkg/lisperr"
	"lwhlisp/pkg/types"
)

// evalSpecialForm dispatches one of the six recognized special forms.
// args is the unevaluated operand list.
func evalSpecialForm(name string, args types.Value, env *Environment) (types.Value, error) {
	switch name {
	case "quote":
		return evalQuote(args)
	case "if":
		return evalIf(args, env)
	case "lambda":
		return evalLambda(args, env)
	case "define":
		return evalDefine(args, env)
	case "defmacro":
		return evalDefmacro(args, env)
	case "apply":
		return evalApply(args, env)
	default:
		return nil, lisperr.NotApplicable(name)
	}
}

func evalQuote(args types.Value) (types.Value, error) {
	elems, err := properArgs(args)
	if err != nil {
		return nil, err
	}
	if len(elems) != 1 {
		return nil, lisperr.BadArity("quote", len(elems), 1)
	}
	return elems[0], nil
}

func evalIf(args types.Value, env *Environment) (types.Value, error) {
	elems, err := properArgs(args)
	if err != nil {
		return nil, err
	}
	if len(elems) != 3 {
		return nil, lisperr.BadArity("if", len(elems), 3)
	}
	test, err := Eval(elems[0], env)
	if err != nil {
		return nil, lisperr.Wrap(err, "evaluating if test")
	}
	if types.Truthy(test) {
		return Eval(elems[1], env)
	}
	return Eval(elems[2], env)
}

// evalLambda builds a Closure from (lambda formals body...).
func evalLambda(args types.Value, env *Environment) (types.Value, error) {
	p, ok := args.(*types.Pair)
	if !ok {
		return nil, lisperr.InvalidClosureForm("lambda requires formals and at least one body expression")
	}
	formals := p.Car
	body, err := properArgs(p.Cdr)
	if err != nil {
		return nil, lisperr.InvalidClosureForm("lambda body must be a proper list")
	}
	if len(body) == 0 {
		return nil, lisperr.InvalidClosureForm("lambda body must contain at least one expression")
	}
	if err := validateFormals(formals); err != nil {
		return nil, err
	}
	return &types.Closure{Env: env, Formals: formals, Body: body}, nil
}

// validateFormals checks that every non-tail formal is a Symbol.
func validateFormals(formals types.Value) error {
	switch f := formals.(type) {
	case types.Symbol:
		return nil
	case *types.Pair:
		cur := types.Value(f)
		for {
			p, ok := cur.(*types.Pair)
			if !ok {
				if _, isSym := cur.(types.Symbol); isSym {
					return nil
				}
				return lisperr.InvalidClosureForm("formals tail must be a symbol or nil")
			}
			if !types.IsSymbol(p.Car) {
				return lisperr.InvalidClosureForm("every formal parameter must be a symbol")
			}
			cur = p.Cdr
		}
	default:
		if types.IsNil(formals) {
			return nil
		}
		return lisperr.InvalidClosureForm("formals must be a symbol or a (possibly dotted) list of symbols")
	}
}

// evalDefine implements both (define name value) and
// (define (name . formals) body...).
func evalDefine(args types.Value, env *Environment) (types.Value, error) {
	elems, err := properArgs(args)
	if err != nil {
		return nil, lisperr.InvalidClosureForm("define requires a proper argument list")
	}
	if len(elems) == 0 {
		return nil, lisperr.BadArity("define", 0, 2)
	}

	if name, ok := elems[0].(types.Symbol); ok {
		if len(elems) != 2 {
			return nil, lisperr.BadArity("define", len(elems), 2)
		}
		value, err := Eval(elems[1], env)
		if err != nil {
			return nil, lisperr.Wrapf(err, "defining %s", name)
		}
		env.Set(string(name), value)
		return name, nil
	}

	header, ok := elems[0].(*types.Pair)
	if !ok {
		return nil, lisperr.InvalidClosureForm("define's first argument must be a symbol or (name . formals)")
	}
	name, ok := header.Car.(types.Symbol)
	if !ok {
		return nil, lisperr.InvalidClosureForm("(define (name . formals) ...) requires name to be a symbol")
	}
	if err := validateFormals(header.Cdr); err != nil {
		return nil, err
	}
	body := elems[1:]
	if len(body) == 0 {
		return nil, lisperr.InvalidClosureForm("define function body must contain at least one expression")
	}
	closure := &types.Closure{Env: env, Formals: header.Cdr, Body: body}
	// The closure's own captured environment is augmented with a binding
	// from name to the closure itself, to enable recursion. This is the
	// sole source of cycles in the value graph.
	env.Set(string(name), closure)
	return name, nil
}

// evalDefmacro builds a Macro and binds it.
func evalDefmacro(args types.Value, env *Environment) (types.Value, error) {
	elems, err := properArgs(args)
	if err != nil {
		return nil, lisperr.InvalidClosureForm("defmacro requires a proper argument list")
	}
	if len(elems) < 2 {
		return nil, lisperr.BadArity("defmacro", len(elems), 2)
	}
	header, ok := elems[0].(*types.Pair)
	if !ok {
		return nil, lisperr.InvalidClosureForm("defmacro's first argument must be (name . formals)")
	}
	name, ok := header.Car.(types.Symbol)
	if !ok {
		return nil, lisperr.InvalidClosureForm("(defmacro (name . formals) ...) requires name to be a symbol")
	}
	if err := validateFormals(header.Cdr); err != nil {
		return nil, err
	}
	macro := &types.Macro{Env: env, Formals: header.Cdr, Body: elems[1:]}
	env.Set(string(name), macro)
	return name, nil
}

// evalApply implements (apply fexpr argsexpr): evaluate both, then build
// a new combination whose head is the evaluated fexpr and whose tail is
// the evaluated argument list with each element quoted, to prevent
// double-evaluation.
func evalApply(args types.Value, env *Environment) (types.Value, error) {
	elems, err := properArgs(args)
	if err != nil {
		return nil, err
	}
	if len(elems) != 2 {
		return nil, lisperr.BadArity("apply", len(elems), 2)
	}
	fn, err := Eval(elems[0], env)
	if err != nil {
		return nil, lisperr.Wrap(err, "evaluating apply's function argument")
	}
	argsVal, err := Eval(elems[1], env)
	if err != nil {
		return nil, lisperr.Wrap(err, "evaluating apply's argument list")
	}
	if !types.IsProperList(argsVal) {
		return nil, lisperr.TypeMismatch("proper list", "improper or non-list value")
	}
	quoted := make([]types.Value, 0)
	for _, a := range types.ListToSlice(argsVal) {
		quoted = append(quoted, types.NewPair(types.Symbol("quote"), types.NewPair(a, types.Nil)))
	}
	combination := types.NewPair(fn, types.SliceToList(quoted))
	return Eval(combination, env)
}

// properArgs converts a proper-list operand chain into a Go slice,
// erroring on a dotted tail.
func properArgs(args types.Value) ([]types.Value, error) {
	if !types.IsProperList(args) {
		return nil, lisperr.ImproperApplication()
	}
	return types.ListToSlice(args), nil
}
