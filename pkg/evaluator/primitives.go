package evaluator

import (
	"fmt"
	"os"
	"unicode/utf8"

	"lwhlisp/pkg/lisperr"
	"lwhlisp/pkg/types"
)

// registerPrimitives installs every primitive in §4.3 into env.
func registerPrimitives(env *Environment) {
	reg := func(name string, arity int, fn func([]types.Value) (types.Value, error)) {
		env.Set(name, fixedArityPrimitive(name, arity, fn))
	}

	reg("car", 1, primCar)
	reg("cdr", 1, primCdr)
	reg("cons", 2, primCons)
	reg("pair?", 1, primPairP)
	reg("symbol?", 1, primSymbolP)
	reg("string?", 1, primStringP)
	reg("string-length", 1, primStringLength)

	reg("+", 2, arith("+", func(a, b float64) float64 { return a + b }))
	reg("-", 2, arith("-", func(a, b float64) float64 { return a - b }))
	reg("*", 2, arith("*", func(a, b float64) float64 { return a * b }))
	reg("/", 2, arith("/", func(a, b float64) float64 { return a / b }))
	reg("%", 2, arith("%", func(a, b float64) float64 {
		return float64(int64(a) % int64(b))
	}))

	reg("=", 2, primEquals)
	reg("<", 2, compare("<", func(a, b float64) bool { return a < b }))
	reg("<=", 2, compare("<=", func(a, b float64) bool { return a <= b }))
	reg(">", 2, compare(">", func(a, b float64) bool { return a > b }))
	reg(">=", 2, compare(">=", func(a, b float64) bool { return a >= b }))

	reg("print", 1, primPrint)
	reg("println", 1, primPrintln)
	reg("into-string", 1, primIntoString)
	reg("into-pretty-string", 1, primIntoPrettyString)
}

func fixedArityPrimitive(name string, arity int, fn func([]types.Value) (types.Value, error)) *types.Primitive {
	return &types.Primitive{Name: name, Fn: func(args types.Value) (types.Value, error) {
		elems, err := properArgs(args)
		if err != nil {
			return nil, err
		}
		if len(elems) != arity {
			return nil, lisperr.BadArity(name, len(elems), arity)
		}
		return fn(elems)
	}}
}

// primCar and primCdr are lenient (§4.3, §9 open question): a Pair yields
// its Car/Cdr, nil yields nil, and any other atom is returned unchanged.
func primCar(args []types.Value) (types.Value, error) {
	if p, ok := args[0].(*types.Pair); ok {
		return p.Car, nil
	}
	return args[0], nil
}

func primCdr(args []types.Value) (types.Value, error) {
	if p, ok := args[0].(*types.Pair); ok {
		return p.Cdr, nil
	}
	return args[0], nil
}

func primCons(args []types.Value) (types.Value, error) {
	return types.NewPair(args[0], args[1]), nil
}

func primPairP(args []types.Value) (types.Value, error) {
	return types.BoolValue(types.IsPair(args[0])), nil
}

func primSymbolP(args []types.Value) (types.Value, error) {
	return types.BoolValue(types.IsSymbol(args[0])), nil
}

func primStringP(args []types.Value) (types.Value, error) {
	return types.BoolValue(types.IsString(args[0])), nil
}

func primStringLength(args []types.Value) (types.Value, error) {
	s, ok := args[0].(types.String)
	if !ok {
		return nil, lisperr.TypeMismatch("string", typeName(args[0]))
	}
	return types.Number(utf8.RuneCountInString(string(s))), nil
}

func asNumber(v types.Value) (float64, error) {
	n, ok := v.(types.Number)
	if !ok {
		return 0, lisperr.TypeMismatch("number", typeName(v))
	}
	return float64(n), nil
}

func arith(name string, op func(a, b float64) float64) func([]types.Value) (types.Value, error) {
	return func(args []types.Value) (types.Value, error) {
		a, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNumber(args[1])
		if err != nil {
			return nil, err
		}
		return types.Number(op(a, b)), nil
	}
}

func compare(name string, op func(a, b float64) bool) func([]types.Value) (types.Value, error) {
	return func(args []types.Value) (types.Value, error) {
		a, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNumber(args[1])
		if err != nil {
			return nil, err
		}
		return types.BoolValue(op(a, b)), nil
	}
}

func primEquals(args []types.Value) (types.Value, error) {
	return types.BoolValue(types.Equal(args[0], args[1])), nil
}

// primPrint emits the value to standard output without a trailing
// newline; Strings are emitted raw (§4.3). It returns a String of
// whatever was emitted.
func primPrint(args []types.Value) (types.Value, error) {
	s := printRendering(args[0])
	fmt.Fprint(os.Stdout, s)
	return types.String(s), nil
}

func primPrintln(args []types.Value) (types.Value, error) {
	s := printRendering(args[0])
	fmt.Fprintln(os.Stdout, s)
	return types.String(s), nil
}

func printRendering(v types.Value) string {
	if s, ok := v.(types.String); ok {
		return string(s)
	}
	return v.Debug()
}

func primIntoString(args []types.Value) (types.Value, error) {
	return types.String(args[0].Debug()), nil
}

func primIntoPrettyString(args []types.Value) (types.Value, error) {
	return types.String(Pretty(args[0])), nil
}

func typeName(v types.Value) string {
	switch v.(type) {
	case types.Number:
		return "number"
	case types.String:
		return "string"
	case types.Symbol:
		return "symbol"
	case *types.Pair:
		return "pair"
	case *types.Primitive:
		return "primitive"
	case *types.Closure:
		return "closure"
	case *types.Macro:
		return "macro"
	default:
		return fmt.Sprintf("%T", v)
	}
}
