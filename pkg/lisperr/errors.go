// Package lisperr defines the error kinds produced by the parser and
// evaluator and the context-frame chaining used to report them.
package lisperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind categorizes an error so the REPL and file driver can react to it
// without string-sniffing a message.
type Kind int

const (
	KindParseError Kind = iota
	KindUnboundSymbol
	KindBadArity
	KindTypeMismatch
	KindImproperApplication
	KindNotApplicable
	KindInvalidClosureForm
	KindMacroEvaluated
	KindIoError
)

func (k Kind) String() string {
	switch k {
	case KindParseError:
		return "ParseError"
	case KindUnboundSymbol:
		return "UnboundSymbol"
	case KindBadArity:
		return "BadArity"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindImproperApplication:
		return "ImproperApplication"
	case KindNotApplicable:
		return "NotApplicable"
	case KindInvalidClosureForm:
		return "InvalidClosureForm"
	case KindMacroEvaluated:
		return "MacroEvaluated"
	case KindIoError:
		return "IoError"
	default:
		return "Error"
	}
}

// Error is the single concrete error type behind every Kind. It carries
// its own message only; the surrounding context ("evaluating (foo 1 2)",
// "in body of lambda") is layered on by Wrap as the error propagates up
// through the evaluator.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func new(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ParseError(message string) error {
	return new(KindParseError, "%s", message)
}

func UnboundSymbol(name string) error {
	return new(KindUnboundSymbol, "unbound symbol: %s", name)
}

func BadArity(form string, got, expected int) error {
	return new(KindBadArity, "%s expects %d argument(s), got %d", form, expected, got)
}

func TooManyArguments(form string) error {
	return new(KindBadArity, "%s: too many arguments", form)
}

func TooFewArguments(form string) error {
	return new(KindBadArity, "%s: too few arguments", form)
}

func BadArityRange(form string, got, min, max int) error {
	if max < 0 {
		return new(KindBadArity, "%s expects at least %d argument(s), got %d", form, min, got)
	}
	return new(KindBadArity, "%s expects between %d and %d argument(s), got %d", form, min, max, got)
}

func TypeMismatch(expected, got string) error {
	return new(KindTypeMismatch, "expected %s, got %s", expected, got)
}

func ImproperApplication() error {
	return new(KindImproperApplication, "combination is not a proper list")
}

func NotApplicable(debug string) error {
	return new(KindNotApplicable, "not applicable: %s", debug)
}

func InvalidClosureForm(reason string) error {
	return new(KindInvalidClosureForm, "%s", reason)
}

func MacroEvaluated() error {
	return new(KindMacroEvaluated, "macro value appeared in value position")
}

func IoError(reason string) error {
	return new(KindIoError, "%s", reason)
}

// Wrap layers a context frame onto err, naming the expression or form
// being evaluated, using github.com/pkg/errors so the frame chain can be
// walked (or the original *Error recovered with Cause) without losing the
// message already attached at the point of failure.
func Wrap(err error, frame string) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, frame)
}

func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithMessagef(err, format, args...)
}

// As recovers the originating *Error (Kind + Message) from a chain built
// by Wrap/Wrapf, looking through any number of context frames.
func As(err error) (*Error, bool) {
	cause := errors.Cause(err)
	le, ok := cause.(*Error)
	return le, ok
}
