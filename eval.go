package mathshell

import (
	"github.com/shopspring/decimal"
)

// Eval reduces the expression to a single value using the session's angle
// mode and variable bindings. Evaluation either yields a value or returns the
// first error detected; it never partially succeeds. Eval does not modify the
// session's bindings.
func (e *Expr) Eval(s *Session) (decimal.Decimal, error) {
	return e.n.eval(s)
}

// EvalString parses src and evaluates it against the session. Parse failures
// of any kind are wrapped in a SyntaxError carrying the source text;
// evaluation failures are returned as-is.
func EvalString(s *Session, src string) (decimal.Decimal, error) {
	e, err := ParseString(src)
	if err != nil {
		return decimal.Decimal{}, &SyntaxError{Expr: src, Err: err}
	}
	return e.Eval(s)
}

func (n *node) eval(s *Session) (decimal.Decimal, error) {
	switch n.kind {
	case nodeNum:
		v, err := s.num(n.name)
		if err != nil {
			// The lexer only emits literals the decimal parser accepts, so
			// this indicates a literal far outside the representable range.
			return decimal.Decimal{}, &NumericError{Op: n.name, Err: err}
		}
		return v, nil
	case nodeVar:
		v, ok := s.Lookup(n.name)
		if !ok {
			return decimal.Decimal{}, &UndefinedVariableError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		fn, ok := funcs[n.name]
		if !ok {
			return decimal.Decimal{}, &UnsupportedFunctionError{Name: n.name}
		}
		arg, err := n.left.eval(s)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if fn.angle {
			arg = ToRadians(arg, s.mode, s.pi)
		}
		r, err := fn.fn(arg)
		if err != nil {
			return decimal.Decimal{}, &NumericError{Op: n.name, Err: err}
		}
		return r, nil
	case nodeNeg:
		v, err := n.left.eval(s)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return v.Neg(), nil
	case nodeNop:
		return n.left.eval(s)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.left.eval(s)
		if err != nil {
			return decimal.Decimal{}, err
		}
		r, err := n.right.eval(s)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return binApply(n.kind, l, r)
	default:
		return decimal.Decimal{}, &UnsupportedNodeTypeError{Kind: n.kind.String()}
	}
}

// binApply applies a binary operator. Zero divisors are rejected before the
// arithmetic runs rather than inferred from its result.
func binApply(kind nodeKind, l, r decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case nodeAdd:
		return l.Add(r), nil
	case nodeSub:
		return l.Sub(r), nil
	case nodeMul:
		return l.Mul(r), nil
	case nodeDiv:
		if r.IsZero() {
			return decimal.Decimal{}, &DivisionByZeroError{}
		}
		return l.DivRound(r, workingPrec), nil
	case nodeMod:
		if r.IsZero() {
			return decimal.Decimal{}, &ModuloByZeroError{}
		}
		return l.Mod(r), nil
	case nodePow:
		v, err := l.PowWithPrecision(r, workingPrec)
		if err != nil {
			return decimal.Decimal{}, &NumericError{Op: "**", Err: err}
		}
		return v, nil
	default:
		return decimal.Decimal{}, &UnsupportedNodeTypeError{Kind: kind.String()}
	}
}

// UndefinedVariableError is an error from a reference to a variable that is
// not bound in the session.
type UndefinedVariableError struct {
	// Name is the name that was missing.
	Name string
}

func (err *UndefinedVariableError) Error() string {
	return "Undefined variable: " + err.Name
}

// UnsupportedNodeTypeError is an error from evaluating a syntax tree node the
// evaluator does not recognize. The parser cannot produce such a node; this
// guards against a corrupted tree.
type UnsupportedNodeTypeError struct {
	// Kind names the unrecognized node kind.
	Kind string
}

func (err *UnsupportedNodeTypeError) Error() string {
	return "Unsupported node type: " + err.Kind
}

// DivisionByZeroError is an error from dividing by exact zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "Division by zero error"
}

// ModuloByZeroError is an error from taking a remainder by exact zero.
type ModuloByZeroError struct{}

func (err *ModuloByZeroError) Error() string {
	return "Modulo by zero error"
}

// NumericError is an error from an operator or function whose result is not a
// representable number, such as the logarithm of a negative value.
type NumericError struct {
	// Op is the operator symbol or function name that produced the error.
	Op string
	// Err is the underlying arithmetic error, if any.
	Err error
}

func (err *NumericError) Error() string {
	if err.Err != nil {
		return "Numeric error in " + err.Op + ": " + err.Err.Error()
	}
	return "Numeric error in " + err.Op
}

func (err *NumericError) Unwrap() error {
	return err.Err
}
