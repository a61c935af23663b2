package mathshell

import "strconv"

// SyntaxError wraps any parse failure together with the expression text that
// produced it. It is the error type callers of EvalString see for malformed
// input; the underlying positional error is available via Unwrap.
type SyntaxError struct {
	// Expr is the source text of the expression that failed to parse.
	Expr string
	// Err is the underlying parse error.
	Err error
}

func (err *SyntaxError) Error() string {
	return "Syntax Error: " + err.Err.Error() + " in expression " + strconv.Quote(err.Expr)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// OperatorError is an error indicating an operator token used in a position
// where it has no meaning, like a leading * or a trailing %. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the token that revealed the mismatch.
	Col int
	// Left is the opening bracket, if any.
	Left string
	// Right is the mismatched closing bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name that is not followed by a
// parenthesized argument. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, err.Func+" must be called as "+err.Func+"(argument)")
}

func (err *CallError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating a token where an operator or the end
// of the expression was expected. It implements InputError.
type TrailingError struct {
	// Col is the position of the token.
	Col int
	// Token is the unexpected token text.
	Token string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+"; expected an operator or end of expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
