package mathshell

import (
	"errors"

	"github.com/shopspring/decimal"
)

// monadic is an entry in the function table: a function of one decimal
// argument. If angle is set, the evaluator converts the argument per the
// session angle mode before the call; the function itself always works in
// radians.
type monadic struct {
	angle bool
	fn    func(decimal.Decimal) (decimal.Decimal, error)
}

// exact adapts a total decimal function to the table's signature.
func exact(f func(decimal.Decimal) decimal.Decimal) func(decimal.Decimal) (decimal.Decimal, error) {
	return func(x decimal.Decimal) (decimal.Decimal, error) {
		return f(x), nil
	}
}

var (
	half = decimal.New(5, -1)

	errNegativeSqrt = errors.New("square root of negative number")
)

// funcs is the function table. The set is closed; extending it is a source
// change, not a runtime registration.
var funcs = map[string]monadic{
	"sin": {angle: true, fn: exact(decimal.Decimal.Sin)},
	"cos": {angle: true, fn: exact(decimal.Decimal.Cos)},
	"tan": {angle: true, fn: exact(decimal.Decimal.Tan)},

	"abs": {fn: exact(decimal.Decimal.Abs)},
	"log": {fn: func(x decimal.Decimal) (decimal.Decimal, error) {
		return x.Ln(workingPrec)
	}},
	"exp": {fn: func(x decimal.Decimal) (decimal.Decimal, error) {
		return x.ExpTaylor(workingPrec)
	}},
	"sqrt": {fn: func(x decimal.Decimal) (decimal.Decimal, error) {
		if x.Sign() < 0 {
			return decimal.Decimal{}, errNegativeSqrt
		}
		return x.PowWithPrecision(half, workingPrec)
	}},
}

// UnsupportedFunctionError is an error from calling a name outside the
// function table.
type UnsupportedFunctionError struct {
	// Name is the function name that was called.
	Name string
}

func (err *UnsupportedFunctionError) Error() string {
	return "Unsupported function: " + err.Name
}
