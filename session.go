package mathshell

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"
)

// workingPrec is the number of fractional digits kept by inexact operations:
// quotients, exponentiations, and the transcendental functions.
const workingPrec = 34

// seedPrec is the binary precision used to compute the seeded constants.
// 128 bits comfortably covers workingPrec decimal digits.
const seedPrec = 128

// Session is the state consulted between evaluations: the angle mode and the
// variable bindings. A Session is not safe for concurrent use; one expression
// is evaluated to completion before the next.
type Session struct {
	mode AngleMode
	vars map[string]decimal.Decimal
	// pi is the seeded circle constant, kept separately from vars so that
	// degree conversion stays correct even if the variable is reassigned.
	pi decimal.Decimal
	// nums caches decimals by literal text across evaluations.
	nums map[string]decimal.Decimal
}

// NewSession creates a session in degree mode with the variables pi, e, and
// ans defined. ans starts at zero; the shell reassigns it after each
// successful evaluation.
func NewSession() *Session {
	s := &Session{
		mode: Degree,
		vars: make(map[string]decimal.Decimal),
		nums: make(map[string]decimal.Decimal),
	}
	s.pi = seededConst(bigfloat.Pi)
	s.Set("pi", s.pi)
	s.Set("e", seededConst(func(out *big.Float) *big.Float {
		one := new(big.Float).SetPrec(seedPrec).SetInt64(1)
		return bigfloat.Exp(out, one)
	}))
	s.Set("ans", decimal.Zero)
	return s
}

// seededConst computes a constant at seedPrec bits and converts it to decimal
// through its text form.
func seededConst(f func(*big.Float) *big.Float) decimal.Decimal {
	v := f(new(big.Float).SetPrec(seedPrec))
	d, err := decimal.NewFromString(v.Text('f', workingPrec))
	if err != nil {
		panic("mathshell: seeding constant: " + err.Error())
	}
	return d
}

// Mode returns the current angle mode.
func (s *Session) Mode() AngleMode {
	return s.mode
}

// SetMode changes the angle mode.
func (s *Session) SetMode(m AngleMode) {
	s.mode = m
}

// Set binds a variable. Names are case-insensitive; they are lowercased here
// and on lookup.
func (s *Session) Set(name string, v decimal.Decimal) {
	s.vars[strings.ToLower(name)] = v
}

// Lookup returns the value bound to name and whether the name is bound.
func (s *Session) Lookup(name string) (decimal.Decimal, bool) {
	v, ok := s.vars[strings.ToLower(name)]
	return v, ok
}

// Vars returns the bound variable names, sorted.
func (s *Session) Vars() []string {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// num returns a possibly cached decimal for a literal's text.
func (s *Session) num(text string) (decimal.Decimal, error) {
	if v, ok := s.nums[text]; ok {
		return v, nil
	}
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, err
	}
	s.nums[text] = v
	return v, nil
}
