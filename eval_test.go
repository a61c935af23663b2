package mathshell_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	mathshell "github.com/NOname-awa/math-shell"
)

func eval(t *testing.T, sess *mathshell.Session, src string) decimal.Decimal {
	t.Helper()
	r, err := mathshell.EvalString(sess, src)
	if err != nil {
		t.Fatalf("evaluating %q: %v", src, err)
	}
	return r
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"literal-int", "42", "42"},
		{"literal-dec", "3.25", "3.25"},
		{"literal-exp", "1.5e3", "1500"},
		{"big-literal", "123456789123456789123456789 + 1", "123456789123456789123456790"},
		{"exact-sum", "0.1 + 0.2", "0.3"},
		{"add-mul", "2 + 3 * 4", "14"},
		{"group", "(2 + 3) * 4", "20"},
		{"div", "1 / 8", "0.125"},
		{"div-assoc", "8 / 4 / 2", "1"},
		{"mod", "7 % 3", "1"},
		{"mod-dec", "7.5 % 2", "1.5"},
		{"pow", "2 ** 10", "1024"},
		{"pow-right", "2 ** 3 ** 2", "512"},
		{"neg", "-5", "-5"},
		{"neg-pow", "-3 ** 2", "-9"},
		{"sub-neg", "5 - -3", "8"},
		{"plus", "+7", "7"},
		{"abs", "abs(-4.5)", "4.5"},
		{"abs-expr", "abs(2 - 5)", "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sess := mathshell.NewSession()
			got := eval(t, sess, c.src)
			want := decimal.RequireFromString(c.want)
			if !got.Equal(want) {
				t.Errorf("%q: want %s, got %s", c.src, want, got)
			}
		})
	}
}

// close enough for the transcendental functions' working precision.
var eps = decimal.New(1, -9)

func approx(t *testing.T, src string, got decimal.Decimal, want string) {
	t.Helper()
	w := decimal.RequireFromString(want)
	if got.Sub(w).Abs().Cmp(eps) > 0 {
		t.Errorf("%q: want about %s, got %s", src, w, got)
	}
}

func TestEvalTrig(t *testing.T) {
	cases := []struct {
		name string
		src  string
		mode mathshell.AngleMode
		want string
	}{
		{"sin-deg", "sin(90)", mathshell.Degree, "1"},
		{"sin-deg-zero", "sin(0)", mathshell.Degree, "0"},
		{"sin-deg-30", "sin(30)", mathshell.Degree, "0.5"},
		{"cos-deg", "cos(60)", mathshell.Degree, "0.5"},
		{"tan-deg", "tan(45)", mathshell.Degree, "1"},
		{"sin-rad", "sin(3.14159265358979)", mathshell.Radian, "0"},
		{"cos-rad", "cos(0)", mathshell.Radian, "1"},
		{"sin-rad-pi", "sin($pi)", mathshell.Radian, "0"},
		{"sin-rad-half-pi", "sin($pi / 2)", mathshell.Radian, "1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sess := mathshell.NewSession()
			sess.SetMode(c.mode)
			approx(t, c.src, eval(t, sess, c.src), c.want)
		})
	}
}

func TestEvalTranscendental(t *testing.T) {
	sess := mathshell.NewSession()
	approx(t, "exp(1)", eval(t, sess, "exp(1)"), "2.718281828459045235360287")
	approx(t, "log(1)", eval(t, sess, "log(1)"), "0")
	approx(t, "log($e)", eval(t, sess, "log($e)"), "1")
	approx(t, "sqrt(2)", eval(t, sess, "sqrt(2)"), "1.414213562373095048801689")
	approx(t, "sqrt(16)", eval(t, sess, "sqrt(16)"), "4")
}

// The angle mode must only affect the trigonometric functions.
func TestAngleModeInsensitive(t *testing.T) {
	for _, src := range []string{"abs(-90)", "log(90)", "exp(2)", "sqrt(90)"} {
		deg := mathshell.NewSession()
		deg.SetMode(mathshell.Degree)
		rad := mathshell.NewSession()
		rad.SetMode(mathshell.Radian)
		d := eval(t, deg, src)
		r := eval(t, rad, src)
		if !d.Equal(r) {
			t.Errorf("%q differs by angle mode: %s in degree, %s in radian", src, d, r)
		}
	}
}

func TestVariables(t *testing.T) {
	sess := mathshell.NewSession()
	sess.Set("x", decimal.NewFromInt(5))
	if got := eval(t, sess, "$x * 2"); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("$x * 2 = %s with x = 5", got)
	}
	// Lookup is case-insensitive both ways.
	if got := eval(t, sess, "$X * 2"); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("$X * 2 = %s with x = 5", got)
	}
	sess.Set("Big", decimal.NewFromInt(100))
	if got := eval(t, sess, "$big + 1"); !got.Equal(decimal.NewFromInt(101)) {
		t.Errorf("$big + 1 = %s with Big = 100", got)
	}
	// Distinct names that share a prefix stay distinct.
	sess.Set("ans2", decimal.NewFromInt(7))
	if got := eval(t, sess, "$ans2"); !got.Equal(decimal.NewFromInt(7)) {
		t.Errorf("$ans2 = %s with ans2 = 7", got)
	}
}

func TestAnsPropagation(t *testing.T) {
	sess := mathshell.NewSession()
	r := eval(t, sess, "2 + 2")
	sess.Set("ans", r)
	if got := eval(t, sess, "$ans * 10"); !got.Equal(decimal.NewFromInt(40)) {
		t.Errorf("$ans * 10 = %s after 2 + 2", got)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"div-zero", "1 / 0", &mathshell.DivisionByZeroError{}},
		{"div-zero-expr", "5 / (2 - 2)", &mathshell.DivisionByZeroError{}},
		{"mod-zero", "5 % 0", &mathshell.ModuloByZeroError{}},
		{"undefined", "$nope", &mathshell.UndefinedVariableError{}},
		{"undefined-nested", "1 + 2 * $nope", &mathshell.UndefinedVariableError{}},
		{"unsupported", "foo(1)", &mathshell.UnsupportedFunctionError{}},
		{"log-domain", "log(-1)", &mathshell.NumericError{}},
		{"log-zero", "log(0)", &mathshell.NumericError{}},
		{"sqrt-domain", "sqrt(-4)", &mathshell.NumericError{}},
		{"syntax", "2 +", &mathshell.SyntaxError{}},
		{"syntax-empty", "", &mathshell.SyntaxError{}},
		{"syntax-adjacent", "1 2", &mathshell.SyntaxError{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sess := mathshell.NewSession()
			_, err := mathshell.EvalString(sess, c.src)
			if err == nil {
				t.Fatalf("evaluating %q succeeded", c.src)
			}
			target := reflect.New(reflect.TypeOf(c.want))
			if !errors.As(err, target.Interface()) {
				t.Errorf("evaluating %q: want %T, got %T (%v)", c.src, c.want, err, err)
			}
		})
	}
}

func TestEvalErrorDetail(t *testing.T) {
	sess := mathshell.NewSession()

	_, err := mathshell.EvalString(sess, "$nope + 1")
	var uv *mathshell.UndefinedVariableError
	if !errors.As(err, &uv) {
		t.Fatalf("want UndefinedVariableError, got %v", err)
	}
	if uv.Name != "nope" {
		t.Errorf("want name %q, got %q", "nope", uv.Name)
	}

	_, err = mathshell.EvalString(sess, "foo(1)")
	var uf *mathshell.UnsupportedFunctionError
	if !errors.As(err, &uf) {
		t.Fatalf("want UnsupportedFunctionError, got %v", err)
	}
	if uf.Name != "foo" {
		t.Errorf("want name %q, got %q", "foo", uf.Name)
	}

	_, err = mathshell.EvalString(sess, "2 +")
	var se *mathshell.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("want SyntaxError, got %v", err)
	}
	if se.Expr != "2 +" {
		t.Errorf("want expression %q, got %q", "2 +", se.Expr)
	}
	if se.Unwrap() == nil {
		t.Error("SyntaxError has no underlying cause")
	}
}

// Division by zero is detected before the arithmetic, not after: the argument
// of the failing operator still evaluates first, so an undefined variable on
// the right reports the variable, not the division.
func TestErrorOrder(t *testing.T) {
	sess := mathshell.NewSession()
	_, err := mathshell.EvalString(sess, "1 / $nope")
	var uv *mathshell.UndefinedVariableError
	if !errors.As(err, &uv) {
		t.Errorf("want UndefinedVariableError, got %v", err)
	}
}
