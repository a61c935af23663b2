package mathshell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AngleMode selects how the arguments of trigonometric functions are
// interpreted.
type AngleMode int

const (
	// Degree interprets trigonometric arguments as degrees.
	Degree AngleMode = iota
	// Radian interprets trigonometric arguments as radians.
	Radian
)

func (m AngleMode) String() string {
	switch m {
	case Degree:
		return "degree"
	case Radian:
		return "radian"
	default:
		return "AngleMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseAngleMode converts a mode name to an AngleMode.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(s) {
	case "degree", "deg":
		return Degree, nil
	case "radian", "rad":
		return Radian, nil
	default:
		return 0, fmt.Errorf("unknown angle mode %q", s)
	}
}

var deg180 = decimal.NewFromInt(180)

// ToRadians converts x to radians when mode is Degree and returns it
// unchanged when mode is Radian. pi is the caller's pi constant; the
// conversion is x*pi/180 in decimal arithmetic, never native floating point.
func ToRadians(x decimal.Decimal, mode AngleMode, pi decimal.Decimal) decimal.Decimal {
	if mode == Radian {
		return x
	}
	return x.Mul(pi).DivRound(deg180, workingPrec)
}
