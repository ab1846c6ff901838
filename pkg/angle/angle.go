package angle

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrInvalidInput is returned when an angle cannot be unwrapped: it is NaN,
// infinite, or so large that a full turn no longer changes its value.
var ErrInvalidInput = errors.New("invalid angle input")

func pi[T constraints.Float]() T {
	return T(math.Pi)
}

func tau[T constraints.Float]() T {
	return T(2 * math.Pi)
}

// Normalize maps an angle in radians of any magnitude into [-π, π) by
// calculating |a| mod 2π, restoring the sign and shifting into range.  An
// input of exactly π comes out as -π.  NaN and infinite inputs give NaN.
func Normalize[T constraints.Float](a T) T {
	// The remainder is exact, so doing it in float64 gives the same result
	// as doing it in T.
	wrapped := T(math.Copysign(math.Mod(math.Abs(float64(a)), float64(tau[T]())), float64(a)))
	if wrapped >= pi[T]() {
		wrapped -= tau[T]()
	} else if wrapped < -pi[T]() {
		wrapped += tau[T]()
	}
	return wrapped
}

// IsCanonical returns true if a is in [-π, π), the range Normalize produces.
func IsCanonical[T constraints.Float](a T) bool {
	return a >= -pi[T]() && a < pi[T]()
}

// Denormalize returns the angle equivalent to next (modulo 2π) that is
// closest to previous, i.e. within [previous-π, previous+π].
//
// previous may be any real number, for example an accumulated heading after
// many full turns.  next is normally a freshly measured angle in [-π, π),
// but it is not checked.
func Denormalize[T constraints.Float](previous, next T) (T, error) {
	if !isFinite(previous) || !isFinite(next) {
		return next, errors.Wrapf(ErrInvalidInput, "cannot unwrap %v against %v", next, previous)
	}
	p, t := pi[T](), tau[T]()
	if stalls(previous, t) || stalls(next, t) {
		return next, errors.Wrapf(ErrInvalidInput, "cannot unwrap %v against %v: a full turn is below float resolution", next, previous)
	}

	denormalized := next
	for denormalized > previous+p {
		denormalized -= t
	}
	for denormalized < previous-p {
		denormalized += t
	}
	return denormalized, nil
}

// MustDenormalize is like Denormalize but panics if the inputs are invalid.
func MustDenormalize[T constraints.Float](previous, next T) T {
	a, err := Denormalize(previous, next)
	if err != nil {
		panic(err)
	}
	return a
}

func isFinite[T constraints.Float](a T) bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// stalls returns true if stepping a by a full turn leaves it unchanged.
func stalls[T constraints.Float](a, t T) bool {
	return a+t == a || a-t == a
}
