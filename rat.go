package jsonschema

import (
	"fmt"
	"math/big"
)

// toRat converts a decoded JSON number to an exact big.Rat so that
// multipleOf/maximum/minimum compare without float64 rounding error (the
// classic source of draft-test-suite failures at values like 0.1 or
// 1e308). Grounded on the teacher's convertToBigRat in rat.go, which feeds
// big.Rat.SetString a fmt.Sprint'd decimal rather than calling SetFloat64
// directly: fmt.Sprint(f) (like strconv.FormatFloat(f, 'g', -1, 64)) yields
// the shortest decimal literal that round-trips to f, i.e. the literal the
// schema/instance text actually wrote, so the Rat built from it is exact
// relative to that decimal. SetFloat64 instead captures the exact binary
// value of the already-rounded float64, a different (and for values like
// 0.0001 or 0.0075, subtly wrong) number. Simplified from the teacher's
// version since this engine's value model always carries numbers as
// float64 rather than a custom JSON-unmarshaling type.
func toRat(f float64) *big.Rat {
	r := new(big.Rat)
	if _, ok := r.SetString(fmt.Sprint(f)); !ok {
		r.SetFloat64(f)
	}
	return r
}

// isMultipleOf reports whether value is an exact multiple of divisor using
// rational arithmetic, per the multipleOf keyword.
func isMultipleOf(value, divisor float64) bool {
	if divisor == 0 {
		return false
	}
	quotient := new(big.Rat).Quo(toRat(value), toRat(divisor))
	return quotient.IsInt()
}

// compareRat compares two JSON numbers exactly, returning -1, 0, or 1.
func compareRat(a, b float64) int {
	return toRat(a).Cmp(toRat(b))
}
