// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math"
	"math/big"
)

// New converts v into a freshly allocated *big.Rat.
//
// Accepted kinds: int, int8..int64, uint, uint8..uint64, float32, float64,
// string ("7", "-3/4", "0.125"), *big.Rat, big.Rat and *big.Int.
// The returned value never aliases the input.
// Complexity: O(size of v).
func New(v any) (*big.Rat, error) {
	switch x := v.(type) {
	case int:
		return big.NewRat(int64(x), 1), nil
	case int8:
		return big.NewRat(int64(x), 1), nil
	case int16:
		return big.NewRat(int64(x), 1), nil
	case int32:
		return big.NewRat(int64(x), 1), nil
	case int64:
		return big.NewRat(x, 1), nil
	case uint:
		return new(big.Rat).SetUint64(uint64(x)), nil
	case uint8:
		return new(big.Rat).SetUint64(uint64(x)), nil
	case uint16:
		return new(big.Rat).SetUint64(uint64(x)), nil
	case uint32:
		return new(big.Rat).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Rat).SetUint64(x), nil
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case string:
		r, ok := new(big.Rat).SetString(x)
		if !ok {
			return nil, fmt.Errorf("New(%q): %w", x, ErrParse)
		}
		return r, nil
	case *big.Rat:
		if x == nil {
			return nil, fmt.Errorf("New(nil *big.Rat): %w", ErrUnsupportedType)
		}
		return new(big.Rat).Set(x), nil
	case big.Rat:
		return new(big.Rat).Set(&x), nil
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("New(nil *big.Int): %w", ErrUnsupportedType)
		}
		return new(big.Rat).SetInt(x), nil
	default:
		return nil, fmt.Errorf("New(%T): %w", v, ErrUnsupportedType)
	}
}

func fromFloat(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("New(%v): %w", f, ErrNotFinite)
	}
	return new(big.Rat).SetFloat64(f), nil
}

// MustNew is New for literals known to be valid; it panics on error.
// Intended for tests, examples and package-level fixtures.
func MustNew(v any) *big.Rat {
	r, err := New(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Slice converts every element of vs with New.
// The first failing element is reported with its index.
func Slice(vs ...any) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(vs))
	for i, v := range vs {
		r, err := New(v)
		if err != nil {
			return nil, fmt.Errorf("Slice[%d]: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Clone deep-copies a vector of rationals.
func Clone(xs []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, x := range xs {
		out[i] = new(big.Rat).Set(x)
	}
	return out
}

// Sum returns the exact sum of xs (0 for an empty vector).
func Sum(xs []*big.Rat) *big.Rat {
	s := new(big.Rat)
	for _, x := range xs {
		s.Add(s, x)
	}
	return s
}

// Normalize returns xs scaled so the result sums to exactly 1.
// Every element must be strictly positive.
// Complexity: O(len(xs)).
func Normalize(xs []*big.Rat) ([]*big.Rat, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrEmpty)
	}
	for i, x := range xs {
		if x.Sign() <= 0 {
			return nil, fmt.Errorf("Normalize[%d]=%s: %w", i, x.RatString(), ErrNonPositive)
		}
	}
	total := Sum(xs)
	out := make([]*big.Rat, len(xs))
	for i, x := range xs {
		out[i] = new(big.Rat).Quo(x, total)
	}
	return out, nil
}

// Equal reports whether a and b hold the same values in the same order.
func Equal(a, b []*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// RoundHalfEven rounds x to the nearest integer, ties to even (2.5 -> 2, 3.5 -> 4).
func RoundHalfEven(x *big.Rat) *big.Int {
	num, den := x.Num(), x.Denom()
	q, m := new(big.Int).DivMod(num, den, new(big.Int)) // floor division, 0 <= m < den
	twice := new(big.Int).Lsh(m, 1)
	switch twice.Cmp(den) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// Trunc truncates x toward zero.
func Trunc(x *big.Rat) *big.Int {
	return new(big.Int).Quo(x.Num(), x.Denom())
}

// Strings renders xs with RatString, for diagnostics and examples.
func Strings(xs []*big.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.RatString()
	}
	return out
}
