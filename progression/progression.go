// SPDX-License-Identifier: MIT

package progression

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/fractaltree/rational"
)

// quadPrec is the big.Float precision used when n has to be solved from a quadratic.
const quadPrec = 256

// New builds a Progression from options applied left to right.
// It does not require three parameters yet; getters report
// ErrInsufficientParameters until they are known.
func New(opts ...Option) (*Progression, error) {
	p := &Progression{}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// isSet reports whether parameter k holds a value.
func (p *Progression) isSet(k param) bool {
	switch k {
	case paramA1:
		return p.a1 != nil
	case paramAn:
		return p.an != nil
	case paramN:
		return p.n > 0
	case paramD:
		return p.d != nil
	default:
		return p.s != nil
	}
}

func (p *Progression) known() int {
	c := 0
	for k := paramA1; k <= paramS; k++ {
		if p.isSet(k) {
			c++
		}
	}
	return c
}

// admit checks whether parameter k may be (re)assigned.
func (p *Progression) admit(k param) error {
	if k == paramD && p.s != nil || k == paramS && p.d != nil {
		return fmt.Errorf("Progression.Set(%s): %w", k, ErrConflictingParameters)
	}
	if !p.isSet(k) && p.known() >= 3 {
		return fmt.Errorf("Progression.Set(%s): %w", k, ErrTooManyParameters)
	}
	return nil
}

func (p *Progression) setRat(k param, dst **big.Rat, v *big.Rat) error {
	if v == nil {
		return fmt.Errorf("Progression.Set(%s, nil): %w", k, ErrUndefined)
	}
	if err := p.admit(k); err != nil {
		return err
	}
	*dst = new(big.Rat).Set(v)
	p.Reset()
	p.terms = nil
	return nil
}

// SetA1 sets the first term.
func (p *Progression) SetA1(v *big.Rat) error { return p.setRat(paramA1, &p.a1, v) }

// SetAn sets the last term.
func (p *Progression) SetAn(v *big.Rat) error { return p.setRat(paramAn, &p.an, v) }

// SetD sets the common difference. Fails with ErrConflictingParameters if s is set.
func (p *Progression) SetD(v *big.Rat) error { return p.setRat(paramD, &p.d, v) }

// SetS sets the sum. Fails with ErrConflictingParameters if d is set.
func (p *Progression) SetS(v *big.Rat) error { return p.setRat(paramS, &p.s, v) }

// SetN sets the number of terms.
func (p *Progression) SetN(n int) error {
	if n <= 0 {
		return fmt.Errorf("Progression.SetN(%d): %w", n, ErrInvalidN)
	}
	if err := p.admit(paramN); err != nil {
		return err
	}
	p.n = n
	p.Reset()
	p.terms = nil
	return nil
}

// SetCorrectS toggles sum correction of emitted terms.
func (p *Progression) SetCorrectS(on bool) {
	p.correctS = on
	p.Reset()
	p.terms = nil
}

// CorrectS reports whether sum correction is enabled.
func (p *Progression) CorrectS() bool { return p.correctS }

// resolved is a fully derived progression.
type resolved struct {
	a1, an, d, s *big.Rat
	n            int
}

// resolve derives all five parameters from the three known ones.
// Explicitly set values are returned unchanged; derived values follow from
// the anchor term, n and d so that terms and getters agree.
func (p *Progression) resolve() (resolved, error) {
	if p.known() < 3 {
		return resolved{}, fmt.Errorf("Progression: %d set: %w", p.known(), ErrInsufficientParameters)
	}
	r := resolved{n: p.n}
	one := big.NewRat(1, 1)
	two := big.NewRat(2, 1)

	// Stage 1: n.
	if r.n == 0 {
		var err error
		switch {
		case p.a1 != nil && p.an != nil && p.d != nil:
			if p.d.Sign() == 0 {
				return resolved{}, fmt.Errorf("Progression: n from a1, an with d=0: %w", ErrUndefined)
			}
			q := new(big.Rat).Quo(new(big.Rat).Sub(p.an, p.a1), p.d)
			r.n, err = toN(new(big.Rat).Add(q, one))
		case p.a1 != nil && p.an != nil && p.s != nil:
			den := new(big.Rat).Add(p.a1, p.an)
			if den.Sign() == 0 {
				return resolved{}, fmt.Errorf("Progression: n from a1+an=0: %w", ErrUndefined)
			}
			r.n, err = toN(new(big.Rat).Quo(new(big.Rat).Mul(two, p.s), den))
		case p.a1 != nil && p.d != nil && p.s != nil:
			// d*n^2 + (2*a1 - d)*n - 2*s = 0
			b := new(big.Rat).Sub(new(big.Rat).Mul(two, p.a1), p.d)
			c := new(big.Rat).Neg(new(big.Rat).Mul(two, p.s))
			r.n, err = solveN(p.d, b, c)
		case p.an != nil && p.d != nil && p.s != nil:
			// d*n^2 - (2*an + d)*n + 2*s = 0
			b := new(big.Rat).Neg(new(big.Rat).Add(new(big.Rat).Mul(two, p.an), p.d))
			c := new(big.Rat).Mul(two, p.s)
			r.n, err = solveN(p.d, b, c)
		}
		if err != nil {
			return resolved{}, err
		}
	}
	nr := big.NewRat(int64(r.n), 1)
	nm1 := big.NewRat(int64(r.n-1), 1)

	// Stage 2: d.
	switch {
	case p.d != nil:
		r.d = p.d
	case r.n == 1:
		r.d = new(big.Rat)
	case p.a1 != nil && p.an != nil:
		r.d = new(big.Rat).Quo(new(big.Rat).Sub(p.an, p.a1), nm1)
	case p.a1 != nil: // a1, n, s
		an := new(big.Rat).Sub(new(big.Rat).Quo(new(big.Rat).Mul(two, p.s), nr), p.a1)
		r.d = new(big.Rat).Quo(new(big.Rat).Sub(an, p.a1), nm1)
	default: // an, n, s
		a1 := new(big.Rat).Sub(new(big.Rat).Quo(new(big.Rat).Mul(two, p.s), nr), p.an)
		r.d = new(big.Rat).Quo(new(big.Rat).Sub(p.an, a1), nm1)
	}
	span := new(big.Rat).Mul(nm1, r.d) // (n-1)*d

	// Stage 3: a1 and an.
	switch {
	case p.a1 != nil:
		r.a1 = p.a1
	case p.an != nil:
		r.a1 = new(big.Rat).Sub(p.an, span)
	default: // n, d, s: a1 = s/n - (n-1)d/2
		r.a1 = new(big.Rat).Sub(new(big.Rat).Quo(p.s, nr), new(big.Rat).Quo(span, two))
	}
	if p.an != nil && (p.a1 == nil || p.d == nil) {
		r.an = p.an
	} else {
		// a1, an, d: n was truncated, so the last emitted term may fall short of an.
		r.an = new(big.Rat).Add(r.a1, span)
	}

	// Stage 4: s.
	if p.s != nil {
		r.s = p.s
	} else {
		r.s = new(big.Rat).Quo(new(big.Rat).Mul(nr, new(big.Rat).Add(r.a1, r.an)), two)
	}
	return r, nil
}

// toN truncates a derived count and rejects non-positive results.
func toN(x *big.Rat) (int, error) {
	t := rational.Trunc(x)
	if t.Sign() <= 0 || !t.IsInt64() {
		return 0, fmt.Errorf("Progression: derived n=%s: %w", x.RatString(), ErrUndefined)
	}
	return int(t.Int64()), nil
}

// solveN returns the smallest positive root of a*n^2 + b*n + c = 0, truncated.
// A truncated root is bumped by one when the next integer is an exact root,
// which absorbs the rounding of the float square root.
func solveN(a, b, c *big.Rat) (int, error) {
	if a.Sign() == 0 {
		if b.Sign() == 0 {
			return 0, fmt.Errorf("Progression: degenerate equation for n: %w", ErrUndefined)
		}
		return toN(new(big.Rat).Quo(new(big.Rat).Neg(c), b))
	}
	disc := new(big.Rat).Sub(new(big.Rat).Mul(b, b), new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a, c)))
	if disc.Sign() < 0 {
		return 0, fmt.Errorf("Progression: no real n: %w", ErrUndefined)
	}
	sq := new(big.Float).SetPrec(quadPrec).SetRat(disc)
	sq.Sqrt(sq)
	twoA := new(big.Float).SetPrec(quadPrec).SetRat(new(big.Rat).Mul(big.NewRat(2, 1), a))
	negB := new(big.Float).SetPrec(quadPrec).SetRat(new(big.Rat).Neg(b))

	best := 0
	for _, sign := range []int{-1, 1} {
		root := new(big.Float).SetPrec(quadPrec).Set(sq)
		if sign < 0 {
			root.Neg(root)
		}
		root.Add(root, negB).Quo(root, twoA)
		t, _ := root.Int(nil)
		if !t.IsInt64() {
			continue
		}
		k := t.Int64()
		if isRoot(a, b, c, k+1) {
			k++
		}
		if k >= 1 && (best == 0 || int(k) < best) {
			best = int(k)
		}
	}
	if best == 0 {
		return 0, fmt.Errorf("Progression: no positive n: %w", ErrUndefined)
	}
	return best, nil
}

func isRoot(a, b, c *big.Rat, k int64) bool {
	kr := big.NewRat(k, 1)
	v := new(big.Rat).Mul(a, new(big.Rat).Mul(kr, kr))
	v.Add(v, new(big.Rat).Mul(b, kr))
	v.Add(v, c)
	return v.Sign() == 0
}

// A1 returns the (possibly derived) first term.
func (p *Progression) A1() (*big.Rat, error) {
	r, err := p.resolve()
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Set(r.a1), nil
}

// An returns the (possibly derived) last term.
func (p *Progression) An() (*big.Rat, error) {
	r, err := p.resolve()
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Set(r.an), nil
}

// N returns the (possibly derived, truncated) number of terms.
func (p *Progression) N() (int, error) {
	r, err := p.resolve()
	if err != nil {
		return 0, err
	}
	return r.n, nil
}

// D returns the (possibly derived) common difference.
func (p *Progression) D() (*big.Rat, error) {
	r, err := p.resolve()
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Set(r.d), nil
}

// S returns the (possibly derived) sum.
func (p *Progression) S() (*big.Rat, error) {
	r, err := p.resolve()
	if err != nil {
		return nil, err
	}
	return new(big.Rat).Set(r.s), nil
}

// Terms materializes all n terms, a1 + i*d for i in [0,n), applying sum
// correction when enabled. The cursor is not affected.
// Complexity: O(n).
func (p *Progression) Terms() ([]*big.Rat, error) {
	r, err := p.resolve()
	if err != nil {
		return nil, err
	}
	out := make([]*big.Rat, r.n)
	actual := new(big.Rat)
	for i := 0; i < r.n; i++ {
		v := new(big.Rat).Mul(big.NewRat(int64(i), 1), r.d)
		v.Add(v, r.a1)
		out[i] = v
		actual.Add(actual, v)
	}
	if !p.correctS || actual.Cmp(r.s) == 0 {
		return out, nil
	}
	if actual.Sign() == 0 {
		return nil, fmt.Errorf("Progression.Terms: correct s over zero sum: %w", ErrUndefined)
	}
	factor := new(big.Rat).Quo(r.s, actual)
	for _, v := range out {
		v.Mul(v, factor)
	}
	return out, nil
}

// Next returns the next term and true, or (nil, false) once all terms were
// consumed or the parameters cannot be resolved. Err reports which.
func (p *Progression) Next() (*big.Rat, bool) {
	if p.terms == nil {
		terms, err := p.Terms()
		if err != nil {
			p.err = err
			return nil, false
		}
		p.terms = terms
	}
	if p.pos >= len(p.terms) {
		return nil, false
	}
	v := new(big.Rat).Set(p.terms[p.pos])
	p.pos++
	return v, true
}

// Err returns the resolution error that stopped Next, if any.
// Plain exhaustion is not an error.
func (p *Progression) Err() error { return p.err }

// Reset rewinds the cursor to the first term.
func (p *Progression) Reset() {
	p.pos = 0
	p.err = nil
}

// String renders the known parameters, e.g. "a1=1 an=5 n=3".
func (p *Progression) String() string {
	s := ""
	add := func(k param, v string) {
		if s != "" {
			s += " "
		}
		s += k.String() + "=" + v
	}
	if p.a1 != nil {
		add(paramA1, p.a1.RatString())
	}
	if p.an != nil {
		add(paramAn, p.an.RatString())
	}
	if p.n > 0 {
		add(paramN, fmt.Sprint(p.n))
	}
	if p.d != nil {
		add(paramD, p.d.RatString())
	}
	if p.s != nil {
		add(paramS, p.s.RatString())
	}
	return s
}
