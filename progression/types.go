// SPDX-License-Identifier: MIT

package progression

import "math/big"

// param enumerates the five progression parameters.
type param int

const (
	paramA1 param = iota
	paramAn
	paramN
	paramD
	paramS
)

var paramNames = [...]string{"a1", "an", "n", "d", "s"}

func (p param) String() string { return paramNames[p] }

// Progression is a finite arithmetic progression described by three of
// a1, an, n, d, s. The zero value is empty; use New or the Set* methods.
//
// A Progression is not safe for concurrent use.
type Progression struct {
	a1, an, d, s *big.Rat // nil when unset
	n            int      // 0 when unset
	correctS     bool

	// cursor state
	terms []*big.Rat // lazily materialized on first Next
	pos   int
	err   error
}

// Option configures a Progression in New.
type Option func(p *Progression) error

// WithA1 sets the first term.
func WithA1(v *big.Rat) Option { return func(p *Progression) error { return p.SetA1(v) } }

// WithAn sets the last term.
func WithAn(v *big.Rat) Option { return func(p *Progression) error { return p.SetAn(v) } }

// WithN sets the number of terms.
func WithN(n int) Option { return func(p *Progression) error { return p.SetN(n) } }

// WithD sets the common difference.
func WithD(v *big.Rat) Option { return func(p *Progression) error { return p.SetD(v) } }

// WithS sets the sum.
func WithS(v *big.Rat) Option { return func(p *Progression) error { return p.SetS(v) } }

// WithCorrectS enables sum correction of the emitted terms.
func WithCorrectS(on bool) Option {
	return func(p *Progression) error {
		p.SetCorrectS(on)
		return nil
	}
}
