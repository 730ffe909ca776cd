// SPDX-License-Identifier: MIT

package fractal

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/fractaltree/rational"
)

// ChangeValue sets the node's value to v. Descendants are multiplied by the
// same factor and every ancestor is re-summed from its children, so value
// conservation holds over the whole tree afterwards.
//
// Errors: ErrInvalidValue, ErrZeroValue when a zero-valued node with
// children would have to grow (no factor exists).
func (t *Tree) ChangeValue(v any) error {
	nv, err := rational.New(v)
	if err != nil {
		return fmt.Errorf("Tree.ChangeValue: %w: %w", ErrInvalidValue, err)
	}
	if !t.canRescaleTo(nv) {
		return fmt.Errorf("Tree.ChangeValue(%s): value 0: %w", nv.RatString(), ErrZeroValue)
	}
	old := t.value.RatString()
	t.rescaleTo(nv)
	for p := t.parent; p != nil; p = p.parent {
		sum := new(big.Rat)
		for _, c := range p.children {
			sum.Add(sum, c.value)
		}
		p.value = sum
	}
	t.logger.Debug("fractal: value changed", t.logAttrs(slog.String("from", old), slog.String("value", nv.RatString()))...)
	return nil
}

// canRescaleTo reports whether the subtree can be rescaled to v: a zero
// subtree with children can only stay zero.
func (t *Tree) canRescaleTo(v *big.Rat) bool {
	return t.value.Sign() != 0 || len(t.children) == 0 || v.Sign() == 0
}

// rescaleTo sets the value to v and scales the descendants proportionally.
// Ancestors are not touched. Callers check canRescaleTo first.
func (t *Tree) rescaleTo(v *big.Rat) {
	if t.value.Sign() == 0 {
		// zero subtree: descendants are zero as well
		t.value = new(big.Rat).Set(v)
		return
	}
	t.scale(new(big.Rat).Quo(v, t.value))
}

// scale multiplies the node and all its descendants by factor.
func (t *Tree) scale(factor *big.Rat) {
	for n := range t.Traverse() {
		n.value = new(big.Rat).Mul(n.value, factor)
	}
}
