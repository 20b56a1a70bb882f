// Package bag tracks the guideline 7-bag randomizer and the ordered
// queue of upcoming pieces fed to the search tree: spec.md §3/§4.4.
package bag

import (
	"github.com/pkg/errors"

	"github.com/coldcore/coldcore/piece"
)

// Set is a 7-bit membership set over piece.Kind: which kinds remain
// in the current 7-bag.
type Set uint8

// Full is the set containing every guideline piece kind.
const Full Set = 1<<7 - 1

// ErrPieceNotInBag is wrapped by Take when a strictly-validated draw
// names a piece absent from the current bag.
var ErrPieceNotInBag = errors.New("bag: piece not in current bag")

// Contains reports whether k remains in s.
func (s Set) Contains(k piece.Kind) bool {
	return s&(1<<uint(k)) != 0
}

// Remaining lists the kinds still in s, in piece.Kinds order.
func (s Set) Remaining() []piece.Kind {
	var out []piece.Kind
	for _, k := range piece.Kinds {
		if s.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s Set) remove(k piece.Kind) Set {
	return s &^ (1 << uint(k))
}

// Take draws k from s. If k is already absent, s is first refilled
// to Full before k is removed (spec.md §4.4's "a bag refill then
// removal"), unless strict is true, in which case an absent k is
// rejected instead — the speculate=true validation path from §4.4
// and §9's open question (c).
func (s Set) Take(k piece.Kind, strict bool) (Set, error) {
	if s.Contains(k) {
		return s.remove(k), nil
	}
	if strict {
		return s, errors.Wrapf(ErrPieceNotInBag, "kind %v not in bag %07b", k, uint8(s))
	}
	return Full.remove(k), nil
}
