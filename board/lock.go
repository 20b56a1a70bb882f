package board

import (
	"github.com/pkg/errors"

	"github.com/coldcore/coldcore/piece"
)

// ErrIllegalPlacement is wrapped by Lock when s cannot be locked.
var ErrIllegalPlacement = errors.New("board: illegal placement")

// Placement is the result of locking a piece: spec.md §3.
type Placement struct {
	Kind    piece.Kind
	State   State
	Spin    SpinStatus
	Cleared []int // cleared row indices, bottom-up
	B2B     bool  // back-to-back flag after this placement
	Combo   int   // combo counter after this placement
	Perfect bool  // true iff the resulting board is completely empty
}

// Lock locks s onto b, clears any full rows, and updates b2b/combo.
// rotated and lastKick describe how s was reached (see Rotate) and
// are only consulted for T pieces, per §4.1. Lock mutates b and
// returns the resulting Placement, or an error wrapping
// ErrIllegalPlacement if s cannot legally be locked (out of bounds,
// overlapping, or unsupported).
func (b *Board) Lock(s State, rotated bool, lastKick int) (Placement, error) {
	if !b.InBounds(s) {
		return Placement{}, errors.Wrap(ErrIllegalPlacement, "out of bounds")
	}
	if b.collides(s) {
		return Placement{}, errors.Wrap(ErrIllegalPlacement, "overlaps filled cells")
	}
	if !b.IsSupported(s) {
		return Placement{}, errors.Wrap(ErrIllegalPlacement, "not resting on anything")
	}

	spin := SpinNone
	if rotated {
		spin = b.classifyTSpin(s, lastKick)
	}

	for _, c := range s.Cells() {
		b.set(int(c[0]), int(c[1]))
	}

	cleared := b.LinesCleared()
	b.collapse(cleared)

	difficult := len(cleared) == 4 || spin != SpinNone
	if len(cleared) == 0 {
		b.Combo = -1
	} else {
		b.Combo++
		if difficult {
			b.B2B = true
		} else {
			b.B2B = false
		}
	}

	perfect := len(cleared) > 0 && b.empty()

	return Placement{
		Kind:    s.Kind,
		State:   s,
		Spin:    spin,
		Cleared: cleared,
		B2B:     b.B2B,
		Combo:   b.Combo,
		Perfect: perfect,
	}, nil
}

// LinesCleared returns, in bottom-up order, every row index that is
// currently completely filled.
func (b *Board) LinesCleared() []int {
	var rows []int
	for y := 0; y < TotalHeight; y++ {
		if b.rows[y] == fullRow {
			rows = append(rows, y)
		}
	}
	return rows
}

// collapse removes the rows in cleared (assumed sorted bottom-up) and
// shifts everything above each one down by one.
func (b *Board) collapse(cleared []int) {
	if len(cleared) == 0 {
		return
	}
	clearedSet := make(map[int]bool, len(cleared))
	for _, y := range cleared {
		clearedSet[y] = true
	}

	write := 0
	for read := 0; read < TotalHeight; read++ {
		if clearedSet[read] {
			continue
		}
		b.rows[write] = b.rows[read]
		write++
	}
	for ; write < TotalHeight; write++ {
		b.rows[write] = 0
	}
}

func (b *Board) empty() bool {
	for _, r := range b.rows {
		if r != 0 {
			return false
		}
	}
	return true
}
