package board

import "github.com/coldcore/coldcore/piece"

// Rotate attempts to turn s clockwise (cw=true) or counter-clockwise
// (cw=false), trying the kick table's five offsets in order. It
// returns the resulting state, the index (0-4) of the kick offset
// that succeeded, and whether any offset worked at all.
func (b *Board) Rotate(s State, cw bool) (State, int, bool) {
	to := s.Rot.CW()
	if !cw {
		to = s.Rot.CCW()
	}
	offsets := piece.Kicks(s.Kind, s.Rot, to)
	for i, off := range offsets {
		cand := State{Kind: s.Kind, Rot: to, X: s.X + off.DX, Y: s.Y + off.DY}
		if !b.collides(cand) {
			return cand, i, true
		}
	}
	return s, -1, false
}

// tCorner identifies one of the four corners of a T piece's 3x3
// bounding box, in box-local coordinates.
type tCorner struct{ x, y int8 }

var tBoxCorners = [4]tCorner{{0, 0}, {2, 0}, {0, 2}, {2, 2}}

// tFrontCorners returns the two corners "in front of" the T — on the
// side its stem points away from — for rotation r. These are the
// corners spec.md §4.1 requires to both be filled for a full T-spin.
func tFrontCorners(r piece.Rotation) (a, b tCorner) {
	switch r {
	case piece.North: // stem points up; away side is the bottom edge
		return tBoxCorners[0], tBoxCorners[1]
	case piece.South: // stem points down; away side is the top edge
		return tBoxCorners[2], tBoxCorners[3]
	case piece.East: // stem points right; away side is the left edge
		return tBoxCorners[0], tBoxCorners[2]
	default: // West: stem points left; away side is the right edge
		return tBoxCorners[1], tBoxCorners[3]
	}
}

// SpinStatus classifies a placement as a full T-spin, a mini T-spin,
// or neither.
type SpinStatus int

const (
	SpinNone SpinStatus = iota
	SpinMini
	SpinFull
)

// classifyTSpin implements spec.md §4.1: only called when the piece
// is a T and its final state was reached via a rotation. lastKick is
// the index (0-4) of the kick offset that succeeded; lastKick==4 is
// the "rescue" kick that forces a promotion to full.
func (b *Board) classifyTSpin(s State, lastKick int) SpinStatus {
	if s.Kind != piece.T {
		return SpinNone
	}
	filled := 0
	for _, c := range tBoxCorners {
		if b.Filled(int(s.X+c.x), int(s.Y+c.y)) {
			filled++
		}
	}
	if filled < 3 {
		return SpinNone
	}

	front1, front2 := tFrontCorners(s.Rot)
	frontFilled := b.Filled(int(s.X+front1.x), int(s.Y+front1.y)) &&
		b.Filled(int(s.X+front2.x), int(s.Y+front2.y))

	if frontFilled {
		return SpinFull
	}
	// The fifth ("rescue") kick offset always promotes to full even
	// with the front corners empty — the guideline exception to
	// spec.md §4.1's plain front-corners wording, not a bug.
	if lastKick == 4 {
		return SpinFull
	}
	return SpinMini
}
