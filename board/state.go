package board

import "github.com/coldcore/coldcore/piece"

// State is a located, oriented piece: (kind, rotation, x, y) where
// (x, y) is the position of the bottom-left corner of the piece's
// bounding box, in the same coordinate system as Board ((0,0) is the
// bottom-left cell of the visible field).
type State struct {
	Kind piece.Kind
	Rot  piece.Rotation
	X, Y int8
}

// Cells returns the four absolute cells occupied by s.
func (s State) Cells() [4][2]int8 {
	var out [4][2]int8
	for i, c := range piece.Cells(s.Kind, s.Rot) {
		out[i] = [2]int8{s.X + c.DX, s.Y + c.DY}
	}
	return out
}

// Spawn returns the spawn state of k under rule.
func Spawn(k piece.Kind, rule SpawnRule) State {
	box := int8(piece.BoundingBox(k))
	x := int8(Width)/2 - box/2
	y := int8(VisibleHeight)
	if rule == SpawnRow21AndFall {
		y = int8(VisibleHeight) + 1
	}
	return State{Kind: k, Rot: piece.North, X: x, Y: y}
}

// SpawnRule controls where a piece first appears in the field.
type SpawnRule int

const (
	// SpawnRow19Or20 places the piece directly at its guideline spawn
	// row; if that position is already blocked the game is lost from
	// this piece.
	SpawnRow19Or20 SpawnRule = iota
	// SpawnRow21AndFall places the piece one row higher and lets it
	// fall in, which can open additional paths through holes.
	SpawnRow21AndFall
)
