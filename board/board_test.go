package board

import (
	"testing"

	"github.com/coldcore/coldcore/piece"
)

func TestFillAndClearSingleRow(t *testing.T) {
	b := New()
	for x := 0; x < Width-1; x++ {
		b.set(x, 0)
	}
	// One empty cell remains at column Width-1; place an O piece-shaped
	// single column there by hand via Lock isn't directly possible
	// (O needs two columns), so fill the last cell directly and assert
	// LinesCleared sees it, exercising the clear-detection path alone.
	b.set(Width-1, 0)
	rows := b.LinesCleared()
	if len(rows) != 1 || rows[0] != 0 {
		t.Fatalf("LinesCleared() = %v, want [0]", rows)
	}
}

func TestLockOPieceOnFloor(t *testing.T) {
	b := New()
	s := State{Kind: piece.O, Rot: piece.North, X: 4, Y: 0}
	p, err := b.Lock(s, false, -1)
	if err != nil {
		t.Fatalf("Lock: unexpected error: %v", err)
	}
	if len(p.Cleared) != 0 {
		t.Fatalf("Cleared = %v, want none", p.Cleared)
	}
	if b.Combo != -1 {
		t.Fatalf("Combo = %d, want -1 (broken)", b.Combo)
	}
	if !b.Filled(4, 0) || !b.Filled(5, 0) || !b.Filled(4, 1) || !b.Filled(5, 1) {
		t.Fatalf("expected O piece cells to be filled")
	}
}

func TestLockRejectsFloatingPiece(t *testing.T) {
	b := New()
	s := State{Kind: piece.O, Rot: piece.North, X: 4, Y: 5}
	if _, err := b.Lock(s, false, -1); err == nil {
		t.Fatalf("Lock: expected error for an unsupported piece")
	}
}

func TestLockRejectsOverlap(t *testing.T) {
	b := New()
	s := State{Kind: piece.O, Rot: piece.North, X: 4, Y: 0}
	if _, err := b.Lock(s, false, -1); err != nil {
		t.Fatalf("Lock: unexpected error: %v", err)
	}
	if _, err := b.Lock(s, false, -1); err == nil {
		t.Fatalf("Lock: expected error locking onto an occupied cell")
	}
}

func TestPerfectClear(t *testing.T) {
	b := New()
	// Fill the bottom two rows entirely except the last two columns,
	// then lock an O piece into the gap: both rows complete and clear,
	// leaving nothing behind, so the board becomes empty.
	for x := 0; x < Width-2; x++ {
		b.set(x, 0)
		b.set(x, 1)
	}
	s := State{Kind: piece.O, Rot: piece.North, X: Width - 2, Y: 0}
	p, err := b.Lock(s, false, -1)
	if err != nil {
		t.Fatalf("Lock: unexpected error: %v", err)
	}
	if !p.Perfect {
		t.Fatalf("expected a perfect clear")
	}
	if b.Combo != 0 {
		t.Fatalf("Combo = %d, want 0 after the first clear", b.Combo)
	}
}

func TestGhostDropLandsOnFloor(t *testing.T) {
	b := New()
	s := State{Kind: piece.O, Rot: piece.North, X: 0, Y: 30}
	g := b.GhostDrop(s)
	if g.Y != 0 {
		t.Fatalf("GhostDrop landed at y=%d, want 0", g.Y)
	}
	if !b.IsSupported(g) {
		t.Fatalf("ghost-dropped state should be supported")
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	b := New()
	b.set(3, 0)
	b.set(3, 1)
	b.set(9, 19)
	fields := b.Fields()
	b2 := FromFields(fields)
	if b2.Fields() != fields {
		t.Fatalf("FromFields(Fields()) did not round-trip")
	}
}

func TestTSpinFullRequiresFrontCorners(t *testing.T) {
	b := New()
	s := State{Kind: piece.T, Rot: piece.North, X: 3, Y: 1}
	// Front corners for North (the side the stem points away from) are
	// the box-local bottom corners (0,0) and (2,0), i.e. absolute
	// (3,1) and (5,1). Fill both, plus one back corner so the total
	// filled-corner count reaches 3.
	b.set(3, 1)
	b.set(5, 1)
	b.set(3, 3)
	if status := b.classifyTSpin(s, 0); status != SpinFull {
		t.Fatalf("classifyTSpin = %v, want SpinFull (both front corners filled)", status)
	}
}

func TestTSpinMiniWhenFrontCornersOpen(t *testing.T) {
	b := New()
	s := State{Kind: piece.T, Rot: piece.North, X: 3, Y: 1}
	// Only one front corner plus both back corners filled: 3 total,
	// but the front pair isn't both filled, so it's a mini unless the
	// rescue kick was used.
	b.set(3, 1)
	b.set(3, 3)
	b.set(5, 3)
	if status := b.classifyTSpin(s, 0); status != SpinMini {
		t.Fatalf("classifyTSpin = %v, want SpinMini", status)
	}
	if status := b.classifyTSpin(s, 4); status != SpinFull {
		t.Fatalf("classifyTSpin with rescue kick = %v, want SpinFull (promoted)", status)
	}
}
