package bag

import (
	"testing"

	"github.com/coldcore/coldcore/piece"
)

func TestTakeRemovesFromBag(t *testing.T) {
	s := Full
	next, err := s.Take(piece.T, true)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if next.Contains(piece.T) {
		t.Fatalf("expected T removed from bag")
	}
	for _, k := range piece.Kinds {
		if k != piece.T && !next.Contains(k) {
			t.Errorf("expected %v still in bag", k)
		}
	}
}

func TestTakeStrictRejectsAbsentPiece(t *testing.T) {
	s, _ := Full.Take(piece.T, true)
	if _, err := s.Take(piece.T, true); err == nil {
		t.Fatalf("expected strict Take to reject an already-drawn piece")
	}
}

func TestTakePermissiveRefillsOnMismatch(t *testing.T) {
	s, _ := Full.Take(piece.T, false)
	next, err := s.Take(piece.T, false)
	if err != nil {
		t.Fatalf("permissive Take should never error: %v", err)
	}
	for _, k := range piece.Kinds {
		if k != piece.T && !next.Contains(k) {
			t.Errorf("expected %v present after refill", k)
		}
	}
	if next.Contains(piece.T) {
		t.Fatalf("T should have been drawn out of the refilled bag")
	}
}

func TestQueueAddAdvanceFront(t *testing.T) {
	var q Queue
	q.Add(piece.I)
	q.Add(piece.O)
	front, ok := q.Front()
	if !ok || front != piece.I {
		t.Fatalf("Front() = %v, %v; want I, true", front, ok)
	}
	q.Advance()
	front, ok = q.Front()
	if !ok || front != piece.O {
		t.Fatalf("Front() after Advance = %v, %v; want O, true", front, ok)
	}
	q.Advance()
	if _, ok := q.Front(); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestStateAddNextPieceSpeculateStrict(t *testing.T) {
	s := NewState()
	for _, k := range piece.Kinds {
		if err := s.AddNextPiece(k, true); err != nil {
			t.Fatalf("AddNextPiece(%v): %v", k, err)
		}
	}
	if err := s.AddNextPiece(piece.I, true); err == nil {
		t.Fatalf("expected error adding an 8th piece strictly with an exhausted bag")
	}
}

func TestShuffled7IsAPermutation(t *testing.T) {
	perm := Shuffled7(42)
	seen := map[piece.Kind]bool{}
	for _, k := range perm {
		if seen[k] {
			t.Fatalf("Shuffled7 produced a duplicate: %v", perm)
		}
		seen[k] = true
	}
	if len(seen) != 7 {
		t.Fatalf("Shuffled7 produced %d distinct kinds, want 7", len(seen))
	}
}
