package movegen

import (
	"testing"

	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/piece"
)

// wantCounts is spec.md §8's documented unique-placement count on an
// empty board under Mode0G, keyed by piece kind.
var wantCounts = map[piece.Kind]int{
	piece.I: 17,
	piece.O: 9,
	piece.S: 17,
	piece.Z: 17,
	piece.T: 34,
	piece.L: 34,
	piece.J: 34,
}

func TestEmptyBoardPlacementCounts(t *testing.T) {
	for k, want := range wantCounts {
		b := board.New()
		placements, err := Generate(b, k, Mode0G, board.SpawnRow19Or20)
		if err != nil {
			t.Fatalf("%v: Generate: %v", k, err)
		}
		if len(placements) != want {
			t.Errorf("%v: got %d unique placements, want %d", k, len(placements), want)
		}
	}
}

func TestPlacementsAreUniqueByCellsAndSpin(t *testing.T) {
	b := board.New()
	placements, err := Generate(b, piece.T, Mode0G, board.SpawnRow19Or20)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	seen := map[cellsKey]bool{}
	for _, p := range placements {
		ck := cellsKey{cells: sortedCells(p.State), spin: p.Spin}
		if seen[ck] {
			t.Fatalf("duplicate placement for cells %v spin %v", ck.cells, ck.spin)
		}
		seen[ck] = true
	}
}

func TestMovementCountNeverExceedsCap(t *testing.T) {
	b := board.New()
	for _, k := range piece.Kinds {
		placements, err := Generate(b, k, Mode0G, board.SpawnRow19Or20)
		if err != nil {
			t.Fatalf("%v: Generate: %v", k, err)
		}
		for _, p := range placements {
			if p.MovementCount > MaxPathLength {
				t.Fatalf("%v: placement at %+v has MovementCount %d > %d", k, p.State, p.MovementCount, MaxPathLength)
			}
			if p.MovementCount != len(p.Path) {
				t.Fatalf("%v: MovementCount %d != len(Path) %d", k, p.MovementCount, len(p.Path))
			}
		}
	}
}

func TestHardDropOnlyPathsRotateThenDropOnce(t *testing.T) {
	b := board.New()
	placements, err := Generate(b, piece.T, ModeHardDropOnly, board.SpawnRow19Or20)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(placements) == 0 {
		t.Fatalf("expected at least one placement")
	}
	for _, p := range placements {
		if len(p.Path) == 0 {
			t.Fatalf("hard-drop-only path must contain at least the trailing Drop")
		}
		last := p.Path[len(p.Path)-1]
		if last != Drop {
			t.Fatalf("hard-drop-only path %v must end in Drop", p.Path)
		}
		for _, tok := range p.Path[:len(p.Path)-1] {
			if tok != CW {
				t.Fatalf("hard-drop-only path %v may only rotate before the trailing Drop", p.Path)
			}
		}
	}
}
