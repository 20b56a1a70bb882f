package search

import (
	"testing"

	"github.com/coldcore/coldcore/bag"
	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/eval"
	"github.com/coldcore/coldcore/piece"
)

// pcBoard returns a board two rows from the top of the stack away
// from empty: the bottom two rows are full except the rightmost two
// columns, so an O piece dropped there perfect-clears, and an O
// piece dropped anywhere else just stacks up.
func pcBoard() *board.Board {
	var fields [board.Width * board.TotalHeight]bool
	for x := 0; x < board.Width-2; x++ {
		fields[x] = true
		fields[board.Width+x] = true
	}
	return board.FromFields(fields)
}

func TestBestChildPCLoopOffMatchesBestChild(t *testing.T) {
	tr := New(testConfig(), newTestStateOnBoard(pcBoard(), piece.O))
	root := tr.Root()
	tr.Expand(root)

	wantChild, wantRank, wantOK := tr.BestChild(root)
	gotChild, gotRank, gotOK := tr.BestChildPCLoop(root, eval.PCLoopOff)
	if gotOK != wantOK || gotChild != wantChild || gotRank != wantRank {
		t.Fatalf("BestChildPCLoop(off) = (%v,%v,%v), want (%v,%v,%v)", gotChild, gotRank, gotOK, wantChild, wantRank, wantOK)
	}
}

func TestBestChildPCLoopFastestPrefersPerfectClear(t *testing.T) {
	cfg := testConfig()
	// A positive Height weight rewards taller stacks, so a plain
	// BackedValue ranking would prefer a non-perfect-clear placement
	// that leaves filled cells behind over the perfect-clear one
	// (which empties the board, Height == 0) — isolating pcloop's
	// effect from whatever the evaluator alone would have picked.
	cfg.Weights = eval.Weights{Height: 5}
	tr := New(cfg, newTestStateOnBoard(pcBoard(), piece.O))
	root := tr.Root()
	tr.Expand(root)

	child, _, ok := tr.BestChildPCLoop(root, eval.PCLoopFastest)
	if !ok {
		t.Fatalf("expected a live child")
	}
	edge := tr.Node(child).Edge()
	if edge == nil || !edge.Movegen.Perfect {
		t.Fatalf("BestChildPCLoop(fastest) picked a non-perfect-clear child")
	}
}

func newTestStateOnBoard(b *board.Board, pieces ...piece.Kind) GameState {
	st := GameState{Board: b, Bag: bag.NewState()}
	for _, k := range pieces {
		st.Bag.AddNextPiece(k, false)
	}
	return st
}
