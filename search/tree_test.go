package search

import (
	"testing"

	"github.com/coldcore/coldcore/bag"
	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/eval"
	"github.com/coldcore/coldcore/movegen"
	"github.com/coldcore/coldcore/piece"
)

func newTestState(pieces ...piece.Kind) GameState {
	st := GameState{Board: board.New(), Bag: bag.NewState()}
	for _, k := range pieces {
		st.Bag.AddNextPiece(k, false)
	}
	return st
}

func testConfig() Config {
	return Config{
		Mode:      movegen.Mode0G,
		SpawnRule: board.SpawnRow19Or20,
		UseHold:   true,
		Speculate: false,
		Weights:   eval.Weights{Clear1: 10, Clear4: 400, Height: -1},
	}
}

func TestExpandDecisionProducesLegalChildren(t *testing.T) {
	tr := New(testConfig(), newTestState(piece.T))
	root := tr.Root()
	res := tr.Expand(root)
	if res.NodesCreated == 0 {
		t.Fatalf("expected children from expanding root with a known piece")
	}
	for _, c := range tr.Children(root) {
		node := tr.Node(c)
		edge := node.Edge()
		if edge == nil {
			t.Fatalf("child of a decision node must carry an edge")
		}
	}
}

func TestExpandWithNoQueueAndNoSpeculationStalls(t *testing.T) {
	cfg := testConfig()
	cfg.Speculate = false
	tr := New(cfg, GameState{Board: board.New(), Bag: bag.NewState()})
	res := tr.Expand(tr.Root())
	if res.NodesCreated != 0 {
		t.Fatalf("expected no expansion without a known piece or speculation")
	}
}

func TestExpandWithSpeculationInsertsChanceNode(t *testing.T) {
	cfg := testConfig()
	cfg.Speculate = true
	tr := New(cfg, GameState{Board: board.New(), Bag: bag.NewState()})
	root := tr.Root()
	res := tr.Expand(root)
	if !res.BecameChance {
		t.Fatalf("expected root to become a chance node")
	}
	if res.NodesCreated != 7 {
		t.Fatalf("expected one chance child per bag-remaining piece, got %d", res.NodesCreated)
	}
}

func TestSetIncomingAffectsJeopardyInNewEvaluations(t *testing.T) {
	cfg := testConfig()
	cfg.Weights = eval.Weights{Jeopardy: -10}

	safe := New(cfg, newTestState(piece.O))
	jeopardy := New(cfg, newTestState(piece.O))
	jeopardy.SetIncoming(4)

	safe.Expand(safe.Root())
	jeopardy.Expand(jeopardy.Root())

	safeChildren := safe.Children(safe.Root())
	jeopardyChildren := jeopardy.Children(jeopardy.Root())
	if len(safeChildren) == 0 || len(jeopardyChildren) == 0 {
		t.Fatalf("expected children on both trees")
	}

	safeValue := safe.Node(safeChildren[0]).StaticValue()
	jeopardyValue := jeopardy.Node(jeopardyChildren[0]).StaticValue()
	if jeopardyValue >= safeValue {
		t.Fatalf("SetIncoming(4) should lower a freshly-evaluated child's static value under a negative Jeopardy weight: got %v, want < %v", jeopardyValue, safeValue)
	}
}

func TestBackupPropagatesMaxToRoot(t *testing.T) {
	tr := New(testConfig(), newTestState(piece.O))
	root := tr.Root()
	tr.Expand(root)

	children := tr.Children(root)
	if len(children) == 0 {
		t.Fatalf("expected at least one child")
	}
	var want float64
	gamma := tr.cfg.discount()
	for _, c := range children {
		node := tr.Node(c)
		v := node.Reward() + gamma*node.BackedValue()
		if v > want || c == children[0] {
			want = v
		}
	}
	root0 := tr.Node(root)
	if root0.BackedValue() != want {
		t.Fatalf("root backed value = %v, want max over children %v", root0.BackedValue(), want)
	}
}

func TestAdvanceReclaimsSiblings(t *testing.T) {
	tr := New(testConfig(), newTestState(piece.O))
	root := tr.Root()
	tr.Expand(root)
	before := tr.NodeCount()

	child, _, ok := tr.BestChild(root)
	if !ok {
		t.Fatalf("expected a best child")
	}
	tr.Advance(child)

	if tr.Root() != child {
		t.Fatalf("expected new root to be the committed child")
	}
	if tr.Node(tr.Root()).Depth() != 0 {
		t.Fatalf("expected new root depth to be rebased to 0")
	}
	if tr.NodeCount() >= before {
		t.Fatalf("expected Advance to reclaim sibling subtrees: before=%d after=%d", before, tr.NodeCount())
	}
}

func TestSelectFrontierSkipsBusy(t *testing.T) {
	tr := New(testConfig(), newTestState(piece.O))
	root := tr.Root()
	f := tr.SelectFrontier()
	if f != root {
		t.Fatalf("expected the unexpanded root to be the only frontier node")
	}

	node := tr.Node(root)
	if !node.TryLease() {
		t.Fatalf("expected to acquire the lease")
	}
	if tr.SelectFrontier().Valid() {
		t.Fatalf("expected no frontier node while root is busy and childless")
	}
	node.Release()
}
