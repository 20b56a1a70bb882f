package search

import (
	"github.com/pkg/errors"

	"github.com/coldcore/coldcore/piece"
)

// AddNextPiece records a newly revealed piece. If the root itself was
// speculating on this exact slot (a Chance node), spec.md §9's design
// note applies directly: "the speculative subtree is pruned to the
// subtree matching the revealed piece — all other chance children are
// reclaimed", which is exactly Advance's reclaim-siblings-and-promote
// behavior, so it is reused here rather than duplicated. Otherwise
// the piece is appended to the root's own queue/bag bookkeeping for
// future expansions to pick up.
//
// Chance nodes deeper in the tree (the search having spent lookahead
// past the client's known queue) are left alone: each carries its own
// independent game-state snapshot, so a stale speculative branch
// simply never gets chosen once real data diverges from it — nothing
// about its backed value is invalidated by a sibling tree's contents.
func (t *Tree) AddNextPiece(kind piece.Kind, speculate bool) error {
	root := t.Node(t.Root())
	root.mu.Lock()
	isChance := root.kind == Chance
	root.mu.Unlock()

	if isChance {
		child, ok := t.chanceChildForKind(t.Root(), kind)
		if !ok {
			return errors.Errorf("search: piece %v not among speculated bag children", kind)
		}
		t.Advance(child)
		return nil
	}

	root.mu.Lock()
	defer root.mu.Unlock()
	return root.state.Bag.AddNextPiece(kind, speculate)
}

func (t *Tree) chanceChildForKind(h Handle, kind piece.Kind) (Handle, bool) {
	for _, c := range t.Children(h) {
		node := t.Node(c)
		node.mu.Lock()
		edge := node.edge
		node.mu.Unlock()
		if edge != nil && edge.Kind == kind {
			return c, true
		}
	}
	return NilHandle, false
}
