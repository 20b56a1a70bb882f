package search

import "github.com/coldcore/coldcore/eval"

// pcLookaheadDepth bounds how far BestLine walks past a root child
// while looking for a perfect clear, for the pcloop candidates below.
const pcLookaheadDepth = 10

// BestChildPCLoop is BestChild's pcloop-aware counterpart
// (SPEC_FULL.md's supplemented `pcloop` feature): when mode is not
// eval.PCLoopOff, root's live children are reordered by eval.Rank's
// policy before the top one is picked, instead of by backed value
// alone. mode == eval.PCLoopOff behaves exactly like BestChild.
func (t *Tree) BestChildPCLoop(h Handle, mode eval.PCLoopMode) (child Handle, rank int, ok bool) {
	if mode == eval.PCLoopOff {
		return t.BestChild(h)
	}

	kids := t.Children(h)
	gamma := t.cfg.discount()

	type pair struct {
		handle Handle
		cand   eval.Candidate
	}
	var pairs []pair
	for _, c := range kids {
		node := t.Node(c)
		node.mu.Lock()
		dead := node.dead
		value := node.reward + gamma*node.backedValue
		edge := node.edge
		node.mu.Unlock()
		if dead || edge == nil {
			continue
		}
		additional, garbage := t.pcLookahead(c)
		pairs = append(pairs, pair{
			handle: c,
			cand: eval.Candidate{
				Placement:         edge.Movegen.Placement,
				BackedValue:       value,
				AdditionalMoves:   additional,
				ComboGarbageSoFar: garbage,
			},
		})
	}
	if len(pairs) == 0 {
		return NilHandle, 0, false
	}

	// Insertion sort: pairs is bounded by a single piece's placement
	// count (well under a hundred), so an O(n^2) sort avoids pulling
	// in a second sorting dependency just to sort pairs eval.Less
	// can't sort directly (it only orders eval.Candidate values, and
	// pairs also carries the handle each Candidate came from).
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && eval.Less(mode, pairs[j].cand, pairs[j-1].cand); j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
	chosen := pairs[0].handle
	return chosen, t.rankOf(h, chosen), true
}

// pcLookahead walks child's principal variation looking for the
// first placement that leaves the board empty, returning how many
// additional placements away it is (0 if child itself is already a
// perfect clear) and the total rows cleared along the way as a
// combo-garbage proxy (the tree doesn't separately model attack
// output past spec.md §4.3's per-clear reward features). Returns
// (-1, 0) if no perfect clear is found within pcLookaheadDepth.
func (t *Tree) pcLookahead(child Handle) (additionalMoves, garbage int) {
	node := t.Node(child)
	node.mu.Lock()
	edge := node.edge
	node.mu.Unlock()
	if edge != nil && edge.Movegen.Perfect {
		return 0, len(edge.Movegen.Cleared)
	}

	rows := 0
	if edge != nil {
		rows = len(edge.Movegen.Cleared)
	}
	for i, step := range t.BestLine(child, pcLookaheadDepth) {
		rows += len(step.Edge.Movegen.Cleared)
		if step.Edge.Movegen.Perfect {
			return i + 1, rows
		}
	}
	return -1, 0
}
