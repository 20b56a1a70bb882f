package search

import "sort"

// rankedChildren returns h's live children ordered by descending
// (reward + discount*backedValue) — spec.md §6's original_rank
// ordering, shared by BestChild and BestChildPCLoop (which reranks a
// copy of this order but still needs to report a child's place in it).
func (t *Tree) rankedChildren(h Handle) []Handle {
	kids := t.Children(h)
	type scored struct {
		handle Handle
		value  float64
	}
	var scoredKids []scored
	gamma := t.cfg.discount()
	for _, c := range kids {
		node := t.Node(c)
		node.mu.Lock()
		dead := node.dead
		value := node.reward + gamma*node.backedValue
		node.mu.Unlock()
		if dead {
			continue
		}
		scoredKids = append(scoredKids, scored{handle: c, value: value})
	}
	sort.Slice(scoredKids, func(i, j int) bool { return scoredKids[i].value > scoredKids[j].value })
	out := make([]Handle, len(scoredKids))
	for i, s := range scoredKids {
		out[i] = s.handle
	}
	return out
}

// rankOf returns child's index (0 = best) within h's live children as
// ordered by rankedChildren, or 0 if child isn't among them.
func (t *Tree) rankOf(h, child Handle) int {
	for i, c := range t.rankedChildren(h) {
		if c == child {
			return i
		}
	}
	return 0
}

// BestChild returns the child of h with the highest (reward +
// discount*backedValue), which is also the committed move per
// spec.md §4.5's "Root advancement", plus its rank (0 = best) among
// its siblings at the moment of the call — spec.md §6's
// original_rank. It reports false if h has no live children.
func (t *Tree) BestChild(h Handle) (child Handle, rank int, ok bool) {
	ranked := t.rankedChildren(h)
	if len(ranked) == 0 {
		return NilHandle, 0, false
	}
	return ranked[0], 0, true
}

// Advance commits to child (which must be a child of the current
// root), discards every sibling subtree, and makes child the new
// root, per spec.md §4.5: "Drop all other children's subtrees. The
// chosen child becomes the new root; its ancestors and siblings are
// reclaimed."
func (t *Tree) Advance(child Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	oldRoot := t.root
	for _, sibling := range t.children[oldRoot] {
		if sibling != child {
			t.freeSubtreeLocked(sibling)
		}
	}
	t.freeNodeLocked(oldRoot)

	t.root = child
	newRoot := t.nodes[child]
	newRoot.mu.Lock()
	newRoot.parent = NilHandle
	base := newRoot.depth
	newRoot.mu.Unlock()
	t.rebaseDepthLocked(child, base)
}

// rebaseDepthLocked subtracts base from h's depth and every
// descendant's, so the new root always reads as depth 0. Callers
// must hold t.mu.
func (t *Tree) rebaseDepthLocked(h Handle, base int) {
	n := t.nodes[h]
	n.mu.Lock()
	n.depth -= base
	n.mu.Unlock()
	for _, c := range t.children[h] {
		t.rebaseDepthLocked(c, base)
	}
}

// freeSubtreeLocked recycles h and every descendant's arena slot.
// Callers must hold t.mu.
func (t *Tree) freeSubtreeLocked(h Handle) {
	for _, c := range t.children[h] {
		t.freeSubtreeLocked(c)
	}
	t.freeNodeLocked(h)
}

func (t *Tree) freeNodeLocked(h Handle) {
	t.children[h] = t.children[h][:0]
	t.nodes[h] = &Node{}
	t.freelist = append(t.freelist, h)
	t.nodeCount--
}

// Reset discards the entire tree and starts over at start, per
// spec.md §5's reset barrier.
func (t *Tree) Reset(start GameState) {
	t.mu.Lock()
	t.nodes = t.nodes[:0]
	t.children = t.children[:0]
	t.freelist = t.freelist[:0]
	t.nodeCount = 0
	t.incoming = 0
	t.mu.Unlock()

	t.root = t.alloc(Decision, start, NilHandle, nil, 0, 0, 0)
	t.evaluateRoot()
}
