package search

// Step is one placement along a principal variation.
type Step struct {
	Edge  Edge
	Depth int
}

// BestLine walks the principal variation from h (the best child at
// each level, by the same ordering BestChild uses) down to at most
// maxDepth steps, per SPEC_FULL.md's Plan output. Chance nodes are
// stepped through transparently (their "best child" is just the one
// with the highest backed value, since every chance child is equally
// likely): the plan only reports Decision edges, so its length can be
// shorter than maxDepth if a chance node intervenes with no children.
func (t *Tree) BestLine(h Handle, maxDepth int) []Step {
	var out []Step
	cur := h
	for depth := 0; depth < maxDepth; depth++ {
		node := t.Node(cur)
		node.mu.Lock()
		kind := node.kind
		node.mu.Unlock()

		var next Handle
		if kind == Chance {
			next = bestChanceChild(t, cur)
		} else {
			child, _, ok := t.BestChild(cur)
			if !ok {
				break
			}
			next = child
		}
		if !next.Valid() {
			break
		}

		nnode := t.Node(next)
		nnode.mu.Lock()
		edge := nnode.edge
		nnode.mu.Unlock()
		if edge != nil && kind != Chance {
			out = append(out, Step{Edge: *edge, Depth: depth})
		}
		cur = next
	}
	return out
}

func bestChanceChild(t *Tree, h Handle) Handle {
	kids := t.Children(h)
	best := NilHandle
	var bestValue float64
	for _, c := range kids {
		node := t.Node(c)
		node.mu.Lock()
		dead, value := node.dead, node.backedValue
		node.mu.Unlock()
		if dead {
			continue
		}
		if !best.Valid() || value > bestValue {
			best, bestValue = c, value
		}
	}
	return best
}
