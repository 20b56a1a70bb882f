package search

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// ExportDOT renders the tree's current live subtree as a Graphviz DOT
// graph, for offline debugging (SPEC_FULL.md's DOMAIN STACK: the
// closest fit in the retrieval pack for a graph-structured search
// tree). Node labels carry backed value and depth; the node on the
// principal variation from the root is highlighted.
func (t *Tree) ExportDOT() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("tree"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	root := t.Root()
	pv := make(map[Handle]bool)
	cur := root
	for cur.Valid() {
		pv[cur] = true
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
		cur = next
	}

	var walk func(h Handle) error
	walk = func(h Handle) error {
		node := t.Node(h)
		node.mu.Lock()
		backed, static, depth, dead, kind := node.backedValue, node.staticValue, node.depth, node.dead, node.kind
		node.mu.Unlock()

		name := fmt.Sprintf("n%d", h)
		attrs := map[string]string{
			"label": fmt.Sprintf("\"d=%d v=%.1f s=%.1f\"", depth, backed, static),
		}
		if dead {
			attrs["color"] = "red"
		} else if pv[h] {
			attrs["color"] = "blue"
		}
		if kind == Chance {
			attrs["shape"] = "diamond"
		}
		if err := g.AddNode("tree", name, attrs); err != nil {
			return err
		}

		for _, c := range t.Children(h) {
			cname := fmt.Sprintf("n%d", c)
			if err := walk(c); err != nil {
				return err
			}
			if err := g.AddEdge(name, cname, true, nil); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return "", err
	}
	return g.String(), nil
}
