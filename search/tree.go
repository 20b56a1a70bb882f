package search

import (
	"sync"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat"

	"github.com/coldcore/coldcore/bag"
	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/eval"
	"github.com/coldcore/coldcore/movegen"
	"github.com/coldcore/coldcore/piece"
)

// Discount is the gamma factor in spec.md §4.3's backup rule. 1 is
// acceptable for the finite horizons this tree explores and is what
// Config.Discount defaults to.
const defaultDiscount = 1.0

// Config is everything the tree needs to generate and score moves,
// independent of any one client's Options wire format (worker.Options
// translates into this).
type Config struct {
	Mode      movegen.Mode
	SpawnRule board.SpawnRule
	UseHold   bool
	Speculate bool
	Weights   eval.Weights
	Discount  float64
	// DepthBonus is spec.md §9 open question (b): a monotone function
	// of depth added to backed value when ranking frontier nodes.
	DepthBonus func(depth int) float64
}

func (c Config) discount() float64 {
	if c.Discount <= 0 {
		return defaultDiscount
	}
	return c.Discount
}

func (c Config) depthBonus(depth int) float64 {
	if c.DepthBonus == nil {
		return defaultDepthBonus(depth)
	}
	return c.DepthBonus(depth)
}

// Tree owns the arena of nodes for one live game. It is safe for
// concurrent use: one coarse RWMutex guards structural changes (new
// nodes, root advancement, reset) while each Node's own mutex guards
// its backed value and busy/dead flags, mirroring the teacher pack's
// MCTS tree (a package-level RWMutex plus a sync.Mutex per Node).
type Tree struct {
	mu sync.RWMutex

	cfg Config

	// nodes holds one heap-allocated *Node per arena slot rather than
	// []Node, so a concurrent append (growing the arena) never
	// invalidates a *Node an expansion thread already captured — only
	// the slice of pointers gets copied, never the Nodes themselves.
	nodes    []*Node
	children [][]Handle
	freelist []Handle

	root  Handle
	nodeCount int

	// incoming is the pending garbage line count from the most recent
	// RequestNextMove, consulted by eval.StaticValue's jeopardy feature
	// (spec.md §4.3/§6). Guarded by mu like the other tree-wide fields.
	incoming int
}

// SetIncoming records the pending garbage line count used by every
// static evaluation from this point on, and refreshes the root's own
// static value so a request answered before any further expansion
// still reflects it.
func (t *Tree) SetIncoming(incoming int) {
	t.mu.Lock()
	t.incoming = incoming
	root := t.nodes[t.root]
	t.mu.Unlock()

	root.mu.Lock()
	root.staticValue = eval.StaticValue(root.state.Board, t.cfg.Weights, bagRemaining(root.state.Bag), incoming)
	if !root.expanded {
		root.backedValue = root.staticValue
	}
	root.mu.Unlock()
}

func (t *Tree) getIncoming() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.incoming
}

// New creates a tree rooted at the given starting game state.
func New(cfg Config, start GameState) *Tree {
	t := &Tree{cfg: cfg}
	t.root = t.alloc(Decision, start, NilHandle, nil, 0, 0, 0)
	t.evaluateRoot()
	return t
}

func (t *Tree) evaluateRoot() {
	root := t.nodes[t.root]
	root.mu.Lock()
	root.staticValue = eval.StaticValue(root.state.Board, t.cfg.Weights, bagRemaining(root.state.Bag), t.getIncoming())
	root.backedValue = root.staticValue
	root.mu.Unlock()
}

// Root returns the handle of the tree's current root.
func (t *Tree) Root() Handle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// Node returns a pointer to the node at h. Callers must not retain it
// past a Reset or Advance, which can recycle the backing slot.
func (t *Tree) Node(h Handle) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes[h]
}

// Children returns the child handles of h.
func (t *Tree) Children(h Handle) []Handle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Handle, len(t.children[h]))
	copy(out, t.children[h])
	return out
}

// NodeCount returns the number of live (allocated, non-freed) nodes.
func (t *Tree) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodeCount
}

// alloc takes a slot from the free list or grows the arena, and fills
// it in as a fresh node. Callers must not hold t.mu: alloc takes the
// write lock itself.
func (t *Tree) alloc(kind Kind, state GameState, parent Handle, edge *Edge, reward float64, depth int, staticValue float64) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var h Handle
	if n := len(t.freelist); n > 0 {
		h = t.freelist[n-1]
		t.freelist = t.freelist[:n-1]
		t.nodes[h] = &Node{}
	} else {
		t.nodes = append(t.nodes, &Node{})
		t.children = append(t.children, nil)
		h = Handle(len(t.nodes) - 1)
	}

	n := t.nodes[h]
	n.kind = kind
	n.state = state
	n.parent = parent
	n.edge = edge
	n.reward = reward
	n.depth = depth
	n.staticValue = staticValue
	n.backedValue = staticValue
	t.children[h] = t.children[h][:0]
	t.nodeCount++
	return h
}

func bagRemaining(b bag.State) int {
	return len(b.Set.Remaining())
}

// ExpansionResult reports what Expand actually did, for worker
// diagnostics (spec.md §4.6's node-count accounting).
type ExpansionResult struct {
	NodesCreated int
	BecameChance bool
	BecameDead   bool
}

// Expand grows h into its children: spec.md §4.5's "Expansion unit".
// h must not already be expanded. Expand does not itself mark h busy;
// callers (the worker's frontier lease) are responsible for that.
func (t *Tree) Expand(h Handle) ExpansionResult {
	t.mu.RLock()
	node := t.nodes[h]
	t.mu.RUnlock()

	node.mu.Lock()
	kind := node.kind
	state := node.state.Clone()
	depth := node.depth
	node.mu.Unlock()

	if kind == Chance {
		return t.expandChance(h, state, depth)
	}
	return t.expandDecision(h, state, depth)
}

// expandChance creates one equally-weighted child per piece still in
// the bag, per spec.md §3's chance-node definition.
func (t *Tree) expandChance(h Handle, state GameState, depth int) ExpansionResult {
	remaining := state.Bag.Set.Remaining()
	var created []Handle
	for _, k := range remaining {
		childState := state.Clone()
		if err := childState.Bag.AddNextPiece(k, true); err != nil {
			continue
		}
		sv := eval.StaticValue(childState.Board, t.cfg.Weights, bagRemaining(childState.Bag), t.getIncoming())
		edge := &Edge{Kind: k}
		ch := t.alloc(Decision, childState, h, edge, 0, depth+1, sv)
		created = append(created, ch)
	}

	t.mu.Lock()
	t.children[h] = append(t.children[h], created...)
	t.mu.Unlock()

	node := t.nodes[h]
	node.mu.Lock()
	node.expanded = true
	node.dead = len(created) == 0
	node.mu.Unlock()

	t.backup(h)
	return ExpansionResult{NodesCreated: len(created), BecameChance: true, BecameDead: len(created) == 0}
}

// expandDecision enumerates every placement for the current piece
// and, if hold is enabled, for the held piece, per spec.md §4.5 and
// §9's "hold as a normal decision edge" design note. If no piece is
// known yet, it either inserts a Chance node (speculation on) or
// leaves h unexpanded (waiting on add_next_piece).
func (t *Tree) expandDecision(h Handle, state GameState, depth int) ExpansionResult {
	current, haveCurrent := state.Bag.Queue.Front()
	if !haveCurrent {
		if !t.cfg.Speculate {
			return ExpansionResult{}
		}
		node := t.nodes[h]
		node.mu.Lock()
		node.kind = Chance
		node.mu.Unlock()
		return t.expandChance(h, state, depth)
	}

	var created []Handle

	placeNoHold, err := movegen.Generate(state.Board, current, t.cfg.Mode, t.cfg.SpawnRule)
	if err == nil {
		for _, p := range placeNoHold {
			created = append(created, t.allocPlacement(h, state, depth, p, current, false))
		}
	}

	if t.cfg.UseHold {
		created = append(created, t.expandHoldBranch(h, state, depth)...)
	}

	t.mu.Lock()
	t.children[h] = append(t.children[h], created...)
	t.mu.Unlock()

	node := t.nodes[h]
	node.mu.Lock()
	node.expanded = true
	node.dead = len(created) == 0
	node.mu.Unlock()

	t.backup(h)
	return ExpansionResult{NodesCreated: len(created), BecameDead: len(created) == 0}
}

// expandHoldBranch enumerates the placements reachable by swapping
// hold first. If hold is empty, the piece that becomes current is the
// one behind the front of the queue, which may not be known yet; in
// that case the hold branch simply contributes no children this
// round (it becomes expandable once the queue is deeper).
func (t *Tree) expandHoldBranch(h Handle, state GameState, depth int) []Handle {
	front, _ := state.Bag.Queue.Front()

	var heldKind piece.Kind
	var afterHold GameState
	if state.Hold == nil {
		next, ok := state.Bag.Queue.At(1)
		if !ok {
			return nil
		}
		heldKind = next
		afterHold = state.Clone()
		f := front
		afterHold.Hold = &f
		afterHold.Bag.Queue.Advance() // front goes into hold
		afterHold.Bag.Queue.Advance() // next is the piece actually placed below
	} else {
		heldKind = *state.Hold
		afterHold = state.Clone()
		f := front
		afterHold.Hold = &f
		afterHold.Bag.Queue.Advance() // front swaps into hold
	}

	placements, err := movegen.Generate(afterHold.Board, heldKind, t.cfg.Mode, t.cfg.SpawnRule)
	if err != nil {
		return nil
	}
	var out []Handle
	for _, p := range placements {
		out = append(out, t.allocPlacement(h, afterHold, depth, p, heldKind, true))
	}
	return out
}

// allocPlacement materializes one movegen.Placement as a child node:
// its resulting board, bag/hold updates, static value and transition
// reward.
func (t *Tree) allocPlacement(parent Handle, state GameState, depth int, p movegen.Placement, kind piece.Kind, holdUsed bool) Handle {
	childState := state.Clone()
	childState.Board = p.Result
	if !holdUsed {
		childState.Bag.Queue.Advance()
	}

	reward := eval.TransitionReward(t.cfg.Weights, p.Placement, p.MovementCount)
	sv := eval.StaticValue(childState.Board, t.cfg.Weights, bagRemaining(childState.Bag), t.getIncoming())
	edge := &Edge{Kind: kind, HoldUsed: holdUsed, Movegen: p}
	return t.alloc(Decision, childState, parent, edge, reward, depth+1, sv)
}

// backup recomputes h's backed value from its current children (or
// leaves it as the static value if h has none) and propagates the
// change up to the root, per spec.md §4.3.
func (t *Tree) backup(h Handle) {
	for cur := h; cur.Valid(); {
		t.mu.RLock()
		kids := t.children[cur]
		node := t.nodes[cur]
		t.mu.RUnlock()

		node.mu.Lock()
		kind := node.kind
		gamma := t.cfg.discount()
		node.mu.Unlock()

		if len(kids) == 0 {
			node.mu.Lock()
			parent := node.parent
			node.mu.Unlock()
			cur = parent
			continue
		}

		var best float64
		haveBest := false
		var chanceValues []float64
		allDead := true
		for _, c := range kids {
			child := t.nodes[c]
			child.mu.Lock()
			dead := child.dead
			value := child.reward + gamma*child.backedValue
			chanceValue := child.backedValue
			child.mu.Unlock()
			if !dead {
				allDead = false
			}

			if kind == Chance {
				chanceValues = append(chanceValues, chanceValue)
				continue
			}
			if dead {
				continue
			}
			if !haveBest || value > best {
				best = value
				haveBest = true
			}
		}

		node.mu.Lock()
		if kind == Chance {
			// spec.md §4.3: "for chance nodes... back up the mean over
			// children" — every bag-remaining piece is equally likely.
			if len(chanceValues) > 0 {
				node.backedValue = stat.Mean(chanceValues, nil)
			}
		} else if haveBest {
			node.backedValue = best
		}
		node.dead = allDead
		parent := node.parent
		node.mu.Unlock()

		cur = parent
	}
}

// defaultDepthBonus is 0.05*sqrt(depth): a monotone,
// diminishing-returns bonus that favors deeper lines without letting
// depth alone dominate static/backed value.
func defaultDepthBonus(depth int) float64 {
	if depth <= 0 {
		return 0
	}
	return 0.05 * float64(math32.Sqrt(float32(depth)))
}
