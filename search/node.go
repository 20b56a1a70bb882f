package search

import (
	"sync"

	"github.com/coldcore/coldcore/bag"
	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/movegen"
	"github.com/coldcore/coldcore/piece"
)

// Kind distinguishes a node the bot decides at (Decision) from one
// speculating over an unknown next piece (Chance), per spec.md §3.
type Kind uint8

const (
	Decision Kind = iota
	Chance
)

// GameState bundles everything spec.md §3 says a Node's state
// carries besides the tree structure itself: the board (which already
// carries b2b/combo), the bag/queue, and the hold slot.
type GameState struct {
	Board *board.Board
	Bag   bag.State
	Hold  *piece.Kind
}

// Clone returns an independent copy of g.
func (g GameState) Clone() GameState {
	var hold *piece.Kind
	if g.Hold != nil {
		k := *g.Hold
		hold = &k
	}
	return GameState{Board: g.Board.Clone(), Bag: g.Bag.Clone(), Hold: hold}
}

// Edge describes how a Decision node's child was reached: which
// piece was placed (the current piece or, if HoldUsed, the piece that
// had been sitting in hold), the placement itself, and whether this
// edge consumed a hold swap. Nil on the root. A Chance node's children
// are reached by revealing a piece, not by placing one: their Edge
// carries only Kind (the revealed piece), with HoldUsed false and a
// zero Movegen.
type Edge struct {
	Kind     piece.Kind
	HoldUsed bool
	Movegen  movegen.Placement
}

// Node is one vertex of the search tree: spec.md §3. All mutable
// fields are guarded by mu, following the teacher pack's per-node
// lock (Elvenson-alphabeth/mcts.Node) so expansion threads can update
// a node's backed value without taking a tree-wide write lock.
type Node struct {
	mu sync.Mutex

	kind  Kind
	state GameState

	parent Handle

	// busy marks a node currently leased to an expansion thread, so a
	// second thread's frontier pick skips it (spec.md §4.6).
	busy bool
	// dead marks a node with no legal children, or every child dead
	// (spec.md §4.5's "Death").
	dead bool
	// expanded marks a node whose children list is final (a Decision
	// node that has been expanded once, or a Chance node that has
	// spawned its per-piece children).
	expanded bool

	staticValue float64 // V(board) at this node, computed once at creation
	backedValue float64 // backed-up value, spec.md §4.3
	reward      float64 // R(parent -> this node), 0 for Chance children
	depth       int

	edge *Edge // how this node was reached from its parent; nil at root, Kind-only for Chance children
}

// BackedValue returns the node's current backed-up value.
func (n *Node) BackedValue() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.backedValue
}

// StaticValue returns the node's static evaluation.
func (n *Node) StaticValue() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.staticValue
}

// Reward returns the transition reward of the edge from this node's
// parent.
func (n *Node) Reward() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.reward
}

// Depth returns the node's depth from the tree's root.
func (n *Node) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.depth
}

// Dead reports whether n has no surviving line of play.
func (n *Node) Dead() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dead
}

// Expanded reports whether n's children are already populated.
func (n *Node) Expanded() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.expanded
}

// Edge returns the edge that produced n, or nil at the root. On a
// Chance node's child it carries only the revealed piece's Kind.
func (n *Node) Edge() *Edge {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.edge
}

// State returns the game state at n. The returned value shares no
// mutable memory with the tree: callers get a defensive clone.
func (n *Node) State() GameState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.Clone()
}

// Kind returns whether n is a Decision or Chance node.
func (n *Node) Kind() Kind {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.kind
}
