// Package search implements the best-first search tree described in
// spec.md §4.5: an arena of game-state nodes, expanded by the move
// generator and evaluator, backed up under a max-over-children /
// mean-over-chance policy, and destructively advanced as the live
// root changes.
//
// The arena shape (handles into a flat slice plus a free list instead
// of pointer-linked nodes) is taken directly from the teacher pack's
// MCTS implementation (Elvenson-alphabeth/mcts), generalized from a
// two-player game tree to Cold Clear's single-agent tree with chance
// nodes for piece speculation.
package search

// Handle indexes a Node in a Tree's arena. NilHandle marks "no node".
type Handle int32

// NilHandle is the zero-value sentinel for "this edge has no node".
const NilHandle Handle = -1

// Valid reports whether h refers to a live arena slot.
func (h Handle) Valid() bool { return h >= 0 }
