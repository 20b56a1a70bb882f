package bag

import "github.com/coldcore/coldcore/piece"

// Queue is the ordered sequence of known upcoming pieces.
type Queue struct {
	pieces []piece.Kind
}

// Add appends k to the back of the queue.
func (q *Queue) Add(k piece.Kind) {
	q.pieces = append(q.pieces, k)
}

// Len returns the number of known pieces still queued.
func (q *Queue) Len() int {
	return len(q.pieces)
}

// At returns the i-th queued piece (0 is next-to-play), and whether
// the queue is that deep.
func (q *Queue) At(i int) (piece.Kind, bool) {
	if i < 0 || i >= len(q.pieces) {
		return 0, false
	}
	return q.pieces[i], true
}

// Front returns the next piece to play, if known.
func (q *Queue) Front() (piece.Kind, bool) {
	return q.At(0)
}

// Advance pops the front piece; called when the root commits a move
// that consumed it.
func (q *Queue) Advance() {
	if len(q.pieces) == 0 {
		return
	}
	q.pieces = q.pieces[1:]
}

// Clone returns an independent copy of q.
func (q Queue) Clone() Queue {
	return Queue{pieces: append([]piece.Kind(nil), q.pieces...)}
}

// State bundles the bag set and queue that travel together through
// the search tree alongside a board (spec.md §3's "Node" fields).
type State struct {
	Set   Set
	Queue Queue
}

// NewState returns a state with a full bag and an empty queue.
func NewState() State {
	return State{Set: Full}
}

// AddNextPiece appends k to the queue and draws it from the bag,
// per spec.md §4.4; speculate selects strict vs permissive bag
// validation (see Set.Take).
func (s *State) AddNextPiece(k piece.Kind, speculate bool) error {
	next, err := s.Set.Take(k, speculate)
	if err != nil {
		return err
	}
	s.Set = next
	s.Queue.Add(k)
	return nil
}

// Advance pops the front of the queue.
func (s *State) Advance() {
	s.Queue.Advance()
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	return State{Set: s.Set, Queue: s.Queue.Clone()}
}
