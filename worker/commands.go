package worker

import (
	"github.com/coldcore/coldcore/bag"
	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/movegen"
	"github.com/coldcore/coldcore/piece"
	"github.com/coldcore/coldcore/search"
)

// defaultPlanDepth bounds how far BestLine walks past the committed
// move when building a Plan, per SPEC_FULL.md's supplemented Plan
// output.
const defaultPlanDepth = 6

// AddNextPiece appends a known piece to the live queue, per spec.md
// §6. Commands observing this bot are expected to be issued from one
// client goroutine at a time; b.mu serializes them regardless.
func (b *Bot) AddNextPiece(kind piece.Kind) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.terminated || b.dead {
		return ErrDead
	}
	if err := b.tree.AddNextPiece(kind, b.opts.Speculate); err != nil {
		return err
	}
	b.maybeAnswerLocked()
	b.cond.Broadcast()
	return nil
}

// RequestNextMove signals that a move should be committed once the
// readiness conditions in spec.md §4.6 hold. incoming is the pending
// garbage line count consulted by the jeopardy feature.
func (b *Bot) RequestNextMove(incoming int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingRequest = true
	b.incoming = incoming
	b.tree.SetIncoming(incoming)
	b.ready = nil
	b.plan = nil
	b.maybeAnswerLocked()
	b.cond.Broadcast()
}

// PollResult is the non-blocking/blocking poll outcome, spec.md §6's
// `{provided(move, plan?), waiting, dead}`.
type PollResult struct {
	Provided bool
	Dead     bool
	Move     Move
	Plan     Plan
}

// PollNextMove is the non-blocking query: it never waits.
func (b *Bot) PollNextMove() PollResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pollLocked()
}

// BlockNextMove waits on the move-ready/dead condition variable
// before returning, per spec.md §5's blocking variant.
func (b *Bot) BlockNextMove() PollResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.ready == nil && !b.dead && !b.terminated {
		b.cond.Wait()
	}
	return b.pollLocked()
}

func (b *Bot) pollLocked() PollResult {
	if b.ready != nil {
		move := *b.ready
		plan := append(Plan(nil), b.plan...)
		b.ready = nil
		b.plan = nil
		return PollResult{Provided: true, Move: move, Plan: plan}
	}
	if b.dead {
		return PollResult{Dead: true}
	}
	return PollResult{}
}

// maybeAnswerLocked commits the best root child if every readiness
// condition in spec.md §4.6 holds. Callers must hold b.mu.
func (b *Bot) maybeAnswerLocked() {
	if !b.pendingRequest || b.ready != nil || b.dead {
		return
	}

	root := b.tree.Root()
	if len(b.tree.Children(root)) == 0 {
		return
	}
	if b.tree.NodeCount() < b.opts.MinNodes {
		return
	}
	if !b.queueSufficientLocked(b.tree.Node(root).State()) {
		return
	}

	child, rank, ok := b.tree.BestChildPCLoop(root, b.opts.PCLoop)
	if !ok {
		return
	}

	move := b.toMove(child, rank)
	plan := b.tree.BestLine(child, defaultPlanDepth)
	b.tree.Advance(child)

	b.ready = &move
	b.plan = plan
	b.pendingRequest = false
	b.stats.recordMoveAnswered()
	b.logger.PrintBestLine(b.stats, plan)
}

// queueSufficientLocked is spec.md §4.6 condition (iii): enough queue
// information exists to disambiguate the choice. With hold enabled
// and hold empty, the hold branch needs the piece behind the front of
// the queue to be known before it can contribute legal children (see
// search.Tree.expandHoldBranch), so a request would otherwise be
// answered on no-hold placements alone.
func (b *Bot) queueSufficientLocked(state search.GameState) bool {
	if _, ok := state.Bag.Queue.Front(); !ok {
		return false
	}
	if b.opts.UseHold && state.Hold == nil {
		if _, ok := state.Bag.Queue.At(1); !ok {
			return false
		}
	}
	return true
}

func (b *Bot) toMove(child search.Handle, rank int) Move {
	node := b.tree.Node(child)
	edge := node.Edge()

	m := Move{
		Nodes:        b.tree.NodeCount(),
		Depth:        node.Depth(),
		OriginalRank: rank,
	}
	if edge == nil {
		return m
	}
	m.Hold = edge.HoldUsed
	cells := edge.Movegen.State.Cells()
	for i, c := range cells {
		m.ExpectedX[i] = c[0]
		m.ExpectedY[i] = c[1]
	}
	m.Movements = append([]movegen.Token(nil), edge.Movegen.Path...)
	m.MovementCount = edge.Movegen.MovementCount
	return m
}

// Reset is the barrier reset of spec.md §5/§9: options and weights
// survive, the queue and hold and hold-used flag do not (SPEC_FULL.md
// open-question resolution (a)).
func (b *Bot) Reset(fields [board.Width * board.TotalHeight]bool, b2b bool, combo int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	nb := board.FromFields(fields)
	nb.B2B = b2b
	nb.Combo = combo
	state := search.GameState{Board: nb, Bag: bag.NewState()}

	b.tree.Reset(state)
	b.pendingRequest = false
	b.incoming = 0
	b.ready = nil
	b.plan = nil
	b.dead = false
	b.totalExpanded = 0
	b.stats.reset()
	b.cond.Broadcast()
}
