package worker

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/coldcore/coldcore/bag"
	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/eval"
	"github.com/coldcore/coldcore/movegen"
	"github.com/coldcore/coldcore/piece"
	"github.com/coldcore/coldcore/search"
)

// ErrDead is returned (or reflected in a poll/block result) once the
// bot has no surviving line of play, or an expansion thread panicked.
var ErrDead = errors.New("worker: bot is dead")

// Move is spec.md §6's Move: one committed placement plus its path.
type Move struct {
	Hold          bool
	ExpectedX     [4]int8
	ExpectedY     [4]int8
	Movements     []movegen.Token
	MovementCount int

	Nodes        int
	Depth        int
	OriginalRank int
}

// Plan is the principal variation beyond the committed Move, spec.md
// §6's optional `Plan`.
type Plan []Step

// Bot is the async worker of spec.md §4.6: it owns one search.Tree,
// runs Options.Threads expansion goroutines against it, and answers
// move requests through a condition-variable-guarded mailbox. The
// command-loop/condvar shape is grounded in the teacher pack's
// TimeControl.atomicFlag plus Elvenson-alphabeth/mcts.Search's
// goroutine-per-core expansion pool, merged into one long-lived
// worker instead of one-shot calls.
type Bot struct {
	mu   sync.Mutex
	cond *sync.Cond

	tree   *search.Tree
	cfg    search.Config
	opts   Options
	logger Logger
	stats  Stats

	pendingRequest bool
	incoming       int
	ready          *Move
	plan           []Step

	dead       bool
	terminated bool

	totalExpanded int // counts across root advancement, for max_nodes

	wg sync.WaitGroup
}

// Launch creates a worker with an empty board, empty queue and full
// bag, per spec.md §6.
func Launch(opts Options, weights eval.Weights, logger Logger) (*Bot, error) {
	state := search.GameState{Board: board.New(), Bag: bag.NewState()}
	return launch(opts, weights, logger, state)
}

// LaunchWithBoard creates a worker with a supplied starting state,
// per spec.md §6's `launch_with_board`.
func LaunchWithBoard(opts Options, weights eval.Weights, logger Logger, fields [board.Width * board.TotalHeight]bool, bagBits bag.Set, hold *piece.Kind, b2b bool, combo int) (*Bot, error) {
	b := board.FromFields(fields)
	b.B2B = b2b
	b.Combo = combo
	state := search.GameState{Board: b, Bag: bag.State{Set: bagBits}, Hold: hold}
	return launch(opts, weights, logger, state)
}

func launch(opts Options, weights eval.Weights, logger Logger, state search.GameState) (*Bot, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NulLogger{}
	}

	cfg := search.Config{
		Mode:      opts.Mode,
		SpawnRule: opts.SpawnRule,
		UseHold:   opts.UseHold,
		Speculate: opts.Speculate,
		Weights:   weights,
	}

	bot := &Bot{
		tree:   search.New(cfg, state),
		cfg:    cfg,
		opts:   opts,
		logger: logger,
	}
	bot.cond = sync.NewCond(&bot.mu)

	for i := 0; i < opts.threads(); i++ {
		bot.wg.Add(1)
		go bot.expansionLoop()
	}
	return bot, nil
}

// Destroy requests termination of every expansion goroutine and
// blocks until they exit, per spec.md §5's "Cancellation".
func (b *Bot) Destroy() {
	b.mu.Lock()
	b.terminated = true
	b.cond.Broadcast()
	b.mu.Unlock()
	b.wg.Wait()
}

// Diagnostics returns a snapshot of the bot's counters.
func (b *Bot) Diagnostics() Stats {
	return b.stats
}

// ExportDOT renders the current live search tree as Graphviz DOT, for
// the `diag dot` debugging command.
func (b *Bot) ExportDOT() (string, error) {
	b.mu.Lock()
	tree := b.tree
	b.mu.Unlock()
	return tree.ExportDOT()
}
