package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/coldcore/coldcore/bag"
	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/eval"
	"github.com/coldcore/coldcore/piece"
	"github.com/coldcore/coldcore/worker"
)

// errQuit is returned by driver.Execute for the "quit" command,
// mirroring the teacher's ErrQuit sentinel that main's read loop
// checks for by identity rather than by message.
var errQuit = errors.New("quit")

// defaultWeights is a plausible, hand-tuned starting point for the
// demo driver: clears and T-spins reward heavily, b2b is preserved,
// and the stack-shape penalties discourage holes and bumpiness. None
// of this is prescribed by the command surface (weights are entirely
// caller-supplied, spec.md §6); it exists only so `launch` without
// arguments produces a bot that plays sensibly.
func defaultWeights() eval.Weights {
	return eval.Weights{
		BackToBack:     50,
		Bumpiness:      -5,
		BumpinessSq:    -1,
		RowTransitions: -4,
		Height:         -2,
		TopHalf:        -40,
		TopQuarter:     -100,
		CavityCells:    -30,
		CavityCellsSq:  -3,
		OverhangCells:  -30,
		OverhangCellsSq: -3,
		CoveredCells:   -10,
		CoveredCellsSq: -1,
		WellDepth:      20,
		MaxWellDepth:   8,
		Tslot:          [4]int32{80, 100, 130, 160},
		B2BClear:       100,
		Clear1:         -100,
		Clear2:         -50,
		Clear3:         -20,
		Clear4:         400,
		Tspin1:         150,
		Tspin2:         400,
		Tspin3:         700,
		MiniTspin1:     20,
		MiniTspin2:     50,
		PerfectClear:   999,
		ComboGarbage:   50,
		MoveTime:       1,
		WastedT:        150,
		UseBag:         true,
	}
}

// driver holds the one live bot a CLI session drives and parses lines
// into its command surface, mirroring the teacher's UCI struct (one
// engine, a regex-extracted command word, a switch dispatcher).
type driver struct {
	bot  *worker.Bot
	seed int64
	draw int64
}

func newDriver(seed int64) *driver {
	return &driver{seed: seed}
}

func (d *driver) Close() {
	if d.bot != nil {
		d.bot.Destroy()
	}
}

var reCmd = regexp.MustCompile(`^[[:word:]]+\b`)

// Execute parses and runs one line of input, returning errQuit on
// "quit" exactly like the teacher's UCI.Execute does for its own
// sentinel.
func (d *driver) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	cmd := reCmd.FindString(line)
	if cmd == "" {
		return fmt.Errorf("invalid command line")
	}
	args := strings.Fields(line)[1:]

	switch cmd {
	case "quit":
		return errQuit
	case "launch":
		return d.launch(args)
	case "add":
		return d.add(args)
	case "bag":
		return d.bagDraw(args)
	case "request":
		return d.request(args)
	case "poll":
		return d.poll()
	case "block":
		return d.block()
	case "reset":
		return d.reset()
	case "diag":
		return d.diag(args)
	default:
		return fmt.Errorf("unhandled command %s", cmd)
	}
}

// launch accepts key=value options (threads, use_hold, speculate,
// min_nodes, max_nodes); anything unset keeps
// worker.DefaultOptions()'s value. Any other key, including mode and
// spawn_rule, is rejected as an unknown option.
func (d *driver) launch(args []string) error {
	if d.bot != nil {
		d.bot.Destroy()
		d.bot = nil
	}

	opts := worker.DefaultOptions()
	for _, kv := range args {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("launch: expected key=value, got %q", kv)
		}
		key, val := parts[0], parts[1]
		var err error
		switch key {
		case "threads":
			opts.Threads, err = strconv.Atoi(val)
		case "min_nodes":
			opts.MinNodes, err = strconv.Atoi(val)
		case "max_nodes":
			opts.MaxNodes, err = strconv.Atoi(val)
		case "use_hold":
			opts.UseHold, err = strconv.ParseBool(val)
		case "speculate":
			opts.Speculate, err = strconv.ParseBool(val)
		default:
			return fmt.Errorf("launch: unknown option %q", key)
		}
		if err != nil {
			return fmt.Errorf("launch: option %s: %w", key, err)
		}
	}

	bot, err := worker.Launch(opts, defaultWeights(), stdoutLogger{})
	if err != nil {
		return err
	}
	d.bot = bot
	fmt.Println("launched")
	return nil
}

func (d *driver) add(args []string) error {
	if d.bot == nil {
		return fmt.Errorf("add: no bot launched")
	}
	if len(args) != 1 || len(args[0]) != 1 {
		return fmt.Errorf("add: expected one piece letter (I O T L J S Z)")
	}
	k, err := piece.FromByte(args[0][0])
	if err != nil {
		return err
	}
	return d.bot.AddNextPiece(k)
}

// bagDraw prints the next piece of a deterministic shuffled 7-bag
// sequence seeded at launch, for a client scripting a demo session
// without picking pieces by hand.
func (d *driver) bagDraw(args []string) error {
	seq := bag.Shuffled7(d.seed + d.draw/7)
	k := seq[d.draw%7]
	d.draw++
	fmt.Println(k)
	return nil
}

func (d *driver) request(args []string) error {
	if d.bot == nil {
		return fmt.Errorf("request: no bot launched")
	}
	incoming := 0
	if len(args) == 1 {
		var err error
		incoming, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("request: %w", err)
		}
	}
	d.bot.RequestNextMove(incoming)
	return nil
}

func (d *driver) poll() error {
	if d.bot == nil {
		return fmt.Errorf("poll: no bot launched")
	}
	printResult(d.bot.PollNextMove())
	return nil
}

func (d *driver) block() error {
	if d.bot == nil {
		return fmt.Errorf("block: no bot launched")
	}
	printResult(d.bot.BlockNextMove())
	return nil
}

func (d *driver) reset() error {
	if d.bot == nil {
		return fmt.Errorf("reset: no bot launched")
	}
	var fields [board.Width * board.TotalHeight]bool
	d.bot.Reset(fields, false, -1)
	fmt.Println("reset")
	return nil
}

// diag prints the bot's counters, or ("diag dot") the current search
// tree as Graphviz DOT for offline inspection.
func (d *driver) diag(args []string) error {
	if d.bot == nil {
		return fmt.Errorf("diag: no bot launched")
	}
	if len(args) == 1 && args[0] == "dot" {
		dot, err := d.bot.ExportDOT()
		if err != nil {
			return fmt.Errorf("diag dot: %w", err)
		}
		fmt.Println(dot)
		return nil
	}
	s := d.bot.Diagnostics()
	fmt.Printf("nodes %d moves %d\n", s.NodesExpanded(), s.MovesAnswered())
	return nil
}

func printResult(r worker.PollResult) {
	switch {
	case r.Dead:
		fmt.Println("dead")
	case !r.Provided:
		fmt.Println("waiting")
	default:
		m := r.Move
		fmt.Printf("move hold=%v cells=%v movements=%d nodes=%d depth=%d rank=%d\n",
			m.Hold, m.ExpectedX, m.MovementCount, m.Nodes, m.Depth, m.OriginalRank)
		for i, step := range r.Plan {
			fmt.Printf("plan[%d] kind=%v spin=%v cleared=%v\n", i, step.Edge.Kind, step.Edge.Movegen.Spin, step.Edge.Movegen.Cleared)
		}
	}
}
