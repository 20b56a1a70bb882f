// Package worker implements the asynchronous bot (spec.md §4.6, §5):
// an owner of one search.Tree, N expansion goroutines, a command
// inbox, and the blocking/non-blocking poll surface. The Options/
// Stats/Logger triple and the command-loop shape follow the teacher
// pack's engine.Engine (Options/Stats/Logger fields, a NulLogger
// default) generalized from one blocking Search call to a long-lived
// background worker.
package worker

import (
	"runtime"

	"github.com/hashicorp/go-multierror"

	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/eval"
	"github.com/coldcore/coldcore/movegen"
)

// Options mirrors spec.md §6's "options recognized fields".
type Options struct {
	Mode      movegen.Mode
	SpawnRule board.SpawnRule
	UseHold   bool
	Speculate bool

	MinNodes int
	MaxNodes int
	Threads  int

	PCLoop eval.PCLoopMode
}

// DefaultOptions returns the options a bare launch() uses.
func DefaultOptions() Options {
	return Options{
		Mode:      movegen.Mode0G,
		SpawnRule: board.SpawnRow19Or20,
		// UseHold defaults to false: spec.md §8 scenario 1 expects a
		// bare launch to answer a request after a single known piece,
		// and §4.6's readiness condition (iii) can't disambiguate an
		// empty hold slot until the piece behind the front of the
		// queue is known too.
		UseHold:   false,
		Speculate: true,
		MinNodes:  0,
		MaxNodes:  1_000_000,
		Threads:   runtime.NumCPU(),
		PCLoop:    eval.PCLoopOff,
	}
}

// Validate reports any out-of-range option, per the same
// multierror-accumulation style as eval.Weights.Validate.
func (o Options) Validate() error {
	var result *multierror.Error
	if o.MinNodes < 0 {
		result = multierror.Append(result, errRange("min_nodes", o.MinNodes))
	}
	if o.MaxNodes <= 0 {
		result = multierror.Append(result, errRange("max_nodes", o.MaxNodes))
	}
	if o.MinNodes > o.MaxNodes {
		result = multierror.Append(result, errRange("min_nodes > max_nodes", o.MinNodes))
	}
	if o.Threads <= 0 {
		result = multierror.Append(result, errRange("threads", o.Threads))
	}
	return result.ErrorOrNil()
}

func (o Options) threads() int {
	if o.Threads <= 0 {
		return 1
	}
	return o.Threads
}
