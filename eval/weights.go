// Package eval implements the static board evaluator and transition
// reward function described in spec.md §4.3: two signed integer
// linear combinations of engineered features, under weights supplied
// entirely by the caller.
package eval

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Weights holds every tunable named in spec.md §6. All fields are
// caller-supplied; the evaluator assigns no defaults of its own.
type Weights struct {
	BackToBack int32

	Bumpiness      int32
	BumpinessSq    int32
	RowTransitions int32
	Height         int32
	TopHalf        int32
	TopQuarter     int32
	Jeopardy       int32

	CavityCells     int32
	CavityCellsSq   int32
	OverhangCells   int32
	OverhangCellsSq int32
	CoveredCells    int32
	CoveredCellsSq  int32

	WellDepth    int32
	MaxWellDepth int32
	WellColumn   [10]int32
	Tslot        [4]int32

	B2BClear     int32
	Clear1       int32
	Clear2       int32
	Clear3       int32
	Clear4       int32
	Tspin1       int32
	Tspin2       int32
	Tspin3       int32
	MiniTspin1   int32
	MiniTspin2   int32
	PerfectClear int32
	ComboGarbage int32
	MoveTime     int32
	WastedT      int32

	UseBag        bool
	TimedJeopardy bool
	StackPCDamage bool
}

// Validate reports every malformed field at once (the teacher's
// Options/TimeControl constructors validate a single field; a Weights
// struct has enough fields that a batch report is more useful than
// failing on the first one).
func (w Weights) Validate() error {
	var result *multierror.Error
	if w.MaxWellDepth < 0 {
		result = multierror.Append(result, errors.New("eval: MaxWellDepth must be >= 0"))
	}
	if w.WellDepth != 0 && w.MaxWellDepth == 0 {
		result = multierror.Append(result, errors.New("eval: WellDepth is weighted but MaxWellDepth is 0, so it can never contribute"))
	}
	return result.ErrorOrNil()
}
