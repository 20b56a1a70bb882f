package eval

import (
	"gonum.org/v1/gonum/floats"

	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/piece"
)

// StaticValue computes V(board) per spec.md §4.3: a signed linear
// combination of the engineered features under w. bagRemaining is the
// count of kinds still available in the current 7-bag (consulted only
// when w.UseBag is set); incoming is pending garbage lines (consulted
// only when w.Jeopardy is nonzero).
func StaticValue(b *board.Board, w Weights, bagRemaining, incoming int) float64 {
	f := Extract(b)

	values := []float64{
		boolToFloat(b.B2B),
		float64(f.Bumpiness),
		float64(f.Bumpiness * f.Bumpiness),
		float64(f.RowTransitions),
		float64(f.Height),
		float64(f.TopHalf),
		float64(f.TopQuarter),
		float64(f.CavityCells),
		float64(f.CavityCells * f.CavityCells),
		float64(f.OverhangCells),
		float64(f.OverhangCells * f.OverhangCells),
		float64(f.CoveredCells),
		float64(f.CoveredCells * f.CoveredCells),
		float64(clamp(f.WellDepth, int(w.MaxWellDepth))),
	}
	weights := []float64{
		float64(w.BackToBack),
		float64(w.Bumpiness),
		float64(w.BumpinessSq),
		float64(w.RowTransitions),
		float64(w.Height),
		float64(w.TopHalf),
		float64(w.TopQuarter),
		float64(w.CavityCells),
		float64(w.CavityCellsSq),
		float64(w.OverhangCells),
		float64(w.OverhangCellsSq),
		float64(w.CoveredCells),
		float64(w.CoveredCellsSq),
		float64(w.WellDepth),
	}

	score := floats.Dot(values, weights)
	score += floats.Dot(intsToFloats(f.Tslot[:]), int32sToFloats(w.Tslot[:]))
	score += floats.Dot(intsToFloats(f.WellColumn[:]), int32sToFloats(w.WellColumn[:]))

	if w.Jeopardy != 0 {
		score += jeopardy(w, f, incoming)
	}
	if w.UseBag {
		score += float64(bagRemaining)
	}
	return score
}

func jeopardy(w Weights, f BoardFeatures, incoming int) float64 {
	penalty := float64(w.Jeopardy) * float64(incoming)
	if w.TimedJeopardy {
		penalty *= float64(f.Height) / float64(board.VisibleHeight)
	}
	return penalty
}

// TransitionReward computes R(before -> placement -> after) per
// spec.md §4.3. movementCount is the length of the move's path
// (spec.md §3's Move.movement_count).
func TransitionReward(w Weights, p board.Placement, movementCount int) float64 {
	score := clearBonus(w, len(p.Cleared), p.Spin)

	if p.Perfect {
		score += float64(w.PerfectClear)
	}
	if p.B2B && len(p.Cleared) > 0 {
		score += float64(w.B2BClear)
	}
	if p.Combo > 0 && (!p.Perfect || w.StackPCDamage) {
		score += float64(w.ComboGarbage) * comboGarbage(p.Combo)
	}

	score -= float64(w.MoveTime) * float64(movementCount)
	if p.Kind == piece.T && p.Spin == board.SpinNone {
		score -= float64(w.WastedT)
	}
	return score
}

func clearBonus(w Weights, cleared int, spin board.SpinStatus) float64 {
	switch spin {
	case board.SpinFull:
		switch cleared {
		case 1:
			return float64(w.Tspin1)
		case 2:
			return float64(w.Tspin2)
		case 3:
			return float64(w.Tspin3)
		}
	case board.SpinMini:
		switch cleared {
		case 1:
			return float64(w.MiniTspin1)
		case 2:
			return float64(w.MiniTspin2)
		}
	}
	switch cleared {
	case 1:
		return float64(w.Clear1)
	case 2:
		return float64(w.Clear2)
	case 3:
		return float64(w.Clear3)
	case 4:
		return float64(w.Clear4)
	}
	return 0
}

// comboGarbage approximates the guideline's step-function combo table
// with a monotone formula: garbage grows roughly every other combo
// step, never decreasing.
func comboGarbage(combo int) float64 {
	if combo <= 0 {
		return 0
	}
	return float64((combo + 1) / 2)
}

func clamp(v, max int) int {
	if max >= 0 && v > max {
		return max
	}
	return v
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func intsToFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func int32sToFloats(v []int32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
