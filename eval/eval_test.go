package eval

import (
	"testing"

	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/piece"
)

func TestWeightsValidate(t *testing.T) {
	w := Weights{MaxWellDepth: -1}
	if err := w.Validate(); err == nil {
		t.Fatalf("expected error for negative MaxWellDepth")
	}

	w = Weights{WellDepth: 1}
	if err := w.Validate(); err == nil {
		t.Fatalf("expected error for WellDepth weighted with MaxWellDepth == 0")
	}

	w = Weights{WellDepth: 1, MaxWellDepth: 5}
	if err := w.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStaticValueEmptyBoardIsNeutral(t *testing.T) {
	b := board.New()
	w := Weights{Height: -1, Bumpiness: -1, CoveredCells: -10}
	if got := StaticValue(b, w, 7, 0); got != 0 {
		t.Fatalf("StaticValue(empty board) = %v, want 0", got)
	}
}

func TestStaticValuePenalizesHeight(t *testing.T) {
	w := Weights{Height: -1}

	empty := board.New()
	var fields [board.Width * board.TotalHeight]bool
	for x := 0; x < board.Width; x++ {
		fields[x] = true
	}
	flat := board.FromFields(fields)

	if got, base := StaticValue(flat, w, 0, 0), StaticValue(empty, w, 0, 0); got >= base {
		t.Fatalf("StaticValue(flat) = %v, want < StaticValue(empty) = %v", got, base)
	}
}

func TestStaticValueMaxWellDepthClampsContribution(t *testing.T) {
	var fields [board.Width * board.TotalHeight]bool
	for y := 0; y < 4; y++ {
		for x := 1; x < board.Width; x++ {
			fields[y*board.Width+x] = true
		}
	}
	b := board.FromFields(fields)
	w1 := Weights{WellDepth: -1, MaxWellDepth: 1}
	w4 := Weights{WellDepth: -1, MaxWellDepth: 4}

	v1 := StaticValue(b, w1, 0, 0)
	v4 := StaticValue(b, w4, 0, 0)
	if v1 <= v4 {
		t.Fatalf("clamped well penalty (%v) should be smaller in magnitude than unclamped (%v)", v1, v4)
	}
}

func TestTransitionRewardClears(t *testing.T) {
	w := Weights{Clear1: 1, Clear4: 10, Tspin3: 100, B2BClear: 5, MoveTime: 1}

	single := board.Placement{Cleared: []int{0}}
	if got := TransitionReward(w, single, 3); got != 1-3 {
		t.Fatalf("single clear reward = %v, want %v", got, 1-3)
	}

	tetris := board.Placement{Cleared: []int{0, 1, 2, 3}, B2B: true}
	if got := TransitionReward(w, tetris, 0); got != 15 {
		t.Fatalf("tetris+B2B reward = %v, want 15", got)
	}

	tspinTriple := board.Placement{Kind: piece.T, Cleared: []int{0, 1, 2}, Spin: board.SpinFull}
	if got := TransitionReward(w, tspinTriple, 0); got != 100 {
		t.Fatalf("T-spin triple reward = %v, want 100", got)
	}
}

func TestTransitionRewardWastedT(t *testing.T) {
	w := Weights{WastedT: 7}

	noSpin := board.Placement{Kind: piece.T, Spin: board.SpinNone}
	if got := TransitionReward(w, noSpin, 0); got != -7 {
		t.Fatalf("wasted T reward = %v, want -7", got)
	}

	spun := board.Placement{Kind: piece.T, Spin: board.SpinMini}
	if got := TransitionReward(w, spun, 0); got != 0 {
		t.Fatalf("spun T reward = %v, want 0", got)
	}
}

func TestTransitionRewardPerfectClearGatesComboGarbage(t *testing.T) {
	w := Weights{ComboGarbage: 1, PerfectClear: 50}

	pcWithoutStackDamage := board.Placement{Perfect: true, Combo: 3}
	if got := TransitionReward(w, pcWithoutStackDamage, 0); got != 50 {
		t.Fatalf("reward = %v, want 50 (combo garbage suppressed on PC without StackPCDamage)", got)
	}

	w.StackPCDamage = true
	if got := TransitionReward(w, pcWithoutStackDamage, 0); got <= 50 {
		t.Fatalf("reward = %v, want > 50 once StackPCDamage allows combo garbage through", got)
	}
}

func TestRankFastestPrefersFewerAdditionalMoves(t *testing.T) {
	cands := []Candidate{
		{BackedValue: 10, AdditionalMoves: 3},
		{BackedValue: 1, AdditionalMoves: 1},
	}
	ranked := Rank(PCLoopFastest, cands)
	if ranked[0].AdditionalMoves != 1 {
		t.Fatalf("PCLoopFastest should prefer the fewer-move candidate first, got %+v", ranked[0])
	}
}

func TestRankAttackPrefersMoreComboGarbage(t *testing.T) {
	cands := []Candidate{
		{BackedValue: 10, AdditionalMoves: 2, ComboGarbageSoFar: 1},
		{BackedValue: 1, AdditionalMoves: 2, ComboGarbageSoFar: 5},
	}
	ranked := Rank(PCLoopAttack, cands)
	if ranked[0].ComboGarbageSoFar != 5 {
		t.Fatalf("PCLoopAttack should prefer the higher combo-garbage candidate first, got %+v", ranked[0])
	}
}

func TestRankOffSortsByBackedValue(t *testing.T) {
	cands := []Candidate{
		{BackedValue: 1},
		{BackedValue: 9},
		{BackedValue: 4},
	}
	ranked := Rank(PCLoopOff, cands)
	for i := 1; i < len(ranked); i++ {
		if ranked[i].BackedValue > ranked[i-1].BackedValue {
			t.Fatalf("Rank(PCLoopOff) not sorted descending: %+v", ranked)
		}
	}
}

func TestParsePCLoopMode(t *testing.T) {
	for _, name := range []string{"off", "fastest", "attack"} {
		if _, err := ParsePCLoopMode(name); err != nil {
			t.Errorf("ParsePCLoopMode(%q): %v", name, err)
		}
	}
	if _, err := ParsePCLoopMode("bogus"); err == nil {
		t.Errorf("expected error for unknown mode name")
	}
}
