package eval

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/coldcore/coldcore/board"
)

// PCLoopMode selects how aggressively the search should chase a
// perfect clear, per spec.md §9's perfect-clear-loop design note.
type PCLoopMode int

const (
	// PCLoopOff never biases ranking towards a perfect clear.
	PCLoopOff PCLoopMode = iota
	// PCLoopFastest prefers the candidate reaching a perfect clear in
	// the fewest additional placements, breaking ties on BackedValue.
	PCLoopFastest
	// PCLoopAttack prefers the candidate maximizing combo garbage
	// accumulated on the way to a perfect clear, breaking ties on
	// BackedValue.
	PCLoopAttack
)

func (m PCLoopMode) String() string {
	switch m {
	case PCLoopOff:
		return "off"
	case PCLoopFastest:
		return "fastest"
	case PCLoopAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// ParsePCLoopMode parses the three accepted mode names.
func ParsePCLoopMode(s string) (PCLoopMode, error) {
	switch s {
	case "off":
		return PCLoopOff, nil
	case "fastest":
		return PCLoopFastest, nil
	case "attack":
		return PCLoopAttack, nil
	default:
		return 0, fmt.Errorf("eval: unknown pc-loop mode %q", s)
	}
}

// Candidate is one leaf of the search frontier under consideration for
// the current move, annotated with what the caller already knows
// about its path towards a perfect clear. AdditionalMoves and
// ComboGarbageSoFar are supplied by the search tree (this package has
// no visibility past a single placement); a negative AdditionalMoves
// means no perfect clear was found on this candidate's line at all.
type Candidate struct {
	Placement         board.Placement
	BackedValue       float64
	AdditionalMoves   int
	ComboGarbageSoFar int
}

// isNearPC reports whether c is "on a perfect-clear line": its own
// placement is a perfect clear, or the search tree's lookahead found
// one on its line (AdditionalMoves >= 0). The board itself is not
// inspected.
func isNearPC(c Candidate) bool {
	return c.Placement.Perfect || c.AdditionalMoves >= 0
}

// Less reports whether a should sort before b under mode. Exported so
// callers that can't afford to shuffle a []Candidate just to learn an
// order (e.g. search, which needs to keep each Candidate paired with
// the tree handle it came from) can drive the same comparison used by
// Rank.
func Less(mode PCLoopMode, a, b Candidate) bool {
	switch mode {
	case PCLoopFastest:
		an, bn := isNearPC(a), isNearPC(b)
		if an != bn {
			return an
		}
		if an && a.AdditionalMoves != b.AdditionalMoves {
			return a.AdditionalMoves < b.AdditionalMoves
		}
		return a.BackedValue > b.BackedValue
	case PCLoopAttack:
		an, bn := isNearPC(a), isNearPC(b)
		if an != bn {
			return an
		}
		if an && a.ComboGarbageSoFar != b.ComboGarbageSoFar {
			return a.ComboGarbageSoFar > b.ComboGarbageSoFar
		}
		return a.BackedValue > b.BackedValue
	default:
		return a.BackedValue > b.BackedValue
	}
}

// Rank reorders cands by mode, most preferred first. PCLoopOff (or a
// set of candidates none of which are ever near a perfect clear) just
// sorts by BackedValue descending.
func Rank(mode PCLoopMode, cands []Candidate) []Candidate {
	out := append([]Candidate(nil), cands...)
	slices.SortFunc(out, func(a, b Candidate) bool { return Less(mode, a, b) })
	return out
}
