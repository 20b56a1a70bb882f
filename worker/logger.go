package worker

import "github.com/coldcore/coldcore/search"

// Step is one placement along a committed principal variation,
// re-exported so callers of this package don't need to import search
// just to implement Logger.
type Step = search.Step

// Logger observes the bot's background search, mirroring the teacher
// pack's engine.Logger (BeginSearch/EndSearch/PrintPV) renamed to this
// package's expansion-unit vocabulary (spec.md §4.5's "Expansion
// unit") instead of chess's iterative-deepening vocabulary.
type Logger interface {
	// BeginExpansion is called after an expansion thread has leased a
	// frontier node and before it expands it.
	BeginExpansion(nodeCount int)
	// EndExpansion is called after a node's children are created and
	// backed up.
	EndExpansion(result ExpansionReport)
	// PrintBestLine is called whenever a move is committed, with the
	// principal variation chosen.
	PrintBestLine(stats Stats, line []Step)
}

// ExpansionReport summarizes one completed expansion for the logger.
type ExpansionReport struct {
	NodesCreated int
	BecameDead   bool
}

// NulLogger discards everything, the default per the teacher's
// NulLogger.
type NulLogger struct{}

func (NulLogger) BeginExpansion(int)           {}
func (NulLogger) EndExpansion(ExpansionReport) {}
func (NulLogger) PrintBestLine(Stats, []Step)  {}
