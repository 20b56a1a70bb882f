package main

import (
	"fmt"

	"github.com/coldcore/coldcore/worker"
)

// stdoutLogger mirrors the teacher's uciLogger: it prints one line
// for each expansion that leaves a dead node (other expansions print
// nothing) and one line per committed move, instead of UCI's
// "info"/"bestmove" vocabulary.
type stdoutLogger struct{}

func (stdoutLogger) BeginExpansion(nodeCount int) {}

func (stdoutLogger) EndExpansion(r worker.ExpansionReport) {
	if r.BecameDead {
		fmt.Println("info string expansion produced a dead node")
	}
}

func (stdoutLogger) PrintBestLine(stats worker.Stats, line []worker.Step) {
	fmt.Printf("info string committed move after %d nodes, %d-step plan\n", stats.NodesExpanded(), len(line))
}
