package worker

import "sync/atomic"

// Stats stores live diagnostics about the bot's background search,
// mirroring the teacher pack's engine.Stats (a plain counters struct
// read by the logger and by diagnostics callers).
type Stats struct {
	nodesExpanded uint64
	movesAnswered uint64
	expansionsBusyMiss uint64
}

func (s *Stats) recordExpansion(created int) {
	atomic.AddUint64(&s.nodesExpanded, uint64(created))
}

func (s *Stats) recordMoveAnswered() {
	atomic.AddUint64(&s.movesAnswered, 1)
}

func (s *Stats) recordBusyMiss() {
	atomic.AddUint64(&s.expansionsBusyMiss, 1)
}

// NodesExpanded returns the total number of nodes created across the
// bot's lifetime (survives root advancement; does not survive reset).
func (s *Stats) NodesExpanded() uint64 {
	return atomic.LoadUint64(&s.nodesExpanded)
}

// MovesAnswered returns how many request_next_move calls have been
// answered.
func (s *Stats) MovesAnswered() uint64 {
	return atomic.LoadUint64(&s.movesAnswered)
}

// reset zeroes the counters, called on a barrier reset.
func (s *Stats) reset() {
	atomic.StoreUint64(&s.nodesExpanded, 0)
	atomic.StoreUint64(&s.movesAnswered, 0)
	atomic.StoreUint64(&s.expansionsBusyMiss, 0)
}
