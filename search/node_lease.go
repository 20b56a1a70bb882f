package search

// TryLease marks n busy if it wasn't already, for the duration of one
// expansion thread's work on it (spec.md §4.6: "a node under
// expansion is marked busy"). It reports whether the lease was
// acquired.
func (n *Node) TryLease() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.busy {
		return false
	}
	n.busy = true
	return true
}

// Release clears the busy flag set by TryLease.
func (n *Node) Release() {
	n.mu.Lock()
	n.busy = false
	n.mu.Unlock()
}
