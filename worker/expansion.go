package worker

// expansionLoop is one of Options.Threads background goroutines
// cooperating over the shared tree, per spec.md §4.6: "Threads
// cooperate by leasing frontier nodes... After expansion the node is
// unmarked and its ancestors' backed-up values are updated." Panics
// are isolated here (spec.md §9's "Panic/failure isolation") rather
// than at the tree or command-handling layer, since this is the only
// place untrusted per-node work runs unsupervised.
func (b *Bot) expansionLoop() {
	defer b.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			b.mu.Lock()
			b.dead = true
			b.cond.Broadcast()
			b.mu.Unlock()
		}
	}()

	for {
		b.mu.Lock()
		for !b.terminated && !b.dead && b.totalExpanded >= b.opts.MaxNodes {
			b.cond.Wait()
		}
		terminated, dead := b.terminated, b.dead
		b.mu.Unlock()
		if terminated || dead {
			return
		}

		h := b.tree.SelectFrontier()
		if !h.Valid() {
			b.mu.Lock()
			if !b.terminated && !b.dead {
				b.cond.Wait()
			}
			b.mu.Unlock()
			continue
		}

		node := b.tree.Node(h)
		if !node.TryLease() {
			b.stats.recordBusyMiss()
			continue
		}

		b.logger.BeginExpansion(b.tree.NodeCount())
		res := b.tree.Expand(h)
		node.Release()
		b.logger.EndExpansion(ExpansionReport{NodesCreated: res.NodesCreated, BecameDead: res.BecameDead})

		b.mu.Lock()
		b.totalExpanded += res.NodesCreated
		b.stats.recordExpansion(res.NodesCreated)
		if b.tree.Node(b.tree.Root()).Dead() {
			b.dead = true
		}
		b.maybeAnswerLocked()
		b.cond.Broadcast()
		b.mu.Unlock()
	}
}
