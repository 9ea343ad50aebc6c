package sat

// conflict carries everything analyze needs to seed the 1-UIP walk: the
// initial set of "true" literals that explain the contradiction (see the
// doc comment on explainReason for why this set is expressed as true
// literals rather than the clause's own, necessarily-false, literals).
type conflict struct {
	explain []Literal
}

// Propagate drains the trail from its propagation cursor to its end,
// walking the watchlist of each newly-true literal and waking the clauses
// that watch its negation (§4.2). It returns the conflict, if any; nil
// means every queued literal was propagated without contradiction.
//
// Propagate is idempotent: with nothing new on the trail since the last
// call, the cursor already equals the trail size and the loop below does
// nothing.
func (w *Worker) Propagate() *conflict {
	for w.trail.head < w.trail.size {
		l := w.trailLiteral(w.trail.head)
		w.trail.head++
		w.TotalPropagations++

		if c := w.propagateBinary(l); c != nil {
			return c
		}
		if c := w.propagateLong(l); c != nil {
			return c
		}
	}
	return nil
}

func (w *Worker) propagateBinary(l Literal) *conflict {
	partners := w.watchBin[l]
	for _, p := range partners {
		switch w.LitValue(p) {
		case True:
			continue
		case False:
			return &conflict{explain: []Literal{l, p.Opposite()}}
		default:
			w.EnqueueImplication(p, binaryReason(l.Opposite()))
		}
	}
	return nil
}

// propagateLong scans the watchlist of l (clauses watching l's negation),
// compacting it in place as it goes so satisfied/relocated entries never
// need a second pass — the in-place, order-preserving compaction plays the role the spec's
// prefetch-hint contract is aiming for: the watchlist for l is never
// touched twice in the same Propagate call.
func (w *Worker) propagateLong(l Literal) *conflict {
	list := w.watchLong[l]
	keep := 0

	for i := 0; i < len(list); i++ {
		wch := list[i]

		if w.LitValue(wch.guard) == True {
			list[keep] = wch
			keep++
			continue
		}

		if ok := w.propagateClauseWatch(wch.clause, l); ok {
			continue // the clause itself re-registered its new watch
		}

		// Conflict: keep the remaining, not-yet-examined watchers so the
		// watchlist stays consistent, and report the conflict.
		for j := i + 1; j < len(list); j++ {
			list[keep] = list[j]
			keep++
		}
		// Watches re-registered on l during the scan were appended past
		// the end of list; carry them into the compacted list.
		w.watchLong[l] = append(list[:keep], w.watchLong[l][len(list):]...)
		return &conflict{explain: explainClauseFailure(wch.clause)}
	}

	w.watchLong[l] = append(list[:keep], w.watchLong[l][len(list):]...)
	return nil
}

// propagateClauseWatch is woken because l, the negation of one of c's two
// watched literals, has just become true. It tries to find a replacement
// watch (§4.2 step 2); failing that, the other watched literal is implied
// (§4.2 step 3). It returns false on conflict. On success the clause's new
// watch has already been registered in the appropriate watchlist(s); the
// caller must not re-add l's old entry.
func (w *Worker) propagateClauseWatch(c *Clause, l Literal) bool {
	opp := l.Opposite()
	if c.Literals[0] == opp {
		c.Literals[0], c.Literals[1] = c.Literals[1], c.Literals[0]
	}

	if w.LitValue(c.Literals[0]) == True {
		w.addLongWatcher(l, c, c.Literals[0])
		return true
	}

	for i := 2; i < len(c.Literals); i++ {
		if w.LitValue(c.Literals[i]) != False {
			c.Literals[1], c.Literals[i] = c.Literals[i], c.Literals[1]
			w.addLongWatcher(c.Literals[1].Opposite(), c, c.Literals[0])
			return true
		}
	}

	w.addLongWatcher(l, c, c.Literals[0])
	return w.EnqueueImplication(c.Literals[0], clauseReason(c))
}

// explainClauseFailure returns the negation of every literal of c, used
// to seed analysis when c itself is the conflicting clause (all of its
// literals are currently false).
func explainClauseFailure(c *Clause) []Literal {
	out := make([]Literal, len(c.Literals))
	for i, l := range c.Literals {
		out[i] = l.Opposite()
	}
	return out
}

// explainReason returns the set of currently-true literals that justify
// variable v's assignment via reason, excluding v's own literal. Every
// explain function in this engine (both this one and the conflict-site
// ones above) returns *true* literals rather than the clause's raw
// (necessarily false, for a reason) literals: negating twice hands back
// the original, false, clause literal when it's appended to a learned
// clause, which is exactly the form the learned clause needs it in.
func (w *Worker) explainReason(v int, reason Reason) []Literal {
	switch reason.Kind {
	case ReasonBinary:
		return []Literal{reason.Lit.Opposite()}
	case ReasonClause:
		c := reason.Clause
		own := w.CurrentValue(v)
		buf := w.explainBuf[:0]
		for _, lit := range c.Literals {
			if lit == own {
				continue
			}
			buf = append(buf, lit.Opposite())
		}
		w.explainBuf = buf
		if c.Learnt {
			w.bumpClauseActivity(c)
		}
		return buf
	default:
		panic("sat: explainReason called on a decision")
	}
}
