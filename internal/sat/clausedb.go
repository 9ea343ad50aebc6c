package sat

import "fmt"

// AddClause adds an original (non-learnt) clause at the root level,
// following the "every worker attaches every original clause directly"
// variant recommended by §9's Open Questions discussion. Tautologies and
// duplicate literals are removed, as is standard and as rhartert-yass's
// NewClause does for non-learnt clauses. Must only be called at decision
// level 0.
func (w *Worker) AddClause(lits []Literal) error {
	if w.DecisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, want 0", w.DecisionLevel())
	}

	buf := append([]Literal(nil), lits...)
	seen := make(map[Literal]struct{}, len(buf))
	size := len(buf)

	for i := size - 1; i >= 0; i-- {
		if _, ok := seen[buf[i].Opposite()]; ok {
			return nil // tautology: clause is trivially true, drop it
		}
		if _, ok := seen[buf[i]]; ok {
			size--
			buf[i], buf[size] = buf[size], buf[i]
			continue
		}
		seen[buf[i]] = struct{}{}

		switch w.LitValue(buf[i]) {
		case True:
			return nil // already satisfied at the root level
		case False:
			size--
			buf[i], buf[size] = buf[size], buf[i]
		}
	}
	buf = buf[:size]

	switch len(buf) {
	case 0:
		w.unsat = true
		return nil
	case 1:
		if !w.EnqueueImplication(buf[0], unitReason) {
			w.unsat = true
		}
		return nil
	case 2:
		w.attachBinary(buf[0], buf[1])
		return nil
	default:
		c := w.alloc.Alloc(buf, false)
		w.attachLong(c)
		w.constraints = append(w.constraints, c)
		return nil
	}
}

// record creates, attaches, shares, and enqueues a freshly learned clause
// (§4.5 step 8). The caller has already backtracked to the returned
// backjump level.
func (w *Worker) record(lits []Literal) {
	w.TotalLearned++

	if len(lits) == 1 {
		w.EnqueueImplication(lits[0], unitReason)
		w.station.ShareUnit(lits[0])
		return
	}

	if len(lits) == 2 {
		w.attachBinary(lits[0], lits[1])
		w.EnqueueImplication(lits[0], binaryReason(lits[1]))
		w.station.ShareBinary(lits[0], lits[1])
		return
	}

	// Move the literal at the backjump level into position 1 so the two
	// initial watches are the asserting literal and one literal at the
	// backjump level, as §4.5 step 8 asks for.
	maxLevel, maxIdx := int32(-1), 1
	for i := 1; i < len(lits); i++ {
		if lvl := w.level[lits[i].VarID()]; lvl > maxLevel {
			maxLevel = lvl
			maxIdx = i
		}
	}
	lits[1], lits[maxIdx] = lits[maxIdx], lits[1]

	c := w.alloc.Alloc(lits, true)
	w.attachLong(c)
	w.learnts = append(w.learnts, c)
	w.EnqueueImplication(c.Literals[0], clauseReason(c))
	w.station.ShareClause(c.Owner, c.Index, c.Literals)
}

// attachForeign attaches a clause shared by a peer, applying the six-case
// classification of §4.2's "attaching a foreign/learned clause" procedure.
// It is only called at a restart boundary, so the assignment is level 0.
// redundant reports that this worker keeps no reference to the clause's
// handle: the clause is satisfied, reduces to a unit that is enqueued at
// once, or has two literals and is attached as an implicit binary.
// conflicted reports that every literal of the clause is false.
func (w *Worker) attachForeign(fc ForeignClause) (redundant bool, conflicted bool) {
	lits := append([]Literal(nil), fc.Literals...)

	outcome, i0, i1 := w.classifyAttach(lits)
	if outcome == attachWatch && w.LitValue(lits[i0]) == True {
		outcome = attachSatisfied // a true literal at level 0 satisfies the clause for good
	}
	switch outcome {
	case attachSatisfied:
		return true, false
	case attachConflict:
		return false, true
	case attachImplied:
		lits[0], lits[i0] = lits[i0], lits[0]
		w.EnqueueImplication(lits[0], unitReason)
		return true, false
	default:
		w0, w1 := lits[i0], lits[i1]
		reordered := make([]Literal, 0, len(lits))
		reordered = append(reordered, w0, w1)
		for i, l := range lits {
			if i != i0 && i != i1 {
				reordered = append(reordered, l)
			}
		}
		lits = reordered

		if len(lits) == 2 {
			w.attachBinary(lits[0], lits[1])
			return true, false
		}

		c := &Clause{Owner: fc.Owner, Index: fc.Index, Learnt: true, Literals: lits}
		w.attachLong(c)
		w.learnts = append(w.learnts, c)
		return false, false
	}
}
