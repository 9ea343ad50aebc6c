package sat

// Analyze performs 1-UIP conflict analysis with recursive minimization
// (§4.5). Precondition: c is the conflict just reported by Propagate and
// the current decision level is > 0 (level-0 conflicts are UNSAT and must
// be checked by the caller before calling Analyze).
//
// It returns the learned clause (asserting literal first) and the
// backjump level to which the caller should backtrack before recording
// it.
func (w *Worker) Analyze(c *conflict) ([]Literal, int) {
	w.seen.Clear()
	w.tmpLearnt = append(w.tmpLearnt[:0], LitNone)

	curLevel := w.DecisionLevel()
	counter := 0
	explain := c.explain
	nextIdx := w.trail.size - 1
	uipVar := -1

	for {
		for _, q := range explain {
			v := q.VarID()
			if w.seen.Contains(v) {
				continue
			}
			w.seen.Add(v)
			w.vsids.BumpScore(v)

			lvl := int(w.level[v])
			switch {
			case lvl == curLevel:
				counter++
			case lvl > 0:
				w.tmpLearnt = append(w.tmpLearnt, q.Opposite())
			default:
				// level-0 literals are excluded from the learned clause.
			}
		}

		var v int
		for {
			v = w.trail.vars[nextIdx]
			nextIdx--
			if w.seen.Contains(v) {
				break
			}
		}

		counter--
		if counter == 0 {
			uipVar = v
			break
		}
		explain = w.explainReason(v, w.reason[v])
	}

	w.tmpLearnt[0] = w.CurrentValue(uipVar).Opposite()

	learned := w.minimize(w.tmpLearnt)
	return learned, backjumpLevelOf(learned, w.level)
}

func backjumpLevelOf(learned []Literal, level []int32) int {
	max := 0
	for _, l := range learned[1:] {
		if lvl := int(level[l.VarID()]); lvl > max {
			max = lvl
		}
	}
	return max
}

// minimize implements §4.5 step 5: recursive self-subsumption
// minimization. A literal with a non-decision reason is dropped from the
// clause if every one of its antecedents, transitively, either already
// appears in the clause (is "seen") or sits at level 0; the abstract-level
// bitmask is a cheap necessary condition checked before paying for the
// full DFS.
func (w *Worker) minimize(learned []Literal) []Literal {
	if len(learned) <= 1 {
		return learned
	}

	var mask uint64
	for _, l := range learned[1:] {
		mask |= 1 << (uint(w.level[l.VarID()]) % 64)
	}

	out := learned[:1]
	for _, l := range learned[1:] {
		if !w.isRedundant(l, mask) {
			out = append(out, l)
		}
	}
	return out
}

func (w *Worker) isRedundant(lit Literal, mask uint64) bool {
	reason := w.reason[lit.VarID()]
	if reason.Kind == ReasonDecision || reason.Kind == ReasonUnit {
		return false
	}

	visited := w.seen.Clone()
	stack := append(w.minimizeStack[:0], lit)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		curReason := w.reason[cur.VarID()]
		if curReason.Kind == ReasonDecision {
			return false
		}

		for _, rl := range w.explainReason(cur.VarID(), curReason) {
			rv := rl.VarID()
			if visited.Contains(rv) || w.level[rv] == 0 {
				continue
			}
			if w.reason[rv].Kind == ReasonDecision {
				return false
			}
			bit := uint64(1) << (uint(w.level[rv]) % 64)
			if mask&bit == 0 {
				return false
			}
			visited.Add(rv)
			stack = append(stack, rl)
		}
	}

	w.minimizeStack = stack
	return true
}
