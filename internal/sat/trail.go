package sat

// Trail is the ordered sequence of assigned variables, cursor-based per the
// canonical design chosen in §9: positions in [0, head) have been
// propagated, positions in [head, size) are queued for propagation.
// decisions[d] is the trail index of the decision that opened level d+1.
type Trail struct {
	vars      []int // variable IDs in assignment order
	head      int
	size      int
	decisions []int
}

func (t *Trail) push(v int) {
	if t.size == len(t.vars) {
		t.vars = append(t.vars, v)
	} else {
		t.vars[t.size] = v
	}
	t.size++
}

// Decide assigns lit to true as a new decision, opening a new decision
// level. Precondition: lit's variable is undefined.
func (w *Worker) Decide(lit Literal) {
	w.trail.decisions = append(w.trail.decisions, w.trail.size)
	w.assign(lit, decisionReason)
	w.TotalDecisions++
}

// EnqueueImplication assigns lit to true as implied by reason. If lit's
// variable is already defined, it returns true iff lit is already true
// (false signals a conflict; nothing is recorded, and the caller builds the
// conflict from the clause it was propagating). If undefined, it assigns lit
// and returns true.
func (w *Worker) EnqueueImplication(lit Literal, reason Reason) bool {
	if w.defined[lit.VarID()] {
		return w.LitValue(lit) == True
	}
	w.assign(lit, reason)
	return true
}

func (w *Worker) assign(lit Literal, reason Reason) {
	v := lit.VarID()
	w.defined[v] = true
	w.value[v] = lit.IsPositive()
	w.level[v] = int32(w.DecisionLevel())
	w.reason[v] = reason
	w.trail.push(v)
}

// Backtrack unassigns every variable at or after the trail position that
// opened level, and resets the propagation cursor to that position (§4.1).
// decisionLevel afterwards equals level.
func (w *Worker) Backtrack(level int) {
	if level >= w.DecisionLevel() {
		return
	}
	cut := w.trail.decisions[level]
	for i := w.trail.size - 1; i >= cut; i-- {
		v := w.trail.vars[i]
		w.vsids.Reinsert(v, Lift(w.value[v]))
		w.defined[v] = false
		w.reason[v] = Reason{}
		w.level[v] = -1
	}
	w.trail.size = cut
	w.trail.head = cut
	w.trail.decisions = w.trail.decisions[:level]
}

// trailLiteral returns the literal assigned at trail position i.
func (w *Worker) trailLiteral(i int) Literal {
	v := w.trail.vars[i]
	if w.value[v] {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}

// CurrentValue returns the literal form of variable v's current
// assignment; v must be defined.
func (w *Worker) CurrentValue(v int) Literal {
	if w.value[v] {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}
