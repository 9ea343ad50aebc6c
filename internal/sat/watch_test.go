package sat

import "testing"

func TestClassifyAttach_TwoTrueLiterals(t *testing.T) {
	w := newTestWorker(4)
	mustAddClause(t, w, []Literal{PositiveLiteral(0)})
	mustAddClause(t, w, []Literal{PositiveLiteral(1)})
	w.Propagate()

	lits := []Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)}
	outcome, i0, i1 := w.classifyAttach(lits)
	if outcome != attachWatch {
		t.Fatalf("outcome = %v, want attachWatch", outcome)
	}
	if lits[i0].VarID() == 2 || lits[i1].VarID() == 2 {
		t.Errorf("watched pair should be the two true literals, got indices %d,%d", i0, i1)
	}
}

func TestClassifyAttach_TrueAndUndefined(t *testing.T) {
	w := newTestWorker(4)
	mustAddClause(t, w, []Literal{PositiveLiteral(0)})
	w.Propagate()

	lits := []Literal{PositiveLiteral(1), PositiveLiteral(0), PositiveLiteral(2)}
	outcome, i0, i1 := w.classifyAttach(lits)
	if outcome != attachWatch {
		t.Fatalf("outcome = %v, want attachWatch", outcome)
	}
	if i0 != 1 && i1 != 1 {
		t.Errorf("the true literal (index 1) should be part of the watched pair, got %d,%d", i0, i1)
	}
}

func TestClassifyAttach_TwoUndefined(t *testing.T) {
	w := newTestWorker(3)
	lits := []Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)}
	outcome, _, _ := w.classifyAttach(lits)
	if outcome != attachWatch {
		t.Fatalf("outcome = %v, want attachWatch", outcome)
	}
}

func TestClassifyAttach_OneTrueRestFalse(t *testing.T) {
	w := newTestWorker(3)
	mustAddClause(t, w, []Literal{PositiveLiteral(0)})
	mustAddClause(t, w, []Literal{NegativeLiteral(1)})
	mustAddClause(t, w, []Literal{NegativeLiteral(2)})
	w.Propagate()

	lits := []Literal{PositiveLiteral(1), PositiveLiteral(2), PositiveLiteral(0)}
	outcome, i0, i1 := w.classifyAttach(lits)
	if outcome != attachWatch {
		t.Fatalf("outcome = %v, want attachWatch", outcome)
	}
	if i0 != 2 && i1 != 2 {
		t.Errorf("the true literal must be part of the watched pair, got %d,%d", i0, i1)
	}
}

func TestClassifyAttach_OneUndefinedRestFalseIsImplied(t *testing.T) {
	w := newTestWorker(3)
	mustAddClause(t, w, []Literal{NegativeLiteral(0)})
	mustAddClause(t, w, []Literal{NegativeLiteral(1)})
	w.Propagate()

	lits := []Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)}
	outcome, i0, _ := w.classifyAttach(lits)
	if outcome != attachImplied {
		t.Fatalf("outcome = %v, want attachImplied", outcome)
	}
	if i0 != 2 {
		t.Errorf("implied index = %d, want 2 (the only undefined literal)", i0)
	}
}

func TestClassifyAttach_AllFalseIsConflict(t *testing.T) {
	w := newTestWorker(2)
	mustAddClause(t, w, []Literal{NegativeLiteral(0)})
	mustAddClause(t, w, []Literal{NegativeLiteral(1)})
	w.Propagate()

	lits := []Literal{PositiveLiteral(0), PositiveLiteral(1)}
	outcome, _, _ := w.classifyAttach(lits)
	if outcome != attachConflict {
		t.Fatalf("outcome = %v, want attachConflict", outcome)
	}
}

func TestLocked_ReportsClauseCurrentlyServingAsReason(t *testing.T) {
	w := newTestWorker(3)
	c := addLearnt(w, []Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)})

	if w.locked(c) {
		t.Fatalf("locked() = true before the clause is anyone's reason")
	}

	w.defined[0] = true
	w.reason[0] = clauseReason(c)
	if !w.locked(c) {
		t.Errorf("locked() = false while c is variable 0's reason")
	}
}
