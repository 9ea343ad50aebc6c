package sat

import "testing"

// TestAnalyze_LearnsAssertingClauseAtDeepestConflict drives a small chain
// of implications into a conflict and checks the invariants of §8: the
// asserting literal sits first and at the deepest level in the clause,
// and minimization never drops it or enlarges the clause.
func TestAnalyze_LearnsAssertingClauseAtDeepestConflict(t *testing.T) {
	w := newTestWorker(3)
	// (!a v !b v c) and (!a v !b v !c): deciding a and b true leaves c
	// forced true by the first clause and immediately conflicting with the
	// second, a two-decision-level conflict with one implied literal.
	mustAddClause(t, w, []Literal{NegativeLiteral(0), NegativeLiteral(1), PositiveLiteral(2)})
	mustAddClause(t, w, []Literal{NegativeLiteral(0), NegativeLiteral(1), NegativeLiteral(2)})

	w.Decide(PositiveLiteral(0))
	if conf := w.Propagate(); conf != nil {
		t.Fatalf("unexpected conflict after first decision")
	}
	w.Decide(PositiveLiteral(1))
	conf := w.Propagate()
	if conf == nil {
		t.Fatalf("expected a conflict after deciding variable 1")
	}

	learned, backjump := w.Analyze(conf)
	if len(learned) == 0 {
		t.Fatalf("Analyze() returned an empty clause")
	}

	assertingVar := learned[0].VarID()
	assertingLevel := w.level[assertingVar]
	for _, l := range learned[1:] {
		if w.level[l.VarID()] > assertingLevel {
			t.Errorf("asserting literal is not at the deepest level: %v at %d vs %v at %d",
				learned[0], assertingLevel, l, w.level[l.VarID()])
		}
	}
	if backjump >= w.DecisionLevel() {
		t.Errorf("backjump level %d should be below the conflict's decision level %d", backjump, w.DecisionLevel())
	}
}

func TestMinimize_NeverDropsAssertingLiteralOrEnlarges(t *testing.T) {
	w := newTestWorker(2)
	learned := []Literal{PositiveLiteral(0), NegativeLiteral(1)}
	w.level[0] = 2
	w.level[1] = 1
	w.reason[1] = decisionReason // a decision can never be minimized away

	out := w.minimize(append([]Literal(nil), learned...))

	if len(out) > len(learned) {
		t.Fatalf("minimize() enlarged the clause: %v -> %v", learned, out)
	}
	if out[0] != learned[0] {
		t.Errorf("minimize() changed the asserting literal: got %v, want %v", out[0], learned[0])
	}
}
