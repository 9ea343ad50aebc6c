package sat

import (
	"math/rand/v2"
	"testing"
)

// TestSolve_RandomThreeSATModelsSatisfyEveryClause generates random 3-SAT
// instances at the classic 4.2 clause/variable ratio (§8 "Property tests")
// and checks that whenever Solve reports SAT, the recorded model actually
// satisfies every clause that was added.
func TestSolve_RandomThreeSATModelsSatisfyEveryClause(t *testing.T) {
	const nVars = 40
	const ratio = 4.2
	nClauses := int(float64(nVars) * ratio)

	for trial := 0; trial < 20; trial++ {
		rng := rand.New(rand.NewPCG(uint64(trial), 0xabcdef))
		w := newTestWorker(nVars)

		clauses := make([][]Literal, 0, nClauses)
		for i := 0; i < nClauses; i++ {
			lits := make([]Literal, 3)
			seen := map[int]bool{}
			for j := 0; j < 3; j++ {
				v := rng.IntN(nVars)
				for seen[v] {
					v = rng.IntN(nVars)
				}
				seen[v] = true
				if rng.IntN(2) == 0 {
					lits[j] = PositiveLiteral(v)
				} else {
					lits[j] = NegativeLiteral(v)
				}
			}
			clauses = append(clauses, lits)
			mustAddClause(t, w, lits)
		}

		result := w.Solve()
		if result != ResultSAT {
			continue
		}

		model := w.Models[len(w.Models)-1]
		for _, c := range clauses {
			satisfied := false
			for _, l := range c {
				if model[l.VarID()] == l.IsPositive() {
					satisfied = true
					break
				}
			}
			if !satisfied {
				t.Fatalf("trial %d: model %v does not satisfy clause %v", trial, model, c)
			}
		}
	}
}

// TestSolve_RandomThreeSATUnsatVerdictsAgreeWithBruteForce generates random
// 3-SAT instances small enough to brute force (§8 "Property tests": "every
// UNSATISFIABLE verdict must agree with a reference solver") and checks that
// whenever Solve reports UNSAT, no assignment over all 2^nVars possibilities
// actually satisfies every clause.
func TestSolve_RandomThreeSATUnsatVerdictsAgreeWithBruteForce(t *testing.T) {
	const nVars = 14
	const ratio = 4.2
	nClauses := int(float64(nVars) * ratio)

	unsatSeen := 0
	for trial := 0; trial < 100; trial++ {
		rng := rand.New(rand.NewPCG(uint64(trial), 0x13572468))
		w := newTestWorker(nVars)

		clauses := make([][]Literal, 0, nClauses)
		for i := 0; i < nClauses; i++ {
			lits := make([]Literal, 3)
			seen := map[int]bool{}
			for j := 0; j < 3; j++ {
				v := rng.IntN(nVars)
				for seen[v] {
					v = rng.IntN(nVars)
				}
				seen[v] = true
				if rng.IntN(2) == 0 {
					lits[j] = PositiveLiteral(v)
				} else {
					lits[j] = NegativeLiteral(v)
				}
			}
			clauses = append(clauses, lits)
			mustAddClause(t, w, lits)
		}

		result := w.Solve()
		if result != ResultUNSAT {
			continue
		}
		unsatSeen++

		if assignment, ok := bruteForceSatisfy(nVars, clauses); ok {
			t.Fatalf("trial %d: Solve reported UNSAT but assignment %v satisfies every clause", trial, assignment)
		}
	}

	if unsatSeen == 0 {
		t.Skip("no UNSAT instance generated at this ratio/seed range; nothing to cross-check")
	}
}

// bruteForceSatisfy exhaustively searches all 2^nVars assignments for one
// that satisfies every clause, used as a ground-truth reference for small
// instances where a full search is tractable.
func bruteForceSatisfy(nVars int, clauses [][]Literal) ([]bool, bool) {
	assignment := make([]bool, nVars)
	total := 1 << nVars
	for mask := 0; mask < total; mask++ {
		for v := 0; v < nVars; v++ {
			assignment[v] = mask&(1<<v) != 0
		}
		if satisfiesAll(assignment, clauses) {
			return assignment, true
		}
	}
	return nil, false
}

func satisfiesAll(assignment []bool, clauses [][]Literal) bool {
	for _, c := range clauses {
		satisfied := false
		for _, l := range c {
			if assignment[l.VarID()] == l.IsPositive() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
