package sat

// Prober drives failed-literal probing (§4.7): ported from
// original_source/simplify_failed_literal_probing.hh. On every call to
// Simplify, a random subset of variables (about N/NumWorkers when running
// with peers, N/ProbeFraction when running alone, per §4.7) is probed at
// both polarities; a polarity that leads to conflict is itself a level-0
// fact.
type Prober struct {
	fraction int
}

// NewProber returns a prober sized to probe roughly 1/fraction of the
// variables per call when running without peers.
func NewProber(fraction int) *Prober {
	if fraction <= 0 {
		fraction = 100
	}
	return &Prober{fraction: fraction}
}

// Simplify runs root-level clause-database compaction (removing clauses
// already satisfied at level 0, mirroring rhartert-yass's Solver.Simplify)
// followed by failed-literal probing (§4.7). Precondition: decision level
// 0. Returns false if the instance was found UNSAT.
func (w *Worker) Simplify() bool {
	if w.DecisionLevel() != 0 {
		panic("sat: Simplify called above decision level 0")
	}

	if w.unsat {
		return false
	}
	if c := w.Propagate(); c != nil {
		w.unsat = true
		return false
	}

	w.compactConstraints()
	if !w.probe.run(w) {
		w.unsat = true
		return false
	}
	return true
}

// compactConstraints removes clauses already satisfied at the root level
// from the learnt and original clause lists, as rhartert-yass's
// simplifyPtr does.
func (w *Worker) compactConstraints() {
	w.learnts = w.compactList(w.learnts)
	w.constraints = w.compactList(w.constraints)
}

func (w *Worker) compactList(clauses []*Clause) []*Clause {
	j := 0
	for _, c := range clauses {
		satisfied := false
		keep := c.Literals[:0:0]
		for _, l := range c.Literals {
			switch w.LitValue(l) {
			case True:
				satisfied = true
			case Unknown:
				keep = append(keep, l)
			}
		}
		if satisfied {
			w.detachLong(c)
			continue
		}
		c.Literals = append(c.Literals[:0], keep...)
		clauses[j] = c
		j++
	}
	return clauses[:j]
}

// run probes a random subset of undefined variables at both polarities
// (§4.7): for each, a level-1 decision is made and propagated; a conflict
// is resolved with 1-UIP analysis, which at level 1 always yields either a
// level-0 unit or a level-0 contradiction, after which search returns to
// level 0 and the next candidate is probed.
func (p *Prober) run(w *Worker) bool {
	n := w.NumVariables()
	if n == 0 {
		return true
	}
	count := n / p.fraction
	if w.NumWorkers > 1 {
		if c := n / w.NumWorkers; c > count {
			count = c
		}
	}
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		v := w.rng.IntN(n)
		for _, lit := range [2]Literal{PositiveLiteral(v), NegativeLiteral(v)} {
			if w.defined[v] {
				continue
			}
			w.Decide(lit)
			if conf := w.Propagate(); conf != nil {
				learned, _ := w.Analyze(conf)
				w.Backtrack(0)
				if len(learned) == 0 {
					return false
				}
				w.record(learned)
				if c := w.Propagate(); c != nil {
					return false
				}
			} else {
				w.Backtrack(0)
			}
		}
	}
	return true
}
