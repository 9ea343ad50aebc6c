package sat

// Result is the outcome of a worker's search.
type Result int8

const (
	ResultUnknown Result = iota
	ResultSAT
	ResultUNSAT
)

// SetKeepGoing enables model enumeration (§6 --keep-going, §8 scenario 6):
// on finding a model, the worker blocks it with a new clause (the
// negation of the full assignment, see blockCurrentModel) and keeps searching instead of
// stopping.
func (w *Worker) SetKeepGoing(v bool) {
	w.keepGoing = v
}

// Solve runs the worker loop to completion: decide → propagate →
// on-conflict analyze → backjump, with restarts, reduction, simplification
// and peer-message exchange at restart boundaries (§2 "Data flow inside a
// worker"), until a verdict is reached or a peer sets the shared exit
// flag.
func (w *Worker) Solve() Result {
	for {
		if w.shouldExit() {
			return ResultUnknown
		}

		conf := w.Propagate()
		if conf != nil {
			w.TotalConflicts++
			w.conflictsThisRun++
			w.plugin.OnConflict(w)

			if w.DecisionLevel() == 0 {
				if w.keepGoing && len(w.Models) > 0 {
					// Every model has now been blocked and ruled out: this
					// is exhaustion, not unsatisfiability of the original
					// formula (§8 scenario 6).
					return ResultSAT
				}
				w.unsat = true
				return ResultUNSAT
			}

			learned, backjump := w.Analyze(conf)
			w.plugin.OnLearn(w, learned)
			w.Backtrack(backjump)
			w.record(learned)

			w.vsids.Decay()
			w.decayClauseActivity()

			if w.restart.Tick() {
				if !w.doRestart() {
					if w.keepGoing && len(w.Models) > 0 {
						w.unsat = false
						return ResultSAT // every model has been blocked; see the level-0 case above
					}
					return ResultUNSAT
				}
			}
			continue
		}

		if w.Complete() {
			w.saveModel()
			if !w.keepGoing {
				return ResultSAT
			}
			if !w.blockCurrentModel() {
				return ResultSAT // exhausted: every model has been enumerated
			}
			continue
		}

		if len(w.learnts) > len(w.constraints)+1000 {
			w.ReduceDB()
		}

		lit := w.NextDecision()
		w.Decide(lit)
	}
}

// doRestart backtracks to level 0, reduces the learnt clause database,
// ingests pending peer messages, and re-simplifies (§4.6). It returns false
// if the instance was found UNSAT in the process.
func (w *Worker) doRestart() bool {
	w.TotalRestarts++
	w.plugin.OnRestart(w)
	w.Backtrack(0)
	w.ReduceDB()
	w.ingestPeerMessages()
	w.station.Flush()
	return w.Simplify()
}

// ingestPeerMessages integrates everything peers have shared since the
// last restart boundary (§4.8): units and binaries are attached and
// propagated; long clauses are attached unless redundant given level-0
// knowledge, in which case the owner is notified to detach them.
func (w *Worker) ingestPeerMessages() {
	for _, msg := range w.station.Ingest() {
		for _, lit := range msg.Units {
			w.EnqueueImplication(lit, unitReason)
		}
		for _, b := range msg.Binaries {
			if w.LitValue(b[0]) != True && w.LitValue(b[1]) != True {
				w.attachBinary(b[0], b[1])
			}
		}
		for _, fc := range msg.Clauses {
			redundant, conflicted := w.attachForeign(fc)
			if conflicted {
				w.unsat = true
			}
			if redundant {
				w.station.Detach(fc.Owner, fc.Index)
			}
		}
		for _, idx := range msg.DetachOwn {
			w.alloc.Detach(idx)
		}
	}

	if w.Propagate() != nil {
		w.unsat = true
	}
}

// saveModel records the current full assignment as a model.
func (w *Worker) saveModel() {
	model := make([]bool, w.NumVariables())
	for v := range model {
		model[v] = w.value[v]
	}
	w.Models = append(w.Models, model)
}

// blockCurrentModel adds a clause excluding the exact assignment just
// found, so that enumeration (--keep-going) finds a different one next.
// It returns false once no further model can exist (the blocking clause
// itself becomes empty or immediately conflicting at level 0).
func (w *Worker) blockCurrentModel() bool {
	w.Backtrack(0)
	block := make([]Literal, w.NumVariables())
	for v := range block {
		if w.value[v] {
			block[v] = NegativeLiteral(v)
		} else {
			block[v] = PositiveLiteral(v)
		}
	}
	if err := w.AddClause(block); err != nil {
		return false
	}
	if w.unsat {
		// Not a real UNSAT verdict: it only means every model has now been
		// blocked out, which is exhaustion of the enumeration, not a
		// property of the original formula.
		w.unsat = false
		return false
	}
	return w.Propagate() == nil
}
