package sat

// NumConstraints returns the number of original (non-learnt) long clauses.
func (w *Worker) NumConstraints() int {
	return len(w.constraints)
}

// NumLearnts returns the number of currently-attached learnt clauses.
func (w *Worker) NumLearnts() int {
	return len(w.learnts)
}

// Unsat reports whether the worker has proven the instance unsatisfiable.
func (w *Worker) Unsat() bool {
	return w.unsat
}

// Value returns the final boolean value assigned to variable v in the
// worker's current (complete) assignment. Only meaningful after Solve
// returns ResultSAT.
func (w *Worker) Value(v int) bool {
	return w.value[v]
}
