package sat

import "sort"

// ReduceDB implements the reduce-by-size policy (§4.6), ported from
// original_source/reduce_size.hh: learned clauses of size >= ReduceKeep
// are sorted by size and the larger half is detached, except for clauses
// that are currently locked (somebody's reason) which are always kept
// regardless of size.
func (w *Worker) ReduceDB() {
	keep := w.opts.ReduceKeep

	sort.Slice(w.learnts, func(i, j int) bool {
		return len(w.learnts[i].Literals) > len(w.learnts[j].Literals)
	})

	half := len(w.learnts) / 2
	j := 0
	for i, c := range w.learnts {
		if c.Protected {
			c.Protected = false // spared for this round only
		} else if i < half && len(c.Literals) >= keep && !w.locked(c) {
			w.detachLearnt(c)
			continue
		}
		w.learnts[j] = c
		j++
	}
	w.learnts = w.learnts[:j]
}

// detachLearnt removes a clause's watches and runs the refcount protocol
// of §4.3: if this worker owns the clause, the allocator entry is
// decremented (and freed at zero) directly; otherwise a detach
// notification is queued for the owner.
func (w *Worker) detachLearnt(c *Clause) {
	w.detachLong(c)
	if c.Owner == w.ID {
		w.alloc.Detach(c.Index)
	} else {
		w.station.Detach(c.Owner, c.Index)
	}
}
