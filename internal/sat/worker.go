// Package sat implements the per-worker CDCL engine: assignment trail,
// two-watched-literal propagation, 1-UIP conflict analysis with recursive
// minimization, VSIDS variable selection, Luby restarts, learned-clause
// reduction, and failed-literal probing. A Worker is the whole of one
// independent search; the driver package runs many of them in parallel and
// wires them together with the mailbox package.
package sat

import (
	"math/rand/v2"
	"sync/atomic"
)

// watcher is a long clause attached to the watchlist of the literal whose
// negation it watches. Guard is the clause's other watched literal; if it
// is already true the clause cannot possibly be unit or conflicting and the
// propagator can skip loading it.
type watcher struct {
	clause *Clause
	guard  Literal
}

// Options configures the tunables of a Worker's search. Field names and
// defaults mirror rhartert-yass's Options/DefaultOptions.
type Options struct {
	VarDecay      float64
	ClauseDecay   float64
	PhaseSaving   bool
	RestartBase   int // the "f" factor in f*luby(i), §4.6
	ReduceKeep    int // clauses smaller than this are never reduced away
	ProbeFraction int // 1/ProbeFraction of variables probed per simplify call when running solo
}

// DefaultOptions matches the constants named in spec.md §4.4/§4.6/§4.7.
var DefaultOptions = Options{
	VarDecay:      0.95,
	ClauseDecay:   0.999,
	PhaseSaving:   true,
	RestartBase:   400,
	ReduceKeep:    6,
	ProbeFraction: 100,
}

// Worker is one independent CDCL search over a shared CNF instance. It
// owns its entire search state; the only things it shares with its peers
// are read through its *mailbox.Station and the shared exit flag.
type Worker struct {
	ID         uint16
	NumWorkers int
	opts       Options
	rng        *rand.Rand

	// Variable state. Indexed by variable ID.
	defined []bool
	value   []bool
	level   []int32
	reason  []Reason

	trail Trail

	// Watchlists, indexed by Literal: watchLong[l] holds the long clauses
	// watching l.Opposite(), woken when l becomes true (i.e. when the
	// watched literal becomes false); watchBin[l] holds the partner literal
	// of every binary clause containing l.Opposite().
	watchLong [][]watcher
	watchBin  [][]Literal

	constraints []*Clause // original (non-binary, non-unit) clauses
	learnts     []*Clause
	alloc       *Allocator

	vsids *VSIDS
	seen  *VarSet

	restart *RestartPolicy
	probe   *Prober
	station Station

	plugin Plugin

	unsat             bool
	conflictsThisRun  int64
	TotalConflicts    int64
	TotalRestarts     int64
	TotalDecisions    int64
	TotalPropagations int64
	TotalLearned      int64

	keepGoing bool
	Models    [][]bool

	exitFlag *atomic.Bool

	tmpLearnt     []Literal
	tmpWatchers   []watcher
	explainBuf    []Literal
	minimizeStack []Literal

	clauseInc   float64
	clauseDecay float64
}

// Station is the subset of *mailbox.Station a Worker needs; declared here
// (rather than importing the mailbox package directly into every method
// signature) so that internal/sat has no compile-time dependency on
// internal/mailbox beyond this one seam. The concrete type implementing it
// is *mailbox.Station; internal/driver hands one to each Worker it creates.
type Station interface {
	// ShareUnit queues a level-0 literal for every peer.
	ShareUnit(lit Literal)
	// ShareBinary queues a binary clause for every peer.
	ShareBinary(a, b Literal)
	// ShareClause queues a long learnt clause (by handle) for every peer.
	ShareClause(owner uint16, index uint32, literals []Literal)
	// Detach notifies the clause's owner that this worker no longer
	// references it.
	Detach(owner uint16, index uint32)
	// Flush publishes accumulated outbound messages, non-blocking.
	Flush()
	// Ingest drains and returns everything peers have sent since the last
	// call, to be integrated at a restart boundary.
	Ingest() []PeerMessage
}

// PeerMessage is what a Worker receives from one peer at a restart
// boundary: see §4.8.
type PeerMessage struct {
	Units        []Literal
	Binaries     [][2]Literal
	Clauses      []ForeignClause
	DetachOwn    []uint32 // indices, in this worker's own allocator, to detach
}

// ForeignClause is a long clause shared by a peer, identified by its
// owner's handle so it can be rejected back to that owner if found
// redundant (§4.6 "ingest pending peer messages").
type ForeignClause struct {
	Owner    uint16
	Index    uint32
	Literals []Literal
}

// NewWorker creates a Worker for variable count nVars, as worker id of
// numWorkers total, sharing exitFlag and communicating through station.
func NewWorker(id uint16, numWorkers int, nVars int, seed uint64, exitFlag *atomic.Bool, station Station, plugin Plugin, opts Options) *Worker {
	if plugin == nil {
		plugin = NoopPlugin{}
	}
	w := &Worker{
		ID:          id,
		NumWorkers:  numWorkers,
		opts:        opts,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		alloc:       NewAllocator(id, numWorkers),
		vsids:       NewVSIDS(opts.VarDecay, opts.PhaseSaving),
		seen:        &VarSet{},
		station:     station,
		plugin:      plugin,
		exitFlag:    exitFlag,
		clauseInc:   1,
		clauseDecay: opts.ClauseDecay,
	}
	w.restart = NewRestartPolicy(opts.RestartBase)
	w.probe = NewProber(opts.ProbeFraction)
	for i := 0; i < nVars; i++ {
		w.AddVariable()
	}
	return w
}

// NumVariables returns the number of variables known to the worker.
func (w *Worker) NumVariables() int {
	return len(w.defined)
}

// AddVariable registers a new variable and returns its ID.
func (w *Worker) AddVariable() int {
	v := len(w.defined)
	w.defined = append(w.defined, false)
	w.value = append(w.value, false)
	w.level = append(w.level, -1)
	w.reason = append(w.reason, Reason{})
	w.watchLong = append(w.watchLong, nil, nil)
	w.watchBin = append(w.watchBin, nil, nil)
	w.seen.Grow()
	w.vsids.AddVar()
	return v
}

// IsDefined reports whether literal l's variable currently has a value.
func (w *Worker) IsDefined(l Literal) bool {
	return w.defined[l.VarID()]
}

// LitValue returns the current lifted-boolean value of literal l.
func (w *Worker) LitValue(l Literal) LBool {
	if !w.defined[l.VarID()] {
		return Unknown
	}
	v := w.value[l.VarID()]
	if !l.IsPositive() {
		v = !v
	}
	return Lift(v)
}

// DecisionLevel returns the current decision level (number of decisions on
// the trail).
func (w *Worker) DecisionLevel() int {
	return len(w.trail.decisions)
}

// Complete reports whether every variable is assigned (§4.1).
func (w *Worker) Complete() bool {
	return w.trail.size == len(w.defined)
}

// shouldExit reports whether a peer worker has already concluded the run.
func (w *Worker) shouldExit() bool {
	return w.exitFlag.Load()
}
