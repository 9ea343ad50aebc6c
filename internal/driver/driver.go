// Package driver registers a portfolio of parallel workers against a
// parsed instance, wires their messaging stations, and joins their
// results, grounded in §4's "Variable remap + driver" component and the
// parallel-chain scenario of §8. rhartert-yass's main.go drives a single
// sat.Solver directly; this package generalizes that to N concurrently
// running sat.Worker instances sharing one mailbox.Grid and exit flag.
package driver

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/nwsat/parsat/internal/dimacs"
	"github.com/nwsat/parsat/internal/mailbox"
	"github.com/nwsat/parsat/internal/sat"
)

// Config holds the CLI-level knobs of §6: worker count, PRNG seed, and
// whether to enumerate every model instead of stopping at the first.
type Config struct {
	Threads      int
	Seed         uint64
	KeepGoing    bool
	StatsOut     io.Writer // nil disables periodic stats
	StatsEvery   int64
	GraphvizDir  string
	GraphvizOpen func(name string) (io.WriteCloser, error)

	// Abort, if non-nil, is closed to request graceful shutdown (§7
	// "first SIGINT requests graceful shutdown"): Run sets the shared
	// exit flag as soon as it is closed, causing every worker to return
	// ResultUnknown at its next loop check rather than run to a verdict.
	Abort <-chan struct{}
}

// Result is the joined outcome of a portfolio run.
type Result struct {
	Status    sat.Result
	Models    [][]bool // one or more complete assignments, present on SAT
	WinnerID  int
	Conflicts int64
	Restarts  int64
}

// Run registers cfg.Threads workers against in, starts them concurrently,
// and returns as soon as any worker reaches a verdict (or all run out of
// work, which cannot happen for a decided instance). Workers that are
// still running when a verdict is found are signalled to stop via the
// shared exit flag and joined before Run returns.
func Run(cfg Config, in *dimacs.Instance) (Result, error) {
	n := cfg.Threads
	if n < 1 {
		n = 1
	}

	grid := mailbox.NewGrid(n)
	var exitFlag atomic.Bool

	workers := make([]*sat.Worker, n)
	workerPlugins := make([]sat.Plugin, n)
	for i := 0; i < n; i++ {
		seed := cfg.Seed + uint64(i)*0x9e3779b97f4a7c15
		var plugin sat.Plugin = sat.NoopPlugin{}
		var plugins sat.MultiPlugin
		if cfg.StatsOut != nil {
			plugins = append(plugins, sat.NewStatsPlugin(cfg.StatsOut, cfg.StatsEvery))
		}
		if cfg.GraphvizOpen != nil {
			plugins = append(plugins, &sat.GraphvizPlugin{Dir: cfg.GraphvizDir, Open: cfg.GraphvizOpen})
		}
		if len(plugins) > 0 {
			plugin = plugins
		}
		workerPlugins[i] = plugin

		opts := sat.DefaultOptions
		// Diversify restart bases across workers (each also gets its own
		// PRNG seed above) so a portfolio explores more of the search space
		// than N copies of the same worker would (§2 "parallel portfolio").
		opts.RestartBase = sat.DefaultOptions.RestartBase + i*37

		w := sat.NewWorker(uint16(i), n, in.NumVars, seed, &exitFlag, grid.StationFor(i), plugin, opts)
		for _, lits := range in.Clauses {
			if err := w.AddClause(lits); err != nil {
				return Result{}, fmt.Errorf("driver: worker %d: %w", i, err)
			}
		}
		w.SetKeepGoing(cfg.KeepGoing)
		workers[i] = w
	}

	if cfg.Abort != nil {
		go func() {
			<-cfg.Abort
			exitFlag.Store(true)
		}()
	}

	results := make([]sat.Result, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = workers[i].Solve()
			if results[i] != sat.ResultUnknown {
				exitFlag.Store(true)
			}
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r == sat.ResultUnknown {
			continue
		}
		w := workers[i]
		workerPlugins[i].OnSolved(w, r == sat.ResultSAT)
		return Result{
			Status:    r,
			Models:    w.Models,
			WinnerID:  i,
			Conflicts: w.TotalConflicts,
			Restarts:  w.TotalRestarts,
		}, nil
	}

	return Result{Status: sat.ResultUnknown}, nil
}

// NewSeed derives a starting seed from a user-supplied value, falling
// back to a process-local source of randomness when s is zero (§6
// "--seed S (default: time-derived)"; time itself is supplied by the
// caller since this package must stay free of wall-clock reads to remain
// deterministically testable).
func NewSeed(s uint64) uint64 {
	if s != 0 {
		return s
	}
	return rand.Uint64()
}
