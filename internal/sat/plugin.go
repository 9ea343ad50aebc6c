package sat

import (
	"fmt"
	"io"
	"time"
)

// Plugin is the observer-hook interface of §2/§9 ("Observer plugins ...
// are compile-time optional and receive hook calls from the worker loop;
// their absence has zero overhead"), ported from original_source's
// plugin_base.hh/plugin_stdio.hh/plugin_graphviz.hh family. A nil Plugin
// is never dereferenced by Worker; NoopPlugin is provided for callers that
// want an explicit no-op instead of a nil check.
type Plugin interface {
	OnConflict(w *Worker)
	OnRestart(w *Worker)
	OnLearn(w *Worker, learned []Literal)
	OnSolved(w *Worker, sat bool)
}

// NoopPlugin implements Plugin with no-op hooks.
type NoopPlugin struct{}

func (NoopPlugin) OnConflict(*Worker)         {}
func (NoopPlugin) OnRestart(*Worker)          {}
func (NoopPlugin) OnLearn(*Worker, []Literal) {}
func (NoopPlugin) OnSolved(*Worker, bool)     {}

// MultiPlugin fans hook calls out to every plugin in order, the Go
// equivalent of original_source/plugin_list.hh's compile-time plugin
// chain.
type MultiPlugin []Plugin

func (m MultiPlugin) OnConflict(w *Worker) {
	for _, p := range m {
		p.OnConflict(w)
	}
}

func (m MultiPlugin) OnRestart(w *Worker) {
	for _, p := range m {
		p.OnRestart(w)
	}
}

func (m MultiPlugin) OnLearn(w *Worker, learned []Literal) {
	for _, p := range m {
		p.OnLearn(w, learned)
	}
}

func (m MultiPlugin) OnSolved(w *Worker, sat bool) {
	for _, p := range m {
		p.OnSolved(w, sat)
	}
}

// StatsPlugin prints periodic search statistics to Out, in the same shape
// as rhartert-yass's printSearchStats/printSearchHeader.
type StatsPlugin struct {
	Out       io.Writer
	Every     int64 // print every Every conflicts; 0 disables periodic printing
	startTime time.Time
	header    bool

	rate      EMA   // smoothed conflicts/sec, so a slow tick doesn't read as a stall
	lastSeen  int64 // TotalConflicts at the previous sample
	lastTime  time.Time
}

func NewStatsPlugin(out io.Writer, every int64) *StatsPlugin {
	now := time.Now()
	return &StatsPlugin{Out: out, Every: every, startTime: now, lastTime: now, rate: NewEMA(0.7)}
}

func (s *StatsPlugin) OnConflict(w *Worker) {
	if s.Every <= 0 || w.TotalConflicts%s.Every != 0 {
		return
	}
	if !s.header {
		fmt.Fprintf(s.Out, "c worker            time     conflicts       restarts       learnts     confs/sec\n")
		s.header = true
	}

	now := time.Now()
	if dt := now.Sub(s.lastTime).Seconds(); dt > 0 {
		s.rate.Add(float64(w.TotalConflicts-s.lastSeen) / dt)
	}
	s.lastSeen = w.TotalConflicts
	s.lastTime = now

	fmt.Fprintf(s.Out, "c %6d %10.3fs %13d %13d %13d %13.1f\n",
		w.ID, now.Sub(s.startTime).Seconds(), w.TotalConflicts, w.TotalRestarts, len(w.learnts), s.rate.Val())
}

func (s *StatsPlugin) OnRestart(w *Worker) {}

func (s *StatsPlugin) OnLearn(w *Worker, learned []Literal) {}

func (s *StatsPlugin) OnSolved(w *Worker, sat bool) {
	status := "UNSATISFIABLE"
	if sat {
		status = "SATISFIABLE"
	}
	fmt.Fprintf(s.Out, "c worker %d: %s after %.3fs, %d conflicts, %d restarts\n",
		w.ID, status, time.Since(s.startTime).Seconds(), w.TotalConflicts, w.TotalRestarts)
}

// GraphvizPlugin dumps the implication graph around each conflict as a DOT
// file, one per conflict, to Dir. Supplements a debugging feature present
// in original_source/plugin_graphviz.hh that the distilled spec never
// names but that no Non-goal excludes either.
type GraphvizPlugin struct {
	Dir   string
	Open  func(name string) (io.WriteCloser, error)
	count int
}

func (g *GraphvizPlugin) OnConflict(w *Worker) {
	if g.Open == nil {
		return
	}
	g.count++
	f, err := g.Open(fmt.Sprintf("%s/worker%d-conflict%d.dot", g.Dir, w.ID, g.count))
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintln(f, "digraph conflict {")
	for i := 0; i < w.trail.size; i++ {
		v := w.trail.vars[i]
		lit := w.CurrentValue(v)
		switch w.reason[v].Kind {
		case ReasonBinary:
			fmt.Fprintf(f, "  %q -> %q;\n", w.reason[v].Lit.Opposite(), lit)
		case ReasonClause:
			for _, rl := range w.reason[v].Clause.Literals {
				if rl.VarID() != v {
					fmt.Fprintf(f, "  %q -> %q;\n", rl.Opposite(), lit)
				}
			}
		}
	}
	fmt.Fprintln(f, "}")
}

func (g *GraphvizPlugin) OnRestart(*Worker)          {}
func (g *GraphvizPlugin) OnLearn(*Worker, []Literal) {}
func (g *GraphvizPlugin) OnSolved(*Worker, bool)     {}
