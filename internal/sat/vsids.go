package sat

import (
	"github.com/rhartert/yagh"
)

// VSIDS is the decision heuristic of §4.4: a binary max-heap over variable
// activity (Variable State Independent Decaying Sum) composed with a
// cached-polarity wrapper. Ported from rhartert-yass's internal/sat/
// ordering.go, which already used yagh.IntMap as the backing heap; the
// toggle-diversification step is new (§4.4 "toggle that cached polarity as
// a secondary diversification"), grounded in original_source's
// decide_cached_polarity.hh composed with decide_random.hh.
type VSIDS struct {
	heap *yagh.IntMap[float64] // keyed by negated activity, so Pop yields the max

	scores   []float64
	inc      float64
	decay    float64
	inHeap   []bool
	phases   []LBool
	saving   bool
	toggle   []bool // per-variable diversification toggle, flipped each decide
}

// NewVSIDS returns an empty VSIDS ordering with the given activity decay
// and phase-saving policy.
func NewVSIDS(decay float64, phaseSaving bool) *VSIDS {
	return &VSIDS{
		heap:   yagh.New[float64](0),
		inc:    1,
		decay:  decay,
		saving: phaseSaving,
	}
}

// AddVar registers a new variable with zero initial activity.
func (vo *VSIDS) AddVar() {
	v := len(vo.scores)
	vo.scores = append(vo.scores, 0)
	vo.phases = append(vo.phases, Unknown)
	vo.toggle = append(vo.toggle, false)
	vo.inHeap = append(vo.inHeap, true)
	vo.heap.GrowBy(1)
	vo.heap.Put(v, 0)
}

// Reinsert adds variable v back into the pool of decision candidates. Must
// be called whenever v is unassigned (e.g. on backtrack); val is the value
// v held just before being unassigned, recorded for phase saving.
func (vo *VSIDS) Reinsert(v int, val LBool) {
	if vo.saving {
		vo.phases[v] = val
	}
	if !vo.inHeap[v] {
		vo.inHeap[v] = true
		vo.heap.Put(v, -vo.scores[v])
	}
}

// BumpScore increases v's activity by the current increment, rescaling
// every activity (and the increment itself) if v's score would otherwise
// overflow towards the rescale threshold (§4.4 "if activity > 1e100").
func (vo *VSIDS) BumpScore(v int) {
	vo.scores[v] += vo.inc
	if vo.inHeap[v] {
		vo.heap.Put(v, -vo.scores[v])
	}
	if vo.scores[v] > 1e100 {
		vo.rescale()
	}
}

// Decay multiplies the global increment by 1/decay, making future bumps
// relatively larger than past ones (§4.4 "On conflict: multiply var_inc by
// 1/decay").
func (vo *VSIDS) Decay() {
	vo.inc /= vo.decay
	if vo.inc > 1e100 {
		vo.rescale()
	}
}

func (vo *VSIDS) rescale() {
	vo.inc *= 1e-100
	for v, s := range vo.scores {
		vo.scores[v] = s * 1e-100
		if vo.inHeap[v] {
			vo.heap.Put(v, -vo.scores[v])
		}
	}
}

// NextDecision returns the next decision literal: the highest-activity
// undefined variable, branched with its cached polarity (initially false),
// toggled as a secondary diversification source each time it is selected
// (§4.4).
func (w *Worker) NextDecision() Literal {
	vo := w.vsids
	for {
		v, ok := vo.heap.Pop()
		if !ok {
			panic("sat: NextDecision called with no undefined variables left")
		}
		vo.inHeap[v.Elem] = false
		if w.defined[v.Elem] {
			continue
		}

		positive := vo.phases[v.Elem] == True
		if vo.toggle[v.Elem] {
			positive = !positive
		}
		vo.toggle[v.Elem] = !vo.toggle[v.Elem]
		if positive {
			return PositiveLiteral(v.Elem)
		}
		return NegativeLiteral(v.Elem)
	}
}

// bumpClauseActivity bumps a learnt clause's activity, rescaling every
// learnt clause's activity (and the increment) when it would overflow,
// mirroring the variable-activity rescale above. ReduceDB sorts by size and
// does not read this activity.
func (w *Worker) bumpClauseActivity(c *Clause) {
	if !c.Learnt {
		return
	}
	c.Activity += w.clauseInc
	if c.Activity > 1e100 {
		w.clauseInc *= 1e-100
		for _, l := range w.learnts {
			l.Activity *= 1e-100
		}
	}
}

func (w *Worker) decayClauseActivity() {
	w.clauseInc *= w.clauseDecay
}
