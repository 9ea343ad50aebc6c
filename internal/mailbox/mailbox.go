// Package mailbox implements the lock-free single-slot cross-worker
// messaging layer of §4.8: for every (receiver, sender) pair, the sender
// accumulates an outbound message until it can publish it via
// compare-and-swap into the single atomic slot that this pair owns in the
// Grid (a receiver has one slot per sender, not one shared inbox); the
// receiver consumes it with an atomic exchange. Publication uses release
// semantics, consumption uses acquire semantics — exactly what Go's
// sync/atomic already guarantees for Pointer.CompareAndSwap/Swap, so no
// third-party lock-free primitive is needed (§9's replacement of
// original_source's pthread/urcu primitives).
package mailbox

import (
	"sync/atomic"

	"github.com/nwsat/parsat/internal/sat"
)

// Outbound is one sender's accumulating message to one receiver: shared
// unit literals, shared binary clauses, shared long-clause handles, and
// indices of clauses the sender has detached (addressed to the clause's
// owner, which is always the receiver of a Detach entry — see
// Station.Detach).
type Outbound struct {
	units    *Queue[sat.Literal]
	binaries *Queue[[2]sat.Literal]
	clauses  *Queue[sat.ForeignClause]
	detach   *Queue[uint32]
}

func newOutbound() *Outbound {
	return &Outbound{
		units:    NewQueue[sat.Literal](4),
		binaries: NewQueue[[2]sat.Literal](4),
		clauses:  NewQueue[sat.ForeignClause](4),
		detach:   NewQueue[uint32](4),
	}
}

func (o *Outbound) empty() bool {
	return o.units.IsEmpty() && o.binaries.IsEmpty() && o.clauses.IsEmpty() && o.detach.IsEmpty()
}

// Grid is the N×N matrix of single-slot inboxes shared by every worker in
// a run. slots[sender][receiver] is the atomic mailbox sender publishes
// into and receiver drains.
type Grid struct {
	n     int
	slots [][]atomic.Pointer[Outbound]
}

// NewGrid allocates a messaging grid for n workers.
func NewGrid(n int) *Grid {
	g := &Grid{n: n, slots: make([][]atomic.Pointer[Outbound], n)}
	for i := range g.slots {
		g.slots[i] = make([]atomic.Pointer[Outbound], n)
	}
	return g
}

// Station is one worker's view of the Grid: its own accumulating outbound
// message to each peer, plus the ability to publish and drain.
type Station struct {
	id       int
	grid     *Grid
	outgoing []*Outbound // outgoing[j] accumulates this worker's message to peer j
}

// StationFor returns worker id's view of g. id must be in [0, n).
func (g *Grid) StationFor(id int) *Station {
	s := &Station{id: id, grid: g, outgoing: make([]*Outbound, g.n)}
	for j := range s.outgoing {
		if j != id {
			s.outgoing[j] = newOutbound()
		}
	}
	return s
}

// ShareUnit queues a level-0 literal for every peer (§4.8).
func (s *Station) ShareUnit(lit sat.Literal) {
	for j, ob := range s.outgoing {
		if j == s.id {
			continue
		}
		ob.units.Push(lit)
	}
}

// ShareBinary queues a binary clause for every peer.
func (s *Station) ShareBinary(a, b sat.Literal) {
	for j, ob := range s.outgoing {
		if j == s.id {
			continue
		}
		ob.binaries.Push([2]sat.Literal{a, b})
	}
}

// ShareClause queues a long learnt clause (identified by its owner/index
// handle, so peers can reject it back to the owner if it turns out
// redundant) for every peer.
func (s *Station) ShareClause(owner uint16, index uint32, literals []sat.Literal) {
	lits := append([]sat.Literal(nil), literals...)
	for j, ob := range s.outgoing {
		if j == s.id {
			continue
		}
		ob.clauses.Push(sat.ForeignClause{Owner: owner, Index: index, Literals: lits})
	}
}

// Detach notifies owner that this worker no longer references the clause
// at index in owner's allocator (§4.3). Unlike the Share* methods, this
// targets a single receiver.
func (s *Station) Detach(owner uint16, index uint32) {
	if int(owner) == s.id {
		return // detaching our own clause is handled locally, not via a message
	}
	s.outgoing[owner].detach.Push(index)
}

// Flush attempts to publish every non-empty accumulated outbound message.
// Publication is a single compare-and-swap per peer: on success a fresh
// accumulator replaces the published one; on failure (the peer hasn't
// drained its previous message yet) the current accumulator is left
// growing and retried on the next Flush call. This is "lossy in time but
// never lossy in content" per §5.
func (s *Station) Flush() {
	for j, ob := range s.outgoing {
		if j == s.id || ob.empty() {
			continue
		}
		if s.grid.slots[s.id][j].CompareAndSwap(nil, ob) {
			s.outgoing[j] = newOutbound()
		}
	}
}

// Ingest drains every peer's inbox addressed to this worker via an atomic
// exchange (acquire semantics) and converts each into a sat.PeerMessage,
// to be integrated at the next restart boundary per §4.6/§4.8.
func (s *Station) Ingest() []sat.PeerMessage {
	var out []sat.PeerMessage
	for j := 0; j < s.grid.n; j++ {
		if j == s.id {
			continue
		}
		ob := s.grid.slots[j][s.id].Swap(nil)
		if ob == nil {
			continue
		}
		out = append(out, sat.PeerMessage{
			Units:     ob.units.DrainInto(nil),
			Binaries:  ob.binaries.DrainInto(nil),
			Clauses:   ob.clauses.DrainInto(nil),
			DetachOwn: ob.detach.DrainInto(nil),
		})
	}
	return out
}
