package sat

// allocEntry is one slot of a worker's clause allocator: either a live
// clause with a reference count, or a free slot threaded into the free
// list via nextFree.
type allocEntry struct {
	clause   *Clause
	refCount int
	free     bool
	nextFree uint32
}

// Allocator is a worker-local array of clause entries with an intrusive
// free list, as described in §3/§4.3. A clause is destroyed (its slot
// recycled) when its reference count reaches zero. The reference count is
// initialized to the number of workers in the run: the owner keeps one
// reference and every peer that will eventually see the clause keeps one,
// matching the broadcast-to-everyone sharing policy in §4.8.
type Allocator struct {
	ownerID   uint16
	nWorkers  int
	entries   []allocEntry
	firstFree uint32 // == uint32(len(entries)) when the free list is empty
}

// NewAllocator returns an allocator for worker ownerID in a run of
// nWorkers workers.
func NewAllocator(ownerID uint16, nWorkers int) *Allocator {
	return &Allocator{
		ownerID:  ownerID,
		nWorkers: nWorkers,
	}
}

// Alloc creates a new clause owned by this allocator, copying literals into
// a freshly (or pool-) allocated backing slice, and returns it with its
// reference count set to nWorkers.
func (a *Allocator) Alloc(literals []Literal, learnt bool) *Clause {
	lits := allocLiteralSlice(len(literals))
	*lits = append((*lits)[:0], literals...)

	c := &Clause{
		Owner:    a.ownerID,
		Learnt:   learnt,
		Literals: *lits,
	}

	id := a.firstFree
	if id == uint32(len(a.entries)) {
		a.entries = append(a.entries, allocEntry{})
		a.firstFree = uint32(len(a.entries))
	} else {
		a.firstFree = a.entries[id].nextFree
	}

	c.Index = id
	a.entries[id] = allocEntry{clause: c, refCount: a.nWorkers}
	return c
}

// Detach decrements the reference count of the clause at index and, if it
// reaches zero, frees the slot and returns its literal buffer to the pool.
// Detach must only ever be called by the clause's owner: every decrement
// originating from a peer worker travels there as a message (§4.8), which
// is what makes this safe to call without synchronization.
func (a *Allocator) Detach(index uint32) {
	e := &a.entries[index]
	if e.free {
		return // already freed; a duplicate or racing detach notification
	}
	e.refCount--
	if e.refCount > 0 {
		return
	}
	freeLiteralSlice(&e.clause.Literals)
	e.clause = nil
	e.free = true
	e.nextFree = a.firstFree
	a.firstFree = index
}

// Lookup returns the clause at the given index, or nil if it has been
// freed.
func (a *Allocator) Lookup(index uint32) *Clause {
	e := &a.entries[index]
	if e.free {
		return nil
	}
	return e.clause
}

// RefCount returns the current reference count of the clause at index, for
// testing and invariant checks (§8).
func (a *Allocator) RefCount(index uint32) int {
	return a.entries[index].refCount
}
