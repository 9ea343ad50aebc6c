package sat

import "strings"

// ClauseHandle identifies a clause uniquely across all workers: the owning
// worker's ID plus an index that is unique within that worker's allocator.
// Binary and unit clauses never get a handle: see §4.3.
type ClauseHandle struct {
	Owner uint16
	Index uint32
}

// Clause is an immutable (after creation) disjunction of literals owned by
// exactly one worker's Allocator. Size-2 and size-1 clauses never reach this
// representation; they are folded into the watchlists or the trail
// directly.
type Clause struct {
	Owner    uint16
	Index    uint32
	Learnt   bool
	Literals []Literal

	// Activity and LBD are only meaningful for learnt clauses. Activity is
	// bumped during conflict analysis; LBD is not computed. The reduce
	// policy sorts by size and reads neither.
	Activity float64
	LBD      int

	// Protected clauses survive one round of reduction regardless of size
	// or activity (e.g. a clause that is currently somebody's reason).
	Protected bool
}

// Handle returns the cross-worker handle for c.
func (c *Clause) Handle() ClauseHandle {
	return ClauseHandle{Owner: c.Owner, Index: c.Index}
}

func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.Literals[0].String())
	for _, l := range c.Literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
