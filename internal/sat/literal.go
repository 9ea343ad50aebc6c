package sat

import "fmt"

// Literal represents a boolean variable or its negation, packed as 2*v+p
// where v is the variable index and p is the polarity bit.
type Literal int32

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v*2 + 1)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive reports whether l represents the value of its variable (as
// opposed to its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID()+1)
	}
	return fmt.Sprintf("-%d", l.VarID()+1)
}

// LitNone is the sentinel literal used to represent "no literal", e.g. the
// root cause of a top-level conflict during analysis.
const LitNone Literal = -1
