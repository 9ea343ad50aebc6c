package sat

// ReasonKind tags the variant held by a Reason.
type ReasonKind uint8

const (
	// ReasonDecision marks a variable that was branched on rather than
	// implied.
	ReasonDecision ReasonKind = iota
	// ReasonUnit marks a level-0 fact asserted directly (an original unit
	// clause, or a unit clause learned by analysis or probing), with no
	// antecedent literals to explain it.
	ReasonUnit
	// ReasonBinary marks a variable implied by a binary clause that has no
	// heap allocation; Lit is the clause's other literal.
	ReasonBinary
	// ReasonClause marks a variable implied by a long clause.
	ReasonClause
)

// Reason records why a variable was assigned: it was a decision, it was
// forced by an (implicit) binary clause, or it was forced by a long clause.
// Every literal in a reason other than the implied one must be false at the
// level of the implication.
type Reason struct {
	Kind   ReasonKind
	Lit    Literal // set when Kind == ReasonBinary
	Clause *Clause // set when Kind == ReasonClause
}

var decisionReason = Reason{Kind: ReasonDecision}
var unitReason = Reason{Kind: ReasonUnit}

func binaryReason(other Literal) Reason {
	return Reason{Kind: ReasonBinary, Lit: other}
}

func clauseReason(c *Clause) Reason {
	return Reason{Kind: ReasonClause, Clause: c}
}
