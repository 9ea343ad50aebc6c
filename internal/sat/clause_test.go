package sat

import "testing"

func TestClause_Handle(t *testing.T) {
	c := &Clause{Owner: 3, Index: 7}
	h := c.Handle()
	if h.Owner != 3 || h.Index != 7 {
		t.Errorf("Handle() = %+v, want {Owner:3 Index:7}", h)
	}
}

func TestClause_String(t *testing.T) {
	cases := []struct {
		c    *Clause
		want string
	}{
		{&Clause{Literals: nil}, "Clause[]"},
		{&Clause{Literals: []Literal{PositiveLiteral(0)}}, "Clause[1]"},
		{&Clause{Literals: []Literal{PositiveLiteral(0), NegativeLiteral(1)}}, "Clause[1 -2]"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
