package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nwsat/parsat/internal/sat"
)

func TestLoadStdin_RemapsAndParsesClauses(t *testing.T) {
	// Variable names appear out of order and with gaps; the dense
	// remapping must follow first-appearance order (§6).
	const cnf = `c a comment line
p cnf 5 2
c another comment
3 -5 0
5 1 0
`
	in, err := LoadStdin(strings.NewReader(cnf), false)
	if err != nil {
		t.Fatalf("LoadStdin() error = %v", err)
	}

	if in.NumVars != 3 {
		t.Fatalf("NumVars = %d, want 3", in.NumVars)
	}

	want := [][]sat.Literal{
		{sat.PositiveLiteral(0), sat.NegativeLiteral(1)},
		{sat.PositiveLiteral(1), sat.PositiveLiteral(2)},
	}
	if diff := cmp.Diff(want, in.Clauses); diff != "" {
		t.Errorf("Clauses mismatch (-want +got):\n%s", diff)
	}

	// First appearance order was 3, -5, 1 -> internal vars 0, 1, 2.
	wantNames := []int{3, 5, 1}
	for v, name := range wantNames {
		if got := in.Name(v); got != name {
			t.Errorf("Name(%d) = %d, want %d", v, got, name)
		}
	}
}

func TestLoadStdin_RejectsXORLines(t *testing.T) {
	const cnf = `p cnf 2 1
x1 2 0
`
	_, err := LoadStdin(strings.NewReader(cnf), false)
	if err == nil || !strings.Contains(err.Error(), "XOR") {
		t.Fatalf("LoadStdin() error = %v, want an XOR rejection", err)
	}
}

func TestLoadStdin_MissingHeader(t *testing.T) {
	const cnf = `c only comments
c no p line
`
	_, err := LoadStdin(strings.NewReader(cnf), false)
	if err == nil {
		t.Fatalf("LoadStdin() error = nil, want a missing-header error")
	}
}

func TestWriteSAT(t *testing.T) {
	in, err := LoadStdin(strings.NewReader("p cnf 3 1\n1 -2 3 0\n"), false)
	if err != nil {
		t.Fatalf("LoadStdin() error = %v", err)
	}

	var buf bytes.Buffer
	WriteSAT(&buf, in, true, []bool{true, false, true})

	want := "s SATISFIABLE\nv 1 -2 3 0\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteSAT() = %q, want %q", got, want)
	}

	buf.Reset()
	WriteSAT(&buf, in, false, nil)
	if got := buf.String(); got != "s UNSATISFIABLE\n" {
		t.Errorf("WriteSAT() = %q, want UNSATISFIABLE", got)
	}
}

func TestWriteStatusThenWriteModel_PrintsOneStatusLineForMultipleModels(t *testing.T) {
	in, err := LoadStdin(strings.NewReader("p cnf 2 1\n1 2 0\n"), false)
	if err != nil {
		t.Fatalf("LoadStdin() error = %v", err)
	}

	var buf bytes.Buffer
	WriteStatus(&buf, true)
	WriteModel(&buf, in, []bool{true, false})
	WriteModel(&buf, in, []bool{false, true})

	want := "s SATISFIABLE\nv 1 -2 0\nv -1 2 0\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n := strings.Count(buf.String(), "s SATISFIABLE"); n != 1 {
		t.Errorf("status line printed %d times, want exactly once across both models", n)
	}
}
