package sat

import "testing"

func TestVarSet_AddContainsClear(t *testing.T) {
	s := &VarSet{}
	s.Grow()
	s.Grow()
	s.Grow()
	s.Clear() // establishes the initial generation, as Analyze does before each use

	if s.Contains(0) || s.Contains(1) || s.Contains(2) {
		t.Fatalf("freshly cleared set contains an element")
	}

	s.Add(1)
	if !s.Contains(1) {
		t.Errorf("Contains(1) = false after Add(1)")
	}
	if s.Contains(0) || s.Contains(2) {
		t.Errorf("Contains() = true for an element never added")
	}

	s.Clear()
	if s.Contains(1) {
		t.Errorf("Contains(1) = true after Clear()")
	}
}

func TestVarSet_Clone_IsIndependent(t *testing.T) {
	s := &VarSet{}
	s.Grow()
	s.Grow()
	s.Clear()
	s.Add(0)

	clone := s.Clone()
	clone.Add(1)

	if s.Contains(1) {
		t.Errorf("mutating the clone leaked back into the original set")
	}
	if !clone.Contains(0) {
		t.Errorf("clone should retain elements present at clone time")
	}
}
