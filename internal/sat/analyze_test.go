package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestAnalyzeRootLevelConflictIsEmpty exercises the analyzer through a
// failing first-time UnitResolution (no decisions outstanding): every reason traces back to a fact, so the cut
// never finds a literal to keep and the learned clause is empty.
func TestAnalyzeRootLevelConflictIsEmpty(t *testing.T) {
	s, err := NewState(2, [][]int{{1, 2}, {-1, 2}, {-2}})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if s.UnitResolution() {
		t.Fatalf("UnitResolution() = true, want false")
	}
	learned := s.AssertedClause()
	if diff := cmp.Diff([]Literal(nil), learned.literals, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("learned clause literals mismatch (-want +got):\n%s", diff)
	}
	if got, want := learned.AssertionLevel(), 1; got != want {
		t.Errorf("AssertionLevel() = %d, want %d", got, want)
	}
}

// TestAnalyzeAssertingProperty covers §8 property 4: the learned clause is
// falsified by the assignment at the moment it's produced.
func TestAnalyzeAssertingProperty(t *testing.T) {
	s, err := NewState(3, [][]int{{1, 2}, {1, -2}, {-1, 3}, {-1, -3}})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	s.UnitResolution()
	c := s.DecideLiteral(PosLiteral(1))
	if c == nil {
		t.Fatalf("DecideLiteral(L+1) returned no conflict, want one")
	}
	for _, l := range c.literals {
		if !s.litSet(l.Opposite()) {
			t.Errorf("learned clause literal %v is not falsified by the current assignment", l)
		}
	}
}
