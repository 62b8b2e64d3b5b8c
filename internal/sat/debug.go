package sat

import (
	"fmt"

	"github.com/kr/pretty"
)

// debugClauseView and debugStateView are plain, exported-field snapshots of
// the solver-internal state kept specifically for pretty-printing: dumping
// the Clause/State structs directly would also print scratch buffers and
// slice backing arrays that aren't useful in a debug trace.
type debugClauseView struct {
	ID             ClauseID
	Literals       []Literal
	NumFalse       int
	DecisionLevel  int
	AssertionLevel int
	Learnt         bool
}

type debugStateView struct {
	CurrentLevel int
	Decided      []Literal
	Implied      []Literal
	Constraints  int
	Learnts      int
}

// DebugString returns a pretty-printed snapshot of the clause, analogous in
// purpose to the original C API's sat_clause_debug.
func (c *Clause) DebugString() string {
	v := debugClauseView{
		ID:             c.id,
		Literals:       c.literals,
		NumFalse:       c.numFalse,
		DecisionLevel:  c.decisionLevel,
		AssertionLevel: c.assertionLevel,
		Learnt:         c.learnt,
	}
	return pretty.Sprint(v)
}

// DebugState returns a pretty-printed snapshot of the solver state: its
// decision level and both trails, analogous in purpose to the original C
// API's sat_state_debug. It is meant for test failures and REPL-style
// debugging, not for anything the core itself reads.
func (s *State) DebugState() string {
	v := debugStateView{
		CurrentLevel: s.currentLevel,
		Decided:      append([]Literal(nil), s.decided...),
		Implied:      append([]Literal(nil), s.implied...),
		Constraints:  len(s.constraints) - 1,
		Learnts:      len(s.learnts),
	}
	return fmt.Sprintf("sat.State%s", pretty.Sprint(v))
}
