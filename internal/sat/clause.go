package sat

import (
	"strconv"
	"strings"
)

// ClauseID identifies a clause. Original clauses are numbered 1..m; learned
// clauses receive m+1, m+2, ... in the order they are asserted.
type ClauseID int

// Clause is a disjunction of literals. Its num_false/decision_level pair
// lets the engine classify it in O(1) without touching the assignment
// directly; see Subsumed, Conflicting and Unit below.
type Clause struct {
	id ClauseID

	literals []Literal

	// numFalse counts literals whose opposite is currently assigned true.
	numFalse int

	// decisionLevel is 0 while the clause is not subsumed, otherwise the
	// minimum decision level at which one of its literals became true.
	decisionLevel int

	// assertionLevel is set at creation time for learned clauses: the level
	// at which the clause becomes unit and forces its asserting literal. 0
	// for original clauses.
	assertionLevel int

	learnt bool
	marked bool
}

// ID returns the clause's 1-based index (see ClauseID).
func (c *Clause) ID() ClauseID {
	return c.id
}

// Literals returns the clause's literals. Callers must not mutate the
// returned slice.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Size returns the number of literals in the clause.
func (c *Clause) Size() int {
	return len(c.literals)
}

// Learnt reports whether the clause was produced by conflict analysis
// rather than present in the original CNF.
func (c *Clause) Learnt() bool {
	return c.learnt
}

// AssertionLevel returns the decision level at which the clause becomes
// unit and forces its asserting literal. Always 0 for original clauses.
func (c *Clause) AssertionLevel() int {
	return c.assertionLevel
}

// Subsumed reports whether some literal of the clause is currently true.
func (c *Clause) Subsumed() bool {
	return c.decisionLevel > 0
}

// Conflicting reports whether every literal of the clause is currently
// false.
func (c *Clause) Conflicting() bool {
	return !c.Subsumed() && c.numFalse == len(c.literals)
}

// Unit reports whether the clause has exactly one free literal left (and no
// literal is already true), returning that literal. The free literal is
// found by linear scan, as §4.3 of the spec prescribes.
func (c *Clause) Unit(s *State) (Literal, bool) {
	if c.Subsumed() || c.numFalse+1 != len(c.literals) {
		return 0, false
	}
	for _, l := range c.literals {
		if s.free(l) {
			return l, true
		}
	}
	// Every literal assigned but none true and only one false short of
	// size: invariant violation, should be unreachable.
	panic("sat: unit clause has no free literal")
}

// Marked reports whether the clause's reusable mark bit is set. The core
// never reads this bit.
func (c *Clause) Marked() bool {
	return c.marked
}

// Mark sets the clause's mark bit.
func (c *Clause) Mark() {
	c.marked = true
}

// Unmark clears the clause's mark bit.
func (c *Clause) Unmark() {
	c.marked = false
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(strconv.Itoa(int(c.literals[0])))
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(l)))
	}
	sb.WriteByte(']')
	return sb.String()
}
