package sat

// assign sets literal l true at decision level lvl with reason clause
// reason (0 meaning "no reason": a decision). Literals forced by unit
// resolution, including first-time unit facts, carry their unit clause.
// This is the "instantiation procedure" of §4.3: it updates every clause
// mentioning l or its opposite so that num_false/decision_level stay
// consistent in O(deg(l)).
func (s *State) assign(l Literal, lvl int, reason ClauseID) {
	slot := litSlot(l)
	s.litLevel[slot] = lvl
	s.litReason[slot] = reason

	for _, cid := range s.litOccurrences[slot] {
		c := s.clauseByID(cid)
		if c.decisionLevel == 0 || c.decisionLevel > lvl {
			c.decisionLevel = lvl
		}
	}
	oppSlot := litSlot(l.Opposite())
	for _, cid := range s.litOccurrences[oppSlot] {
		c := s.clauseByID(cid)
		c.numFalse++
	}
}

// unassign undoes assign for a literal previously set at level lvl. It is
// the mirror image required by §4.3: clauses subsumed exactly at lvl
// become unsubsumed again, and clauses that counted l's opposite as false
// have that count decremented.
func (s *State) unassign(l Literal, lvl int) {
	slot := litSlot(l)
	for _, cid := range s.litOccurrences[slot] {
		c := s.clauseByID(cid)
		if c.decisionLevel == lvl {
			c.decisionLevel = 0
		}
	}
	oppSlot := litSlot(l.Opposite())
	for _, cid := range s.litOccurrences[oppSlot] {
		c := s.clauseByID(cid)
		c.numFalse--
	}

	s.litLevel[slot] = 0
	s.litReason[slot] = 0
}

// free reports whether neither l nor its opposite is currently assigned.
func (s *State) free(l Literal) bool {
	return s.litLevel[litSlot(l)] == 0 && s.litLevel[litSlot(l.Opposite())] == 0
}

// litSet reports whether l itself (not just its variable) is currently
// assigned true.
func (s *State) litSet(l Literal) bool {
	return s.litLevel[litSlot(l)] > 0
}

// litLevelOf returns the decision level at which l was set true, or 0 if it
// is free. It does not distinguish "false" from "free": callers check
// litSet/free first, or rely on the opposite literal's level for falsity.
func (s *State) litLevelOf(l Literal) int {
	return s.litLevel[litSlot(l)]
}

// litReasonOf returns the reason clause that forced l, or 0 if l was
// decided (not implied) or is free.
func (s *State) litReasonOf(l Literal) ClauseID {
	return s.litReason[litSlot(l)]
}

// undoImpliedFrom pops every implied literal whose level is >= lvl,
// undoing each via unassign. This is UndoUnitResolution (§4.6): it must be
// called with the decision level that is about to be left, before that
// level is actually decremented.
func (s *State) undoImpliedFrom(lvl int) {
	for len(s.implied) > 0 {
		l := s.implied[len(s.implied)-1]
		if s.litLevelOf(l) < lvl {
			break
		}
		s.unassign(l, s.litLevelOf(l))
		s.implied = s.implied[:len(s.implied)-1]
	}
}
