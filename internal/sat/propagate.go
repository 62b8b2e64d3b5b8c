package sat

// This file implements the unit-resolution engine (§4.4): a breadth-first
// propagation of forced literals seeded from one of three contexts
// (first-time, after-decide, after-assert). The three contexts differ only
// in how the work queue is seeded; the draining loop (runBCPQueue) is the
// same worklist algorithm in all three, which is why the spec notes that
// correctness does not depend on which context triggered propagation.

// scanClauseList classifies every clause in clauses against the current
// assignment, stopping at the first conflict. It is used once, to seed
// first-time unit resolution: before any literal has been set, the only way
// to discover a unit clause is to look directly at the clause list, since
// there is no "newly true literal" event yet to react to.
func (s *State) scanClauseList(clauses []*Clause) *Clause {
	for _, c := range clauses {
		if c == nil {
			continue // constraints[0] placeholder
		}
		if c.Conflicting() {
			return c
		}
		if lit, ok := c.Unit(s); ok {
			s.assign(lit, s.currentLevel, c.id)
			s.implied = append(s.implied, lit)
			s.workQueue.Push(lit)
		}
	}
	return nil
}

// scanOccurrencesOf classifies every clause that mentions l's variable,
// having just become aware that l is newly true. Clauses containing l
// itself are now subsumed and therefore never unit or conflicting; they are
// scanned anyway (at negligible cost) to mirror the spec's description of
// walking "variable(l).occurrences (both polarities)".
func (s *State) scanOccurrencesOf(l Literal) *Clause {
	for _, slot := range [2]int{litSlot(l), litSlot(l.Opposite())} {
		for _, cid := range s.litOccurrences[slot] {
			c := s.clauseByID(cid)
			if c.Conflicting() {
				return c
			}
			if lit, ok := c.Unit(s); ok {
				s.assign(lit, s.currentLevel, c.id)
				s.implied = append(s.implied, lit)
				s.workQueue.Push(lit)
			}
		}
	}
	return nil
}

// runBCPQueue drains the work queue, propagating forced literals until
// either the queue empties (fixpoint reached, no conflict) or some clause
// becomes conflicting.
func (s *State) runBCPQueue() *Clause {
	for s.workQueue.Size() > 0 {
		l := s.workQueue.Pop()
		if c := s.scanOccurrencesOf(l); c != nil {
			s.workQueue.Clear()
			return c
		}
	}
	return nil
}

// firstTimePropagate is the "first-time" entry point of §4.4: it scans all
// original clauses before any decision has been made.
func (s *State) firstTimePropagate() *Clause {
	s.workQueue.Clear()
	if c := s.scanClauseList(s.constraints); c != nil {
		return c
	}
	return s.runBCPQueue()
}

// afterDecidePropagate is the "after-decide" entry point: the work queue is
// seeded with the literal that was just decided.
func (s *State) afterDecidePropagate(l Literal) *Clause {
	s.workQueue.Clear()
	s.workQueue.Push(l)
	return s.runBCPQueue()
}

// afterAssertPropagate is the "after-assert" entry point: the freshly
// learned clause may itself be unit or conflicting at the current level.
func (s *State) afterAssertPropagate(c *Clause) *Clause {
	s.workQueue.Clear()
	if c.Conflicting() {
		return c
	}
	if lit, ok := c.Unit(s); ok {
		s.assign(lit, s.currentLevel, c.id)
		s.implied = append(s.implied, lit)
		s.workQueue.Push(lit)
	}
	return s.runBCPQueue()
}

// finishPropagation turns the result of one of the three propagate
// functions above into the public return value: on success it clears the
// pending asserted clause and reports true; on conflict it invokes the
// analyzer, stashes the learned clause, and reports false.
func (s *State) finishPropagation(conflict *Clause) bool {
	if conflict == nil {
		s.assertedClause = nil
		return true
	}
	literals, assertionLevel := s.analyze(conflict)
	s.assertedClause = &Clause{
		literals:       literals,
		learnt:         true,
		assertionLevel: assertionLevel,
	}
	return false
}
