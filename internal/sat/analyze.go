package sat

// analyze implements the conflict analyzer (§4.5): a backward traversal of
// the implication graph starting from a conflicting clause, producing an
// asserting learned clause and its assertion level.
//
// The cut is "stop at decisions or at any literal with an earlier decision
// level", which the spec notes is a correct asserting cut but not
// necessarily First-UIP (§9, §4.5 caveat). This implementation preserves
// that exact behavior rather than upgrading to a strict First-UIP cut.
func (s *State) analyze(conflict *Clause) ([]Literal, int) {
	s.seenVar.Clear()
	s.workQueue.Clear()
	s.tmpLearnts = s.tmpLearnts[:0]

	assertionLevel := 1

	seed := func(l Literal) {
		v := int(l.Var())
		if s.seenVar.Contains(v) {
			return
		}
		s.seenVar.Add(v)
		s.workQueue.Push(l.Opposite())
	}
	for _, l := range conflict.literals {
		seed(l)
	}

	for s.workQueue.Size() > 0 {
		l := s.workQueue.Pop()
		level := s.litLevelOf(l)
		reason := s.litReasonOf(l)

		if level < s.currentLevel || reason == 0 {
			s.tmpLearnts = append(s.tmpLearnts, l.Opposite())
			if level < s.currentLevel && level > assertionLevel {
				assertionLevel = level
			}
			continue
		}

		for _, lp := range s.clauseByID(reason).literals {
			seed(lp)
		}
	}

	learned := make([]Literal, len(s.tmpLearnts))
	copy(learned, s.tmpLearnts)
	return learned, assertionLevel
}
