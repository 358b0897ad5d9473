package sat

// analyze implements first-UIP conflict analysis (spec §4.4). Given the
// conflicting clause, it returns the learned clause (with the asserting
// literal -p at position 0) and the backjump level.
func (s *Solver) analyze(conflict ClauseRef) ([]Literal, int) {
	s.seen.Clear()

	nImplicationPoints := 0
	backjumpLevel := 0

	s.tmpLearnt = append(s.tmpLearnt[:0], 0) // position 0 reserved for -p

	cur := conflict
	excludeVar := -1 // pivot variable already resolved away; -1 means none yet
	trailIdx := s.trail.size() - 1

	var p Literal

	for {
		for _, l := range s.clauses.get(cur).Literals() {
			v := l.VarID()
			if v == excludeVar {
				continue
			}
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Add(v)
			s.vsids.bump(v)

			lvl := s.trail.level[v]
			if lvl == s.trail.currentLevel() {
				nImplicationPoints++
			} else if lvl > 0 {
				s.tmpLearnt = append(s.tmpLearnt, l)
				if lvl > backjumpLevel {
					backjumpLevel = lvl
				}
			}
		}

		// Walk the trail backward to the next seen variable; that is the
		// next resolution pivot.
		for {
			p = s.trail.at(trailIdx)
			trailIdx--
			if s.seen.Contains(p.VarID()) {
				break
			}
		}

		nImplicationPoints--
		if nImplicationPoints == 0 {
			break
		}

		cur = s.trail.reason[p.VarID()]
		excludeVar = p.VarID()
	}

	s.tmpLearnt[0] = p.Opposite()
	return s.tmpLearnt, backjumpLevel
}
