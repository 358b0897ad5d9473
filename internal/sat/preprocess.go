package sat

// preprocess runs the level-0 simplification described in spec §4.6: drain
// the propagation queue to absorb the original formula's unit clauses,
// then repeatedly eliminate pure literals (a literal l is pure iff its
// complement appears in no remaining clause — the definition spec §9
// settles explicitly, since the source's two copies disagreed) until a
// fixed point, and finally removes the clauses already satisfied at level 0.
// Returns false if the process finds a level-0 conflict (immediate UNSAT).
func (s *Solver) preprocess() bool {
	if s.propagate() != NoClause {
		return false
	}

	for {
		pure, ok := s.findPureLiteral()
		if !ok {
			break
		}
		for _, lit := range pure {
			if s.trail.assigned(lit) {
				continue
			}
			s.enqueue(lit, NoClause)
		}
		if s.propagate() != NoClause {
			return false
		}
	}

	s.removeSatisfiedConstraints()
	return true
}

// findPureLiteral scans the original constraints not yet satisfied at level
// 0 (learnts are not scanned; none exist yet at this point in Solve) and
// returns the set of literals that appear but whose complement
// never does. A variable already assigned is excluded even if it would
// otherwise look pure, since it contributes nothing further to do.
func (s *Solver) findPureLiteral() ([]Literal, bool) {
	seenPos := make(map[int]bool)
	seenNeg := make(map[int]bool)

	scan := func(c []Literal) {
		for _, l := range c {
			if s.trail.valueOf(l) == True {
				return // clause already satisfied, its literals don't count
			}
		}
		for _, l := range c {
			if s.trail.assigned(l) {
				continue
			}
			if l.IsPositive() {
				seenPos[l.VarID()] = true
			} else {
				seenNeg[l.VarID()] = true
			}
		}
	}

	for _, ref := range s.constraints {
		scan(s.clauses.get(ref).Literals())
	}

	var pure []Literal
	for v := range seenPos {
		if !seenNeg[v] {
			pure = append(pure, PositiveLiteral(v))
		}
	}
	for v := range seenNeg {
		if !seenPos[v] {
			pure = append(pure, NegativeLiteral(v))
		}
	}

	return pure, len(pure) > 0
}

// removeSatisfiedConstraints drops original clauses already true under the
// level-0 assignment, matching spec §4.6 step 3. It never runs on learnts
// since none exist yet when preprocess executes.
func (s *Solver) removeSatisfiedConstraints() {
	kept := s.constraints[:0]
	for _, ref := range s.constraints {
		c := s.clauses.get(ref)
		if s.clauseSatisfiedAtLevel0(c) {
			s.watch.remove(c.watched0(), ref)
			s.watch.remove(c.watched1(), ref)
			continue
		}
		kept = append(kept, ref)
	}
	s.constraints = kept
}

func (s *Solver) clauseSatisfiedAtLevel0(c *Clause) bool {
	for _, l := range c.Literals() {
		if s.trail.valueOf(l) == True {
			return true
		}
	}
	return false
}
