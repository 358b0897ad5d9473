package sat

// propagate drains the propagation queue, maintaining watch invariant W1,
// and returns the conflicting clause if one is found (spec §4.3). It
// returns NoClause on a clean drain.
func (s *Solver) propagate() ClauseRef {
	for s.propQueue.Size() > 0 {
		p := s.propQueue.Pop()
		falseLit := p.Opposite() // just became false; clauses watching it need inspection

		watchers := s.watch.list(falseLit)
		s.tmpWatchers = append(s.tmpWatchers[:0], watchers...)
		s.watch.setList(falseLit, watchers[:0])

		for i, ref := range s.tmpWatchers {
			c := s.clauses.get(ref)

			// Canonicalize so that falseLit sits at w1.
			if c.watched0() == falseLit {
				c.w0, c.w1 = c.w1, c.w0
			}

			if s.trail.valueOf(c.watched0()) == True {
				// Clause already satisfied; keep watching falseLit.
				s.watch.add(falseLit, ref)
				continue
			}

			replaced := false
			for k, lit := range c.literals {
				if k == c.w0 || k == c.w1 {
					continue
				}
				if s.trail.valueOf(lit) != False {
					c.w1 = k
					s.watch.add(c.watched1(), ref)
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}

			// No replacement: unit or conflict. falseLit remains watched.
			s.watch.add(falseLit, ref)

			if s.trail.valueOf(c.watched0()) == False {
				// Conflict: restore the remaining, not-yet-visited watchers
				// of falseLit and stop.
				for _, rest := range s.tmpWatchers[i+1:] {
					s.watch.add(falseLit, rest)
				}
				s.propQueue.Clear()
				return ref
			}

			s.enqueue(c.watched0(), ref)
		}
	}

	return NoClause
}

// enqueue records lit as true with the given reason at the current
// decision level and pushes it onto the propagation queue. Precondition:
// lit is currently unassigned; violating it is an internal invariant
// failure (I1), since the caller (propagate/decide/analyze) is expected to
// have already checked. The check itself only runs under Options.Strict
// (spec §7: elided in the default "release" configuration).
func (s *Solver) enqueue(lit Literal, reason ClauseRef) {
	if s.opts.Strict && s.trail.assigned(lit) {
		panic(newInvariantError("I1", "enqueue called on an already-assigned variable"))
	}
	s.trail.push(lit, reason)
	s.propQueue.Push(lit)
	s.TotalPropagations++
}
