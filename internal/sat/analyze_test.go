package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildConflict wires up a small two-decision-level formula and drives the
// solver by hand (decide x0, propagate, decide x4, propagate) until it hits
// a conflict, returning the solver and the conflicting clause so tests can
// exercise analyze() directly. The chain is:
//
//	x0 (decided @1)
//	-x0 | x1         => x1 @1
//	-x0 | x2         => x2 @1
//	-x1 | -x2 | x3   => x3 @1
//	x4 (decided @2)
//	-x3 | -x4 | x5   => x5 @2 (reason)
//	-x5 | -x4        => conflict, pivoting through x5's reason
func buildConflict(t *testing.T) (*Solver, ClauseRef) {
	t.Helper()

	s := NewDefaultSolver()
	for i := 0; i < 6; i++ {
		s.AddVariable()
	}

	require.NoError(t, s.AddClause([]Literal{NegativeLiteral(0), PositiveLiteral(1)}))
	require.NoError(t, s.AddClause([]Literal{NegativeLiteral(0), PositiveLiteral(2)}))
	require.NoError(t, s.AddClause([]Literal{NegativeLiteral(1), NegativeLiteral(2), PositiveLiteral(3)}))
	require.NoError(t, s.AddClause([]Literal{NegativeLiteral(3), NegativeLiteral(4), PositiveLiteral(5)}))
	require.NoError(t, s.AddClause([]Literal{NegativeLiteral(5), NegativeLiteral(4)}))

	s.trail.beginDecisionLevel()
	s.enqueue(PositiveLiteral(0), NoClause)
	require.Equal(t, NoClause, s.propagate())
	require.Equal(t, True, s.trail.valueOf(PositiveLiteral(3)), "x3 should be implied at level 1")

	s.trail.beginDecisionLevel()
	s.enqueue(PositiveLiteral(4), NoClause)
	conflict := s.propagate()
	require.NotEqual(t, NoClause, conflict)

	return s, conflict
}

func TestAnalyze_firstUIP(t *testing.T) {
	s, conflict := buildConflict(t)

	learnt, backjumpLevel := s.analyze(conflict)

	require.Equal(t, []Literal{NegativeLiteral(4), NegativeLiteral(3)}, learnt)
	require.Equal(t, 1, backjumpLevel)
}

// TestAnalyze_learntIsFalseUnderTrail checks P5: every literal of the
// learned clause is false under the (pre-backjump) trail that produced it.
func TestAnalyze_learntIsFalseUnderTrail(t *testing.T) {
	s, conflict := buildConflict(t)

	learnt, _ := s.analyze(conflict)
	for _, l := range learnt {
		require.Equal(t, False, s.trail.valueOf(l), "literal %v must be false under the conflicting trail", l)
	}
}

// TestAnalyze_assertingProperty checks P6: only the first literal of the
// learned clause sits at the current decision level.
func TestAnalyze_assertingProperty(t *testing.T) {
	s, conflict := buildConflict(t)

	learnt, backjumpLevel := s.analyze(conflict)

	require.Equal(t, s.decisionLevel(), s.trail.level[learnt[0].VarID()])
	for _, l := range learnt[1:] {
		lvl := s.trail.level[l.VarID()]
		require.Less(t, lvl, s.decisionLevel())
		require.LessOrEqual(t, lvl, backjumpLevel)
	}
}
