package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClauseStore_addClause_tautology(t *testing.T) {
	cs := newClauseStore()
	lits := []Literal{PositiveLiteral(0), NegativeLiteral(0), PositiveLiteral(1)}
	_, res := cs.addClause(lits, false)
	require.Equal(t, addTautology, res)
}

func TestClauseStore_addClause_empty(t *testing.T) {
	cs := newClauseStore()
	_, res := cs.addClause(nil, false)
	require.Equal(t, addEmpty, res)
}

func TestClauseStore_addClause_unit(t *testing.T) {
	cs := newClauseStore()
	_, res := cs.addClause([]Literal{PositiveLiteral(0)}, false)
	require.Equal(t, addUnit, res)
}

func TestClauseStore_addClause_ok(t *testing.T) {
	cs := newClauseStore()
	lits := []Literal{PositiveLiteral(0), NegativeLiteral(1), PositiveLiteral(2)}
	ref, res := cs.addClause(lits, false)
	require.Equal(t, addOK, res)

	c := cs.get(ref)
	require.Equal(t, 3, c.Len())
	require.Equal(t, PositiveLiteral(0), c.watched0())
	require.Equal(t, NegativeLiteral(1), c.watched1())
	require.False(t, c.Learnt())
}

func TestClauseStore_addClause_learnt(t *testing.T) {
	cs := newClauseStore()
	lits := []Literal{PositiveLiteral(0), NegativeLiteral(1)}
	ref, res := cs.addClause(lits, true)
	require.Equal(t, addOK, res)
	require.True(t, cs.get(ref).Learnt())
}
