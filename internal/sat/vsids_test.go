package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVSIDS_bumpChangesPopOrder(t *testing.T) {
	vs := newVSIDS(0.95, false)
	for i := 0; i < 3; i++ {
		vs.addVar()
	}

	vs.bump(2)
	vs.bump(2)
	vs.bump(1)

	tr := newTestTrail(3)
	tr.vsids = vs

	first := vs.popUnassigned(tr)
	require.Equal(t, 2, first.VarID())
}

func TestVSIDS_popUnassignedSkipsAssigned(t *testing.T) {
	vs := newVSIDS(0.95, false)
	for i := 0; i < 2; i++ {
		vs.addVar()
	}
	vs.bump(0)
	vs.bump(0) // variable 0 now has the highest activity

	tr := newTestTrail(2)
	tr.vsids = vs
	tr.beginDecisionLevel()
	tr.push(PositiveLiteral(0), NoClause)

	lit := vs.popUnassigned(tr)
	require.Equal(t, 1, lit.VarID())
}

func TestVSIDS_phaseSaving(t *testing.T) {
	vs := newVSIDS(0.95, true)
	vs.addVar()

	vs.reinsert(0, False)
	tr := newTestTrail(1)
	tr.vsids = vs

	lit := vs.popUnassigned(tr)
	require.False(t, lit.IsPositive())
}

func TestVSIDS_decayAllGrowsIncrement(t *testing.T) {
	vs := newVSIDS(0.5, false)
	vs.addVar()

	before := vs.inc
	vs.decayAll()
	require.Greater(t, vs.inc, before)
}
