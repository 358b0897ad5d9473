package sat

import (
	"github.com/rhartert/yagh"
)

// vsids implements the variable-state-independent decaying sum heuristic of
// spec §4.5/§3: a max-priority queue over variables keyed by a floating
// activity score, with a global bump increment and decay multiplier.
// Grounded on the teacher's VarOrder (internal/sat/ordering.go), adapted to
// the arena/ClauseRef redesign and renamed to match this package's
// vocabulary (VSIDS is spelled out in spec §4.5, not "order").
//
// yagh.IntMap is a binary heap keyed by priority; lower priority pops first,
// so scores are stored negated to make it a max-heap over activity.
type vsids struct {
	heap *yagh.IntMap[float64]

	scores []float64
	inc    float64
	decay  float64

	phases      []LBool
	phaseSaving bool
}

func newVSIDS(decay float64, phaseSaving bool) *vsids {
	return &vsids{
		heap:        yagh.New[float64](0),
		inc:         1,
		decay:       decay,
		phaseSaving: phaseSaving,
	}
}

// addVar registers a newly declared variable with zero initial activity; it
// starts out in the heap (unassigned) as every variable does at
// construction time.
func (vs *vsids) addVar() {
	v := len(vs.scores)
	vs.scores = append(vs.scores, 0)
	vs.phases = append(vs.phases, Unknown)
	vs.heap.GrowBy(1)
	vs.heap.Put(v, 0)
}

// bump increases v's activity by the current increment, rescaling all
// activities if it would overflow. This is the lazy-reheapification
// strategy recommended by spec §9: the increment itself grows via decay
// rather than rescaling every score on every decay call.
func (vs *vsids) bump(v int) {
	vs.scores[v] += vs.inc
	if vs.heap.Contains(v) {
		vs.heap.Put(v, -vs.scores[v])
	}
	if vs.scores[v] > 1e100 {
		vs.rescale()
	}
}

// decayAll increases the global increment, equivalent to multiplying every
// activity by decay (spec §4.5).
func (vs *vsids) decayAll() {
	vs.inc /= vs.decay
	if vs.inc > 1e100 {
		vs.rescale()
	}
}

func (vs *vsids) rescale() {
	vs.inc *= 1e-100
	for v, s := range vs.scores {
		rescaled := s * 1e-100
		vs.scores[v] = rescaled
		if vs.heap.Contains(v) {
			vs.heap.Put(v, -rescaled)
		}
	}
}

// reinsert returns variable v to the heap of candidates, called by trail
// popTo when backtracking unassigns it. val is the value v held just before
// being unassigned; with phase saving enabled, the next decision on v will
// reuse that polarity.
func (vs *vsids) reinsert(v int, val LBool) {
	if vs.phaseSaving {
		vs.phases[v] = val
	}
	vs.heap.Put(v, -vs.scores[v])
}

// popUnassigned pops variables from the heap until finding one that is
// still unassigned per the given trail, and returns the literal to branch
// on using that variable's saved (or default) polarity. It panics if the
// heap empties out without finding one, which signals a bug in the caller:
// the solver loop must only call this when the trail is not yet complete.
func (vs *vsids) popUnassigned(t *trail) Literal {
	for {
		v, ok := vs.heap.Pop()
		if !ok {
			panic("sat: popUnassigned called with no unassigned variable left")
		}
		if t.assigned(PositiveLiteral(v.Elem)) {
			continue
		}
		switch vs.phases[v.Elem] {
		case False:
			return NegativeLiteral(v.Elem)
		default:
			return PositiveLiteral(v.Elem)
		}
	}
}
