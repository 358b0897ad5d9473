package sat

import (
	"time"

	"github.com/pkg/errors"
)

// Options configures a Solver. Grounded on the teacher's Options/
// DefaultOptions pair (rhartert/yass's internal/sat/solver.go), extended
// with the fields this spec's preprocessor, VSIDS, and logging sections
// need.
type Options struct {
	// VariableDecay is the VSIDS decay multiplier d in (0, 1) (spec §3).
	VariableDecay float64

	// PhaseSaving, when true, makes each decision reuse the polarity a
	// variable held the last time it was unassigned (spec §4.5 leaves this
	// optional).
	PhaseSaving bool

	// Strict enables the assertion-grade invariant checks described in
	// spec §7. Off by default, matching the spec's "release" elision.
	Strict bool

	// Logger receives periodic search progress and a final line when the
	// search finds SAT. Defaults to NopLogger.
	Logger Logger
}

// DefaultOptions mirrors the teacher's DefaultOptions constant.
var DefaultOptions = Options{
	VariableDecay: 0.95,
	PhaseSaving:   false,
	Strict:        false,
	Logger:        NopLogger{},
}

// Solver is a single CDCL search instance. It is not safe for concurrent
// use (spec §5): the trail, watch index, clause store, and VSIDS heap are
// exclusively owned by the instance.
type Solver struct {
	opts Options

	clauses     *clauseStore
	constraints []ClauseRef
	learnts     []ClauseRef

	// originalClauses preserves every accepted (non-tautological) input
	// clause as given, including the units that are enqueued directly and
	// therefore never allocated in the clause store. Used by Check.
	originalClauses [][]Literal

	trail *trail
	watch *watchIndex
	vsids *vsids

	propQueue *Queue[Literal]

	seen *ResetSet

	unsat bool

	// Reusable scratch buffers, matching the teacher's tmpWatchers/
	// tmpLearnts convention of amortizing allocation across calls.
	tmpWatchers []ClauseRef
	tmpLearnt   []Literal

	// Search statistics (spec §9 / SPEC_FULL §4: supplemented from
	// original_source's per-run counters).
	TotalConflicts    int64
	TotalDecisions    int64
	TotalPropagations int64
	TotalRestarts     int64
	startTime         time.Time
	elapsed           time.Duration

	model Model
}

// NewSolver returns a Solver configured with the given options.
func NewSolver(opts Options) *Solver {
	if opts.Logger == nil {
		opts.Logger = NopLogger{}
	}
	if opts.VariableDecay <= 0 || opts.VariableDecay >= 1 {
		opts.VariableDecay = DefaultOptions.VariableDecay
	}

	s := &Solver{
		opts:      opts,
		clauses:   newClauseStore(),
		watch:     newWatchIndex(),
		propQueue: NewQueue[Literal](128),
		seen:      &ResetSet{},
	}
	s.vsids = newVSIDS(opts.VariableDecay, opts.PhaseSaving)
	s.trail = newTrail(s.vsids)
	return s
}

// NewDefaultSolver returns a Solver configured with DefaultOptions,
// equivalent to calling NewSolver(DefaultOptions).
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NumVariables returns the number of declared variables.
func (s *Solver) NumVariables() int {
	return len(s.trail.level)
}

// AddVariable declares a new variable and returns its 0-based id.
func (s *Solver) AddVariable() int {
	id := s.NumVariables()
	s.trail.grow()
	s.watch.grow(id + 1)
	s.vsids.addVar()
	s.seen.Expand()
	return id
}

// AddClause adds a clause to the formula (spec §4.1/§6). It must be called
// at decision level 0. Logical outcomes never surface as an error here: a
// tautology is dropped, and an immediate conflict (an empty clause, or a
// unit contradicting an earlier one) makes Solve return UNSAT, per spec
// §7's rule that SAT/UNSAT are return values, not errors.
func (s *Solver) AddClause(lits []Literal) error {
	if s.trail.currentLevel() != 0 {
		return errors.New("sat: AddClause called above decision level 0")
	}

	ref, res := s.clauses.addClause(lits, false)
	switch res {
	case addTautology:
		return nil
	case addEmpty:
		s.unsat = true
		return nil
	case addUnit:
		s.originalClauses = append(s.originalClauses, append([]Literal(nil), lits...))
		unit := lits[0]
		if s.trail.assigned(unit) {
			if s.trail.valueOf(unit) == False {
				s.unsat = true
			}
			return nil
		}
		s.enqueue(unit, NoClause)
		return nil
	default:
		s.originalClauses = append(s.originalClauses, append([]Literal(nil), lits...))
		s.constraints = append(s.constraints, ref)
		c := s.clauses.get(ref)
		s.watch.add(c.watched0(), ref)
		s.watch.add(c.watched1(), ref)
		return nil
	}
}

func (s *Solver) decisionLevel() int {
	return s.trail.currentLevel()
}

// record allocates the learned clause, reorders its watched literals so
// that backjumping immediately re-triggers propagation of the asserting
// literal (spec §4.4's asserting property, P6), and enqueues that literal.
func (s *Solver) record(learnt []Literal) {
	if len(learnt) == 1 {
		s.enqueue(learnt[0], NoClause)
		return
	}

	// Put the literal with the highest level among learnt[1:] at index 1,
	// so that the clause's two watches are its asserting literal and the
	// literal that becomes unassigned first on a later backtrack.
	maxLevel, maxAt := -1, 1
	for i := 1; i < len(learnt); i++ {
		if lvl := s.trail.level[learnt[i].VarID()]; lvl > maxLevel {
			maxLevel = lvl
			maxAt = i
		}
	}
	learnt[1], learnt[maxAt] = learnt[maxAt], learnt[1]

	ref, res := s.clauses.addClause(learnt, true)
	if res != addOK {
		panic(newInvariantError("I3", "learned clause degenerated unexpectedly"))
	}
	c := s.clauses.get(ref)
	s.watch.add(c.watched0(), ref)
	s.watch.add(c.watched1(), ref)
	s.learnts = append(s.learnts, ref)

	s.enqueue(learnt[0], ref)
}

// Solve runs the CDCL search loop of spec §4.7 to completion and returns
// the outcome. Model() returns the satisfying assignment when the result
// is Sat.
func (s *Solver) Solve() Outcome {
	return s.solve(time.Time{})
}

// SolveWithDeadline behaves like Solve but abandons the search and returns
// Unresolved once wall-clock time reaches deadline. The deadline is
// checked cooperatively between top-level loop iterations; there is no
// concurrent execution and no state ever touched from more than one
// goroutine (spec §5: "single-threaded... no concurrent access is
// permitted or required").
func (s *Solver) SolveWithDeadline(deadline time.Time) Outcome {
	return s.solve(deadline)
}

func (s *Solver) solve(deadline time.Time) Outcome {
	s.startTime = time.Now()
	defer func() { s.elapsed = time.Since(s.startTime) }()

	if s.unsat {
		return Unsat
	}
	if !s.preprocess() {
		return Unsat
	}

	for {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return Unresolved
		}

		conflict := s.propagate()
		if conflict != NoClause {
			s.TotalConflicts++

			if s.decisionLevel() == 0 {
				return Unsat
			}

			learnt, backjumpLevel := s.analyze(conflict)
			s.trail.popTo(backjumpLevel)
			s.record(learnt)
			s.vsids.decayAll()

			if s.TotalConflicts%1000 == 0 {
				s.opts.Logger.Debugf(
					"conflicts=%d decisions=%d propagations=%d learnts=%d",
					s.TotalConflicts, s.TotalDecisions, s.TotalPropagations, len(s.learnts))
			}
			continue
		}

		if s.trail.size() == s.NumVariables() {
			s.saveModel()
			s.opts.Logger.Infof("SAT after %d conflicts, %d decisions", s.TotalConflicts, s.TotalDecisions)
			return Sat
		}

		lit := s.vsids.popUnassigned(s.trail)
		s.TotalDecisions++
		s.trail.beginDecisionLevel()
		s.enqueue(lit, NoClause)
	}
}

func (s *Solver) saveModel() {
	model := make(Model, s.NumVariables())
	for v := range model {
		model[v] = s.trail.valueOf(PositiveLiteral(v)) == True
	}
	s.model = model
}

// Model returns the satisfying assignment found by the last Solve call
// that returned Sat. Its contents are undefined otherwise.
func (s *Solver) Model() Model {
	return s.model
}

// Elapsed returns the wall-clock duration of the last Solve call.
func (s *Solver) Elapsed() time.Duration {
	return s.elapsed
}

// Check verifies that every original clause has at least one literal true
// under the solver's current model (spec §6's self-verification
// predicate).
func (s *Solver) Check() bool {
	return Check(s.originalClauses, s.model)
}
