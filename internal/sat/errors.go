package sat

import "github.com/pkg/errors"

// InvariantError reports a violation of one of the solver's core invariants
// (spec §3: I1-I5). It is always a bug in the solver itself, never a
// user-visible condition (spec §7) — the caller of a Solver method never
// needs to handle it programmatically, which is why solver methods panic
// with it rather than returning it.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return errors.Errorf("invariant %s violated: %s", e.Invariant, e.Detail).Error()
}

func newInvariantError(invariant, detail string) *InvariantError {
	return &InvariantError{Invariant: invariant, Detail: detail}
}
