package sat

// watchIndex maps a literal to the set of clauses that watch it (spec §3,
// invariant W1). Per spec §4.1, a clause watching literal lit is physically
// stored in the bucket keyed by -lit — "the watch index uses the complement
// convention" — which is what lets the propagator locate every clause whose
// watched literal just went false in O(1): when p is assigned true, -p just
// went false, and the affected clauses are exactly list(-p), whose backing
// bucket is keyed by -(-p) = p.
//
// The complement arithmetic is confined to this type; callers only ever
// think in terms of "the clauses watching literal X".
type watchIndex struct {
	byLit [][]ClauseRef
}

func newWatchIndex() *watchIndex {
	return &watchIndex{}
}

// grow ensures the index has slots for every literal of the given number of
// variables (2 literals per variable).
func (w *watchIndex) grow(numVars int) {
	for len(w.byLit) < 2*numVars {
		w.byLit = append(w.byLit, nil)
	}
}

// add registers ref as a watcher of lit.
func (w *watchIndex) add(lit Literal, ref ClauseRef) {
	key := lit.Opposite()
	w.byLit[key] = append(w.byLit[key], ref)
}

// list returns the (mutable) slice of clauses watching lit.
func (w *watchIndex) list(lit Literal) []ClauseRef {
	return w.byLit[lit.Opposite()]
}

// setList replaces the watcher list of lit wholesale. Used by the
// propagator to write back the list after filtering out clauses that moved
// their watch elsewhere.
func (w *watchIndex) setList(lit Literal, refs []ClauseRef) {
	w.byLit[lit.Opposite()] = refs
}

// remove deletes ref from the watcher list of lit, if present.
func (w *watchIndex) remove(lit Literal, ref ClauseRef) {
	key := lit.Opposite()
	list := w.byLit[key]
	for i, r := range list {
		if r == ref {
			list[i] = list[len(list)-1]
			w.byLit[key] = list[:len(list)-1]
			return
		}
	}
}

// contains reports whether ref watches lit, scanning the (small) bucket. The
// solver's own code paths do not call it.
func (w *watchIndex) contains(lit Literal, ref ClauseRef) bool {
	for _, r := range w.list(lit) {
		if r == ref {
			return true
		}
	}
	return false
}
