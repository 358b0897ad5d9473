// Package dimacs bridges DIMACS CNF files to and from an internal/sat
// Solver. Parsing itself is delegated to github.com/rhartert/dimacs, the
// teacher's own low-level tokenizer; this package only adapts its Builder
// callbacks to the solver's literal encoding (spec §6 names DIMACS parsing
// as an external collaborator, not part of the CDCL core).
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	upstream "github.com/rhartert/dimacs"
	"github.com/pkg/errors"

	"github.com/rhartert/cdclsat/internal/sat"
)

// SATSolver is the subset of *sat.Solver this package depends on.
type SATSolver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

// Instance summarizes a parsed DIMACS file (spec §6's header fields). The
// CLI logs these counts before solving; they are not part of its JSON
// result.
type Instance struct {
	Variables int
	Clauses   int
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "dimacs: opening %q", filename)
	}
	rc := io.ReadCloser(file)
	if gzipped {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, errors.Wrapf(err, "dimacs: %q is not gzip-compressed", filename)
		}
		rc = gz
	}
	return rc, nil
}

// Load parses the DIMACS CNF file at filename and instantiates it into
// solver via AddVariable/AddClause calls, returning the instance's
// variable/clause counts from the header.
func Load(filename string, gzipped bool, solver SATSolver) (Instance, error) {
	r, err := open(filename, gzipped)
	if err != nil {
		return Instance{}, err
	}
	defer r.Close()

	b := &builder{solver: solver}
	if err := upstream.ReadBuilder(r, b); err != nil {
		return Instance{}, errors.Wrapf(err, "dimacs: parsing %q", filename)
	}
	return Instance{Variables: b.numVars, Clauses: b.numClauses}, nil
}

// builder adapts upstream.Builder's integer literal callbacks to the
// solver's internal Literal encoding.
type builder struct {
	solver              SATSolver
	numVars, numClauses int
}

func (b *builder) Problem(problem string, numVars int, numClauses int) error {
	if problem != "cnf" {
		return errors.Errorf("dimacs: unsupported problem type %q", problem)
	}
	b.numVars = numVars
	b.numClauses = numClauses
	for i := 0; i < numVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(string) error {
	return nil
}

// Write serializes a formula to DIMACS CNF text (spec §6 defines the
// format; the teacher never needed a writer since it only ever consumed
// files, so this is a supplemented feature for P8's round-trip property).
func Write(w io.Writer, numVars int, clauses [][]sat.Literal) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, l := range clause {
			v := l.VarID() + 1
			if l.IsPositive() {
				if _, err := fmt.Fprintf(bw, "%d ", v); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(bw, "-%d ", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
