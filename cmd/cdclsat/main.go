// Command cdclsat is the CLI driver for the CDCL solver (spec §1 names the
// driver an external collaborator; SPEC_FULL.md §2.3 grounds its flags and
// stack in the corpus rather than the teacher's bare flag package).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rhartert/cdclsat/internal/dimacs"
	"github.com/rhartert/cdclsat/internal/sat"
	"github.com/rhartert/cdclsat/internal/solverlog"
)

type config struct {
	instanceFile string
	cpuProfile   bool
	memProfile   bool
	timeout      time.Duration
	logFormat    string
	phaseSaving  bool
}

// result is the single JSON line emitted on stdout (spec §6).
type result struct {
	Instance string `json:"Instance"`
	Time     string `json:"Time"`
	Result   string `json:"Result"`
	Solution string `json:"Solution,omitempty"`
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "cdclsat <instance.cnf>",
		Short: "Solve a DIMACS CNF instance with a CDCL SAT solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.instanceFile = args[0]
			return run(cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.cpuProfile, "cpuprofile", false, "save pprof CPU profile to ./cpuprof")
	cmd.Flags().BoolVar(&cfg.memProfile, "memprofile", false, "save pprof memory profile to ./memprof")
	cmd.Flags().DurationVar(&cfg.timeout, "timeout", 0, "abandon the solve after this long (0 = no limit); checked between top-level loop iterations, not a hard preemption")
	cmd.Flags().StringVar(&cfg.logFormat, "log-format", "text", "solver log format: text or json")
	cmd.Flags().BoolVar(&cfg.phaseSaving, "phase-saving", false, "reuse each variable's last polarity on its next decision")

	return cmd
}

func run(cfg *config) error {
	runID := uuid.New().String()
	logger := solverlog.New(cfg.logFormat, logrus.InfoLevel)

	solver := sat.NewSolver(sat.Options{
		VariableDecay: sat.DefaultOptions.VariableDecay,
		PhaseSaving:   cfg.phaseSaving,
		Logger:        logger,
	})

	instance, err := dimacs.Load(cfg.instanceFile, strings.HasSuffix(cfg.instanceFile, ".gz"), solver)
	if err != nil {
		return errors.Wrap(err, "cdclsat")
	}
	logger.Infof("run=%s variables=%d clauses=%d", runID, instance.Variables, instance.Clauses)

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			return errors.Wrap(err, "cdclsat: cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "cdclsat: cpu profile")
		}
		defer pprof.StopCPUProfile()
	}

	var outcome sat.Outcome
	if cfg.timeout > 0 {
		outcome = solver.SolveWithDeadline(time.Now().Add(cfg.timeout))
	} else {
		outcome = solver.Solve()
	}

	res := result{
		Instance: cfg.instanceFile,
		Time:     fmt.Sprintf("%.6f", solver.Elapsed().Seconds()),
		Result:   outcome.String(),
	}
	if outcome == sat.Sat {
		if !solver.Check() {
			return errors.New("cdclsat: internal error: solver returned SAT with a model that fails self-verification")
		}
		res.Solution = formatSolution(solver.Model())
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			return errors.Wrap(err, "cdclsat: mem profile")
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return errors.Wrap(err, "cdclsat: mem profile")
		}
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(res)
}

// formatSolution renders the model as "1 true 2 false ..." (spec §6): a
// space-separated list of alternating 1-based variable and boolean tokens.
func formatSolution(m sat.Model) string {
	tokens := make([]string, 0, 2*len(m))
	for v, val := range m {
		tokens = append(tokens, strconv.Itoa(v+1), strconv.FormatBool(val))
	}
	return strings.Join(tokens, " ")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
