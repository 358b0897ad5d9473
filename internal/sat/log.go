package sat

// Logger is the ambient logging seam named by spec §9 ("replace ambient
// debug printing with an explicit logger interface passed at construction
// or a compile-time switch that elides calls entirely"). The solver only
// ever logs periodic search progress and a final line when it finds SAT;
// UNSAT and deadline outcomes are not logged. It never uses logging for
// control flow.
//
// internal/solverlog provides a github.com/sirupsen/logrus-backed
// implementation; tests and library embedders that don't want output can
// use NopLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

// NopLogger discards everything. It is the default when Options.Logger is
// nil.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
