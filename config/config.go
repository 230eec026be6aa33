// Package config collects the solver ceilings and tolerances used
// across the pipeline, mirroring the teacher's types/const.go
// (MaxIterations, Tolerance, MaxOscillationCount) — a handful of named
// constants rather than a configuration-file/options-struct layer,
// since nothing here is meant to vary at runtime.
package config

const (
	// MaxReductionLevels bounds reducer.Trace's level orchestrator.
	MaxReductionLevels = 50

	// MaxRewriteIterations bounds reducer.Reduce's edge-rewrite loop.
	MaxRewriteIterations = 10000

	// Tolerance is the 1e-9 relative/absolute error bound of the
	// numeric invariants. No package of the module reads it; the tests
	// write the same bound as a literal, and the MNA pivot check uses
	// its own 1e-12 cutoff.
	Tolerance = 1e-9
)
