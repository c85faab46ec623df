// Package sim provides the core annual-step simulation engine for the
// education system projection.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - series.go: the Table time-series type every sector produces
//   - access.go: a representative sector model (parameters, initial state, annual update)
//   - simulation.go: the orchestrator that runs all seven sectors over the horizon
//
// # Architecture
//
// Seven sector models evolve independently; none reads another's state during
// a run. Six of them (access, quality, institutions, curriculum, edtech,
// finance) follow the same shape: a fixed set of indicators in [0,1], derived
// at year 0 from baseline driver groups and advanced one year at a time by a
// bounded multiplicative recurrence. The teacher model (teacher.go) is the
// structural exception: five scalar drivers plus three composite indices
// recomputed from the drivers every year.
//
// The orchestrator (simulation.go) builds all seven models from a Config,
// runs each over the year horizon, and returns a Results map keyed by sector
// name. The analysis layer (analysis.go) reduces the series to per-indicator
// mean/std pairs and a curated set of named KPIs.
//
// All arithmetic in the engine is total: clip operations make every formula
// defined for any real input, so the core returns values, not errors.
package sim
