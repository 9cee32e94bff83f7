// Package constants holds shared sizing and tuning values for the
// Kakuro solver, generator, and HTTP layer.
package constants

// Digit range constants. Kakuro digits are drawn from {1..9} by default,
// but Puzzle accepts a configurable [min_val..max_val] subrange.
const (
	MinDigit     = 1
	MaxDigit     = 9
	MaxRunLength = MaxDigit
	MaxSum       = 45 // 1+2+...+9
)

// Propagator budget (Rule R1). Pass-dependent enumeration cost cap:
// B(i) ~= PropagationBudgetGrowth^i + PropagationBudgetBase.
const (
	PropagationBudgetBase   = 500
	PropagationBudgetGrowth = 1.7
)

// Searcher limits.
const (
	// DefaultWarnThreshold is the residual search-space size (product of
	// domain sizes) above which the searcher surfaces a diagnostic warning.
	DefaultWarnThreshold = 500_000
	// DefaultSolutionCap bounds solve_all when the caller doesn't supply one.
	DefaultSolutionCap = 1000
)

// Generator tuning.
const (
	DefaultFillProbability   = 0.4
	DefaultPlacementAttempts = 20
)

// API version surfaced on the health endpoint.
const APIVersion = "0.1.0"

// DefaultPort is used when PORT is unset.
const DefaultPort = "8080"

// DefaultCacheFile is the combination-table persistence path (see
// internal/kakuro/cache.go). Empty disables persistence.
const DefaultCacheFile = ""
