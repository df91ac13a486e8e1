// Package centrality: functional configuration for report computation.
// Defaults live in documented constants (single source of truth); WithX
// constructors panic only on nonsensical parameters (programmer error) and
// never on values that depend on user data — those are validated inside
// Compute and surfaced as sentinel errors.

package centrality

import "math"

// Defaults — these constants MUST reflect defaultOptions exactly.
const (
	// DefaultBeta is the randomized shortest-path temperature. Small values
	// approach deterministic shortest-path betweenness; large values
	// approach random-walk betweenness.
	DefaultBeta = 0.01

	// DefaultIncludeLoops controls the diagonal policy.
	// false ⇒ the diagonal is zeroed before any measure is computed.
	DefaultIncludeLoops = false

	// DefaultNormalize controls per-column min-max rescaling to [0,1].
	// false ⇒ raw measure values are returned.
	DefaultNormalize = false
)

// Internal panic messages (no magic strings).
const (
	panicBetaInvalid = "centrality: WithBeta: beta must be finite and > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	includeLoops bool     // DefaultIncludeLoops
	normalize    bool     // DefaultNormalize
	beta         float64  // DefaultBeta
	measures     []string // nil ⇒ full vocabulary in canonical order
	cluster      int      // meaningful only when clusterSet
	clusterSet   bool     // false ⇒ every supplied matrix
}

// defaultOptions returns the documented zero configuration.
func defaultOptions() Options {
	return Options{
		includeLoops: DefaultIncludeLoops,
		normalize:    DefaultNormalize,
		beta:         DefaultBeta,
		measures:     nil,
		clusterSet:   false,
	}
}

// gatherOptions applies setters over the defaults.
func gatherOptions(opts []Option) Options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLoops keeps the diagonal (self-transitions) in every measure.
// Default: the diagonal is zeroed before any computation.
func WithLoops() Option {
	return func(o *Options) { o.includeLoops = true }
}

// WithNormalization rescales each computed measure column independently to
// [0,1] via (v − min) / (max − min), where min and max range over the
// column's finite entries; NaN and ±Inf entries (degenerate per-state
// outcomes) pass through unchanged. Columns whose finite entries are
// constant map those entries to all zeros — the explicit convention for
// otherwise-undefined constant columns.
func WithNormalization() Option {
	return func(o *Options) { o.normalize = true }
}

// WithMeasures selects which measures to compute, in request order.
// Names are matched case-insensitively, exact first, then unambiguous
// prefix; see Resolve. Default: the full vocabulary in canonical order.
func WithMeasures(names ...string) Option {
	// Copy: the caller's slice must not alias internal state.
	own := make([]string, len(names))
	copy(own, names)

	return func(o *Options) { o.measures = own }
}

// WithBeta sets the randomized shortest-path temperature for Betweenness.
// Panics when beta is NaN, ±Inf or ≤ 0 — such a temperature is a
// programming error, not a data condition.
func WithBeta(beta float64) Option {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta <= 0 {
		panic(panicBetaInvalid)
	}

	return func(o *Options) { o.beta = beta }
}

// WithCluster restricts a multi-matrix computation to the single matrix at
// index i (0-based, input order). Out-of-range indices — including negative
// ones — surface as ErrClusterRange from Compute; when exactly one matrix
// is supplied the filter is ignored.
func WithCluster(i int) Option {
	return func(o *Options) { o.cluster, o.clusterSet = i, true }
}
