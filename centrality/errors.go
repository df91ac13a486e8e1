// Package centrality: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); tests and callers match with
// errors.Is. Panics are reserved for nonsensical option parameters
// (programmer error), never for user-triggered conditions.
//
// Every message is prefixed with "centrality: ..." for easy grepping.

package centrality

import "errors"

var (
	// ErrNoMatrices indicates that Compute received an empty matrix slice.
	ErrNoMatrices = errors.New("centrality: no adjacency matrices supplied")

	// ErrNilMatrix indicates a nil *network.AdjacencyMatrix in the input.
	ErrNilMatrix = errors.New("centrality: adjacency matrix is nil")

	// ErrTooSmall indicates a matrix below the minimum admissible order.
	// network.New already enforces this; the engine re-checks defensively.
	ErrTooSmall = errors.New("centrality: matrix must have at least 2 states")

	// ErrLabelMismatch indicates that multi-cluster matrices do not share
	// one ordered state-label set; concatenated tables would be meaningless.
	ErrLabelMismatch = errors.New("centrality: cluster matrices have different state labels")

	// ErrBadMeasure indicates one or more unknown or ambiguous measure
	// names. The wrapping message lists every offending name of the request,
	// not only the first.
	ErrBadMeasure = errors.New("centrality: unknown or ambiguous measure name")

	// ErrClusterRange indicates a WithCluster index outside the supplied
	// matrices. Ignored when exactly one matrix is supplied.
	ErrClusterRange = errors.New("centrality: cluster index out of range")

	// ErrSingular is returned when (I − W) in the randomized shortest-path
	// betweenness kernel is not invertible. Fatal for the whole report:
	// a silently defaulted column would be indistinguishable from a real one.
	ErrSingular = errors.New("centrality: singular matrix in betweenness kernel")

	// ErrMeasureAbsent indicates a Table lookup for a measure column that
	// was not part of the computed selection.
	ErrMeasureAbsent = errors.New("centrality: measure not present in table")

	// ErrOutOfRange indicates a Table row index outside [0, Rows()).
	ErrOutOfRange = errors.New("centrality: row index out of range")
)
