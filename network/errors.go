// Package network: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// network package. Constructors and accessors return these sentinels and
// tests check them via errors.Is. No function panics on user-triggered
// error conditions.
//
// Every message is prefixed with "network: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the call site — callers still match via
// errors.Is.

package network

import "errors"

var (
	// ErrNilMatrix indicates a nil or empty matrix input (no rows, nil
	// *mat.Dense, or a nil *AdjacencyMatrix receiver/argument).
	ErrNilMatrix = errors.New("network: matrix is nil or empty")

	// ErrNotSquare signals that the input rows do not form a square matrix.
	ErrNotSquare = errors.New("network: matrix is not square")

	// ErrTooSmall signals fewer than MinStates states. A transition network
	// over a single state has no structure to measure.
	ErrTooSmall = errors.New("network: matrix must have at least 2 states")

	// ErrBadLabels signals a label count that disagrees with the matrix
	// order, or duplicate labels.
	ErrBadLabels = errors.New("network: state labels invalid")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required
	// (ingestion only; downstream measures may legitimately produce ±Inf).
	ErrNaNInf = errors.New("network: NaN or Inf entry encountered")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("network: index out of range")

	// ErrNoClusters indicates that a Model was constructed without clusters.
	ErrNoClusters = errors.New("network: model requires at least one cluster")

	// ErrClusterMismatch indicates that clusters carry different state-label
	// sets; a Model is defined over one shared state space.
	ErrClusterMismatch = errors.New("network: cluster state labels differ")

	// ErrBadInitial indicates an initial-probability vector whose length does
	// not match the state count, or which carries non-finite entries.
	ErrBadInitial = errors.New("network: initial probability vector invalid")

	// ErrClusterRange indicates a cluster index outside [0, Size()).
	ErrClusterRange = errors.New("network: cluster index out of range")
)
