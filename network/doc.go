// Package network defines the data model consumed by the centrality engine:
// labeled square adjacency matrices and multi-cluster transition models.
//
// An AdjacencyMatrix is a square, non-negative, weighted matrix over n ≥ 2
// named states: entry (i, j) holds the transition weight from state i to
// state j, and the diagonal holds self-transitions ("loops"). The type is
// immutable after construction — every transform (WithoutLoops, Symmetrized,
// Clone) returns a fresh copy and never aliases the receiver's storage.
//
// A Model bundles one or more clusters (independently estimated sub-models,
// e.g., from a mixture of Markov models), each carrying its own adjacency
// matrix and an optional initial-probability vector, all sharing one ordered
// state-label set. Estimating a Model from raw sequence data is out of scope;
// this package only validates and carries the result.
//
// Construction is the explicit typed conversion boundary of the system:
// New / NewFromDense validate shape, size, labels and finiteness up front and
// return sentinel errors (match with errors.Is). Negative entries are a usage
// error upstream and are intentionally not validated here.
//
// Errors (sentinel):
//
//	– ErrNilMatrix       nil or empty input matrix
//	– ErrNotSquare       row/column counts disagree
//	– ErrTooSmall        fewer than MinStates states
//	– ErrBadLabels       label count mismatch or duplicate labels
//	– ErrNaNInf          non-finite entry at ingestion
//	– ErrOutOfRange      index outside [0, n)
//	– ErrNoClusters      model constructed with zero clusters
//	– ErrClusterMismatch cluster label sets disagree
//	– ErrBadInitial      initial vector has wrong length or non-finite entries
//	– ErrClusterRange    cluster index outside [0, Size())
//
// Complexity: construction and every transform are O(n²) time and memory;
// accessors are O(1) except the copying ones (Labels, Dense, RowSums,
// ColSums), which are O(n) or O(n²) as dictated by what they copy.
package network
