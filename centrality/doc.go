// Package centrality computes per-state centrality measures over labeled
// transition matrices (network.AdjacencyMatrix) and assembles them into
// immutable state × measure tables, optionally across several clusters.
//
// Vocabulary (fixed, see Measure):
//
//	OutStrength  — row sum: total outgoing transition weight
//	InStrength   — column sum: total incoming transition weight
//	ClosenessIn  — 1 / Σ shortest-path cost of reaching the state
//	ClosenessOut — 1 / Σ shortest-path cost of leaving the state
//	Closeness    — same, edges traversable in both directions
//	Betweenness  — randomized shortest paths (temperature beta)
//	Diffusion    — Σ_{k=1..n} Aᵏ row sums: multi-hop reachability
//	Clustering   — signed clustering coefficient on A + Aᵀ
//
// Measure names are resolved case-insensitively: an exact match wins, then
// an unambiguous prefix ("betw" → Betweenness); "close" is ambiguous and
// fails. Every offending name of a request is reported in one error.
//
// Numeric conventions (deterministic, tested):
//
//   - Loops: the diagonal is zeroed before any measure unless WithLoops().
//   - Betweenness kernel: W = A ⊙ exp(−beta/A) with zero entries masked to
//     zero (never NaN); Z = (I−W)⁻¹ with singularity surfaced as
//     ErrSingular; output is rounded and shifted so min(out) == 1.
//   - Closeness: unreachable states are excluded from the distance sum; a
//     state reaching nothing gets +Inf (1/0), propagated as-is.
//   - Clustering: zero denominators yield NaN/±Inf, propagated as-is —
//     "undefined for this state" is a value, not an error.
//   - Normalization (WithNormalization): per-column min-max to [0,1] over
//     the finite entries; NaN/±Inf entries pass through unchanged, and
//     constant columns map to all zeros.
//
// Multi-cluster reports compute each cluster independently (one goroutine
// per cluster, results joined in input order) and concatenate rows with a
// cluster column whose levels follow input order. A singular betweenness
// kernel in any cluster aborts the whole report.
//
// Errors (sentinel):
//
//	– ErrNoMatrices    empty matrix slice
//	– ErrNilMatrix     nil matrix inside the slice
//	– ErrTooSmall      matrix below the minimum order (defensive re-check)
//	– ErrLabelMismatch cluster matrices disagree on state labels
//	– ErrBadMeasure    unknown or ambiguous measure name(s)
//	– ErrClusterRange  cluster filter outside the supplied matrices
//	– ErrSingular      (I − W) not invertible in the betweenness kernel
//	– ErrMeasureAbsent table lookup for a column that was not requested
//	– ErrOutOfRange    table row index outside [0, Rows())
//
// Complexity: strength O(n²); closeness O(n·(n+e)·log n) via Dijkstra from
// every state; diffusion and betweenness O(n⁴) and O(n³) dense kernels.
// States number tens to low hundreds in practice, so dense is the right
// regime.
//
// Example usage:
//
//	tbl, err := centrality.Compute(
//	    []*network.AdjacencyMatrix{a},
//	    centrality.WithMeasures("OutStrength", "betw"),
//	    centrality.WithNormalization(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := tbl.Column(centrality.Betweenness)
package centrality
