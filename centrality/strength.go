// Package centrality: strength kernels — the weighted degree measures.
// These are thin adapters over the adjacency matrix: no shortest paths,
// no linear algebra, exact sums.

package centrality

import "github.com/katalvlaran/transnet/network"

// outStrength returns the weighted out-degree of every state: the row sums
// of the (loop-adjusted) adjacency matrix. Exact for any admissible input.
// Complexity: O(n²).
func outStrength(a *network.AdjacencyMatrix) []float64 {
	return a.RowSums()
}

// inStrength returns the weighted in-degree of every state: the column sums
// of the (loop-adjusted) adjacency matrix. Exact for any admissible input.
// Complexity: O(n²).
func inStrength(a *network.AdjacencyMatrix) []float64 {
	return a.ColSums()
}
