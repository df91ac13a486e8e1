// Package centrality: the closeness family, computed over shortest paths
// with edge weight as distance cost. Three traversal modes share one
// kernel: out-edges, reversed edges, and edges traversable both ways.
//
// Convention: unreachable states are excluded from the distance sum (the
// standard weighted-closeness convention for disconnected graphs). A state
// that reaches nothing has sum 0, so its closeness is +Inf by IEEE
// division — a degenerate-numeric outcome, propagated as-is.

package centrality

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/transnet/network"
)

// closeMode selects the traversal direction of the closeness kernel.
type closeMode int

const (
	closeOut closeMode = iota // follow directed out-edges (paths from i)
	closeIn                   // follow reversed edges (paths ending at i)
	closeAll                  // edges traversable in either direction
)

// closeness computes the selected closeness variant for every state.
//
// Implementation:
//   - Stage 1: materialize the adjacency as a gonum weighted graph in the
//     requested orientation. Self-loops are skipped: with non-negative
//     costs a loop can never shorten a path to another state.
//   - Stage 2: run Dijkstra from every state and sum finite distances to
//     the other states; closeness[i] = 1 / sum.
//
// Undirected mode keeps both directed edges traversable: where A[i,j] and
// A[j,i] are both positive, the cheaper one is the effective step cost
// (parallel-edge shortest-path semantics).
//
// Complexity: n Dijkstra runs, O(n·(n+e)·log n) total.
func closeness(a *network.AdjacencyMatrix, mode closeMode) []float64 {
	n := a.N()

	// Stage 1: build the graph view. Nodes first (isolated states must
	// still exist), then weighted edges in deterministic (i,j) order.
	var g traverse.Graph
	switch mode {
	case closeAll:
		ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			ug.AddNode(simple.Node(i))
		}
		var w, back float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w, _ = a.At(i, j)
				back, _ = a.At(j, i)
				// Cheaper positive direction wins; zero means no edge.
				if back > 0 && (w <= 0 || back < w) {
					w = back
				}
				if w > 0 {
					ug.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: w})
				}
			}
		}
		g = ug
	default:
		dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			dg.AddNode(simple.Node(i))
		}
		var w float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue // loops never shorten paths
				}
				w, _ = a.At(i, j)
				if w <= 0 {
					continue // zero weight means no edge
				}
				if mode == closeIn {
					// Reversed orientation: paths ending at the source.
					dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(j), T: simple.Node(i), W: w})
				} else {
					dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: w})
				}
			}
		}
		g = dg
	}

	// Stage 2: Dijkstra from every state; exclude unreachable targets.
	out := make([]float64, n)
	var sum, d float64
	for i := 0; i < n; i++ {
		sp := path.DijkstraFrom(simple.Node(i), g)
		sum = 0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d = sp.WeightTo(int64(j))
			if math.IsInf(d, 1) {
				continue // unreachable: excluded from the sum
			}
			sum += d
		}
		out[i] = 1 / sum // sum==0 ⇒ +Inf, propagated
	}

	return out
}
