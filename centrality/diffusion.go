// Package centrality: diffusion centrality — cumulative multi-hop weighted
// reachability. Despite the broader technique's name in the literature,
// the computation is fully deterministic: no randomness anywhere.

package centrality

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transnet/network"
)

// diffusion computes diffusion centrality for every state.
//
// Algorithm:
//  1. S ← 0 (n×n), P ← I (n×n).
//  2. For step = 1..n: P ← P·A; S ← S + P.
//  3. Result: row sums of S.
//
// S accumulates, over path lengths 1..n, the total weighted reachability
// from each state. The horizon equals the number of states: for a
// (sub)stochastic transition matrix, longer walks contribute negligibly.
//
// Complexity: O(n⁴) time (n dense products), O(n²) memory.
func diffusion(a *network.AdjacencyMatrix) []float64 {
	n := a.N()
	adj := a.Dense()

	// 1) Accumulator S = 0 and walk matrix P = I.
	sum := mat.NewDense(n, n, nil)
	pow := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		pow.Set(i, i, 1)
	}

	// 2) Accumulate matrix powers A¹..Aⁿ. Mul forbids aliased receivers,
	//    so every step multiplies into fresh storage.
	for step := 1; step <= n; step++ {
		next := mat.NewDense(n, n, nil)
		next.Mul(pow, adj)
		sum.Add(sum, next)
		pow = next
	}

	// 3) Row sums of the accumulator.
	out := make([]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, sum)
		out[i] = floats.Sum(row)
	}

	return out
}
