// Package centrality: signed clustering coefficient — a triangle-weight
// coefficient on the symmetrized adjacency M = A + Aᵀ.

package centrality

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transnet/network"
)

// signedClustering computes the signed clustering coefficient per state.
//
// Algorithm (on M = A + Aᵀ with zeroed diagonal):
//
//	num[i]  = (M·M·M)[i,i]                      closed triangle weight
//	den[i]  = colSum(M)[i]² − colSum(M⊙M)[i]    open pair weight
//	coef[i] = num[i] / den[i]
//
// The square in the denominator is elementwise (M⊙M): den[i] is then
// Σ_{j≠k} M[j,i]·M[k,i], the weight of distinct neighbor pairs of i. A
// zero denominator (isolated or near-isolated state) yields NaN/±Inf by
// IEEE convention — "undefined for this state", propagated as-is and NOT
// treated as an error.
//
// Complexity: O(n³) time (two dense products), O(n²) memory.
func signedClustering(a *network.AdjacencyMatrix) []float64 {
	n := a.N()

	// Symmetrize and drop loops: triangles never pass through a loop.
	m := a.Symmetrized().Dense()
	for i := 0; i < n; i++ {
		m.Set(i, i, 0)
	}

	// Triangle numerator: diagonal of M³.
	var m2, m3 mat.Dense
	m2.Mul(m, m)
	m3.Mul(&m2, m)

	// Pair denominator: colSum(M)² − colSum(M⊙M), column by column.
	col := make([]float64, n)
	out := make([]float64, n)
	var cs, cs2, v float64
	for i := 0; i < n; i++ {
		mat.Col(col, i, m)
		cs = floats.Sum(col)
		cs2 = 0
		for _, v = range col {
			cs2 += v * v
		}
		out[i] = m3.At(i, i) / (cs*cs - cs2) // 0/0 ⇒ NaN, x/0 ⇒ ±Inf
	}

	return out
}
