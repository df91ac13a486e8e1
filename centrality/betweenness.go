// Package centrality: randomized shortest-path (RSP) betweenness — the
// numerically hardest kernel of the engine. A temperature parameter beta
// interpolates between deterministic shortest-path betweenness (beta → ∞
// concentrates the kernel on cheapest paths) and random-walk betweenness.
//
// Numeric conventions reproduced exactly:
//   - zero adjacency entries are masked to zero in the softened kernel
//     (0 · exp(−beta/0) is defined as 0, never NaN);
//   - zero entries of the fundamental matrix (unreachable pairs) are masked
//     to zero in its elementwise reciprocal (1/0 would bleed Inf, and then
//     NaN through Inf·0, into the rounded output);
//   - singularity of (I − W) is fatal and surfaced as ErrSingular, never
//     silently defaulted to zeros;
//   - the output is rounded to integers and shifted so its minimum is
//     exactly 1.

package centrality

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/transnet/network"
)

// rspBetweenness computes the RSP betweenness vector for every state.
//
// Algorithm:
//  1. Soften: W[i,j] = A[i,j]·exp(−beta/A[i,j]); A[i,j]=0 ⇒ W[i,j]=0.
//  2. Fundamental matrix: Z = (I − W)⁻¹ (ErrSingular when not invertible).
//  3. Zrecip = 1/Z elementwise, Z[i,j]=0 ⇒ Zrecip[i,j]=0; D = diag(Zrecip).
//  4. out[k] = diag(Z · (Zrecip − n·D) · Zᵀ)[k].
//  5. Round elementwise; shift out ← out − min(out) + 1.
//
// For any non-singular well-formed input the result is a vector of
// integers ≥ 1.
//
// Determinism: dense kernels with fixed evaluation order; no randomness.
// Complexity: O(n³) time (inverse and two products), O(n²) memory.
//
// AI-Hints:
//   - beta is a temperature, not a tolerance: do not anneal it per call if
//     cross-cluster comparability of the betweenness column matters.
//   - An ErrSingular here usually means (I − W) has a unit eigenvalue —
//     check that A is sub-stochastic after the loop policy was applied.
func rspBetweenness(a *network.AdjacencyMatrix, beta float64) ([]float64, error) {
	n := a.N()
	adj := a.Dense()

	// 1) Softened kernel with the explicit zero mask.
	w := mat.NewDense(n, n, nil)
	w.Apply(func(_, _ int, v float64) float64 {
		if v == 0 {
			return 0 // masked: a missing edge contributes nothing
		}

		return v * math.Exp(-beta/v)
	}, adj)

	// 2) Z = (I − W)⁻¹. gonum reports near-singularity via mat.Condition
	//    even when a usable inverse was produced; only an unusable inverse
	//    (infinite condition, or any other failure) is fatal here.
	iw := mat.NewDense(n, n, nil)
	iw.Apply(func(i, j int, v float64) float64 {
		if i == j {
			return 1 - v
		}

		return -v
	}, w)
	var z mat.Dense
	if err := z.Inverse(iw); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("inverting (I-W) with beta=%g: %w", beta, ErrSingular)
		}
	}

	// 3) Elementwise reciprocal, masked like step 1: Z[i,j] == 0 means pair
	//    (i,j) is unreachable and contributes nothing — 1/0 here would bleed
	//    Inf (and then NaN via Inf·0) into the diagonal extraction below.
	var zrecip mat.Dense
	zrecip.Apply(func(_, _ int, v float64) float64 {
		if v == 0 {
			return 0
		}

		return 1 / v
	}, &z)

	// 4) inner = Zrecip − n·diag(Zrecip); then out = diag(Z · inner · Zᵀ).
	inner := mat.DenseCopyOf(&zrecip)
	for k := 0; k < n; k++ {
		inner.Set(k, k, zrecip.At(k, k)-float64(n)*zrecip.At(k, k))
	}
	var zc, m mat.Dense
	zc.Mul(&z, inner)
	m.Mul(&zc, z.T())

	// 5) Extract the diagonal, round, shift so min(out) == 1.
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = math.Round(m.At(k, k))
	}
	floats.AddConst(1-floats.Min(out), out)

	return out, nil
}
