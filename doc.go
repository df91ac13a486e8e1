// Package transnet analyzes transition networks derived from categorical
// sequence data: weighted directed adjacency (transition-probability)
// matrices over a finite set of named states.
//
// 🚀 What is transnet?
//
//	A small, deterministic library that turns one or more transition
//	matrices (e.g., per-cluster Markov estimates) into per-state
//	centrality reports:
//	  • Strength: weighted out-/in-degree
//	  • Closeness: shortest-path closeness (out / in / undirected)
//	  • Betweenness: randomized shortest paths (temperature-parameterized)
//	  • Diffusion: cumulative multi-hop reachability
//	  • Clustering: signed clustering coefficient on A + Aᵀ
//
// ✨ Why choose transnet?
//
//   - Explicit numeric conventions — loop policy, normalization, zero-weight
//     masking and rounding are documented and tested, not incidental
//   - Sentinel errors everywhere — match with errors.Is, no panics on
//     user-triggered conditions
//   - Pure functions — inputs are never mutated; every call returns a fresh,
//     immutable table
//
// Everything is organized under two subpackages:
//
//	network/    — labeled adjacency matrices and multi-cluster models
//	centrality/ — the measure engine and report orchestration
//
// Quick example:
//
//	a, _ := network.New([][]float64{
//	    {0, 0.5, 0.5},
//	    {0.2, 0, 0.8},
//	    {0.1, 0.1, 0.8},
//	}, []string{"plan", "act", "reflect"})
//	tbl, _ := centrality.Compute([]*network.AdjacencyMatrix{a})
//	fmt.Println(tbl)
//
// Estimation of transition matrices from raw sequences, plotting and
// data-frame presentation live outside this module.
package transnet
