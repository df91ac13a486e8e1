// Package centrality: report orchestration — the public facade that turns
// one or more adjacency matrices into a Table. Validation first, then
// per-cluster computation (parallel across clusters, input order preserved
// on assembly), then optional per-column normalization.

package centrality

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/katalvlaran/transnet/network"
)

// Compute builds a centrality table over one or more adjacency matrices
// (one per cluster, positional cluster names "1".."k").
//
// Semantics:
//
//   - One matrix ⇒ n rows, no cluster column; WithCluster is ignored.
//   - k matrices, no WithCluster ⇒ every cluster computed independently,
//     rows concatenated in input order, cluster column with k levels.
//   - k matrices + WithCluster(i) ⇒ only cluster i, no cluster column.
//
// Inputs are never mutated: the loop policy works on copies. Column order
// equals the (deduplicated) measure request order; default is the full
// vocabulary in canonical order.
//
// Errors (all via errors.Is):
//
//	ErrNoMatrices, ErrNilMatrix, ErrTooSmall, ErrLabelMismatch,
//	ErrBadMeasure (listing every offending name), ErrClusterRange,
//	ErrSingular (betweenness kernel; aborts the whole report).
func Compute(mats []*network.AdjacencyMatrix, opts ...Option) (*Table, error) {
	return computeNamed(mats, nil, opts)
}

// ComputeModel computes the table over every cluster of a model, carrying
// the model's cluster names as the cluster levels. Same options and error
// surface as Compute.
func ComputeModel(m *network.Model, opts ...Option) (*Table, error) {
	if m == nil {
		return nil, ErrNoMatrices
	}

	return computeNamed(m.Matrices(), m.ClusterNames(), opts)
}

// Vector computes a single measure over a single matrix, honoring the loop,
// beta and normalization options. The small-surface entry point for callers
// that do not want a table.
func Vector(a *network.AdjacencyMatrix, m Measure, opts ...Option) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.N() < network.MinStates {
		return nil, ErrTooSmall
	}
	if !m.Valid() {
		return nil, fmt.Errorf("%w: Measure(%d)", ErrBadMeasure, int(m))
	}
	cols, err := computeColumns(a, []Measure{m}, gatherOptions(opts))
	if err != nil {
		return nil, err
	}

	return cols[0], nil
}

// computeNamed is the shared implementation behind Compute / ComputeModel.
func computeNamed(mats []*network.AdjacencyMatrix, names []string, opts []Option) (*Table, error) {
	cfg := gatherOptions(opts)

	// 1) Validate the matrix slice: non-empty, no nils, admissible order.
	if len(mats) == 0 {
		return nil, ErrNoMatrices
	}
	var k int
	for k = range mats {
		if mats[k] == nil {
			return nil, fmt.Errorf("matrix %d: %w", k, ErrNilMatrix)
		}
		if mats[k].N() < network.MinStates {
			return nil, fmt.Errorf("matrix %d has %d states: %w", k, mats[k].N(), ErrTooSmall)
		}
	}

	// 2) Multi-cluster tables are only meaningful over one state space.
	labels := mats[0].Labels()
	for k = 1; k < len(mats); k++ {
		other := mats[k].Labels()
		if len(other) != len(labels) {
			return nil, fmt.Errorf("matrix %d has %d states, want %d: %w", k, len(other), len(labels), ErrLabelMismatch)
		}
		for i := range other {
			if other[i] != labels[i] {
				return nil, fmt.Errorf("matrix %d label %d is %q, want %q: %w", k, i, other[i], labels[i], ErrLabelMismatch)
			}
		}
	}

	// 3) Resolve the measure selection (default: full vocabulary).
	measures := AllMeasures()
	if cfg.measures != nil {
		var err error
		if measures, err = Resolve(cfg.measures); err != nil {
			return nil, err
		}
	}

	// 4) Default positional cluster names when none were supplied.
	if names == nil {
		names = make([]string, len(mats))
		for k = range names {
			names[k] = strconv.Itoa(k + 1)
		}
	}

	// 5) Apply the cluster filter. Ignored for a single matrix; range-checked
	//    otherwise (a filter pointing nowhere is a caller bug worth naming).
	selected := make([]int, 0, len(mats))
	if cfg.clusterSet && len(mats) > 1 {
		if cfg.cluster < 0 || cfg.cluster >= len(mats) {
			return nil, fmt.Errorf("cluster %d of %d: %w", cfg.cluster, len(mats), ErrClusterRange)
		}
		selected = append(selected, cfg.cluster)
	} else {
		for k = range mats {
			selected = append(selected, k)
		}
	}

	// 6) Compute every selected cluster. Clusters are independent, so fan
	//    out one goroutine each; slot indexing preserves input order and the
	//    first error by cluster order wins.
	blocks := make([][][]float64, len(selected))
	errs := make([]error, len(selected))
	if len(selected) == 1 {
		blocks[0], errs[0] = computeColumns(mats[selected[0]], measures, cfg)
	} else {
		var wg sync.WaitGroup
		for slot := range selected {
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()
				blocks[slot], errs[slot] = computeColumns(mats[selected[slot]], measures, cfg)
			}(slot)
		}
		wg.Wait()
	}
	for slot := range errs {
		if errs[slot] != nil {
			return nil, fmt.Errorf("cluster %q: %w", names[selected[slot]], errs[slot])
		}
	}

	// 7) Assemble: per-cluster blocks become row-concatenated table rows.
	n := len(labels)
	multi := len(selected) > 1
	states := make([]string, 0, n*len(selected))
	var clusters, levels []string
	if multi {
		clusters = make([]string, 0, n*len(selected))
		levels = make([]string, 0, len(selected))
	}
	values := make([][]float64, 0, n*len(selected))
	var row []float64
	for slot, idx := range selected {
		if multi {
			levels = append(levels, names[idx])
		}
		for i := 0; i < n; i++ {
			states = append(states, labels[i])
			if multi {
				clusters = append(clusters, names[idx])
			}
			row = make([]float64, len(measures))
			for c := range measures {
				row[c] = blocks[slot][c][i]
			}
			values = append(values, row)
		}
	}

	return newTable(states, clusters, levels, measures, values), nil
}

// computeColumns computes the requested measure columns for one matrix,
// with the loop policy applied first and normalization (when requested)
// applied per column. Returned as columns (measure-major) so the caller
// can interleave rows across clusters.
func computeColumns(a *network.AdjacencyMatrix, measures []Measure, cfg Options) ([][]float64, error) {
	// Loop policy: measures see the diagonal only on request.
	work := a
	if !cfg.includeLoops {
		work = a.WithoutLoops()
	}

	cols := make([][]float64, len(measures))
	var err error
	for idx, m := range measures {
		switch m {
		case OutStrength:
			cols[idx] = outStrength(work)
		case InStrength:
			cols[idx] = inStrength(work)
		case ClosenessIn:
			cols[idx] = closeness(work, closeIn)
		case ClosenessOut:
			cols[idx] = closeness(work, closeOut)
		case Closeness:
			cols[idx] = closeness(work, closeAll)
		case Betweenness:
			if cols[idx], err = rspBetweenness(work, cfg.beta); err != nil {
				return nil, err
			}
		case Diffusion:
			cols[idx] = diffusion(work)
		case Clustering:
			cols[idx] = signedClustering(work)
		}
		if cfg.normalize {
			normalizeColumn(cols[idx])
		}
	}

	return cols, nil
}

// normalizeColumn rescales v in place to [0,1] via min-max over the FINITE
// entries only. NaN and ±Inf entries (degenerate per-state outcomes of
// closeness and clustering) pass through unchanged — rescaling against an
// infinite extremum would collapse every finite value to 0. A column whose
// finite entries are constant (or absent) maps those entries to 0 — the
// documented convention that avoids 0/0.
func normalizeColumn(v []float64) {
	// 1) Finite extrema.
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	// 2) No finite spread: constant finite entries become 0.
	if hi <= lo {
		for i := range v {
			if !math.IsNaN(v[i]) && !math.IsInf(v[i], 0) {
				v[i] = 0
			}
		}

		return
	}

	// 3) Rescale the finite entries; leave the degenerate ones alone.
	span := hi - lo
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			continue
		}
		v[i] = (v[i] - lo) / span
	}
}
