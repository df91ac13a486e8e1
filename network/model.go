// Package network: Model — one or more independently estimated clusters
// over a shared state space. The centrality engine consumes only the
// adjacency matrices and labels; initial-probability vectors are carried
// for downstream consumers (sequence simulation, reporting).

package network

import (
	"fmt"
	"math"
	"strconv"
)

// Cluster is one sub-model of a (possibly mixture) transition model.
// Name participates as the cluster level in multi-cluster centrality tables;
// an empty Name is replaced by its 1-based position at model construction.
// Initial is optional; when present it must have one entry per state.
type Cluster struct {
	Name      string
	Adjacency *AdjacencyMatrix
	Initial   []float64
}

// Model is an ordered, immutable collection of clusters sharing one ordered
// state-label set. Cluster order is the order of appearance at construction
// and is never changed afterwards.
type Model struct {
	clusters []Cluster
	labels   []string // shared state labels, copied from the first cluster
}

// NewModel validates and assembles a Model from one or more clusters.
//
// Validation (in order):
//  1. at least one cluster                          (ErrNoClusters).
//  2. every cluster carries a non-nil adjacency     (ErrNilMatrix).
//  3. all clusters share the first cluster's labels (ErrClusterMismatch).
//  4. cluster names are unique after defaulting     (ErrBadLabels).
//  5. Initial, when present, has n finite entries   (ErrBadInitial).
//
// Cluster contents are copied; callers keep ownership of their arguments.
func NewModel(clusters ...Cluster) (*Model, error) {
	// 1) At least one cluster.
	if len(clusters) == 0 {
		return nil, ErrNoClusters
	}

	// 2) Every adjacency must exist before labels can be compared.
	var k int
	for k = range clusters {
		if clusters[k].Adjacency == nil {
			return nil, fmt.Errorf("cluster %d: %w", k, ErrNilMatrix)
		}
	}

	// 3) All clusters live over the shared state space of cluster 0.
	labels := clusters[0].Adjacency.Labels()
	var cl []string
	for k = 1; k < len(clusters); k++ {
		cl = clusters[k].Adjacency.Labels()
		if len(cl) != len(labels) {
			return nil, fmt.Errorf("cluster %d has %d states, want %d: %w", k, len(cl), len(labels), ErrClusterMismatch)
		}
		for i := range cl {
			if cl[i] != labels[i] {
				return nil, fmt.Errorf("cluster %d label %d is %q, want %q: %w", k, i, cl[i], labels[i], ErrClusterMismatch)
			}
		}
	}

	// 4) Default empty names to 1-based positions, then enforce uniqueness.
	out := make([]Cluster, len(clusters))
	seen := make(map[string]struct{}, len(clusters))
	for k = range clusters {
		c := clusters[k]
		if c.Name == "" {
			c.Name = strconv.Itoa(k + 1)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate cluster name %q: %w", c.Name, ErrBadLabels)
		}
		seen[c.Name] = struct{}{}

		// 5) Validate and copy the optional initial vector.
		if c.Initial != nil {
			if len(c.Initial) != len(labels) {
				return nil, fmt.Errorf("cluster %q initial has %d entries, want %d: %w", c.Name, len(c.Initial), len(labels), ErrBadInitial)
			}
			init := make([]float64, len(c.Initial))
			for i, v := range c.Initial {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("cluster %q initial[%d]=%v: %w", c.Name, i, v, ErrBadInitial)
				}
				init[i] = v
			}
			c.Initial = init
		}
		c.Adjacency = c.Adjacency.Clone()
		out[k] = c
	}

	return &Model{clusters: out, labels: labels}, nil
}

// Size returns the number of clusters. O(1).
func (m *Model) Size() int { return len(m.clusters) }

// Labels returns a copy of the shared state labels. O(n).
func (m *Model) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)

	return out
}

// ClusterNames returns the cluster names in construction order. O(k).
func (m *Model) ClusterNames() []string {
	out := make([]string, len(m.clusters))
	for i := range m.clusters {
		out[i] = m.clusters[i].Name
	}

	return out
}

// Cluster returns a copy of cluster i, or ErrClusterRange.
// The copy shares nothing mutable with the model.
func (m *Model) Cluster(i int) (Cluster, error) {
	if i < 0 || i >= len(m.clusters) {
		return Cluster{}, fmt.Errorf("Cluster(%d) of %d: %w", i, len(m.clusters), ErrClusterRange)
	}
	c := m.clusters[i]
	c.Adjacency = c.Adjacency.Clone()
	if c.Initial != nil {
		init := make([]float64, len(c.Initial))
		copy(init, c.Initial)
		c.Initial = init
	}

	return c, nil
}

// Matrices returns the per-cluster adjacency matrices in cluster order.
// This is the discriminant-free bridge into the centrality engine: a model
// and a plain slice of matrices enter Compute through the same door.
func (m *Model) Matrices() []*AdjacencyMatrix {
	out := make([]*AdjacencyMatrix, len(m.clusters))
	for i := range m.clusters {
		out[i] = m.clusters[i].Adjacency.Clone()
	}

	return out
}
