// Package centrality: Table — the immutable state × measure result.
// Created fresh per computation, never mutated afterwards; every accessor
// that could leak internal storage returns a copy.

package centrality

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Table holds one centrality report: one row per state (per cluster, when a
// multi-cluster report was computed), one column per requested measure in
// request order. Row order is state order; multi-cluster rows are
// concatenated cluster blocks in input order.
type Table struct {
	states   []string         // per-row state labels, len == Rows()
	clusters []string         // per-row cluster names; nil for single-cluster
	levels   []string         // cluster levels, first-appearance order; nil too
	columns  []Measure        // column order == (deduplicated) request order
	colPos   [NumMeasures]int // 1-based position per measure, 0 = absent
	values   [][]float64      // row-major, Rows() × len(columns)
}

// newTable assembles a Table and indexes its columns. Internal: inputs are
// owned by the caller-side computation and must not be shared afterwards.
func newTable(states, clusters, levels []string, columns []Measure, values [][]float64) *Table {
	t := &Table{states: states, clusters: clusters, levels: levels, columns: columns, values: values}
	for i, m := range columns {
		t.colPos[m] = i + 1
	}

	return t
}

// Rows returns the number of rows (states × computed clusters). O(1).
func (t *Table) Rows() int { return len(t.states) }

// States returns the per-row state labels. O(rows).
func (t *Table) States() []string {
	out := make([]string, len(t.states))
	copy(out, t.states)

	return out
}

// Clusters returns the per-row cluster names, or nil when the table was
// computed for a single matrix (no cluster column). O(rows).
func (t *Table) Clusters() []string {
	if t.clusters == nil {
		return nil
	}
	out := make([]string, len(t.clusters))
	copy(out, t.clusters)

	return out
}

// ClusterLevels returns the cluster levels in original input order, or nil
// when there is no cluster column. O(levels).
func (t *Table) ClusterLevels() []string {
	if t.levels == nil {
		return nil
	}
	out := make([]string, len(t.levels))
	copy(out, t.levels)

	return out
}

// Columns returns the measure columns in table order. O(cols).
func (t *Table) Columns() []Measure {
	out := make([]Measure, len(t.columns))
	copy(out, t.columns)

	return out
}

// Value returns the entry at (row, m), or ErrOutOfRange / ErrMeasureAbsent.
func (t *Table) Value(row int, m Measure) (float64, error) {
	if row < 0 || row >= len(t.values) {
		return 0, fmt.Errorf("Value(%d, %s): %w", row, m, ErrOutOfRange)
	}
	if !m.Valid() || t.colPos[m] == 0 {
		return 0, fmt.Errorf("Value(%d, %s): %w", row, m, ErrMeasureAbsent)
	}

	return t.values[row][t.colPos[m]-1], nil
}

// Column returns a copy of the full column for measure m, in row order,
// or ErrMeasureAbsent when m was not part of the computed selection.
func (t *Table) Column(m Measure) ([]float64, error) {
	if !m.Valid() || t.colPos[m] == 0 {
		return nil, fmt.Errorf("Column(%s): %w", m, ErrMeasureAbsent)
	}
	idx := t.colPos[m] - 1
	out := make([]float64, len(t.values))
	for r := range t.values {
		out[r] = t.values[r][idx]
	}

	return out, nil
}

// String implements fmt.Stringer: an aligned text rendering for debugging
// and examples. Not a serialization format.
func (t *Table) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	// Header: State [Cluster] measures...
	fmt.Fprint(w, "State")
	if t.clusters != nil {
		fmt.Fprint(w, "\tCluster")
	}
	for _, m := range t.columns {
		fmt.Fprintf(w, "\t%s", m)
	}
	fmt.Fprintln(w)

	// One row per state (per cluster).
	for r := range t.values {
		fmt.Fprint(w, t.states[r])
		if t.clusters != nil {
			fmt.Fprintf(w, "\t%s", t.clusters[r])
		}
		for c := range t.columns {
			fmt.Fprintf(w, "\t%g", t.values[r][c])
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush() // strings.Builder never fails

	return b.String()
}
