// Package network: AdjacencyMatrix — the labeled, immutable transition
// matrix every centrality measure is computed from.
//
// Construction is validation-first: once a value exists, its shape, size
// and labels are trusted by every downstream package.

package network

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MinStates is the smallest admissible matrix order. Below this there is no
// network: a single state has no transitions to weigh.
const MinStates = 2

// AdjacencyMatrix is a square weighted adjacency matrix over n named states.
// Row i, column j holds the transition weight from state i to state j; the
// diagonal holds self-transitions (loops). Values are read-only after
// construction: all transforms allocate fresh storage.
type AdjacencyMatrix struct {
	n      int        // matrix order (number of states), n >= MinStates
	labels []string   // state names, len == n, unique, never reordered
	data   *mat.Dense // n×n backing storage, owned exclusively by this value
}

// New builds an AdjacencyMatrix from row-major rows and optional labels.
// It is the explicit typed conversion at the system boundary: callers hand
// over raw numbers, this function either yields a fully validated value or
// a sentinel error — no partial results, no coercion guesswork.
//
// Validation (in order):
//  1. rows must be non-nil and non-empty               (ErrNilMatrix).
//  2. every row must have len(rows) entries            (ErrNotSquare).
//  3. order must be ≥ MinStates                        (ErrTooSmall).
//  4. labels, when given, must have n unique entries   (ErrBadLabels);
//     nil labels default to positional names "1".."n".
//  5. every entry must be finite                       (ErrNaNInf).
//
// Negative entries are NOT validated: the upstream estimator guarantees
// non-negativity, and rejecting them here would double-own that contract.
//
// Complexity: O(n²) time and memory (one defensive copy of the input).
func New(rows [][]float64, labels []string) (*AdjacencyMatrix, error) {
	// 1) Reject nil / empty input up front.
	n := len(rows)
	if n == 0 {
		return nil, ErrNilMatrix
	}

	// 2) Reject ragged rows before touching sizes: every row must match n.
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNotSquare)
		}
	}

	// 3) Enforce the minimum order.
	if n < MinStates {
		return nil, ErrTooSmall
	}

	// 4) Resolve labels: default to positional names, then check uniqueness.
	resolved, err := resolveLabels(labels, n)
	if err != nil {
		return nil, err
	}

	// 5) Copy into flat row-major storage, rejecting non-finite entries.
	flat := make([]float64, n*n)
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
			flat[i*n+j] = v
		}
	}

	// 6) Assemble the immutable value.
	return &AdjacencyMatrix{n: n, labels: resolved, data: mat.NewDense(n, n, flat)}, nil
}

// NewFromDense builds an AdjacencyMatrix from a gonum Dense matrix.
// Same validation and copying discipline as New; d is never retained.
func NewFromDense(d *mat.Dense, labels []string) (*AdjacencyMatrix, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	r, c := d.Dims()
	if r != c {
		return nil, fmt.Errorf("%dx%d: %w", r, c, ErrNotSquare)
	}
	if r < MinStates {
		return nil, ErrTooSmall
	}
	resolved, err := resolveLabels(labels, r)
	if err != nil {
		return nil, err
	}
	flat := make([]float64, r*c)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = d.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
			flat[i*c+j] = v
		}
	}

	return &AdjacencyMatrix{n: r, labels: resolved, data: mat.NewDense(r, c, flat)}, nil
}

// resolveLabels validates user labels or synthesizes positional ones.
// nil labels yield "1".."n"; a non-nil slice must carry exactly n unique
// entries. Returned slice is always a fresh copy.
func resolveLabels(labels []string, n int) ([]string, error) {
	if labels == nil {
		out := make([]string, n)
		for i := 0; i < n; i++ {
			out[i] = strconv.Itoa(i + 1) // positional fallback, 1-based
		}

		return out, nil
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%d labels for %d states: %w", len(labels), n, ErrBadLabels)
	}
	seen := make(map[string]struct{}, n)
	out := make([]string, n)
	for i, l := range labels {
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("duplicate label %q: %w", l, ErrBadLabels)
		}
		seen[l] = struct{}{}
		out[i] = l
	}

	return out, nil
}

// N returns the matrix order (number of states). O(1).
func (a *AdjacencyMatrix) N() int { return a.n }

// Labels returns a copy of the ordered state labels. O(n).
func (a *AdjacencyMatrix) Labels() []string {
	out := make([]string, a.n)
	copy(out, a.labels)

	return out
}

// Label returns the name of state i, or ErrOutOfRange.
func (a *AdjacencyMatrix) Label(i int) (string, error) {
	if i < 0 || i >= a.n {
		return "", fmt.Errorf("Label(%d): %w", i, ErrOutOfRange)
	}

	return a.labels[i], nil
}

// At returns the weight of the edge i→j, or ErrOutOfRange.
func (a *AdjacencyMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return a.data.At(i, j), nil
}

// Dense returns a defensive copy of the backing matrix. Callers may mutate
// the result freely; the receiver is unaffected. O(n²).
func (a *AdjacencyMatrix) Dense() *mat.Dense {
	return mat.DenseCopyOf(a.data)
}

// Clone returns a deep copy of the receiver. O(n²).
func (a *AdjacencyMatrix) Clone() *AdjacencyMatrix {
	return &AdjacencyMatrix{n: a.n, labels: a.Labels(), data: mat.DenseCopyOf(a.data)}
}

// WithoutLoops returns a copy with the diagonal zeroed (loop policy applied).
// The receiver is untouched. O(n²) for the copy, O(n) for the zeroing.
func (a *AdjacencyMatrix) WithoutLoops() *AdjacencyMatrix {
	out := a.Clone()
	for i := 0; i < out.n; i++ {
		out.data.Set(i, i, 0)
	}

	return out
}

// Symmetrized returns M = A + Aᵀ as a fresh matrix (input convention of the
// signed clustering coefficient). Labels carry over unchanged. O(n²).
func (a *AdjacencyMatrix) Symmetrized() *AdjacencyMatrix {
	var m mat.Dense
	m.Add(a.data, a.data.T())

	return &AdjacencyMatrix{n: a.n, labels: a.Labels(), data: &m}
}

// RowSums returns the per-row sums (weighted out-degrees). O(n²).
func (a *AdjacencyMatrix) RowSums() []float64 {
	out := make([]float64, a.n)
	row := make([]float64, a.n)
	for i := 0; i < a.n; i++ {
		mat.Row(row, i, a.data)
		out[i] = floats.Sum(row)
	}

	return out
}

// ColSums returns the per-column sums (weighted in-degrees). O(n²).
func (a *AdjacencyMatrix) ColSums() []float64 {
	out := make([]float64, a.n)
	col := make([]float64, a.n)
	for j := 0; j < a.n; j++ {
		mat.Col(col, j, a.data)
		out[j] = floats.Sum(col)
	}

	return out
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// line, prefixed by the state label. O(n²) string construction.
func (a *AdjacencyMatrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < a.n; i++ {
		b.WriteString(a.labels[i])
		b.WriteString(" [")
		for j = 0; j < a.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", a.data.At(i, j))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
