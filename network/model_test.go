package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transnet/network"
)

// twoByTwo builds a 2-state matrix with the given off-diagonal weights.
func twoByTwo(t *testing.T, up, down float64, labels []string) *network.AdjacencyMatrix {
	t.Helper()
	a, err := network.New([][]float64{{0, up}, {down, 0}}, labels)
	require.NoError(t, err)

	return a
}

// TestNewModel_NoClusters verifies the one-cluster minimum.
func TestNewModel_NoClusters(t *testing.T) {
	_, err := network.NewModel()
	assert.ErrorIs(t, err, network.ErrNoClusters)
}

// TestNewModel_NilAdjacency verifies the per-cluster nil check.
func TestNewModel_NilAdjacency(t *testing.T) {
	_, err := network.NewModel(network.Cluster{Name: "solo"})
	assert.ErrorIs(t, err, network.ErrNilMatrix)
}

// TestNewModel_LabelMismatch verifies the shared-state-space invariant.
func TestNewModel_LabelMismatch(t *testing.T) {
	a := twoByTwo(t, 1, 2, []string{"a", "b"})
	b := twoByTwo(t, 1, 2, []string{"a", "c"})

	_, err := network.NewModel(network.Cluster{Adjacency: a}, network.Cluster{Adjacency: b})
	assert.ErrorIs(t, err, network.ErrClusterMismatch)
}

// TestNewModel_DefaultAndDuplicateNames verifies positional naming and
// uniqueness enforcement.
func TestNewModel_DefaultAndDuplicateNames(t *testing.T) {
	a := twoByTwo(t, 1, 2, []string{"a", "b"})

	m, err := network.NewModel(network.Cluster{Adjacency: a}, network.Cluster{Adjacency: a})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, m.ClusterNames(), "empty names default to positions")

	_, err = network.NewModel(
		network.Cluster{Name: "x", Adjacency: a},
		network.Cluster{Name: "x", Adjacency: a},
	)
	assert.ErrorIs(t, err, network.ErrBadLabels, "duplicate cluster names must error")
}

// TestNewModel_BadInitial covers wrong length and non-finite entries.
func TestNewModel_BadInitial(t *testing.T) {
	a := twoByTwo(t, 1, 2, []string{"a", "b"})

	_, err := network.NewModel(network.Cluster{Adjacency: a, Initial: []float64{1}})
	assert.ErrorIs(t, err, network.ErrBadInitial, "wrong-length initial must error")

	_, err = network.NewModel(network.Cluster{Adjacency: a, Initial: []float64{0.5, math.NaN()}})
	assert.ErrorIs(t, err, network.ErrBadInitial, "NaN initial must error")
}

// TestModel_Accessors covers Size, Labels, Cluster range checks and the
// copy discipline of Matrices.
func TestModel_Accessors(t *testing.T) {
	a := twoByTwo(t, 1, 2, []string{"a", "b"})
	m, err := network.NewModel(
		network.Cluster{Name: "low", Adjacency: a, Initial: []float64{0.7, 0.3}},
		network.Cluster{Name: "high", Adjacency: a},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Size())
	assert.Equal(t, []string{"a", "b"}, m.Labels())
	assert.Equal(t, []string{"low", "high"}, m.ClusterNames())

	c, err := m.Cluster(0)
	require.NoError(t, err)
	assert.Equal(t, "low", c.Name)
	assert.Equal(t, []float64{0.7, 0.3}, c.Initial)

	_, err = m.Cluster(2)
	assert.ErrorIs(t, err, network.ErrClusterRange)
	_, err = m.Cluster(-1)
	assert.ErrorIs(t, err, network.ErrClusterRange)

	// Matrices returns clones: mutating a returned Dense must not leak back.
	mats := m.Matrices()
	require.Len(t, mats, 2)
	d := mats[0].Dense()
	d.Set(0, 1, 42)
	v, err := a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "model-held matrices must be isolated from callers")
}
