package centrality_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transnet/centrality"
	"github.com/katalvlaran/transnet/network"
)

// reference returns the running three-state learning-process network used
// across these tests. Loop weight only on the last state.
func reference(t *testing.T) *network.AdjacencyMatrix {
	t.Helper()

	return mustAdjacency(t, [][]float64{
		{0, 0.5, 0.5},
		{0.2, 0, 0.8},
		{0.1, 0.1, 0.8},
	}, []string{"plan", "act", "reflect"})
}

func TestCompute_StrengthsExcludeLoopsByDefault(t *testing.T) {
	tab, err := centrality.Compute([]*network.AdjacencyMatrix{reference(t)})
	require.NoError(t, err)

	out, err := tab.Column(centrality.OutStrength)
	require.NoError(t, err)
	in, err := tab.Column(centrality.InStrength)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1, 1, 0.2}, out, 1e-12)
	assert.InDeltaSlice(t, []float64{0.3, 0.6, 1.3}, in, 1e-12)
}

func TestCompute_WithLoopsKeepsDiagonal(t *testing.T) {
	tab, err := centrality.Compute(
		[]*network.AdjacencyMatrix{reference(t)},
		centrality.WithLoops(),
	)
	require.NoError(t, err)

	out, err := tab.Column(centrality.OutStrength)
	require.NoError(t, err)
	in, err := tab.Column(centrality.InStrength)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1, 1, 1}, out, 1e-12)
	assert.InDeltaSlice(t, []float64{0.3, 0.6, 2.1}, in, 1e-12)
}

func TestCompute_InputNeverMutated(t *testing.T) {
	a := reference(t)
	_, err := centrality.Compute([]*network.AdjacencyMatrix{a})
	require.NoError(t, err)

	v, err := a.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.8, v, "loop policy must work on a copy")
}

func TestCompute_DefaultColumnsAreFullVocabulary(t *testing.T) {
	tab, err := centrality.Compute([]*network.AdjacencyMatrix{reference(t)})
	require.NoError(t, err)

	assert.Equal(t, centrality.AllMeasures(), tab.Columns())
	assert.Equal(t, 3, tab.Rows())
	assert.Equal(t, []string{"plan", "act", "reflect"}, tab.States())
	assert.Nil(t, tab.Clusters(), "single matrix has no cluster column")
	assert.Nil(t, tab.ClusterLevels())
}

func TestCompute_ColumnOrderFollowsRequest(t *testing.T) {
	tab, err := centrality.Compute(
		[]*network.AdjacencyMatrix{reference(t)},
		centrality.WithMeasures("diff", "OUTSTRENGTH", "betw", "outstr"),
	)
	require.NoError(t, err)

	want := []centrality.Measure{
		centrality.Diffusion,
		centrality.OutStrength,
		centrality.Betweenness,
	}
	assert.Equal(t, want, tab.Columns(), "request order kept, duplicates dropped")

	_, err = tab.Column(centrality.InStrength)
	assert.ErrorIs(t, err, centrality.ErrMeasureAbsent)
}

func TestCompute_BadMeasureListsEveryOffender(t *testing.T) {
	_, err := centrality.Compute(
		[]*network.AdjacencyMatrix{reference(t)},
		centrality.WithMeasures("diff", "bogus", "close", "nope"),
	)
	require.ErrorIs(t, err, centrality.ErrBadMeasure)
	assert.Contains(t, err.Error(), "bogus")
	assert.Contains(t, err.Error(), "close")
	assert.Contains(t, err.Error(), "nope")
	assert.NotContains(t, err.Error(), "diff")
}

func TestCompute_ValidationErrors(t *testing.T) {
	_, err := centrality.Compute(nil)
	assert.ErrorIs(t, err, centrality.ErrNoMatrices)

	_, err = centrality.Compute([]*network.AdjacencyMatrix{reference(t), nil})
	assert.ErrorIs(t, err, centrality.ErrNilMatrix)

	a := mustAdjacency(t, [][]float64{{0, 1}, {1, 0}}, []string{"x", "y"})
	_, err = centrality.Compute([]*network.AdjacencyMatrix{reference(t), a})
	assert.ErrorIs(t, err, centrality.ErrLabelMismatch)

	b := mustAdjacency(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}, []string{"plan", "act", "review"})
	_, err = centrality.Compute([]*network.AdjacencyMatrix{reference(t), b})
	assert.ErrorIs(t, err, centrality.ErrLabelMismatch)
}

func TestCompute_ClusterFilter(t *testing.T) {
	mats := []*network.AdjacencyMatrix{
		reference(t),
		mustAdjacency(t, [][]float64{
			{0, 0.1, 0.9},
			{0.9, 0, 0.1},
			{0.5, 0.5, 0},
		}, []string{"plan", "act", "reflect"}),
	}

	// In range: only the second cluster, no cluster column.
	tab, err := centrality.Compute(mats, centrality.WithCluster(1))
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Rows())
	assert.Nil(t, tab.Clusters())

	out, err := tab.Column(centrality.OutStrength)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, out, 1e-12)

	// Out of range.
	_, err = centrality.Compute(mats, centrality.WithCluster(2))
	assert.ErrorIs(t, err, centrality.ErrClusterRange)
	_, err = centrality.Compute(mats, centrality.WithCluster(-1))
	assert.ErrorIs(t, err, centrality.ErrClusterRange)

	// Ignored entirely when there is just one matrix.
	tab, err = centrality.Compute(mats[:1], centrality.WithCluster(7))
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Rows())
}

func TestCompute_MultiClusterConcatenation(t *testing.T) {
	second := mustAdjacency(t, [][]float64{
		{0, 0.1, 0.9},
		{0.9, 0, 0.1},
		{0.5, 0.5, 0},
	}, []string{"plan", "act", "reflect"})
	mats := []*network.AdjacencyMatrix{reference(t), second}

	tab, err := centrality.Compute(mats, centrality.WithMeasures("outstrength", "instrength"))
	require.NoError(t, err)

	assert.Equal(t, 6, tab.Rows())
	assert.Equal(t, []string{"plan", "act", "reflect", "plan", "act", "reflect"}, tab.States())
	assert.Equal(t, []string{"1", "1", "1", "2", "2", "2"}, tab.Clusters())
	assert.Equal(t, []string{"1", "2"}, tab.ClusterLevels())

	// Block values match the standalone single-cluster computations.
	out, err := tab.Column(centrality.OutStrength)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 0.2, 1, 1, 1}, out, 1e-12)
}

func TestCompute_NormalizationPerClusterColumn(t *testing.T) {
	second := mustAdjacency(t, [][]float64{
		{0, 2, 2},
		{4, 0, 4},
		{8, 8, 0},
	}, []string{"plan", "act", "reflect"})
	mats := []*network.AdjacencyMatrix{reference(t), second}

	tab, err := centrality.Compute(mats,
		centrality.WithMeasures("outstrength"),
		centrality.WithNormalization(),
	)
	require.NoError(t, err)

	out, err := tab.Column(centrality.OutStrength)
	require.NoError(t, err)

	// Cluster "1": raw [1, 1, 0.2] → [1, 1, 0].
	assert.InDeltaSlice(t, []float64{1, 1, 0}, out[:3], 1e-12)
	// Cluster "2": raw [4, 8, 16] → [0, 1/3, 1] using its own extrema.
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 1}, out[3:], 1e-12)
}

func TestCompute_NormalizationConstantColumnIsZero(t *testing.T) {
	a := mustAdjacency(t, [][]float64{
		{0, 1},
		{1, 0},
	}, []string{"a", "b"})

	got, err := centrality.Vector(a, centrality.OutStrength, centrality.WithNormalization())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, got)
}

// TestCompute_NormalizationSkipsNonFinite: the chain's out-closeness column
// is [0.25, 0.5, +Inf] — the sink state legitimately carries +Inf. Rescaling
// must use the finite extrema only, so the finite values still attain exactly
// 0 and 1 and the +Inf passes through untouched.
func TestCompute_NormalizationSkipsNonFinite(t *testing.T) {
	got, err := centrality.Vector(chain(t), centrality.ClosenessOut, centrality.WithNormalization())
	require.NoError(t, err)

	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 1.0, got[1])
	assert.True(t, math.IsInf(got[2], 1), "degenerate entry passes through")
}

// TestCompute_NormalizationConstantFiniteWithInf: when every finite entry of
// a column is the same, those entries map to 0 and non-finite ones survive.
func TestCompute_NormalizationConstantFiniteWithInf(t *testing.T) {
	a := mustAdjacency(t, [][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	}, []string{"a", "b", "iso"})

	got, err := centrality.Vector(a, centrality.ClosenessOut, centrality.WithNormalization())
	require.NoError(t, err)

	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 0.0, got[1])
	assert.True(t, math.IsInf(got[2], 1))
}

func TestCompute_SingularAbortsWholeReport(t *testing.T) {
	degenerate := mustAdjacency(t, [][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	}, []string{"plan", "act", "reflect"})

	// The extreme temperature collapses the softened weights to the raw
	// transition pattern; the two-cycle pair makes I−W rank-deficient in
	// the second cluster, and the whole report must go down with it.
	_, err := centrality.Compute(
		[]*network.AdjacencyMatrix{reference(t), degenerate},
		centrality.WithBeta(1e-300),
		centrality.WithMeasures("betweenness"),
	)
	require.ErrorIs(t, err, centrality.ErrSingular)
	assert.Contains(t, err.Error(), `cluster "2"`, "failure names the offending cluster")
}

func TestComputeModel_CarriesClusterNames(t *testing.T) {
	a := reference(t)
	m, err := network.NewModel(
		network.Cluster{Name: "novice", Adjacency: a},
		network.Cluster{Name: "expert", Adjacency: a},
	)
	require.NoError(t, err)

	tab, err := centrality.ComputeModel(m, centrality.WithMeasures("diffusion"))
	require.NoError(t, err)
	assert.Equal(t, []string{"novice", "expert"}, tab.ClusterLevels())
	assert.Equal(t, "novice", tab.Clusters()[0])

	_, err = centrality.ComputeModel(nil)
	assert.ErrorIs(t, err, centrality.ErrNoMatrices)
}

func TestVector_Validation(t *testing.T) {
	_, err := centrality.Vector(nil, centrality.Diffusion)
	assert.ErrorIs(t, err, centrality.ErrNilMatrix)

	_, err = centrality.Vector(reference(t), centrality.Measure(99))
	assert.ErrorIs(t, err, centrality.ErrBadMeasure)
}

func TestTable_ValueAccess(t *testing.T) {
	tab, err := centrality.Compute(
		[]*network.AdjacencyMatrix{reference(t)},
		centrality.WithMeasures("outstrength"),
	)
	require.NoError(t, err)

	v, err := tab.Value(2, centrality.OutStrength)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-12)

	_, err = tab.Value(3, centrality.OutStrength)
	assert.ErrorIs(t, err, centrality.ErrOutOfRange)
	_, err = tab.Value(0, centrality.Betweenness)
	assert.ErrorIs(t, err, centrality.ErrMeasureAbsent)
}

func TestTable_StringRendering(t *testing.T) {
	tab, err := centrality.Compute(
		[]*network.AdjacencyMatrix{reference(t)},
		centrality.WithMeasures("outstrength", "instrength"),
	)
	require.NoError(t, err)

	s := tab.String()
	assert.True(t, strings.HasPrefix(s, "State"))
	assert.Contains(t, s, "OutStrength")
	assert.Contains(t, s, "reflect")
	assert.NotContains(t, s, "Cluster", "no cluster column for one matrix")
}
