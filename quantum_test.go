package qmeans

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/qmeans/distance"
	"github.com/hupe1980/qmeans/featuremap"
	"github.com/hupe1980/qmeans/model"
)

// Two well-separated pairs.
var pairPoints = []model.Point{
	{X: 0, Y: 0},
	{X: 0, Y: 0.01},
	{X: 10, Y: 10},
	{X: 10, Y: 10.01},
}

func angleMap(t *testing.T) featuremap.FeatureMap {
	t.Helper()
	fm, err := featuremap.New(featuremap.KindAngle)
	require.NoError(t, err)
	return fm
}

func TestNewQuantumKMeans_InvalidConfiguration(t *testing.T) {
	fm := angleMap(t)

	tests := []struct {
		name  string
		k     int
		iters int
		fm    featuremap.FeatureMap
	}{
		{"ZeroK", 0, 5, fm},
		{"NegativeK", -1, 5, fm},
		{"ZeroIterations", 2, 0, fm},
		{"NegativeIterations", 2, -3, fm},
		{"NilFeatureMap", 2, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuantumKMeans(tt.k, tt.iters, tt.fm)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestQuantumKMeans_Fit_InvalidConfiguration(t *testing.T) {
	fm := angleMap(t)

	t.Run("EmptyPoints", func(t *testing.T) {
		qkm, err := NewQuantumKMeans(1, 1, fm)
		require.NoError(t, err)
		_, err = qkm.Fit(nil)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("KExceedsPoints", func(t *testing.T) {
		qkm, err := NewQuantumKMeans(2, 1, fm)
		require.NoError(t, err)
		_, err = qkm.Fit([]model.Point{{X: 1, Y: 1}})
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func TestQuantumKMeans_Fit_InvalidInput(t *testing.T) {
	qkm, err := NewQuantumKMeans(1, 1, angleMap(t))
	require.NoError(t, err)

	_, err = qkm.Fit([]model.Point{{X: math.NaN(), Y: 0}})
	require.Error(t, err)

	var inv *featuremap.ErrInvalidInput
	assert.ErrorAs(t, err, &inv)
}

func TestQuantumKMeans_Fit_LabelCoverage(t *testing.T) {
	qkm, err := NewQuantumKMeans(2, 5, angleMap(t))
	require.NoError(t, err)

	res, err := qkm.Fit(pairPoints)
	require.NoError(t, err)

	require.Len(t, res.Labels, len(pairPoints))
	require.Len(t, res.Centroids, 2)
	assert.True(t, model.ValidLabeling(res.Labels, 2))

	for _, c := range res.Centroids {
		assert.NoError(t, c.Validate())
	}
}

func TestQuantumKMeans_Fit_Deterministic(t *testing.T) {
	qkm, err := NewQuantumKMeans(2, 5, angleMap(t), WithSeed(7))
	require.NoError(t, err)

	a, err := qkm.Fit(pairPoints)
	require.NoError(t, err)
	b, err := qkm.Fit(pairPoints)
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Centroids, b.Centroids)
}

func TestQuantumKMeans_Fit_SingleCluster(t *testing.T) {
	for _, kind := range []featuremap.Kind{featuremap.KindAngle, featuremap.KindZZ} {
		t.Run(kind.String(), func(t *testing.T) {
			fm, err := featuremap.New(kind)
			require.NoError(t, err)

			qkm, err := NewQuantumKMeans(1, 3, fm)
			require.NoError(t, err)

			res, err := qkm.Fit(pairPoints)
			require.NoError(t, err)
			for i, l := range res.Labels {
				assert.Equal(t, 0, l, "point %d", i)
			}
		})
	}
}

func TestQuantumKMeans_Fit_SeparatedPairs(t *testing.T) {
	qkm, err := NewQuantumKMeans(2, 5, angleMap(t))
	require.NoError(t, err)

	res, err := qkm.Fit(pairPoints)
	require.NoError(t, err)

	// Grouping matters, exact label values do not.
	assert.Equal(t, res.Labels[0], res.Labels[1])
	assert.Equal(t, res.Labels[2], res.Labels[3])
	assert.NotEqual(t, res.Labels[0], res.Labels[2])
}

func TestQuantumKMeans_Fit_LabelingConsistentWithCentroids(t *testing.T) {
	fm := angleMap(t)
	qkm, err := NewQuantumKMeans(2, 2, fm) // tight budget, may stop mid-move
	require.NoError(t, err)

	points := []model.Point{
		{X: 0, Y: 0}, {X: 0.2, Y: 0.1}, {X: 0.1, Y: 0.3},
		{X: 2, Y: 2}, {X: 2.2, Y: 1.9}, {X: 1.9, Y: 2.1},
	}
	res, err := qkm.Fit(points)
	require.NoError(t, err)

	// Re-running the assignment step against the returned centroids must
	// reproduce the returned labeling.
	for i, p := range points {
		s, err := fm.Encode(p)
		require.NoError(t, err)

		best := -1
		bestDist := math.Inf(1)
		for j, c := range res.Centroids {
			d, err := distance.FidelityDistance(s, c)
			require.NoError(t, err)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		assert.Equal(t, res.Labels[i], best, "point %d", i)
	}
}

func ExampleQuantumKMeans() {
	fm, _ := featuremap.New(featuremap.KindAngle)
	qkm, _ := NewQuantumKMeans(2, 5, fm)

	res, _ := qkm.Fit([]model.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 0.01},
		{X: 10, Y: 10},
		{X: 10, Y: 10.01},
	})

	fmt.Println(res.Labels[0] == res.Labels[1])
	fmt.Println(res.Labels[2] == res.Labels[3])
	fmt.Println(res.Labels[0] == res.Labels[2])
	// Output:
	// true
	// true
	// false
}
