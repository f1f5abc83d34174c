package qmeans

import (
	"math"

	"github.com/hupe1980/qmeans/distance"
	"github.com/hupe1980/qmeans/featuremap"
	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/util"
)

// ClassicalResult holds the outcome of a classical clustering run.
type ClassicalResult struct {
	// Labels maps point index to cluster index in [0, k).
	Labels []int
	// Centroids are the final cluster centers in the plane.
	Centroids []model.Point
}

// ClassicalKMeans is the Euclidean baseline the quantum engine is compared
// against. It mirrors QuantumKMeans exactly: same seeded initialization, same
// lowest-index tie-break, same empty-cluster handling, but operates directly
// on raw points with coordinate-wise mean updates.
type ClassicalKMeans struct {
	k          int
	iterations int
	opts       options
}

// NewClassicalKMeans creates a classical clustering engine.
func NewClassicalKMeans(k, iterations int, opts ...Option) (*ClassicalKMeans, error) {
	if k <= 0 {
		return nil, configErrorf("k must be positive, got %d", k)
	}
	if iterations <= 0 {
		return nil, configErrorf("iterations must be positive, got %d", iterations)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &ClassicalKMeans{k: k, iterations: iterations, opts: o}, nil
}

// Fit clusters the given points and returns the final labeling and centroids.
// As with the quantum engine, the labeling is consistent with the returned
// centroids.
func (c *ClassicalKMeans) Fit(points []model.Point) (*ClassicalResult, error) {
	n := len(points)
	if n == 0 {
		return nil, configErrorf("point set must not be empty")
	}
	if c.k > n {
		return nil, configErrorf("k (%d) exceeds number of points (%d)", c.k, n)
	}
	for _, p := range points {
		if !p.Finite() {
			return nil, &featuremap.ErrInvalidInput{Point: p}
		}
	}

	perm := util.NewRNG(c.opts.seed).Perm(n)
	centroids := make([]model.Point, c.k)
	for i := 0; i < c.k; i++ {
		centroids[i] = points[perm[i]]
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < c.iterations; iter++ {
		if !assignPoints(points, centroids, labels) {
			break
		}

		sumX := make([]float64, c.k)
		sumY := make([]float64, c.k)
		counts := make([]int, c.k)
		for i, l := range labels {
			sumX[l] += points[i].X
			sumY[l] += points[i].Y
			counts[l]++
		}
		for j := 0; j < c.k; j++ {
			if counts[j] == 0 {
				continue
			}
			inv := 1 / float64(counts[j])
			centroids[j] = model.Point{X: sumX[j] * inv, Y: sumY[j] * inv}
		}
	}

	assignPoints(points, centroids, labels)

	return &ClassicalResult{Labels: labels, Centroids: centroids}, nil
}

// assignPoints assigns each point to its nearest centroid by squared Euclidean
// distance, lowest index winning ties. Reports whether any label changed.
func assignPoints(points, centroids []model.Point, labels []int) bool {
	changed := false
	for i, p := range points {
		best := -1
		bestDist := math.Inf(1)
		for j, c := range centroids {
			d := distance.SquaredEuclidean(p, c)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}
	return changed
}
