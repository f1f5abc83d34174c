package qmeans

import (
	"math"

	"github.com/hupe1980/qmeans/distance"
	"github.com/hupe1980/qmeans/featuremap"
	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/state"
	"github.com/hupe1980/qmeans/util"
)

// QuantumResult holds the outcome of a quantum clustering run.
type QuantumResult struct {
	// Labels maps point index to cluster index in [0, k).
	Labels []int
	// Centroids are the final cluster states, one per cluster.
	Centroids []state.State
}

// QuantumKMeans clusters points with Lloyd's algorithm over fidelity distance.
//
// Every point is encoded into a quantum state by the configured feature map.
// The assignment step picks the centroid with the smallest fidelity distance
// (lowest index wins ties); the update step averages the member amplitude
// vectors and renormalizes. Centroids live in state space for the whole run.
//
// A QuantumKMeans is immutable after construction and safe for concurrent
// Fit calls; each call owns all of its intermediate state.
type QuantumKMeans struct {
	k          int
	iterations int
	fm         featuremap.FeatureMap
	opts       options
}

// NewQuantumKMeans creates a quantum clustering engine.
// k and iterations must be positive and fm non-nil; violations fail with
// ErrInvalidConfiguration.
func NewQuantumKMeans(k, iterations int, fm featuremap.FeatureMap, opts ...Option) (*QuantumKMeans, error) {
	if k <= 0 {
		return nil, configErrorf("k must be positive, got %d", k)
	}
	if iterations <= 0 {
		return nil, configErrorf("iterations must be positive, got %d", iterations)
	}
	if fm == nil {
		return nil, configErrorf("feature map must not be nil")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &QuantumKMeans{k: k, iterations: iterations, fm: fm, opts: o}, nil
}

// Fit clusters the given points and returns the final labeling and centroids.
// The returned labeling is consistent with the returned centroids: re-running
// the assignment step against them reproduces it exactly.
func (q *QuantumKMeans) Fit(points []model.Point) (*QuantumResult, error) {
	n := len(points)
	if n == 0 {
		return nil, configErrorf("point set must not be empty")
	}
	if q.k > n {
		return nil, configErrorf("k (%d) exceeds number of points (%d)", q.k, n)
	}

	// Encode every point once; feature maps are pure, so per-iteration
	// re-encoding would only repeat identical work.
	states := make([]state.State, n)
	for i, p := range points {
		s, err := q.fm.Encode(p)
		if err != nil {
			return nil, err
		}
		states[i] = s
	}

	// Initial centroids: k distinct input points chosen by a seeded
	// permutation, encoded via the feature map.
	perm := util.NewRNG(q.opts.seed).Perm(n)
	centroids := make([]state.State, q.k)
	for i := 0; i < q.k; i++ {
		centroids[i] = states[perm[i]].Clone()
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < q.iterations; iter++ {
		changed, err := assignStates(states, centroids, labels)
		if err != nil {
			return nil, err
		}
		if !changed {
			// Memberships are stable, so the previous update already placed
			// every centroid at its mean: running out the budget is a no-op.
			break
		}

		members := make([][]state.State, q.k)
		for i, l := range labels {
			members[l] = append(members[l], states[i])
		}
		for j := 0; j < q.k; j++ {
			if len(members[j]) == 0 {
				// Empty cluster keeps its previous centroid; renormalizing
				// from nothing is undefined.
				continue
			}
			m, ok := state.Mean(members[j])
			if !ok {
				// Member states cancelled out exactly; treat like empty.
				continue
			}
			centroids[j] = m
		}
	}

	// Final assignment against the final centroids, so the labeling stays
	// consistent even when the iteration budget ran out mid-move.
	if _, err := assignStates(states, centroids, labels); err != nil {
		return nil, err
	}

	return &QuantumResult{Labels: labels, Centroids: centroids}, nil
}

// assignStates assigns each state to its nearest centroid by fidelity
// distance, writing into labels. Ties break toward the lowest centroid index.
// Reports whether any label changed.
func assignStates(states, centroids []state.State, labels []int) (bool, error) {
	changed := false
	for i, s := range states {
		best := -1
		bestDist := math.Inf(1)
		for j, c := range centroids {
			d, err := distance.FidelityDistance(s, c)
			if err != nil {
				return false, err
			}
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
	return changed, nil
}
