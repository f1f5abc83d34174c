// Package qmeans clusters 2D data with a quantum-inspired distance metric and
// compares the result against a classical k-means baseline.
//
// Points are encoded into unit-norm complex amplitude vectors by a feature
// map, and the clustering loop assigns points to centroids by fidelity
// distance (1 − |⟨a|b⟩|²) instead of Euclidean distance. Centroids live in
// state space: each update averages the member amplitude vectors and
// renormalizes. No quantum hardware is involved; the states are purely a
// mathematical device.
//
// # Quick Start
//
//	points, _, err := dataset.Moons(200, 0.1, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fm, _ := featuremap.New(featuremap.KindAngle)
//	qkm, err := qmeans.NewQuantumKMeans(2, 10, fm)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := qkm.Fit(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// res.Labels[i] is the cluster of points[i], res.Centroids the final states.
//
// The classical baseline is structurally identical:
//
//	ckm, _ := qmeans.NewClassicalKMeans(2, 10)
//	base, _ := ckm.Fit(points)
//
// # Determinism
//
// Both engines are deterministic: initial centroids are drawn from the input
// by a seeded permutation (WithSeed, default 0), assignment ties break toward
// the lowest cluster index, and an empty cluster keeps its previous centroid.
// Two Fit calls with identical inputs produce identical labelings and
// centroids, and concurrent Fit calls share no state.
//
// # Subpackages
//
//   - featuremap: point → state encodings (angle, zz)
//   - distance: fidelity distance, Euclidean baseline, kernel matrix
//   - state: the amplitude-vector representation
//   - dataset: seeded moons/circles generators
//   - compare: Rand index / adjusted Rand index between labelings
//   - plot: SVG renderings of datasets and clusterings
//   - artifact: persisted run results (JSON, optionally compressed)
package qmeans
