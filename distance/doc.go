// Package distance provides the dissimilarity measures used for clustering.
//
// # Quantum
//
//   - Fidelity: |⟨a|b⟩|², closeness of two unit-norm states
//     (1 = identical up to global phase, 0 = orthogonal)
//   - FidelityDistance: 1 − Fidelity, the distance the quantum k-means
//     loop minimizes
//   - KernelMatrix: symmetric Gram matrix of pairwise fidelities
//
// # Classical
//
//   - SquaredEuclidean / Euclidean over raw points, used by the baseline
//
// Quantum functions validate their inputs defensively: states of unequal
// length fail with *ErrDimensionMismatch and states violating the unit-norm
// invariant fail with *state.ErrInvalidState. In practice callers only ever
// pass feature-map output, which satisfies both by construction.
package distance
