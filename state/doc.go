// Package state provides the quantum state representation used for clustering.
//
// A State is a vector of complex128 amplitudes with unit L2 norm. No physical
// quantum hardware is involved; states are purely a mathematical device for
// computing fidelity-based similarity between encoded data points.
//
// # Invariant
//
// Every State that is stored or compared satisfies
//
//	Σ |amplitude|² == 1 ± NormTolerance
//
// States are never mutated after creation; aggregation (Mean) always produces
// a fresh, renormalized State.
package state
