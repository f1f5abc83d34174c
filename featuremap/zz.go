package featuremap

import (
	"math"
	"math/cmplx"

	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/state"
)

// DefaultZZReps is the default number of entangling repetitions.
const DefaultZZReps = 2

// ZZMap is a second-order (ZZ) entangling feature map for two qubits.
//
// Each repetition applies a Hadamard to both qubits followed by diagonal
// phases: 2x₀ on qubit 0, 2x₁ on qubit 1, and 2(π−x₀)(π−x₁) on |11⟩. The
// pairwise-product phase entangles the qubits, which often separates circular
// patterns more effectively than plain angle encoding.
type ZZMap struct {
	reps int
}

// NewZZMap creates a ZZMap with the given number of repetitions.
// Values below 1 fall back to DefaultZZReps.
func NewZZMap(reps int) ZZMap {
	if reps < 1 {
		reps = DefaultZZReps
	}
	return ZZMap{reps: reps}
}

// Name returns "zz".
func (ZZMap) Name() string { return "zz" }

// Dimension returns the state length (4 amplitudes for 2 qubits).
func (ZZMap) Dimension() int { return 1 << NumFeatures }

// Encode maps p to its ZZ-encoded quantum state.
func (m ZZMap) Encode(p model.Point) (state.State, error) {
	if err := checkPoint(p); err != nil {
		return nil, err
	}

	// Start in |00⟩.
	s := make(state.State, 4)
	s[0] = 1

	phi0 := 2 * p.X
	phi1 := 2 * p.Y
	phi01 := 2 * (math.Pi - p.X) * (math.Pi - p.Y)

	reps := m.reps
	if reps < 1 {
		reps = DefaultZZReps
	}
	for r := 0; r < reps; r++ {
		applyHadamard(s, 0)
		applyHadamard(s, 1)
		for i := range s {
			var phase float64
			if i&1 != 0 {
				phase += phi0
			}
			if i&2 != 0 {
				phase += phi1
			}
			if i&1 != 0 && i&2 != 0 {
				phase += phi01
			}
			s[i] *= cmplx.Exp(complex(0, phase))
		}
	}
	return s, nil
}

// applyHadamard applies H to the given qubit of a 2-qubit state in place.
// The state is freshly allocated by Encode, so no caller-visible mutation.
func applyHadamard(s state.State, qubit int) {
	mask := 1 << qubit
	inv := complex(1/math.Sqrt2, 0)
	for i := range s {
		if i&mask == 0 {
			a, b := s[i], s[i|mask]
			s[i] = (a + b) * inv
			s[i|mask] = (a - b) * inv
		}
	}
}
