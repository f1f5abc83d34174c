package featuremap

import (
	"math"
	"math/cmplx"

	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/state"
)

// AngleMap is the angle encoding feature map.
//
// Each coordinate is used directly as a rotation angle: qubit i is prepared as
// RZ(xᵢ/2)·RY(xᵢ)|0⟩, i.e.
//
//	[cos(xᵢ/2)·e^{−i·xᵢ/4}, sin(xᵢ/2)·e^{+i·xᵢ/4}]
//
// and the full state is the tensor product of the two qubits. This keeps the
// encoding short and cheap while still being sensitive to both coordinates.
type AngleMap struct{}

// Name returns "angle".
func (AngleMap) Name() string { return "angle" }

// Dimension returns the state length (4 amplitudes for 2 qubits).
func (AngleMap) Dimension() int { return 1 << NumFeatures }

// Encode maps p to its angle-encoded quantum state.
func (m AngleMap) Encode(p model.Point) (state.State, error) {
	if err := checkPoint(p); err != nil {
		return nil, err
	}

	q0 := angleQubit(p.X)
	q1 := angleQubit(p.Y)

	// Tensor product, qubit 0 on the least significant index:
	// amplitude of |b1 b0⟩ sits at index b1*2 + b0.
	s := make(state.State, 4)
	for b1 := 0; b1 < 2; b1++ {
		for b0 := 0; b0 < 2; b0++ {
			s[b1*2+b0] = q1[b1] * q0[b0]
		}
	}
	return s, nil
}

// angleQubit returns the single-qubit state RZ(x/2)·RY(x)|0⟩.
func angleQubit(x float64) [2]complex128 {
	theta := x
	phi := x / 2
	return [2]complex128{
		complex(math.Cos(theta/2), 0) * cmplx.Exp(complex(0, -phi/2)),
		complex(math.Sin(theta/2), 0) * cmplx.Exp(complex(0, +phi/2)),
	}
}
