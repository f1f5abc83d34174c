package distance

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/state"
)

// ErrDimensionMismatch indicates two states of unequal length were compared.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Fidelity returns |⟨a|b⟩|², a value in [0, 1].
// Both states must have equal length and unit norm.
func Fidelity(a, b state.State) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	overlap := cmplx.Abs(state.InnerProduct(a, b))
	f := overlap * overlap

	// Clamp rounding noise back into the mathematical range.
	if f > 1 {
		f = 1
	}
	return f, nil
}

// FidelityDistance returns 1 − Fidelity(a, b): 0 for states identical up to
// global phase, 1 for orthogonal states. Symmetric and deterministic.
func FidelityDistance(a, b state.State) (float64, error) {
	f, err := Fidelity(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - f, nil
}

// SquaredEuclidean returns the squared Euclidean distance between two points.
// Minimizing it is equivalent to minimizing Euclidean distance, so the
// classical assignment step uses it to skip the square root.
func SquaredEuclidean(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Euclidean returns the Euclidean distance between two points.
func Euclidean(a, b model.Point) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}
