package state

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
)

// NormTolerance is the maximum allowed deviation of the squared norm from 1.
const NormTolerance = 1e-9

// ErrInvalidState indicates a state that violates the unit-norm invariant.
type ErrInvalidState struct {
	SquaredNorm float64
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("invalid quantum state: squared norm %g is not 1", e.SquaredNorm)
}

// State is a vector of complex amplitudes.
type State []complex128

// SquaredNorm returns the sum of squared amplitude magnitudes.
func (s State) SquaredNorm() float64 {
	var sum float64
	for _, a := range s {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}

// Validate checks the unit-norm invariant.
func (s State) Validate() error {
	n := s.SquaredNorm()
	if len(s) == 0 || math.Abs(n-1) > NormTolerance {
		return &ErrInvalidState{SquaredNorm: n}
	}
	return nil
}

// Clone returns a copy of the state.
func (s State) Clone() State {
	return slices.Clone(s)
}

// Normalize returns a unit-norm copy of s.
// Returns false if s has zero norm (normalizing a zero vector is undefined).
func (s State) Normalize() (State, bool) {
	n := s.SquaredNorm()
	if n == 0 {
		return nil, false
	}
	inv := complex(1/math.Sqrt(n), 0)
	dst := make(State, len(s))
	for i, a := range s {
		dst[i] = a * inv
	}
	return dst, true
}

// InnerProduct returns ⟨a|b⟩, the inner product with a conjugated.
// Assumes states are the same length (caller's responsibility).
func InnerProduct(a, b State) complex128 {
	var sum complex128
	for i := range a {
		sum += cmplx.Conj(a[i]) * b[i]
	}
	return sum
}

// Mean returns the element-wise average of the given states, renormalized to
// unit norm. Returns false if states is empty, the lengths disagree, or the
// average has zero norm.
func Mean(states []State) (State, bool) {
	if len(states) == 0 {
		return nil, false
	}
	dim := len(states[0])
	sum := make(State, dim)
	for _, s := range states {
		if len(s) != dim {
			return nil, false
		}
		for i, a := range s {
			sum[i] += a
		}
	}
	inv := complex(1/float64(len(states)), 0)
	for i := range sum {
		sum[i] *= inv
	}
	return sum.Normalize()
}
