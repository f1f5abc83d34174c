package featuremap

import (
	"fmt"

	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/state"
)

// NumFeatures is the input dimensionality of every feature map.
// The maps encode 2D points; this is fixed by design, not data-driven.
const NumFeatures = 2

// ErrInvalidInput indicates a point with non-finite coordinates.
type ErrInvalidInput struct {
	Point model.Point
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input point (%g, %g): coordinates must be finite", e.Point.X, e.Point.Y)
}

// Kind identifies a supported feature map.
type Kind int

const (
	KindAngle Kind = iota
	KindZZ
)

func (k Kind) String() string {
	switch k {
	case KindAngle:
		return "angle"
	case KindZZ:
		return "zz"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// FeatureMap encodes a classical 2D point into a quantum state.
// Implementations must be pure: no side effects, and bit-identical output
// for identical input.
type FeatureMap interface {
	// Encode maps a point to a unit-norm amplitude vector.
	// Non-finite coordinates fail with *ErrInvalidInput.
	Encode(p model.Point) (state.State, error)
	// Dimension returns the length of encoded states (2^qubits).
	Dimension() int
	// Name returns the stable name of the map ("angle", "zz").
	Name() string
}

// New returns the feature map for the given kind.
func New(kind Kind) (FeatureMap, error) {
	switch kind {
	case KindAngle:
		return AngleMap{}, nil
	case KindZZ:
		return NewZZMap(DefaultZZReps), nil
	default:
		return nil, fmt.Errorf("unsupported feature map kind: %v", kind)
	}
}

// ByName returns a built-in feature map by its stable name.
//
// This is what CLI-level selection goes through; unknown names return false
// instead of an error so callers can list valid choices themselves.
func ByName(name string) (FeatureMap, bool) {
	switch name {
	case "angle":
		return AngleMap{}, true
	case "zz":
		return NewZZMap(DefaultZZReps), true
	default:
		return nil, false
	}
}

func checkPoint(p model.Point) error {
	if !p.Finite() {
		return &ErrInvalidInput{Point: p}
	}
	return nil
}
