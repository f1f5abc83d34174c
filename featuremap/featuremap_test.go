package featuremap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/qmeans/model"
)

var samplePoints = []model.Point{
	{X: 0, Y: 0},
	{X: 1, Y: -1},
	{X: math.Pi, Y: math.Pi / 2},
	{X: 10, Y: 10.01},
	{X: -42.5, Y: 1e3},
	{X: 0.001, Y: -0.001},
}

func TestEncode_UnitNorm(t *testing.T) {
	maps := []FeatureMap{AngleMap{}, NewZZMap(1), NewZZMap(2), NewZZMap(3)}

	for _, fm := range maps {
		t.Run(fm.Name(), func(t *testing.T) {
			for _, p := range samplePoints {
				s, err := fm.Encode(p)
				require.NoError(t, err)
				require.Len(t, s, fm.Dimension())
				assert.InDelta(t, 1.0, s.SquaredNorm(), 1e-9, "point (%g, %g)", p.X, p.Y)
			}
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	for _, fm := range []FeatureMap{AngleMap{}, NewZZMap(DefaultZZReps)} {
		t.Run(fm.Name(), func(t *testing.T) {
			for _, p := range samplePoints {
				a, err := fm.Encode(p)
				require.NoError(t, err)
				b, err := fm.Encode(p)
				require.NoError(t, err)
				assert.Equal(t, a, b)
			}
		})
	}
}

func TestEncode_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		p    model.Point
	}{
		{"NaNX", model.Point{X: math.NaN(), Y: 0}},
		{"NaNY", model.Point{X: 0, Y: math.NaN()}},
		{"PosInf", model.Point{X: math.Inf(1), Y: 0}},
		{"NegInf", model.Point{X: 0, Y: math.Inf(-1)}},
	}

	for _, fm := range []FeatureMap{AngleMap{}, NewZZMap(DefaultZZReps)} {
		for _, tt := range tests {
			t.Run(fm.Name()+"/"+tt.name, func(t *testing.T) {
				_, err := fm.Encode(tt.p)
				require.Error(t, err)

				var inv *ErrInvalidInput
				assert.ErrorAs(t, err, &inv)
			})
		}
	}
}

func TestAngleMap_Convention(t *testing.T) {
	// At the origin every rotation is the identity: the state must be |00⟩.
	s, err := AngleMap{}.Encode(model.Point{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(s[0]), 1e-12)
	for _, a := range s[1:] {
		assert.InDelta(t, 0, real(a), 1e-12)
		assert.InDelta(t, 0, imag(a), 1e-12)
	}

	// RY(π) flips qubit 0, so (π, 0) must put all weight on |01⟩.
	s, err = AngleMap{}.Encode(model.Point{X: math.Pi})
	require.NoError(t, err)
	mag := func(c complex128) float64 { return real(c)*real(c) + imag(c)*imag(c) }
	assert.InDelta(t, 0, mag(s[0]), 1e-12)
	assert.InDelta(t, 1, mag(s[1]), 1e-12)
	assert.InDelta(t, 0, mag(s[2]), 1e-12)
	assert.InDelta(t, 0, mag(s[3]), 1e-12)
}

func TestZZMap_EqualWeights(t *testing.T) {
	// Phases never change magnitudes, so a single repetition leaves the
	// uniform superposition created by the Hadamards: all |amp|² = 1/4.
	s, err := NewZZMap(1).Encode(model.Point{X: 0.7, Y: -1.3})
	require.NoError(t, err)
	for _, a := range s {
		assert.InDelta(t, 0.25, real(a)*real(a)+imag(a)*imag(a), 1e-12)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "angle", KindAngle.String())
	assert.Equal(t, "zz", KindZZ.String())
	assert.Contains(t, Kind(99).String(), "Unknown")
}

func TestNew(t *testing.T) {
	fm, err := New(KindAngle)
	require.NoError(t, err)
	assert.Equal(t, "angle", fm.Name())

	fm, err = New(KindZZ)
	require.NoError(t, err)
	assert.Equal(t, "zz", fm.Name())

	_, err = New(Kind(99))
	assert.Error(t, err)
}

func TestByName(t *testing.T) {
	fm, ok := ByName("angle")
	require.True(t, ok)
	assert.Equal(t, "angle", fm.Name())

	fm, ok = ByName("zz")
	require.True(t, ok)
	assert.Equal(t, "zz", fm.Name())

	_, ok = ByName("bogus")
	assert.False(t, ok)
}
