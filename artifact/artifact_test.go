package artifact

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/qmeans/codec"
	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/state"
)

func sampleArtifact() *Artifact {
	a := &Artifact{
		Dataset:           "moons",
		FeatureMap:        "angle",
		Clusters:          2,
		Iterations:        10,
		Seed:              42,
		QuantumLabels:     []int{0, 0, 1, 1},
		ClassicalLabels:   []int{1, 1, 0, 0},
		RandIndex:         1,
		AdjustedRandIndex: 1,
	}
	a.SetPoints([]model.Point{{X: 0, Y: 0}, {X: 0, Y: 0.01}, {X: 10, Y: 10}, {X: 10, Y: 10.01}})
	a.SetQuantumCentroids([]state.State{
		{1, 0, 0, 0},
		{0, complex(0.6, 0.8), 0, 0},
	})
	a.SetClassicalCentroids([]model.Point{{X: 0, Y: 0.005}, {X: 10, Y: 10.005}})
	return a
}

func TestStore_SaveLoad(t *testing.T) {
	for _, name := range []string{"none", "zstd", "lz4"} {
		t.Run(name, func(t *testing.T) {
			comp, ok := CompressorByName(name)
			require.True(t, ok)

			store := NewStore(t.TempDir(), WithCompressor(comp))
			a := sampleArtifact()

			path, err := store.Save("results", a)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(path, ".json"+comp.Ext()), path)

			got, err := Load(path, nil)
			require.NoError(t, err)
			assert.Equal(t, a, got)
		})
	}
}

func TestStore_Codecs(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		t.Run(name, func(t *testing.T) {
			c, ok := codec.ByName(name)
			require.True(t, ok)

			store := NewStore(t.TempDir(), WithCodec(c))
			a := sampleArtifact()

			path, err := store.Save("results", a)
			require.NoError(t, err)

			got, err := Load(path, c)
			require.NoError(t, err)
			assert.Equal(t, a, got)
		})
	}
}

func TestCompressor_RoundTrip(t *testing.T) {
	payload := []byte(`{"dataset":"circles","points":[[1,0],[0,1],[0.5,0],[0,0.5]]}`)

	for _, name := range []string{"none", "zstd", "lz4"} {
		t.Run(name, func(t *testing.T) {
			comp, ok := CompressorByName(name)
			require.True(t, ok)

			packed, err := comp.Compress(payload)
			require.NoError(t, err)
			got, err := comp.Decompress(packed)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestCompressorByName_Unknown(t *testing.T) {
	_, ok := CompressorByName("brotli")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.Error(t, err)
}
