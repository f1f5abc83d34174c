package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/qmeans/codec"
	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/state"
)

// Amplitude is one complex amplitude serialized as [re, im].
type Amplitude [2]float64

// Artifact is the persisted result of one comparison run.
type Artifact struct {
	Dataset    string `json:"dataset"`
	FeatureMap string `json:"feature_map"`
	Clusters   int    `json:"clusters"`
	Iterations int    `json:"iterations"`
	Seed       int64  `json:"seed"`

	Points [][2]float64 `json:"points"`

	QuantumLabels    []int         `json:"quantum_labels"`
	QuantumCentroids [][]Amplitude `json:"quantum_centroids"`

	ClassicalLabels    []int        `json:"classical_labels"`
	ClassicalCentroids [][2]float64 `json:"classical_centroids"`

	RandIndex         float64 `json:"rand_index"`
	AdjustedRandIndex float64 `json:"adjusted_rand_index"`
}

// SetPoints stores the input points.
func (a *Artifact) SetPoints(points []model.Point) {
	a.Points = make([][2]float64, len(points))
	for i, p := range points {
		a.Points[i] = [2]float64{p.X, p.Y}
	}
}

// SetQuantumCentroids stores quantum centroids as [re, im] amplitude pairs.
func (a *Artifact) SetQuantumCentroids(centroids []state.State) {
	a.QuantumCentroids = make([][]Amplitude, len(centroids))
	for i, c := range centroids {
		amps := make([]Amplitude, len(c))
		for j, amp := range c {
			amps[j] = Amplitude{real(amp), imag(amp)}
		}
		a.QuantumCentroids[i] = amps
	}
}

// SetClassicalCentroids stores the classical centroids.
func (a *Artifact) SetClassicalCentroids(centroids []model.Point) {
	a.ClassicalCentroids = make([][2]float64, len(centroids))
	for i, c := range centroids {
		a.ClassicalCentroids[i] = [2]float64{c.X, c.Y}
	}
}

// Store writes and reads artifacts below a root directory.
type Store struct {
	root  string
	codec codec.Codec
	comp  Compressor
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCodec sets the codec used for encoding. Defaults to codec.Default.
func WithCodec(c codec.Codec) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithCompressor sets the compressor used for encoding. Defaults to None.
func WithCompressor(c Compressor) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.comp = c
		}
	}
}

// NewStore creates a Store rooted at the given directory.
// The directory is created on the first Save.
func NewStore(root string, opts ...StoreOption) *Store {
	s := &Store{
		root:  root,
		codec: codec.Default,
		comp:  None{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save encodes the artifact and writes it as name + ".json" plus the
// compressor extension. Returns the full path of the written file.
func (s *Store) Save(name string, a *Artifact) (string, error) {
	data, err := s.codec.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("artifact: encode %s: %w", name, err)
	}
	data, err = s.comp.Compress(data)
	if err != nil {
		return "", fmt.Errorf("artifact: compress %s: %w", name, err)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.root, name+".json"+s.comp.Ext())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads an artifact file, selecting the compressor from the extension.
func Load(path string, c codec.Codec) (*Artifact, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	comp, _ := compressorByExt(filepath.Ext(path))
	data, err = comp.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("artifact: decompress %s: %w", path, err)
	}
	var a Artifact
	if err := c.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("artifact: decode %s: %w", path, err)
	}
	return &a, nil
}
