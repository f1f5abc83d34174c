package artifact

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressor compresses and decompresses artifact bytes.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	// Name returns the stable compressor name ("none", "zstd", "lz4").
	Name() string
	// Ext returns the file extension appended to artifact names ("" for none).
	Ext() string
}

// CompressorByName returns a built-in compressor by its stable name.
func CompressorByName(name string) (Compressor, bool) {
	switch name {
	case "none", "":
		return None{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// compressorByExt selects the compressor matching a file extension.
func compressorByExt(ext string) (Compressor, bool) {
	switch ext {
	case ".zst":
		return Zstd{}, true
	case ".lz4":
		return LZ4{}, true
	default:
		return None{}, true
	}
}

// None is the identity compressor.
type None struct{}

// Compress returns data unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns "none".
func (None) Name() string { return "none" }

// Ext returns "".
func (None) Ext() string { return "" }

// Zstd compresses with Zstandard.
type Zstd struct{}

// Compress returns the zstd-compressed data.
func (Zstd) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress returns the decompressed data.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }

// Ext returns ".zst".
func (Zstd) Ext() string { return ".zst" }

// LZ4 compresses with the lz4 frame format.
type LZ4 struct{}

// Compress returns the lz4-compressed data.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress returns the decompressed data.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// Ext returns ".lz4".
func (LZ4) Ext() string { return ".lz4" }
