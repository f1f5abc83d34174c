// Package artifact persists clustering run results to local files.
//
// An Artifact captures everything needed to reproduce and inspect a run: the
// generation parameters, the input points, both labelings, the centroids, and
// the comparison metrics. It is encoded with a codec.Codec and optionally
// compressed; the compressor is selected by name and recorded in the file
// extension, so files are self-describing:
//
//	results.json       (no compression)
//	results.json.zst   (zstd)
//	results.json.lz4   (lz4)
//
// Artifacts are rendering/inspection output, not a stable wire format.
package artifact
