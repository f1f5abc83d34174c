// Package plot renders clustering runs as SVG scatter plots.
//
// Output format follows the file extension; callers pass ".svg" paths to get
// vector images that stay lightweight and diff-friendly in a repository.
//
// Quantum centroids are amplitude vectors and have no direct 2D position. For
// display they are projected back to the plane as the coordinate-wise mean of
// the points assigned to their cluster. The projection is display-only; it
// never feeds back into clustering.
package plot
