// Package model defines core value types shared across qmeans packages.
//
//   - Point: a 2D data point (the classical input to a feature map)
//   - Labeling helpers for cluster assignments
//
// Types here are plain values with no behavior beyond validation so that
// every other package can depend on them without cycles.
package model
