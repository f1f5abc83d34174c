package model

import "math"

// Point is a 2D data point. Points are passed by value and never mutated.
type Point struct {
	X float64
	Y float64
}

// Finite reports whether both coordinates are finite (no NaN, no Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ValidLabeling reports whether labels assigns every index a cluster in [0, k).
func ValidLabeling(labels []int, k int) bool {
	for _, l := range labels {
		if l < 0 || l >= k {
			return false
		}
	}
	return len(labels) > 0
}
