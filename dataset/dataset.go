package dataset

import (
	"fmt"
	"math"

	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/util"
)

// DefaultFactor is the inner/outer radius ratio used by Circles.
const DefaultFactor = 0.5

// Moons generates the two-moons layout: two interleaving half circles with
// Gaussian noise. Labels are 0 for the outer moon, 1 for the inner one.
func Moons(n int, noise float64, seed int64) ([]model.Point, []int, error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("moons: need at least 2 samples, got %d", n)
	}
	if noise < 0 {
		return nil, nil, fmt.Errorf("moons: noise must be non-negative, got %g", noise)
	}

	rng := util.NewRNG(seed)
	outer := n / 2
	inner := n - outer

	points := make([]model.Point, 0, n)
	labels := make([]int, 0, n)

	for i := 0; i < outer; i++ {
		t := math.Pi * float64(i) / math.Max(float64(outer-1), 1)
		points = append(points, jitter(model.Point{X: math.Cos(t), Y: math.Sin(t)}, noise, rng))
		labels = append(labels, 0)
	}
	for i := 0; i < inner; i++ {
		t := math.Pi * float64(i) / math.Max(float64(inner-1), 1)
		points = append(points, jitter(model.Point{X: 1 - math.Cos(t), Y: 1 - math.Sin(t) - 0.5}, noise, rng))
		labels = append(labels, 1)
	}

	return points, labels, nil
}

// Circles generates two concentric circles with Gaussian noise. The inner
// radius is factor times the outer radius. Labels are 0 for the outer circle,
// 1 for the inner one.
func Circles(n int, noise, factor float64, seed int64) ([]model.Point, []int, error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("circles: need at least 2 samples, got %d", n)
	}
	if noise < 0 {
		return nil, nil, fmt.Errorf("circles: noise must be non-negative, got %g", noise)
	}
	if factor <= 0 || factor >= 1 {
		return nil, nil, fmt.Errorf("circles: factor must be in (0, 1), got %g", factor)
	}

	rng := util.NewRNG(seed)
	outer := n / 2
	inner := n - outer

	points := make([]model.Point, 0, n)
	labels := make([]int, 0, n)

	for i := 0; i < outer; i++ {
		t := 2 * math.Pi * float64(i) / float64(outer)
		points = append(points, jitter(model.Point{X: math.Cos(t), Y: math.Sin(t)}, noise, rng))
		labels = append(labels, 0)
	}
	for i := 0; i < inner; i++ {
		t := 2 * math.Pi * float64(i) / float64(inner)
		points = append(points, jitter(model.Point{X: factor * math.Cos(t), Y: factor * math.Sin(t)}, noise, rng))
		labels = append(labels, 1)
	}

	return points, labels, nil
}

func jitter(p model.Point, noise float64, rng *util.RNG) model.Point {
	if noise == 0 {
		return p
	}
	return model.Point{
		X: p.X + noise*rng.NormFloat64(),
		Y: p.Y + noise*rng.NormFloat64(),
	}
}
