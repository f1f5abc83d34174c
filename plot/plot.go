package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hupe1980/qmeans/model"
)

const (
	plotWidth  = 5 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// Dataset renders points colored by label, one series per label value.
func Dataset(points []model.Point, labels []int, path, title string) error {
	p := newPlot(title)
	if err := addPointSeries(p, points, labels); err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}

// Clusters renders a clustering result: points colored by cluster plus a
// black cross per centroid.
func Clusters(points []model.Point, labels []int, centroids []model.Point, path, title string) error {
	p := newPlot(title)
	if err := addPointSeries(p, points, labels); err != nil {
		return err
	}
	if err := addCentroids(p, centroids, color.Black, "centroids"); err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}

// CentersComparison renders quantum and classical centroids on shared axes.
func CentersComparison(quantum, classical []model.Point, path string) error {
	p := newPlot("Cluster centers: quantum vs classical")
	if err := addCentroids(p, quantum, color.RGBA{R: 128, B: 128, A: 255}, "quantum"); err != nil {
		return err
	}
	if err := addCentroids(p, classical, color.Gray{Y: 96}, "classical"); err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}

// ProjectCentroids maps each of the k clusters to the coordinate-wise mean of
// its assigned points, the fixed projection used to display quantum centroids.
// A cluster with no assigned points projects to the origin.
func ProjectCentroids(points []model.Point, labels []int, k int) ([]model.Point, error) {
	if len(points) != len(labels) {
		return nil, fmt.Errorf("plot: %d points but %d labels", len(points), len(labels))
	}
	sumX := make([]float64, k)
	sumY := make([]float64, k)
	counts := make([]int, k)
	for i, l := range labels {
		if l < 0 || l >= k {
			return nil, fmt.Errorf("plot: label %d out of range [0, %d)", l, k)
		}
		sumX[l] += points[i].X
		sumY[l] += points[i].Y
		counts[l]++
	}
	centers := make([]model.Point, k)
	for j := 0; j < k; j++ {
		if counts[j] == 0 {
			continue
		}
		inv := 1 / float64(counts[j])
		centers[j] = model.Point{X: sumX[j] * inv, Y: sumY[j] * inv}
	}
	return centers, nil
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"
	p.Legend.Top = true
	return p
}

func addPointSeries(p *plot.Plot, points []model.Point, labels []int) error {
	if len(points) != len(labels) {
		return fmt.Errorf("plot: %d points but %d labels", len(points), len(labels))
	}
	series := map[int]plotter.XYs{}
	maxLabel := 0
	for i, pt := range points {
		l := labels[i]
		if l < 0 {
			return fmt.Errorf("plot: negative label %d at index %d", l, i)
		}
		if l > maxLabel {
			maxLabel = l
		}
		series[l] = append(series[l], plotter.XY{X: pt.X, Y: pt.Y})
	}
	for l := 0; l <= maxLabel; l++ {
		xys, ok := series[l]
		if !ok {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = plotutil.Color(l)
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(fmt.Sprintf("cluster %d", l), sc)
	}
	return nil
}

func addCentroids(p *plot.Plot, centroids []model.Point, c color.Color, name string) error {
	xys := make(plotter.XYs, len(centroids))
	for i, pt := range centroids {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = vg.Points(4)
	sc.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(sc)
	p.Legend.Add(name, sc)
	return nil
}
