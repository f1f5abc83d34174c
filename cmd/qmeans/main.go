// Command qmeans runs quantum and classical k-means on a synthetic 2D dataset
// and writes comparison plots plus a result artifact.
//
// Usage:
//
//	qmeans --dataset moons --clusters 2 --iters 10 --feature-map angle
//
// Exit code 0 on success, 1 on any failure.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/qmeans"
	"github.com/hupe1980/qmeans/artifact"
	"github.com/hupe1980/qmeans/compare"
	"github.com/hupe1980/qmeans/dataset"
	"github.com/hupe1980/qmeans/featuremap"
	"github.com/hupe1980/qmeans/model"
	"github.com/hupe1980/qmeans/plot"
)

type config struct {
	dataset    string
	clusters   int
	iters      int
	featureMap string
	samples    int
	noise      float64
	seed       int64
	outputDir  string
	compress   string
	jsonLogs   bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dataset, "dataset", "moons", "dataset type (moons, circles)")
	flag.IntVar(&cfg.clusters, "clusters", 2, "number of clusters")
	flag.IntVar(&cfg.iters, "iters", 10, "iterations for clustering")
	flag.StringVar(&cfg.featureMap, "feature-map", "angle", "quantum feature map to use (angle, zz)")
	flag.IntVar(&cfg.samples, "samples", 200, "number of points to generate")
	flag.Float64Var(&cfg.noise, "noise", 0.1, "dataset noise level")
	flag.Int64Var(&cfg.seed, "seed", 0, "seed for dataset generation and centroid initialization")
	flag.StringVar(&cfg.outputDir, "output-dir", "examples", "directory for SVG plots and the result artifact")
	flag.StringVar(&cfg.compress, "compress", "none", "artifact compression (none, zstd, lz4)")
	flag.BoolVar(&cfg.jsonLogs, "json-logs", false, "emit JSON-formatted logs")
	flag.Parse()

	logger := qmeans.NewTextLogger(slog.LevelInfo)
	if cfg.jsonLogs {
		logger = qmeans.NewJSONLogger(slog.LevelInfo)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *qmeans.Logger) error {
	logger = logger.WithDataset(cfg.dataset).WithK(cfg.clusters).WithFeatureMap(cfg.featureMap)

	points, truth, err := generate(cfg)
	if err != nil {
		return err
	}

	fm, ok := featuremap.ByName(cfg.featureMap)
	if !ok {
		return fmt.Errorf("unknown feature map %q (choose angle or zz)", cfg.featureMap)
	}
	comp, ok := artifact.CompressorByName(cfg.compress)
	if !ok {
		return fmt.Errorf("unknown compressor %q (choose none, zstd or lz4)", cfg.compress)
	}

	qkm, err := qmeans.NewQuantumKMeans(cfg.clusters, cfg.iters, fm, qmeans.WithSeed(cfg.seed))
	if err != nil {
		return err
	}
	ckm, err := qmeans.NewClassicalKMeans(cfg.clusters, cfg.iters, qmeans.WithSeed(cfg.seed))
	if err != nil {
		return err
	}

	// The engines share nothing, so the two fits can run in parallel.
	var (
		qres *qmeans.QuantumResult
		cres *qmeans.ClassicalResult
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		qres, err = qkm.Fit(points)
		return err
	})
	g.Go(func() error {
		var err error
		cres, err = ckm.Fit(points)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	ri, err := compare.RandIndex(qres.Labels, cres.Labels)
	if err != nil {
		return err
	}
	ari, err := compare.AdjustedRandIndex(qres.Labels, cres.Labels)
	if err != nil {
		return err
	}
	logger.Info("clustering completed", "rand_index", ri, "adjusted_rand_index", ari)

	if err := writePlots(cfg, points, truth, qres, cres); err != nil {
		return err
	}

	a := &artifact.Artifact{
		Dataset:           cfg.dataset,
		FeatureMap:        fm.Name(),
		Clusters:          cfg.clusters,
		Iterations:        cfg.iters,
		Seed:              cfg.seed,
		QuantumLabels:     qres.Labels,
		ClassicalLabels:   cres.Labels,
		RandIndex:         ri,
		AdjustedRandIndex: ari,
	}
	a.SetPoints(points)
	a.SetQuantumCentroids(qres.Centroids)
	a.SetClassicalCentroids(cres.Centroids)

	store := artifact.NewStore(cfg.outputDir, artifact.WithCompressor(comp))
	path, err := store.Save("results", a)
	if err != nil {
		return err
	}
	logger.Info("artifacts written", "dir", cfg.outputDir, "results", path)

	return nil
}

func generate(cfg config) ([]model.Point, []int, error) {
	switch cfg.dataset {
	case "moons":
		return dataset.Moons(cfg.samples, cfg.noise, cfg.seed)
	case "circles":
		return dataset.Circles(cfg.samples, cfg.noise, dataset.DefaultFactor, cfg.seed)
	default:
		return nil, nil, fmt.Errorf("unknown dataset %q (choose moons or circles)", cfg.dataset)
	}
}

func writePlots(cfg config, points []model.Point, truth []int, qres *qmeans.QuantumResult, cres *qmeans.ClassicalResult) error {
	qCenters, err := plot.ProjectCentroids(points, qres.Labels, cfg.clusters)
	if err != nil {
		return err
	}

	out := func(name string) string { return filepath.Join(cfg.outputDir, name) }
	if err := os.MkdirAll(cfg.outputDir, 0o755); err != nil {
		return err
	}

	if err := plot.Dataset(points, truth, out("original_data.svg"), "Original data"); err != nil {
		return err
	}
	if err := plot.Clusters(points, qres.Labels, qCenters, out("quantum_clustering.svg"), "Quantum clustering"); err != nil {
		return err
	}
	if err := plot.Clusters(points, cres.Labels, cres.Centroids, out("classical_kmeans.svg"), "Classical k-means"); err != nil {
		return err
	}
	return plot.CentersComparison(qCenters, cres.Centroids, out("cluster_centers_comparison.svg"))
}
