package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trevors/geniclust"
	"github.com/trevors/geniclust/internal/mstbuild"
)

func newClusterCommand() *cobra.Command {
	var (
		mstPath       string
		pointsPath    string
		metricName    string
		minkowskiP    float64
		outPath       string
		nClusters     int
		giniThreshold float64
		noiseLeaves   bool
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "partition a sorted MST (or raw points) into a fixed number of clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cfg.GiniThreshold != nil && !cmd.Flags().Changed("gini-threshold") {
				giniThreshold = *cfg.GiniThreshold
			}
			if cfg.NoiseLeaves != nil && !cmd.Flags().Changed("noise-leaves") {
				noiseLeaves = *cfg.NoiseLeaves
			}

			var n int
			var weights []float64
			var edges []geniclust.Edge

			switch {
			case pointsPath != "":
				metric, err := resolveMetric(metricName, minkowskiP)
				if err != nil {
					return err
				}
				data, rows, dims, err := readPoints(pointsPath)
				if err != nil {
					return errors.Wrapf(err, "reading points file %q", pointsPath)
				}
				n = rows
				weights, edges, err = mstbuild.Build(data, rows, dims, metric, logger.Sugar().Warnf)
				if err != nil {
					return errors.Wrap(err, "building MST from points")
				}
				logger.Info("mst built from points",
					zap.String("metric", metricName),
					zap.Int("points", rows),
					zap.Int("dims", dims))
			case mstPath != "":
				n, weights, edges, err = readMST(mstPath)
				if err != nil {
					return errors.Wrapf(err, "reading MST file %q", mstPath)
				}
			default:
				return errors.New("one of --mst or --points is required")
			}

			logger.Info("mst loaded",
				zap.Int("n", n),
				zap.Int("edges", len(edges)),
				zap.Float64("gini_threshold", giniThreshold),
				zap.Bool("noise_leaves", noiseLeaves))

			eng, err := geniclust.New(weights, edges, n, noiseLeaves)
			if err != nil {
				return errors.Wrap(err, "constructing engine")
			}

			labels := make([]int, n)
			if err := eng.Apply(nClusters, giniThreshold, labels); err != nil {
				return errors.Wrap(err, "running merge")
			}

			logger.Info("merge complete",
				zap.Int("n_clusters", nClusters),
				zap.Int("noise_count", eng.NoiseCount()))

			return writeLabels(outPath, labels)
		},
	}

	cmd.Flags().StringVar(&mstPath, "mst", "", "path to a precomputed MST file")
	cmd.Flags().StringVar(&pointsPath, "points", "", "path to a CSV points file to build the MST from (alternative to --mst)")
	cmd.Flags().StringVar(&metricName, "metric", "euclidean", "distance metric for --points: euclidean, manhattan, cosine, chebyshev, minkowski")
	cmd.Flags().Float64Var(&minkowskiP, "minkowski-p", 2, "P parameter when --metric=minkowski")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write labels (defaults to stdout)")
	cmd.Flags().IntVar(&nClusters, "k", 2, "number of clusters to produce")
	cmd.Flags().Float64Var(&giniThreshold, "gini-threshold", 0.3, "Gini inequity-correction threshold in [0,1]")
	cmd.Flags().BoolVar(&noiseLeaves, "noise-leaves", false, "treat MST leaves as noise points")
	cmd.MarkFlagsOneRequired("mst", "points")
	cmd.MarkFlagsMutuallyExclusive("mst", "points")

	return cmd
}

// resolveMetric maps a --metric flag value onto a mstbuild.DistanceMetric.
func resolveMetric(name string, p float64) (mstbuild.DistanceMetric, error) {
	switch strings.ToLower(name) {
	case "euclidean", "":
		return mstbuild.EuclideanMetric{}, nil
	case "manhattan":
		return mstbuild.ManhattanMetric{}, nil
	case "cosine":
		return mstbuild.CosineMetric{}, nil
	case "chebyshev":
		return mstbuild.ChebyshevMetric{}, nil
	case "minkowski":
		return mstbuild.MinkowskiMetric{P: p}, nil
	default:
		return nil, errors.Errorf("unknown --metric %q", name)
	}
}

// readPoints parses a CSV points file: one row per point, one column per
// dimension. Returns the flattened row-major data, the row count, and the
// column count.
func readPoints(path string) (data []float64, rows, dims int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, errors.Wrap(err, "parsing CSV row")
		}
		if dims == 0 {
			dims = len(record)
		} else if len(record) != dims {
			return nil, 0, 0, errors.Errorf("row %d has %d columns, want %d", rows+1, len(record), dims)
		}
		for _, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, 0, 0, errors.Wrapf(err, "parsing column %q", field)
			}
			data = append(data, v)
		}
		rows++
	}

	return data, rows, dims, nil
}

// readMST parses a plain text MST file:
//
//	n
//	u v w
//	u v w
//	...  (exactly n-1 lines, w ascending)
func readMST(path string) (n int, weights []float64, edges []geniclust.Edge, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return 0, nil, nil, errors.New("empty MST file")
	}
	n, err = strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "parsing vertex count")
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, nil, nil, errors.Errorf("malformed MST line %q, want \"u v w\"", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, nil, errors.Wrapf(err, "parsing endpoint %q", fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, nil, nil, errors.Wrapf(err, "parsing endpoint %q", fields[1])
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, nil, nil, errors.Wrapf(err, "parsing weight %q", fields[2])
		}
		edges = append(edges, geniclust.Edge{U: u, V: v})
		weights = append(weights, w)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, nil, err
	}

	return n, weights, edges, nil
}

func writeLabels(path string, labels []int) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "creating output file %q", path)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for _, l := range labels {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return errors.Wrap(err, "writing labels")
		}
	}
	return w.Flush()
}
