// Command geniclust partitions a precomputed minimum spanning tree into a
// flat k-cluster labelling using the Genie linkage criterion.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if logger != nil {
			logger.Sugar().Errorf("geniclust: %v", err)
		}
		os.Exit(1)
	}
}
