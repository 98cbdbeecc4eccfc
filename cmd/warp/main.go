// Command warp computes pairwise DTW distance tables and seasonal
// decomposition features from CSV time-series files.
//
// Usage:
//
//	warp -mode dtw -left left.csv -right right.csv -out distances.csv
//	warp -mode features -left series.csv.zst -freq 24 -out features.csv
//
// A .zst, .lz4, or .s2 suffix on an input or output path selects the
// matching compression codec. Configuration can also come from WARP__*
// environment variables; explicit flags win.
package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/arloliu/warp/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "warp: %v\n", err)
		os.Exit(1)
	}
}
