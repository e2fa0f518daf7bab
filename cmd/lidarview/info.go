package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/lidarview/internal/session"
	"github.com/philipparndt/lidarview/pkg/analysis"
	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/view"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a point cloud",
	Long:  "Show point counts, the bounding box, and the distribution over classification codes, buckets and returns.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cloud, err := session.LoadCloud(args[0], cfg)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeCloud(cloud)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Point Cloud Information")
	fmt.Fprintln(out, "=======================")
	fmt.Fprintf(out, "File: %s\n", args[0])
	fmt.Fprintf(out, "Layout: %s\n\n", cfg.Layout)

	fmt.Fprintln(out, "Points:")
	fmt.Fprintf(out, "  Total: %d\n", result.PointCount)
	fmt.Fprintf(out, "  Non-finite: %d\n", result.Flagged)
	fmt.Fprintf(out, "  First returns: %d (%.1f%%)\n", result.FirstCount, result.Percent(result.FirstCount))
	fmt.Fprintf(out, "  Last returns: %d (%.1f%%)\n", result.LastCount, result.Percent(result.LastCount))
	if result.InconsistentReturns > 0 {
		fmt.Fprintf(out, "  Inconsistent return numbers: %d\n", result.InconsistentReturns)
	}
	fmt.Fprintf(out, "  Density: %.3f points per square unit\n\n", result.Density)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Size: %s\n\n", analysis.FormatVector(result.Dimensions))

	fmt.Fprintln(out, "Buckets:")
	for b := view.Bucket(0); b < view.NumBuckets; b++ {
		n := result.PerBucket[b]
		fmt.Fprintf(out, "  %-10s %10d (%.1f%%)\n", b, n, result.Percent(n))
	}

	fmt.Fprintln(out, "\nClassification codes:")
	for _, c := range analysis.TopCodes(result, 256) {
		fmt.Fprintf(out, "  %3d %-24s %10d (%.1f%%)\n", c.Code, c.Code, c.Count, result.Percent(c.Count))
	}
	if result.UnknownCodes > 0 {
		fmt.Fprintf(out, "  %d points carry codes above %d\n", result.UnknownCodes, lidar.MaxDefinedCode)
	}

	fmt.Fprintln(out, "\nReturns per pulse:")
	for _, n := range analysis.ReturnCounts(result) {
		fmt.Fprintf(out, "  %d: %d\n", n, result.PerReturns[n])
	}

	return nil
}
