package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/philipparndt/lidarview/internal/config"
	"github.com/philipparndt/lidarview/version"
)

var rootCmd = &cobra.Command{
	Use:   "lidarview [file]",
	Short: "Interactive viewer for airborne LiDAR point clouds",
	Long: `lidarview renders LiDAR point clouds exported as text (las2txt, pdal translate).
Points can be filtered by return number and classification and colored
uniformly, by their classification code or by a derived classification.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runView(cmd, args)
	},
}

var configFlags *config.Flags

func init() {
	// log to stderr unless the user asks for log files
	_ = flag.Set("logtostderr", "true")

	configFlags = config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// glog checks that the Go flag set was parsed
		return flag.CommandLine.Parse(nil)
	}
}

// loadConfig resolves the configuration of the current invocation
func loadConfig() (*config.Config, error) {
	return configFlags.Load()
}

func main() {
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}
