package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/lidarview/internal/app"
	"github.com/philipparndt/lidarview/internal/session"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the interactive viewer (default command)",
	Long: `Open the interactive viewer. Press F1 in the window for the key bindings.
With --watch the file is reloaded whenever it changes on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := session.Open(args[0], cfg)
	if err != nil {
		return err
	}

	return app.Run(s)
}
