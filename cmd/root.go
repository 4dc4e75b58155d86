package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Terminal dashboard for personal health measurements",
	Long: `vitals - A terminal dashboard for tracking personal health measurements.

Record indicator values, filter and search the history, and see each
indicator charted against its norm range.`,
	RunE: runBoard,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.Flags().String("locale", "", "number formatting locale, overrides the config file")
	rootCmd.Flags().Int("debounce-ms", 0, "filter resubmit quiet period in milliseconds")
	rootCmd.Flags().Int("autohide-ms", 0, "notification auto-hide delay in milliseconds")
	rootCmd.Flags().String("log-file", "", "write diagnostics to this file")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for config lookup
func getBaseDir() string {
	return baseDir
}
