// Package cli wires the gphotos-mcp commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gphotos-mcp/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "gphotos-mcp",
	Short: "MCP server for Google Photos with quota-aware caching",
	Long: `gphotos-mcp serves Google Photos library tools over the Model
Context Protocol. All API traffic goes through a quota-aware caching
client that respects per-second and daily request limits.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.gphotos-mcp/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
