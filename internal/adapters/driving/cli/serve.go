package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gphotos-mcp/internal/adapters/driving/mcp"
	"github.com/custodia-labs/gphotos-mcp/internal/config"
	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google"
	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google/photos"
)

// tokenEnvVar supplies the OAuth access token for the Photos API.
const tokenEnvVar = "GPHOTOS_ACCESS_TOKEN"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead.

The Photos API access token is read from the GPHOTOS_ACCESS_TOKEN
environment variable.

Examples:
  # Stdio mode (default, for Claude Desktop)
  gphotos-mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  gphotos-mcp serve --port 8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	configPath := flagConfig
	if configPath == "" {
		configPath, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}
	file, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg, err := file.PhotosConfig()
	if err != nil {
		return err
	}

	provider := &google.StaticTokenProvider{Token: os.Getenv(tokenEnvVar)}
	if !provider.IsAuthenticated() {
		return errors.New("no access token: set " + tokenEnvVar)
	}

	executor := photos.NewRESTExecutor(cmd.Context(), provider)
	client, err := photos.NewClient(executor, cfg)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Photos: client})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
