package cli

import (
	"fmt"

	srv "github.com/brunocadim/termolog/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
	Long: `Start the MCP server on stdio so AI tools can read and write the
journal through the journal_* tools.

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "termolog": {
        "command": "termolog",
        "args": ["serve"]
      }
    }
  }`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Info("starting MCP server", "version", Version, "data_dir", cfg.DataDir)

	s := srv.New(store, cfg)
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
