package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apuntes/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

Tools:
  classify_path  guess content types, courses and exam date of paths
  list_items     list classified files by content type or course

Resources:
  apuntes://courses         the course catalog
  apuntes://items/{itemId}  one classified file

By default, the server communicates over stdio using JSON-RPC. Use --port to
start an HTTP server instead.

Examples:
  apuntes mcp serve
  apuntes mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Parse:   parseService,
		Items:   itemService,
		Catalog: catalogService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", mcp.LoopbackAddr(port))
		return server.RunHTTP(cmd.Context(), port)
	}

	return server.Run(cmd.Context())
}
