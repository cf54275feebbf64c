// internal/commands/serve.go
package hkomcp

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwiater/hkomcp/internal/appconfig"
	"github.com/mwiater/hkomcp/internal/logging"
	"github.com/mwiater/hkomcp/internal/mcpserver"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd runs the MCP server over stdio or streamable HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tool catalogue over MCP",
	Long: `Serve the Hong Kong Observatory tool catalogue to MCP clients.

The default stdio transport is what desktop MCP clients launch. The http transport
mounts the streamable MCP endpoint at /mcp, a health probe at /healthz and, with
--metrics, Prometheus metrics at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		rt, err := mcpserver.Assemble(cfg, newFetcher(), newClock())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logging.LogEvent("serve: %d tools, transport=%s", rt.Registry.Len(), cfg.TransportMode())
		switch cfg.TransportMode() {
		case appconfig.TransportHTTP:
			return mcpserver.ServeHTTP(ctx, cfg.ListenAddr(), mcpserver.NewRouter(rt.Server, rt.Metrics))
		case appconfig.TransportStdio:
			return mcpserver.ServeStdio(ctx, rt.Server, cmd.InOrStdin(), cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported transport %q", cfg.TransportMode())
		}
	},
}

func init() {
	serveCmd.Flags().String("transport", appconfig.TransportStdio, "MCP transport: stdio or http")
	serveCmd.Flags().String("addr", "", "listen address for the http transport (default 127.0.0.1:8080)")
	_ = viper.BindPFlag("transport", serveCmd.Flags().Lookup("transport"))
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
