// servers/mcp/main.go
// Standalone stdio MCP server for clients that launch a single binary with no
// subcommands. Configuration comes from the same JSON file the CLI reads.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwiater/hkomcp/internal/appconfig"
	"github.com/mwiater/hkomcp/internal/logging"
	"github.com/mwiater/hkomcp/internal/mcpserver"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "path to the config file")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.LogFilePath(), cfg.Debug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.Close()

	rt, err := mcpserver.Assemble(cfg, nil, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.ServeStdio(ctx, rt.Server, os.Stdin, os.Stdout)
}
