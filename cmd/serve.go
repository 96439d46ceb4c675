package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/git-history-mcp/internal/mcpserver"
)

// ServeCmd returns the serve command.
func ServeCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the MCP server on stdin/stdout (default)",
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		sigCtx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := mcpserver.New(ctx.Dispatcher, ctx.Logger, Version)
		err := srv.Serve(sigCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}
