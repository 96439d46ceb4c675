package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/git-history-mcp/config"
	"github.com/masmgr/git-history-mcp/internal/output"
)

// Version is reported to MCP clients and by --version.
var Version = "1.0.0"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "git-history-mcp",
		Usage:   "Git history analytics served over the Model Context Protocol",
		Version: Version,
		Commands: []*cli.Command{
			ServeCmd(),
			ToolsCmd(),
			CallCmd(),
			InitConfigCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (.json, .yaml or .yml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for a single git command",
			},
			&cli.StringFlag{
				Name:  "git",
				Usage: "git executable name or path",
			},
		},
		Action: serveAction,
	}
}

// loadConfig loads configuration from file or defaults and applies the
// global flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if c.IsSet("timeout") {
		cfg.Git.TimeoutSeconds = int(c.Duration("timeout").Seconds())
	}
	if bin := c.String("git"); bin != "" {
		cfg.Git.Binary = bin
	}
	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		(&output.ConsoleWriter{}).WriteError(err)
		os.Exit(1)
	}
}
