package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/masmgr/git-history-mcp/config"
	"github.com/masmgr/git-history-mcp/internal/dispatch"
	"github.com/masmgr/git-history-mcp/internal/git"
	"github.com/masmgr/git-history-mcp/internal/logging"
	"github.com/masmgr/git-history-mcp/internal/report"
)

// CommandContext holds the state shared by the serve, tools and call commands.
type CommandContext struct {
	Config     *config.Config
	Logger     *zap.Logger
	Dispatcher *dispatch.Dispatcher
}

// NewCommandContext loads configuration, builds the logger and git runner,
// and registers every operation.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	runner := git.NewExecRunner(git.RunnerOptions{
		Binary:  cfg.Git.Binary,
		Timeout: cfg.Git.Timeout(),
		Logger:  logger,
	})

	env, err := report.NewEnv(runner, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid filter configuration: %w", err)
	}

	d := dispatch.New(logger)
	if err := dispatch.RegisterAll(d, env, cfg.Defaults); err != nil {
		return nil, err
	}

	return &CommandContext{Config: cfg, Logger: logger, Dispatcher: d}, nil
}

// Close flushes buffered log entries.
func (ctx *CommandContext) Close() {
	_ = ctx.Logger.Sync()
}

func executeWithContext(c *cli.Context, fn func(ctx *CommandContext, c *cli.Context) error) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	defer ctx.Close()
	return fn(ctx, c)
}
