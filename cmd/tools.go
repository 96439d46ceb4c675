package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/git-history-mcp/internal/output"
)

// ToolsCmd returns the tools command.
func ToolsCmd() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "List the available operations and their arguments",
		Action: func(c *cli.Context) error {
			return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
				ops := ctx.Dispatcher.Operations()
				rows := make([]output.ToolRow, 0, len(ops))
				for _, op := range ops {
					rows = append(rows, output.ToolRow{
						Name:        op.Name,
						Arguments:   op.Signature(),
						Description: op.Description,
					})
				}
				w := &output.ConsoleWriter{Out: c.App.Writer}
				return w.WriteTools(rows)
			})
		},
	}
}
