package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/git-history-mcp/internal/output"
)

// argumentFlags maps CLI flags to operation argument names.
var argumentFlags = []struct {
	flag  string
	arg   string
	isInt bool
}{
	{flag: "repo", arg: "repo_path"},
	{flag: "since", arg: "since"},
	{flag: "until", arg: "until"},
	{flag: "author", arg: "author"},
	{flag: "file", arg: "file_path"},
	{flag: "path", arg: "path"},
	{flag: "limit", arg: "limit", isInt: true},
	{flag: "top-files", arg: "top_files", isInt: true},
}

// CallCmd returns the call command.
func CallCmd() *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "Run one operation and print its report",
		ArgsUsage: "[flags] <operation>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "repo", Aliases: []string{"r"}, Usage: "Path to Git repository"},
			&cli.StringFlag{Name: "since", Usage: "Start date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "until", Usage: "End date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "author", Usage: "Author name or pattern"},
			&cli.StringFlag{Name: "file", Usage: "File path for analyze_file_history"},
			&cli.StringFlag{Name: "path", Usage: "Path scope for get_churn_stats"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Number of commits or files"},
			&cli.IntFlag{Name: "top-files", Usage: "Number of files to rank in get_churn_stats"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path (default: stdout)"},
		},
		Action: callAction,
	}
}

func callAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("operation name required, see `%s tools`", c.App.Name)
	}
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		text, err := ctx.Dispatcher.Dispatch(c.Context, name, callArguments(c))
		if err != nil {
			return err
		}
		w := &output.ConsoleWriter{Out: c.App.Writer}
		return w.WriteReport(text, c.String("output"))
	})
}

// callArguments collects the explicitly set flags so unset ones fall back to
// the operation defaults.
func callArguments(c *cli.Context) map[string]any {
	args := make(map[string]any)
	for _, f := range argumentFlags {
		if !c.IsSet(f.flag) {
			continue
		}
		if f.isInt {
			args[f.arg] = c.Int(f.flag)
		} else {
			args[f.arg] = c.String(f.flag)
		}
	}
	return args
}
