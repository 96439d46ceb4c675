package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ToolRow describes one operation in the `tools` listing.
type ToolRow struct {
	Name        string
	Arguments   string
	Description string
}

// ConsoleWriter prints reports to a terminal, highlighting Markdown headings
// and labels. Output written to a file is left uncolored.
type ConsoleWriter struct {
	Out io.Writer // default os.Stdout
}

func (w *ConsoleWriter) out() io.Writer {
	if w.Out == nil {
		return os.Stdout
	}
	return w.Out
}

// WriteReport prints a Markdown report. When outputPath is set the raw text is
// written to that file instead.
func (w *ConsoleWriter) WriteReport(text string, outputPath string) error {
	if outputPath != "" {
		out, file, err := openOutputWriter(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.WriteString(out, text)
		return err
	}

	out := w.out()
	colorTitle := color.New(color.FgGreen).Add(color.Underline)
	colorLabel := color.New(color.FgYellow)

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			colorTitle.Fprintln(out, strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "**"):
			label, rest, ok := strings.Cut(strings.TrimPrefix(line, "**"), ":**")
			if !ok {
				fmt.Fprintln(out, line)
				continue
			}
			colorLabel.Fprint(out, label+":")
			fmt.Fprintln(out, rest)
		default:
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

// WriteError prints a failed operation.
func (w *ConsoleWriter) WriteError(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
}

// WriteTools prints the operation registry as a table.
func (w *ConsoleWriter) WriteTools(rows []ToolRow) error {
	out := w.out()
	color.New(color.FgGreen).Fprintln(out, "Available operations")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tArguments\tDescription")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Arguments, truncateMessage(r.Description, 60))
	}
	return tw.Flush()
}
