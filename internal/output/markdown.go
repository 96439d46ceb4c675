package output

import (
	"fmt"
	"strings"
)

// Document accumulates a Markdown report.
type Document struct {
	b strings.Builder
}

// NewDocument starts a report with a level-two heading.
func NewDocument(title string) *Document {
	d := &Document{}
	fmt.Fprintf(&d.b, "## %s\n\n", title)
	return d
}

// Field writes a "**Label:** value" line.
func (d *Document) Field(label string, format string, args ...any) {
	fmt.Fprintf(&d.b, "**%s:** %s\n", label, fmt.Sprintf(format, args...))
}

// Section writes a "**Label:**" line introducing a list or block.
func (d *Document) Section(label string) {
	fmt.Fprintf(&d.b, "**%s:**\n", label)
}

// Bullet writes a "- item" line.
func (d *Document) Bullet(format string, args ...any) {
	fmt.Fprintf(&d.b, "- %s\n", fmt.Sprintf(format, args...))
}

// Numbered writes an "n. item" line.
func (d *Document) Numbered(n int, format string, args ...any) {
	fmt.Fprintf(&d.b, "%d. %s\n", n, fmt.Sprintf(format, args...))
}

// Line writes a plain line.
func (d *Document) Line(format string, args ...any) {
	fmt.Fprintf(&d.b, format+"\n", args...)
}

// Code writes lines inside a fenced code block.
func (d *Document) Code(lines []string) {
	d.b.WriteString("```\n")
	for _, l := range lines {
		d.b.WriteString(l)
		d.b.WriteByte('\n')
	}
	d.b.WriteString("```\n")
}

// Blank writes an empty line.
func (d *Document) Blank() {
	d.b.WriteByte('\n')
}

// String returns the rendered report.
func (d *Document) String() string {
	return d.b.String()
}
