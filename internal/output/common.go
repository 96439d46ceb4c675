package output

import (
	"io"
	"os"
	"strings"
)

// truncateMessage shortens msg to at most maxLen runes, ending in "...".
func truncateMessage(msg string, maxLen int) string {
	if maxLen <= 3 {
		return msg
	}
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}

// Truncate is the exported form of truncateMessage for report builders.
func Truncate(msg string, maxLen int) string {
	return truncateMessage(msg, maxLen)
}

// FilterSummary joins non-empty filter descriptions, e.g. "since 2025-01-01, by author 'bob'".
func FilterSummary(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
