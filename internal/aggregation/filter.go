package aggregation

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathFilter applies include/exclude glob patterns to repository paths.
type PathFilter struct {
	include []string
	exclude []string
}

// NewPathFilter validates the patterns up front so matching cannot fail.
func NewPathFilter(include, exclude []string) (*PathFilter, error) {
	for _, p := range include {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid include pattern %q", p)
		}
	}
	for _, p := range exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return &PathFilter{include: include, exclude: exclude}, nil
}

// Match reports whether path passes the filter. A nil filter accepts all.
func (f *PathFilter) Match(path string) bool {
	if f == nil {
		return true
	}
	path = strings.ReplaceAll(path, "\\", "/")

	// Exclude patterns win over include patterns.
	for _, pattern := range f.exclude {
		if doublestar.MatchUnvalidated(pattern, path) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}
	for _, pattern := range f.include {
		if doublestar.MatchUnvalidated(pattern, path) {
			return true
		}
	}
	return false
}
