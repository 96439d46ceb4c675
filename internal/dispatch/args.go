package dispatch

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/masmgr/git-history-mcp/internal/apperr"
)

// FieldType is the declared type of an argument.
type FieldType int

const (
	TypeString FieldType = iota
	TypeInteger
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Field declares one named argument.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Default     any    // applied when the argument is absent; string or int
	Format      string // schema format hint, e.g. "date"
	Description string
}

// Args is the coerced argument set of one call. Absent optional arguments
// without a default read as zero values.
type Args struct {
	values map[string]any
}

// String returns a string argument.
func (a Args) String(name string) string {
	s, _ := a.values[name].(string)
	return s
}

// Int returns an integer argument.
func (a Args) Int(name string) int {
	n, _ := a.values[name].(int)
	return n
}

// coerce validates raw against fields. It returns the typed arguments and the
// names of arguments no field declares.
func coerce(fields []Field, raw map[string]any) (Args, []string, error) {
	args := Args{values: make(map[string]any, len(fields))}
	declared := make(map[string]bool, len(fields))

	for _, f := range fields {
		declared[f.Name] = true
		v, present := raw[f.Name]
		if !present || v == nil {
			if f.Required {
				return Args{}, nil, apperr.Invalidf("missing required argument %q", f.Name)
			}
			if f.Default != nil {
				args.values[f.Name] = f.Default
			}
			continue
		}

		var (
			typed any
			err   error
		)
		switch f.Type {
		case TypeString:
			typed, err = toString(f.Name, v)
		case TypeInteger:
			typed, err = toInt(f.Name, v)
		}
		if err != nil {
			return Args{}, nil, err
		}
		if f.Required && f.Type == TypeString && strings.TrimSpace(typed.(string)) == "" {
			return Args{}, nil, apperr.Invalidf("argument %q must not be empty", f.Name)
		}
		args.values[f.Name] = typed
	}

	var unknown []string
	for name := range raw {
		if !declared[name] {
			unknown = append(unknown, name)
		}
	}
	return args, unknown, nil
}

func toString(name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", apperr.Invalidf("argument %q must be a string, got %T", name, v)
	}
	return s, nil
}

func toInt(name string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
			return 0, apperr.Invalidf("argument %q must be an integer, got %v", name, n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil || i > math.MaxInt32 || i < math.MinInt32 {
			return 0, apperr.Invalidf("argument %q must be an integer, got %s", name, n.String())
		}
		return int(i), nil
	default:
		return 0, apperr.Invalidf("argument %q must be an integer, got %T", name, v)
	}
}
