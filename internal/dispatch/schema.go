package dispatch

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// InputSchema describes the operation's arguments as a JSON object schema.
func (op Operation) InputSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(op.Fields)),
	}
	for _, f := range op.Fields {
		s.Properties[f.Name] = f.schema()
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s
}

func (f Field) schema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        f.Type.String(),
		Description: f.Description,
		Format:      f.Format,
	}
	if f.Type == TypeInteger {
		minimum := 1.0
		s.Minimum = &minimum
	}
	if f.Default != nil {
		if raw, err := json.Marshal(f.Default); err == nil {
			s.Default = raw
		}
	}
	return s
}

// Signature renders the argument list as "name, name?" for listings.
func (op Operation) Signature() string {
	out := ""
	for i, f := range op.Fields {
		if i > 0 {
			out += ", "
		}
		out += f.Name
		if !f.Required {
			out += "?"
		}
	}
	return out
}
