package registry

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the primitive type of an argument.
type Kind string

const (
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindString  Kind = "string"
)

// Field describes one named argument. A field with several Kinds accepts any of them.
type Field struct {
	Name        string
	Kinds       []Kind
	Required    bool
	Description string
	Enum        []string
}

// Schema is the declarative input shape of an operation.
type Schema struct {
	Fields []Field
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// Required marks the field as mandatory.
func Required() FieldOption {
	return func(f *Field) { f.Required = true }
}

// Description sets the field description.
func Description(desc string) FieldOption {
	return func(f *Field) { f.Description = desc }
}

// Enum restricts a string field to the given values.
func Enum(values ...string) FieldOption {
	return func(f *Field) { f.Enum = values }
}

// NewField builds a Field of one or more kinds.
func NewField(name string, kinds []Kind, opts ...FieldOption) Field {
	f := Field{Name: name, Kinds: kinds}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// String declares a string field.
func String(name string, opts ...FieldOption) Field {
	return NewField(name, []Kind{KindString}, opts...)
}

// Number declares a numeric field.
func Number(name string, opts ...FieldOption) Field {
	return NewField(name, []Kind{KindNumber}, opts...)
}

// Boolean declares a boolean field.
func Boolean(name string, opts ...FieldOption) Field {
	return NewField(name, []Kind{KindBoolean}, opts...)
}

// NewSchema collects fields into a Schema.
func NewSchema(fields ...Field) Schema {
	return Schema{Fields: fields}
}

// RequiredNames lists required field names in declaration order.
func (s Schema) RequiredNames() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Validate checks required presence and primitive kinds. Unknown keys are ignored.
func (s Schema) Validate(args map[string]any) error {
	for _, f := range s.Fields {
		v, ok := args[f.Name]
		if !ok || v == nil {
			if f.Required {
				return fmt.Errorf("%w: missing required field %q", ErrInvalidArgument, f.Name)
			}
			continue
		}
		if !f.accepts(v) {
			return fmt.Errorf("%w: field %q must be %s, got %T", ErrInvalidArgument, f.Name, f.kindList(), v)
		}
		if len(f.Enum) > 0 {
			str, _ := v.(string)
			if !contains(f.Enum, str) {
				return fmt.Errorf("%w: field %q must be one of %s", ErrInvalidArgument, f.Name, strings.Join(f.Enum, ", "))
			}
		}
	}
	return nil
}

// JSONSchema renders the schema as a JSON-Schema object.
// Union fields are emitted with a type array.
func (s Schema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		prop := map[string]any{}
		if len(f.Kinds) == 1 {
			prop["type"] = string(f.Kinds[0])
		} else {
			types := make([]string, 0, len(f.Kinds))
			for _, k := range f.Kinds {
				types = append(types, string(k))
			}
			prop["type"] = types
		}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		props[f.Name] = prop
	}

	out := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if req := s.RequiredNames(); len(req) > 0 {
		out["required"] = req
	}
	return out
}

func (f Field) accepts(v any) bool {
	for _, k := range f.Kinds {
		if kindOf(k, v) {
			return true
		}
	}
	return false
}

func (f Field) kindList() string {
	parts := make([]string, 0, len(f.Kinds))
	for _, k := range f.Kinds {
		parts = append(parts, string(k))
	}
	return strings.Join(parts, " or ")
}

func kindOf(k Kind, v any) bool {
	switch k {
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		_, ok := toFloat(v)
		return ok
	case KindInteger:
		n, ok := toFloat(v)
		return ok && n == math.Trunc(n)
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
