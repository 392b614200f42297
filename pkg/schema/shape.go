package schema

import "maps"

// Shape is an outbound serialization contract. Shapes are never used to
// validate input; they document and project what a response contains.
type Shape struct {
	Name   string
	Fields []Field
}

// Project returns exactly the shape's fields taken from src. Declared fields
// missing from src are emitted as null; undeclared keys are dropped.
func (s Shape) Project(src map[string]any) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = src[f.Name]
	}
	return out
}

// FieldNames returns the declared field names in order.
func (s Shape) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Describe documents every field of the shape.
func (s Shape) Describe() []FieldDoc {
	return describeFields(s.Fields)
}

// FieldDoc is the JSON-friendly description of a field.
type FieldDoc struct {
	Name        string          `json:"name" yaml:"name"`
	Kind        string          `json:"kind" yaml:"kind"`
	Required    bool            `json:"required" yaml:"required"`
	Nullable    bool            `json:"nullable" yaml:"nullable"`
	Default     any             `json:"default,omitempty" yaml:"default,omitempty"`
	Constraints []ConstraintDoc `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Items       *FieldDoc       `json:"items,omitempty" yaml:"items,omitempty"`
	Doc         string          `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ConstraintDoc describes one built-in rule.
type ConstraintDoc struct {
	Code   string         `json:"code" yaml:"code"`
	Key    string         `json:"key,omitempty" yaml:"key,omitempty"`
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

func describeFields(fields []Field) []FieldDoc {
	docs := make([]FieldDoc, len(fields))
	for i, f := range fields {
		docs[i] = describeField(f)
	}
	return docs
}

func describeField(f Field) FieldDoc {
	doc := FieldDoc{
		Name:     f.Name,
		Kind:     f.Kind.String(),
		Required: f.Required,
		Nullable: f.Nullable,
		Doc:      f.Doc,
	}
	if f.HasDefault {
		doc.Default = f.Default
	}
	for _, r := range f.Rules {
		cd := ConstraintDoc{Code: string(r.Code), Key: r.TranslationKey}
		if len(r.Params) > 0 {
			cd.Params = maps.Clone(r.Params)
		}
		doc.Constraints = append(doc.Constraints, cd)
	}
	if f.Items != nil {
		items := describeField(*f.Items)
		doc.Items = &items
	}
	return doc
}
