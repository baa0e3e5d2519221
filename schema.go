package schemahint

import (
	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Schema is a single JSON Schema node. The same type serves as document root
// and as nested property; Required is only meaningful where the node owns a
// property set. All fields are optional, and the zero value encodes as "any".
//
// Properties is an insertion-ordered map because parameter order in the
// source document is preserved in the compact encoding.
type Schema struct {
	Type       string
	Format     string
	Enum       []any
	Const      any
	Items      *Schema
	TupleItems []*Schema
	Properties *orderedmap.OrderedMap[string, *Schema]
	Required   []string
	OneOf      []*Schema
	AnyOf      []*Schema
	AllOf      []*Schema
	Minimum    *float64
	Maximum    *float64
	MultipleOf *float64
	MinLength  *int
	MaxLength  *int
	Pattern    string
	MinItems   *int
	MaxItems   *int
	Default    any
}

// Tool pairs a tool name with its parameter schema, as handed to
// CompressTools. A nil InputSchema is valid and encodes to the empty-schema
// sentinel.
type Tool struct {
	Name        string  `json:"name"`
	InputSchema *Schema `json:"inputSchema,omitempty"`
}

// Prop is a name/schema pair for building Properties in insertion order.
type Prop struct {
	Name   string
	Schema *Schema
}

// NewProperties builds an ordered property map from pairs, preserving the
// given order.
func NewProperties(pairs ...Prop) *orderedmap.OrderedMap[string, *Schema] {
	om := orderedmap.New[string, *Schema]()
	for _, p := range pairs {
		om.Set(p.Name, p.Schema)
	}
	return om
}

// UnmarshalJSON decodes a schema node field by field, best-effort. A field
// holding the wrong JSON type is dropped rather than reported: schemas arrive
// from external tool registries mid prompt-construction, and a malformed node
// must degrade to a weaker encoding, never fail the request. Non-object input
// (including null) leaves the zero schema.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if v, ok := raw["type"]; ok {
		_ = json.Unmarshal(v, &s.Type)
	}
	if v, ok := raw["format"]; ok {
		_ = json.Unmarshal(v, &s.Format)
	}
	if v, ok := raw["enum"]; ok {
		_ = json.Unmarshal(v, &s.Enum)
	}
	if v, ok := raw["const"]; ok {
		_ = json.Unmarshal(v, &s.Const)
	}
	if v, ok := raw["items"]; ok {
		s.unmarshalItems(v)
	}
	if v, ok := raw["properties"]; ok {
		om := orderedmap.New[string, *Schema]()
		if om.UnmarshalJSON(v) == nil {
			s.Properties = om
		}
	}
	if v, ok := raw["required"]; ok {
		_ = json.Unmarshal(v, &s.Required)
	}
	if v, ok := raw["oneOf"]; ok {
		_ = json.Unmarshal(v, &s.OneOf)
	}
	if v, ok := raw["anyOf"]; ok {
		_ = json.Unmarshal(v, &s.AnyOf)
	}
	if v, ok := raw["allOf"]; ok {
		_ = json.Unmarshal(v, &s.AllOf)
	}
	s.Minimum = decodeFloat(raw, "minimum")
	s.Maximum = decodeFloat(raw, "maximum")
	s.MultipleOf = decodeFloat(raw, "multipleOf")
	s.MinLength = decodeInt(raw, "minLength")
	s.MaxLength = decodeInt(raw, "maxLength")
	s.MinItems = decodeInt(raw, "minItems")
	s.MaxItems = decodeInt(raw, "maxItems")
	if v, ok := raw["pattern"]; ok {
		_ = json.Unmarshal(v, &s.Pattern)
	}
	if v, ok := raw["default"]; ok {
		_ = json.Unmarshal(v, &s.Default)
	}
	return nil
}

// unmarshalItems handles the items polymorphism: a single schema for plain
// arrays, an array of schemas for tuples.
func (s *Schema) unmarshalItems(v json.RawMessage) {
	var tuple []*Schema
	if json.Unmarshal(v, &tuple) == nil {
		s.TupleItems = tuple
		return
	}
	var item Schema
	if json.Unmarshal(v, &item) == nil {
		s.Items = &item
	}
}

func decodeFloat(raw map[string]json.RawMessage, key string) *float64 {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	var f float64
	if json.Unmarshal(v, &f) != nil {
		return nil
	}
	return &f
}

func decodeInt(raw map[string]json.RawMessage, key string) *int {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	var n int
	if json.Unmarshal(v, &n) != nil {
		return nil
	}
	return &n
}

// schemaJSON mirrors Schema for serialization; Items carries either the
// single item schema or the tuple slice under the one "items" key.
type schemaJSON struct {
	Type       string                                  `json:"type,omitempty"`
	Format     string                                  `json:"format,omitempty"`
	Enum       []any                                   `json:"enum,omitempty"`
	Const      any                                     `json:"const,omitempty"`
	Items      any                                     `json:"items,omitempty"`
	Properties *orderedmap.OrderedMap[string, *Schema] `json:"properties,omitempty"`
	Required   []string                                `json:"required,omitempty"`
	OneOf      []*Schema                               `json:"oneOf,omitempty"`
	AnyOf      []*Schema                               `json:"anyOf,omitempty"`
	AllOf      []*Schema                               `json:"allOf,omitempty"`
	Minimum    *float64                                `json:"minimum,omitempty"`
	Maximum    *float64                                `json:"maximum,omitempty"`
	MultipleOf *float64                                `json:"multipleOf,omitempty"`
	MinLength  *int                                    `json:"minLength,omitempty"`
	MaxLength  *int                                    `json:"maxLength,omitempty"`
	Pattern    string                                  `json:"pattern,omitempty"`
	MinItems   *int                                    `json:"minItems,omitempty"`
	MaxItems   *int                                    `json:"maxItems,omitempty"`
	Default    any                                     `json:"default,omitempty"`
}

// MarshalJSON round-trips the node back to plain JSON Schema, preserving
// property order. Compress measures this serialization for originalTokens.
func (s Schema) MarshalJSON() ([]byte, error) {
	var items any
	switch {
	case len(s.TupleItems) > 0:
		items = s.TupleItems
	case s.Items != nil:
		items = s.Items
	}
	return json.Marshal(schemaJSON{
		Type:       s.Type,
		Format:     s.Format,
		Enum:       s.Enum,
		Const:      s.Const,
		Items:      items,
		Properties: s.Properties,
		Required:   s.Required,
		OneOf:      s.OneOf,
		AnyOf:      s.AnyOf,
		AllOf:      s.AllOf,
		Minimum:    s.Minimum,
		Maximum:    s.Maximum,
		MultipleOf: s.MultipleOf,
		MinLength:  s.MinLength,
		MaxLength:  s.MaxLength,
		Pattern:    s.Pattern,
		MinItems:   s.MinItems,
		MaxItems:   s.MaxItems,
		Default:    s.Default,
	})
}
