package schemahint

import (
	json "github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

// FromToolSchema bridges a reflection-generated jsonschema.Schema (as
// produced for tool argument structs) into this package's representation by
// round-tripping through its JSON form. Property order follows the source
// schema's serialization. Returns nil when the schema is nil or cannot be
// serialized, which downstream encodes as the empty-schema sentinel.
func FromToolSchema(s *jsonschema.Schema) *Schema {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	var out Schema
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return &out
}

// CompactToolSchema is a convenience over FromToolSchema + Compact.
func CompactToolSchema(s *jsonschema.Schema, opts ...Option) string {
	return Compact(FromToolSchema(s), opts...)
}
