package schemahint

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// emptySchema is the sentinel for absent, empty, or unusable schemas.
const emptySchema = "<schema></schema>"

const (
	// enumDisplayThreshold is the largest enum rendered with literal values.
	enumDisplayThreshold = 3
	// objectExpandThreshold is the largest object expanded inline; bigger
	// objects render as bare "object" so output stays bounded.
	objectExpandThreshold = 2
	// patternDisplayLimit truncates regex patterns embedded in constraints.
	patternDisplayLimit = 10
)

// Compact encodes a schema as a one-line parameter summary wrapped in
// <schema></schema>. It is total: nil, empty, and malformed schemas return
// the empty-schema sentinel, and no input panics.
func Compact(s *Schema, opts ...Option) string {
	return compactString(s, newConfig(opts))
}

// CompactJSON parses raw JSON Schema bytes and encodes them. Property order
// in the document is preserved in the output. Invalid JSON returns the
// empty-schema sentinel.
func CompactJSON(data []byte, opts ...Option) string {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return emptySchema
	}
	return Compact(&s, opts...)
}

// CompactValue encodes a loosely-typed schema value: *Schema, raw JSON
// bytes, or anything JSON-marshalable (e.g. map[string]any). Values routed
// through a Go map lose key order; use CompactJSON when order matters.
func CompactValue(v any, opts ...Option) string {
	switch t := v.(type) {
	case nil:
		return emptySchema
	case *Schema:
		return Compact(t, opts...)
	case Schema:
		return Compact(&t, opts...)
	case json.RawMessage:
		return CompactJSON(t, opts...)
	case []byte:
		return CompactJSON(t, opts...)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return emptySchema
		}
		return CompactJSON(data, opts...)
	}
}

func compactString(s *Schema, cfg config) string {
	if s == nil {
		return emptySchema
	}
	enc := encoder{maxDepth: cfg.maxDepth}
	// Root-level arrays have no parameter list to summarize; emit the bare
	// element type.
	if s.Type == "array" && (s.Items != nil || len(s.TupleItems) > 0) {
		return "<schema>" + enc.encode(s, 0) + "</schema>"
	}
	if len(s.AllOf) > 0 {
		if merged := mergeAllOf(s.AllOf); merged.Len() > 0 {
			return "<schema>" + enc.encodeMergedRoot(merged, s.Required) + "</schema>"
		}
	}
	if s.Properties == nil || s.Properties.Len() == 0 {
		return emptySchema
	}
	var b strings.Builder
	b.WriteString("<schema>")
	first := true
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(escapeXML(pair.Key))
		b.WriteByte(requiredMarker(s.Required, pair.Key))
		b.WriteByte(':')
		b.WriteString(enc.encode(pair.Value, 0))
	}
	b.WriteString("</schema>")
	return b.String()
}

func requiredMarker(required []string, key string) byte {
	if slices.Contains(required, key) {
		return '*'
	}
	return '?'
}

type encoder struct {
	maxDepth int
}

// encode renders one property node. Dispatch order matters: a node may carry
// several of these fields at once (e.g. an enum inside a typed object), and
// the first match wins.
func (e encoder) encode(p *Schema, depth int) string {
	if p == nil || depth >= e.maxDepth {
		return "any"
	}
	switch {
	case p.Type == "array":
		return e.encodeArray(p, depth)
	case p.Const != nil:
		return "const(" + escapeXML(literalString(p.Const)) + ")"
	case len(p.Enum) > 0:
		return e.encodeEnum(p.Enum, false)
	case len(p.AllOf) > 0:
		return e.encodeMerged(p.AllOf, depth)
	case p.Type == "object":
		return e.encodeObject(p, depth)
	case len(p.OneOf) > 0 || len(p.AnyOf) > 0:
		return e.encodeUnion(p, depth)
	case p.Type == "string":
		return encodeString(p)
	case p.Type == "number" || p.Type == "integer":
		return encodeNumber(p)
	case p.Type == "boolean":
		return encodeBoolean(p)
	case p.Type == "null":
		return "null"
	case p.Type != "":
		return p.Type
	default:
		return "any"
	}
}

func (e encoder) encodeArray(p *Schema, depth int) string {
	var out string
	switch {
	case len(p.TupleItems) > 0:
		elems := make([]string, len(p.TupleItems))
		for i, item := range p.TupleItems {
			elems[i] = e.encode(item, depth+1)
		}
		out = "tuple[" + strings.Join(elems, ",") + "]"
	case p.Items != nil:
		out = "array[" + e.encode(p.Items, depth+1) + "]"
	default:
		out = "array[any]"
	}
	if p.MinItems != nil || p.MaxItems != nil {
		low := "0"
		if p.MinItems != nil {
			low = strconv.Itoa(*p.MinItems)
		}
		high := "∞"
		if p.MaxItems != nil {
			high = strconv.Itoa(*p.MaxItems)
		}
		out += "{" + low + ".." + high + "}"
	}
	return out
}

// encodeEnum renders literal values up to the display threshold. Beyond it,
// a standalone enum collapses to "enum", while a union alternative keeps the
// cardinality so the union stays informative.
func (e encoder) encodeEnum(values []any, inUnion bool) string {
	if len(values) <= enumDisplayThreshold {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = escapeXML(literalString(v))
		}
		return "enum(" + strings.Join(parts, "|") + ")"
	}
	if inUnion {
		return "enum(" + strconv.Itoa(len(values)) + ")"
	}
	return "enum"
}

func (e encoder) encodeMerged(members []*Schema, depth int) string {
	merged := mergeAllOf(members)
	if merged.Len() == 0 {
		return "merged"
	}
	parts := make([]string, 0, merged.Len())
	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		parts = append(parts, pair.Key+":"+e.encode(pair.Value, depth+1))
	}
	return "merged{" + strings.Join(parts, ",") + "}"
}

// encodeMergedRoot is the root-level allOf form: merged keys carry the
// required/optional markers driven by the root required set.
func (e encoder) encodeMergedRoot(merged *orderedmap.OrderedMap[string, *Schema], required []string) string {
	parts := make([]string, 0, merged.Len())
	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		key := escapeXML(pair.Key) + string(requiredMarker(required, pair.Key))
		parts = append(parts, key+":"+e.encode(pair.Value, 1))
	}
	return "merged{" + strings.Join(parts, ",") + "}"
}

// mergeAllOf unions the property maps of all members in order; on key
// collision the later member wins.
func mergeAllOf(members []*Schema) *orderedmap.OrderedMap[string, *Schema] {
	merged := orderedmap.New[string, *Schema]()
	for _, m := range members {
		if m == nil || m.Properties == nil {
			continue
		}
		for pair := m.Properties.Oldest(); pair != nil; pair = pair.Next() {
			merged.Set(pair.Key, pair.Value)
		}
	}
	return merged
}

func (e encoder) encodeObject(p *Schema, depth int) string {
	if p.Properties == nil || p.Properties.Len() == 0 || p.Properties.Len() > objectExpandThreshold {
		return "object"
	}
	parts := make([]string, 0, p.Properties.Len())
	for pair := p.Properties.Oldest(); pair != nil; pair = pair.Next() {
		parts = append(parts, escapeXML(pair.Key)+":"+e.encode(pair.Value, depth+1))
	}
	return "object{" + strings.Join(parts, ",") + "}"
}

func (e encoder) encodeUnion(p *Schema, depth int) string {
	alts := p.OneOf
	if len(alts) == 0 {
		alts = p.AnyOf
	}
	parts := make([]string, len(alts))
	for i, alt := range alts {
		parts[i] = e.encodeAlternative(alt, depth+1)
	}
	return strings.Join(parts, "|")
}

// encodeAlternative summarizes one union member. Enums, bounded numbers, and
// objects get shorter union-specific forms; everything else recurses through
// the normal dispatch, including nested allOf and nested unions.
func (e encoder) encodeAlternative(alt *Schema, depth int) string {
	if alt == nil || depth >= e.maxDepth {
		return "any"
	}
	switch {
	case len(alt.Enum) > 0:
		return e.encodeEnum(alt.Enum, true)
	case (alt.Type == "number" || alt.Type == "integer") && (alt.Minimum != nil || alt.Maximum != nil):
		return encodeNumber(alt)
	case alt.Type == "object":
		if alt.Properties != nil && alt.Properties.Len() > 0 && alt.Properties.Len() <= objectExpandThreshold {
			return "object(" + strconv.Itoa(alt.Properties.Len()) + ")"
		}
		return "object"
	default:
		return e.encode(alt, depth)
	}
}

func encodeString(p *Schema) string {
	out := "string"
	switch p.Format {
	case "date":
		out = "date"
	case "date-time":
		out = "datetime"
	case "email":
		out = "email"
	case "uri", "url":
		out = "url"
	case "uuid":
		out = "uuid"
	case "ipv4":
		out = "ipv4"
	case "ipv6":
		out = "ipv6"
	}
	var parts []string
	if p.MinLength != nil {
		parts = append(parts, "≥"+strconv.Itoa(*p.MinLength))
	}
	if p.MaxLength != nil {
		parts = append(parts, "≤"+strconv.Itoa(*p.MaxLength))
	}
	if p.Pattern != "" {
		parts = append(parts, "/"+escapeXML(truncatePattern(p.Pattern))+"/")
	}
	if len(parts) > 0 {
		out += "(" + strings.Join(parts, ",") + ")"
	}
	if p.Default != nil {
		out += `="` + escapeXML(literalString(p.Default)) + `"`
	}
	return out
}

// encodeNumber covers both number and integer: the distinction is not worth
// a token to the consumer.
func encodeNumber(p *Schema) string {
	out := "number"
	var parts []string
	if p.Minimum != nil {
		parts = append(parts, "≥"+formatNumber(*p.Minimum))
	}
	if p.Maximum != nil {
		parts = append(parts, "≤"+formatNumber(*p.Maximum))
	}
	if p.MultipleOf != nil {
		parts = append(parts, "×"+formatNumber(*p.MultipleOf))
	}
	if len(parts) > 0 {
		out += "(" + strings.Join(parts, ",") + ")"
	}
	if p.Default != nil {
		out += "=" + escapeXML(literalString(p.Default))
	}
	return out
}

func encodeBoolean(p *Schema) string {
	out := "boolean"
	if p.Default != nil {
		out += "=" + escapeXML(literalString(p.Default))
	}
	return out
}

func truncatePattern(pattern string) string {
	runes := []rune(pattern)
	if len(runes) > patternDisplayLimit {
		runes = runes[:patternDisplayLimit]
	}
	return string(runes)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// literalString coerces an enum/const/default literal to its display string.
// Strings render bare (no quotes); everything else renders as its JSON form.
func literalString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
