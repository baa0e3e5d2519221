package schemahint

import (
	"math"
	"strings"

	json "github.com/goccy/go-json"
)

// Metrics reports a compact encoding next to token estimates for the
// schema's pretty-printed JSON serialization (what would otherwise be placed
// in the prompt) and for the compact form.
type Metrics struct {
	Compressed       string `json:"compressed"`
	OriginalTokens   int    `json:"originalTokens"`
	CompressedTokens int    `json:"compressedTokens"`
	// Reduction is the saved percentage, clamped to [0,100]: a schema whose
	// compact form happens to be larger reports 0, never a negative value.
	Reduction int `json:"reduction"`
}

// CompressedTool is one entry of a batch result.
type CompressedTool struct {
	Name             string `json:"name"`
	CompressedSchema string `json:"compressedSchema"`
}

// BatchMetrics aggregates compression over a tool list. Token sums are
// accumulated across all tools and TotalReduction is computed from the sums,
// not averaged per tool.
type BatchMetrics struct {
	CompressedTools  []CompressedTool `json:"compressedTools"`
	TotalReduction   int              `json:"totalReduction"`
	OriginalTokens   int              `json:"originalTokens"`
	CompressedTokens int              `json:"compressedTokens"`
}

// Compress encodes the schema and measures both forms with the configured
// estimator. Like Compact it is total; a nil schema yields the empty-schema
// sentinel with zero reduction.
func Compress(s *Schema, opts ...Option) Metrics {
	cfg := newConfig(opts)
	compressed := compactString(s, cfg)
	original, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		original = []byte("null")
	}
	m := Metrics{
		Compressed:       compressed,
		OriginalTokens:   cfg.estimator(string(original)),
		CompressedTokens: cfg.estimator(compressed),
	}
	m.Reduction = reductionPercent(m.OriginalTokens, m.CompressedTokens)
	return m
}

// CompressJSON parses raw JSON Schema bytes and compresses them. Invalid
// JSON is treated as an absent schema.
func CompressJSON(data []byte, opts ...Option) Metrics {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return Compress(nil, opts...)
	}
	return Compress(&s, opts...)
}

// CompressTools compresses every tool schema in input order. A tool without
// a schema is valid and contributes the empty-schema sentinel.
func CompressTools(tools []Tool, opts ...Option) BatchMetrics {
	out := BatchMetrics{
		CompressedTools: make([]CompressedTool, 0, len(tools)),
	}
	for _, tool := range tools {
		m := Compress(tool.InputSchema, opts...)
		out.CompressedTools = append(out.CompressedTools, CompressedTool{
			Name:             tool.Name,
			CompressedSchema: m.Compressed,
		})
		out.OriginalTokens += m.OriginalTokens
		out.CompressedTokens += m.CompressedTokens
	}
	out.TotalReduction = reductionPercent(out.OriginalTokens, out.CompressedTokens)
	return out
}

// PromptBlock renders one "name: <schema>...</schema>" line per tool in
// input order, ready for concatenation into an outgoing prompt.
func (b BatchMetrics) PromptBlock() string {
	lines := make([]string, len(b.CompressedTools))
	for i, t := range b.CompressedTools {
		lines[i] = t.Name + ": " + t.CompressedSchema
	}
	return strings.Join(lines, "\n")
}

func reductionPercent(original, compressed int) int {
	if original <= 0 {
		return 0
	}
	pct := math.Round(float64(original-compressed) / float64(original) * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(pct)
}
