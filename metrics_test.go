package schemahint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchSchema() *Schema {
	return &Schema{
		Type: "object",
		Properties: NewProperties(
			Prop{Name: "topic", Schema: &Schema{Type: "string"}},
			Prop{Name: "query", Schema: &Schema{Type: "string"}},
			Prop{Name: "limit", Schema: &Schema{Type: "integer", Minimum: ptr(1.0), Maximum: ptr(50.0)}},
			Prop{Name: "format", Schema: &Schema{Enum: []any{"json", "xml", "csv"}}},
		),
		Required: []string{"topic", "query"},
	}
}

func TestCompress_ReportsSavings(t *testing.T) {
	m := Compress(searchSchema())
	assert.Equal(t, "<schema>topic*:string, query*:string, limit?:number(≥1,≤50), format?:enum(json|xml|csv)</schema>", m.Compressed)
	assert.Positive(t, m.OriginalTokens)
	assert.Positive(t, m.CompressedTokens)
	assert.Greater(t, m.OriginalTokens, m.CompressedTokens)
	assert.Greater(t, m.Reduction, 0)
	assert.LessOrEqual(t, m.Reduction, 100)
}

func TestCompress_NilSchemaNeverNegative(t *testing.T) {
	// "null" serializes shorter than the sentinel, so compression expands
	// here; reduction must clamp at zero.
	m := Compress(nil)
	assert.Equal(t, emptySchema, m.Compressed)
	assert.Greater(t, m.CompressedTokens, m.OriginalTokens)
	assert.Equal(t, 0, m.Reduction)
}

func TestReductionPercent(t *testing.T) {
	assert.Equal(t, 0, reductionPercent(0, 5))
	assert.Equal(t, 0, reductionPercent(-1, 5))
	assert.Equal(t, 0, reductionPercent(10, 15))
	assert.Equal(t, 50, reductionPercent(10, 5))
	assert.Equal(t, 100, reductionPercent(3, 0))
	assert.Equal(t, 33, reductionPercent(3, 2))
}

func TestCompressJSON(t *testing.T) {
	m := CompressJSON([]byte(`{"type":"object","properties":{"a":{"type":"string"}},"required":["a"]}`))
	assert.Equal(t, "<schema>a*:string</schema>", m.Compressed)

	invalid := CompressJSON([]byte("{broken"))
	assert.Equal(t, emptySchema, invalid.Compressed)
	assert.Equal(t, 0, invalid.Reduction)
}

func TestCompressTools_Aggregation(t *testing.T) {
	tools := []Tool{
		{Name: "search", InputSchema: searchSchema()},
		{Name: "fetch", InputSchema: &Schema{
			Type:       "object",
			Properties: NewProperties(Prop{Name: "url", Schema: &Schema{Type: "string", Format: "uri"}}),
			Required:   []string{"url"},
		}},
	}
	m1 := Compress(tools[0].InputSchema)
	m2 := Compress(tools[1].InputSchema)

	b := CompressTools(tools)
	require.Len(t, b.CompressedTools, 2)
	assert.Equal(t, "search", b.CompressedTools[0].Name)
	assert.Equal(t, m1.Compressed, b.CompressedTools[0].CompressedSchema)
	assert.Equal(t, "fetch", b.CompressedTools[1].Name)
	assert.Equal(t, "<schema>url*:url</schema>", b.CompressedTools[1].CompressedSchema)

	// Sums across tools, and the total computed from the sums rather than
	// averaging per-tool reductions.
	assert.Equal(t, m1.OriginalTokens+m2.OriginalTokens, b.OriginalTokens)
	assert.Equal(t, m1.CompressedTokens+m2.CompressedTokens, b.CompressedTokens)
	assert.Equal(t, reductionPercent(b.OriginalTokens, b.CompressedTokens), b.TotalReduction)
}

func TestCompressTools_MissingSchema(t *testing.T) {
	b := CompressTools([]Tool{{Name: "ping"}})
	require.Len(t, b.CompressedTools, 1)
	assert.Equal(t, emptySchema, b.CompressedTools[0].CompressedSchema)
	assert.Equal(t, 0, b.TotalReduction)
}

func TestCompressTools_Empty(t *testing.T) {
	b := CompressTools(nil)
	assert.Empty(t, b.CompressedTools)
	assert.Equal(t, 0, b.OriginalTokens)
	assert.Equal(t, 0, b.CompressedTokens)
	assert.Equal(t, 0, b.TotalReduction)
}

func TestBatchMetrics_PromptBlock(t *testing.T) {
	b := CompressTools([]Tool{
		{Name: "search", InputSchema: &Schema{
			Type:       "object",
			Properties: NewProperties(Prop{Name: "query", Schema: &Schema{Type: "string"}}),
			Required:   []string{"query"},
		}},
		{Name: "ping"},
	})
	assert.Equal(t, "search: <schema>query*:string</schema>\nping: <schema></schema>", b.PromptBlock())
}
