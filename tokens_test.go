package schemahint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens_Short(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 2, EstimateTokens("hello"))
	assert.Equal(t, 7, EstimateTokens("0123456789012345678")) // 19 chars, still short
}

func TestEstimateTokens_WordBased(t *testing.T) {
	// 22 chars, 4 words, no structural punctuation: ceil(4*1.3) = 6.
	assert.Equal(t, 6, EstimateTokens("alpha beta gamma delta"))
	// 21 chars, 4 words, 8 structural chars: ceil(5.2 + 4) = 10.
	assert.Equal(t, 10, EstimateTokens(`{"a": 1, "b": [1,2]}`))
}

func TestEstimateTokensSimple(t *testing.T) {
	assert.Equal(t, 0, EstimateTokensSimple(""))
	assert.Equal(t, 1, EstimateTokensSimple("abc"))
	assert.Equal(t, 1, EstimateTokensSimple("abcd"))
	assert.Equal(t, 2, EstimateTokensSimple("abcde"))
}

func TestWithEstimator(t *testing.T) {
	flat := func(string) int { return 10 }
	m := Compress(&Schema{
		Type:       "object",
		Properties: NewProperties(Prop{Name: "a", Schema: &Schema{Type: "string"}}),
	}, WithEstimator(flat))
	assert.Equal(t, 10, m.OriginalTokens)
	assert.Equal(t, 10, m.CompressedTokens)
	assert.Equal(t, 0, m.Reduction)

	// A nil estimator falls back to the default.
	m = Compress(nil, WithEstimator(nil))
	assert.Equal(t, emptySchema, m.Compressed)
}
