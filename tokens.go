package schemahint

import (
	"math"
	"strings"
)

// Token estimation is a heuristic, not a real tokenizer: metrics only need to
// be comparable between the original serialization and the compact form, both
// measured by the same estimator.
const (
	// shortStringLimit is the length below which per-character estimation
	// beats word counting (short strings are mostly sub-word tokens).
	shortStringLimit = 20
	// shortCharsPerToken divides short strings into tokens.
	shortCharsPerToken = 3
	// wordTokenWeight is the average token cost of a whitespace-delimited word.
	wordTokenWeight = 1.3
	// punctTokenWeight is the token cost of a JSON structural character.
	punctTokenWeight = 0.5
	// simpleCharsPerToken drives the coarse fallback estimator.
	simpleCharsPerToken = 4
)

// Estimator approximates how many LLM tokens a string consumes. Estimators
// must be pure and return 0 for the empty string.
type Estimator func(s string) int

// EstimateTokens is the default estimator: ceil(len/3) for strings under 20
// bytes, otherwise ceil(words*1.3 + punctuation*0.5) where punctuation counts
// the JSON structural characters {}[],: . Documented approximation; it does
// not match any specific model's tokenizer.
func EstimateTokens(s string) int {
	if s == "" {
		return 0
	}
	if len(s) < shortStringLimit {
		return ceilDiv(len(s), shortCharsPerToken)
	}
	words := len(strings.Fields(s))
	punct := 0
	for _, r := range s {
		switch r {
		case '{', '}', '[', ']', ',', ':':
			punct++
		}
	}
	return int(math.Ceil(float64(words)*wordTokenWeight + float64(punct)*punctTokenWeight))
}

// EstimateTokensSimple is the coarse fallback estimator: ceil(len/4).
// Select it with WithEstimator when word-boundary estimation is not wanted.
func EstimateTokensSimple(s string) int {
	if s == "" {
		return 0
	}
	return ceilDiv(len(s), simpleCharsPerToken)
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
