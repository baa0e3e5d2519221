// Package schemahint compresses JSON Schema tool definitions into short,
// deterministic hint strings for LLM prompts.
//
// # Overview
//
// Tool-calling prompts carry a full JSON Schema per tool, and most of it is
// boilerplate the model does not need to pick a call signature. This package
// folds a schema into a one-line encoding such as
//
//	<schema>topic*:string, limit?:number, format?:enum(json|xml|csv)</schema>
//
// where * marks required parameters and ? optional ones. The encoding is
// lossy on purpose: descriptions, deep nesting, and most constraint detail
// are dropped in favor of token economy.
//
// # Key concepts
//
//   - Totality: every entry point returns a string for every input, including
//     malformed ones. Broken nodes degrade to "any" and broken documents to
//     "<schema></schema>"; nothing in this package panics or returns an error.
//   - Determinism: output is a pure function of the input. Property order in
//     the source document is preserved and is part of the contract.
//   - Metrics: Compress and CompressTools report estimated token counts for
//     the original serialization and the compact form, with a reduction
//     percentage clamped to [0,100].
//
// # Example
//
//	data := []byte(`{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}`)
//	hint := schemahint.CompactJSON(data) // "<schema>city*:string</schema>"
//	m := schemahint.CompressJSON(data)   // hint plus token metrics
package schemahint
