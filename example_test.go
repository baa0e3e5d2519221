package schemahint_test

import (
	"fmt"

	"github.com/skosovsky/schemahint"
)

func ExampleCompact() {
	s := &schemahint.Schema{
		Type: "object",
		Properties: schemahint.NewProperties(
			schemahint.Prop{Name: "topic", Schema: &schemahint.Schema{Type: "string"}},
			schemahint.Prop{Name: "limit", Schema: &schemahint.Schema{Type: "integer"}},
		),
		Required: []string{"topic"},
	}
	fmt.Println(schemahint.Compact(s))
	// Output: <schema>topic*:string, limit?:number</schema>
}

func ExampleCompactJSON() {
	data := []byte(`{
		"type": "object",
		"properties": {
			"format": {"enum": ["json", "xml", "csv"]}
		},
		"required": ["format"]
	}`)
	fmt.Println(schemahint.CompactJSON(data))
	// Output: <schema>format*:enum(json|xml|csv)</schema>
}

func ExampleCompressTools() {
	tools := []schemahint.Tool{
		{Name: "search", InputSchema: &schemahint.Schema{
			Type: "object",
			Properties: schemahint.NewProperties(
				schemahint.Prop{Name: "query", Schema: &schemahint.Schema{Type: "string"}},
			),
			Required: []string{"query"},
		}},
		{Name: "ping"},
	}
	b := schemahint.CompressTools(tools)
	fmt.Println(b.PromptBlock())
	// Output:
	// search: <schema>query*:string</schema>
	// ping: <schema></schema>
}
