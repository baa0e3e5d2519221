package schemahint

import "strings"

// xmlEscaper rewrites the five XML-special characters to entity references.
// The compact string is embedded into XML/HTML-adjacent prompt contexts, so
// keys and literal values from untrusted schemas must not be able to open or
// close tags around the fixed <schema> wrapper.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
