// Package links rewrites cross-reference shorthand in description text into
// Markdown links.
//
//	[Name]        ->  [`Name`](Name.md)
//	[Name:field]  ->  [`Name:field`](Name.md#field)
//
// Name and field are runs of letters, digits and underscores. The anchor is
// lower-cased; the page name keeps its case.
package links

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/objdoc/internal/document"
)

const ident = `[\p{L}\p{N}_]+`

var (
	fieldRef = regexp.MustCompile(`\[(` + ident + `):(` + ident + `)\]`)
	basicRef = regexp.MustCompile(`\[(` + ident + `)\]`)
)

// ResolveText rewrites every field reference, then every basic reference.
// The rewritten links wrap their text in backticks, so neither pattern
// matches its own output and ResolveText(ResolveText(s)) == ResolveText(s).
func ResolveText(s string) string {
	lower := cases.Lower(language.Und)
	s = fieldRef.ReplaceAllStringFunc(s, func(m string) string {
		sub := fieldRef.FindStringSubmatch(m)
		page, field := sub[1], sub[2]
		return "[`" + page + ":" + field + "`](" + page + ".md#" + lower.String(field) + ")"
	})
	return basicRef.ReplaceAllString(s, "[`${1}`](${1}.md)")
}

// Resolve rewrites, in place, class.description at this level, the
// description of every non-group property, and recursively every group
// property. Values that are absent or not strings are left alone.
func Resolve(doc *document.Node) {
	if class, ok := doc.Get(document.KeyClass); ok {
		resolveDescription(class)
	}

	props, ok := doc.Get(document.KeyProperties)
	if !ok {
		return
	}
	for _, e := range props.Entries() {
		if document.IsGroup(e.Value) {
			Resolve(e.Value)
			continue
		}
		resolveDescription(e.Value)
	}
}

func resolveDescription(n *document.Node) {
	desc, ok := n.Get(document.KeyDescription)
	if !ok {
		return
	}
	if s, ok := desc.AsString(); ok {
		desc.SetString(ResolveText(s))
	}
}
