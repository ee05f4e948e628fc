// Package markdown inspects rendered pages with Goldmark.
package markdown

import (
	"net/url"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractLinks parses a Markdown body and returns its links in document
// order. Links inside code spans and code blocks are not links and are
// skipped; images, autolinks and unused reference definitions are ignored.
func ExtractLinks(body []byte) []Link {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if link, ok := n.(*gmast.Link); ok {
			links = append(links, Link{Destination: string(link.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// PageRefs returns the links of body that point at a sibling .md page.
// Absolute URLs, rooted paths and links into other directories are ignored.
func PageRefs(body []byte) []PageRef {
	var refs []PageRef
	for _, l := range ExtractLinks(body) {
		if ref, ok := pageRef(l.Destination); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func pageRef(dest string) (PageRef, bool) {
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return PageRef{}, false
	}
	p := path.Clean(u.Path)
	if u.Path == "" || strings.HasPrefix(p, "/") || path.Dir(p) != "." || path.Ext(p) != ".md" {
		return PageRef{}, false
	}
	return PageRef{Page: p, Anchor: u.Fragment}, true
}
