package generator

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/objdoc/internal/logfields"
	"git.home.luguber.info/inful/objdoc/internal/markdown"
	"git.home.luguber.info/inful/objdoc/internal/util/sets"
)

// BrokenRef is a link from a generated page to a page that does not exist.
type BrokenRef struct {
	Page   string // output path of the linking page
	Target string // linked file name, e.g. Weapon.md
}

// CheckReferences looks for sibling-page links in pages whose target was
// neither generated in this run nor already present in the output directory.
// Each finding is logged as a warning; none of them fails the run.
func (g *Generator) CheckReferences(pages []Page) []BrokenRef {
	known := sets.New[string]()
	for _, p := range pages {
		known.Add(filepath.Base(p.Output))
	}

	var broken []BrokenRef
	for _, p := range pages {
		seen := sets.New[string]()
		for _, ref := range markdown.PageRefs([]byte(p.Content)) {
			if !seen.Add(ref.Page) {
				continue
			}
			if g.pageExists(known, ref.Page) {
				continue
			}
			broken = append(broken, BrokenRef{Page: p.Output, Target: ref.Page})
			g.logger.Warn("Cross-reference to missing page",
				logfields.Output(p.Output),
				logfields.Class(p.Class),
				logfields.Target(ref.Page))
		}
	}
	return broken
}

func (g *Generator) pageExists(known sets.Set[string], name string) bool {
	if known.Has(name) {
		return true
	}
	info, err := os.Stat(filepath.Join(g.opts.OutputDir, name))
	if err == nil && info.Mode().IsRegular() {
		known.Add(name)
		return true
	}
	return false
}
