// Package templates renders object-class documents into Markdown pages.
//
// A page template is Go text/template source. It is loaded once per run,
// preprocessed with TrimBlocks so control actions do not leave blank lines
// behind, and executed with the whole link-resolved document as data:
//
//	# {{ .class.name }}
//
//	{{ .class.description }}
//	{{ range entries .properties }}
//	## {{ .Key }}
//	{{ if has .Value "description" }}{{ .Value.description }}{{ end }}
//	{{ end }}
//
// Besides the text/template builtins the helpers entries (ordered key/value
// pairs of a mapping), has (key presence) and lower are available. A missing
// key in a field chain is an error; test optional keys with has or index.
package templates

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/objdoc/internal/document"
	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
)

// DefaultPath is where the page template is read from unless configured otherwise.
const DefaultPath = "_template.mdt"

const missingKeyOption = "missingkey=error"

// Template is a parsed page template. It is not modified after Parse, so one
// value serves every page of a run.
type Template struct {
	name string
	tpl  *template.Template
}

// Load reads and parses the template file at path.
func Load(path string) (*Template, error) {
	// #nosec G304 -- the template path is chosen by the operator.
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.IOFailed("read template", path, err)
	}
	return Parse(path, string(src))
}

// Parse parses template source.
func Parse(name, src string) (*Template, error) {
	tpl, err := template.New(name).
		Funcs(baseFuncs(nil)).
		Option(missingKeyOption).
		Parse(TrimBlocks(src))
	if err != nil {
		return nil, derrors.TemplateInvalid(name, fmt.Errorf("parse template: %w", err))
	}
	return &Template{name: name, tpl: tpl}, nil
}

// Name returns the name the template was parsed under.
func (t *Template) Name() string { return t.name }

// Render executes the template against doc and returns the finished page text.
// class names the page in errors.
func (t *Template) Render(class string, doc *document.Node) (string, error) {
	data, order := doc.TemplateData()

	// The clone carries this document's key order; t itself stays untouched.
	// Clone does not copy options, so missingkey is set again.
	tpl, err := t.tpl.Clone()
	if err != nil {
		return "", derrors.RenderFailed(class, err)
	}
	tpl.Funcs(baseFuncs(order)).Option(missingKeyOption)

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", derrors.RenderFailed(class, fmt.Errorf("render template: %w", err))
	}
	return CollapseBlankLines(buf.String()), nil
}

var blankRun = regexp.MustCompile(`\n{2,}`)

// CollapseBlankLines replaces every run of two or more newlines with exactly
// two and strips leading whitespace from the page.
func CollapseBlankLines(s string) string {
	s = blankRun.ReplaceAllString(s, "\n\n")
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func baseFuncs(order document.KeyOrder) template.FuncMap {
	lower := cases.Lower(language.Und)
	return template.FuncMap{
		"entries": func(v any) ([]document.Field, error) {
			if order == nil {
				return nil, errors.New("entries is only available while rendering")
			}
			return order.Fields(v)
		},
		"has": func(v any, key string) bool {
			m, ok := v.(map[string]any)
			if !ok {
				return false
			}
			_, ok = m[key]
			return ok
		},
		"lower": func(s string) string {
			return lower.String(s)
		},
	}
}
