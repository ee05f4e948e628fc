// Package generator runs the per-file pipeline: load an object-class
// document, resolve its cross-references, render it through the shared page
// template and write <class.name>.md.
//
// Files are handled one at a time in the order given. The first failure stops
// the run; pages already written stay on disk.
package generator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/objdoc/internal/document"
	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
	"git.home.luguber.info/inful/objdoc/internal/links"
	"git.home.luguber.info/inful/objdoc/internal/logfields"
	"git.home.luguber.info/inful/objdoc/internal/templates"
)

// Options configures a Generator. Zero values select the defaults.
type Options struct {
	// TemplatePath is the page template, default templates.DefaultPath.
	TemplatePath string
	// Extension selects inputs when no paths are given, default document.DefaultExtension.
	Extension string
	// InputDir is scanned when no paths are given, default ".".
	InputDir string
	// OutputDir receives the pages, default ".". It is created if missing.
	OutputDir string
	// CheckLinks reports links to pages that neither this run nor the output
	// directory provides.
	CheckLinks bool
	// Progress receives each input path as processing starts, default io.Discard.
	Progress io.Writer
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.TemplatePath == "" {
		o.TemplatePath = templates.DefaultPath
	}
	if o.Extension == "" {
		o.Extension = document.DefaultExtension
	}
	if o.InputDir == "" {
		o.InputDir = "."
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.Progress == nil {
		o.Progress = io.Discard
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Page describes one written page.
type Page struct {
	Source  string
	Class   string
	Output  string
	Content string
}

// Result summarises a run.
type Result struct {
	Pages    []Page
	Broken   []BrokenRef
	Duration time.Duration
}

// Generator holds the state shared by every file of a run: the options and
// the parsed template.
type Generator struct {
	opts   Options
	tpl    *templates.Template
	logger *slog.Logger
}

// New loads the page template and prepares the output directory.
func New(opts Options) (*Generator, error) {
	opts = opts.withDefaults()

	tpl, err := templates.Load(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	return NewWithTemplate(opts, tpl)
}

// NewWithTemplate is New with an already parsed template.
func NewWithTemplate(opts Options, tpl *templates.Template) (*Generator, error) {
	opts = opts.withDefaults()
	if err := os.MkdirAll(opts.OutputDir, 0o750); err != nil {
		return nil, derrors.IOFailed("create output directory", opts.OutputDir, err)
	}
	return &Generator{opts: opts, tpl: tpl, logger: opts.Logger}, nil
}

// Inputs returns args unchanged when non-empty. Otherwise it lists the files
// of the input directory carrying the configured extension.
func (g *Generator) Inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	paths, err := document.Discover(g.opts.InputDir, g.opts.Extension)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Discovered inputs",
		logfields.Path(g.opts.InputDir),
		logfields.Count(len(paths)))
	return paths, nil
}

// Run processes paths in order and stops at the first error. The returned
// Result lists the pages written before the failure.
func (g *Generator) Run(paths []string) (*Result, error) {
	start := time.Now()
	res := &Result{}

	for _, p := range paths {
		page, err := g.Generate(p)
		if err != nil {
			res.Duration = time.Since(start)
			return res, err
		}
		res.Pages = append(res.Pages, page)
	}

	if g.opts.CheckLinks {
		res.Broken = g.CheckReferences(res.Pages)
	}

	res.Duration = time.Since(start)
	g.logger.Info("Generation complete",
		logfields.Count(len(res.Pages)),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}

// Generate turns one input file into one page.
func (g *Generator) Generate(path string) (Page, error) {
	if _, err := fmt.Fprintln(g.opts.Progress, path); err != nil {
		return Page{}, derrors.IOFailed("report progress", path, err)
	}

	doc, err := document.Load(path)
	if err != nil {
		return Page{}, err
	}
	class, err := document.ClassName(path, doc)
	if err != nil {
		return Page{}, err
	}

	links.Resolve(doc)

	content, err := g.tpl.Render(class, doc)
	if err != nil {
		if oe, ok := derrors.As(err); ok {
			oe.WithContext("path", path)
		}
		return Page{}, err
	}

	out, err := templates.WritePage(g.opts.OutputDir, class, content)
	if err != nil {
		return Page{}, err
	}

	g.logger.Debug("Page written",
		logfields.Path(path),
		logfields.Class(class),
		logfields.Output(out))
	return Page{Source: path, Class: class, Output: out, Content: content}, nil
}
