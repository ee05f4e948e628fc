package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/objdoc/internal/document"
	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
	"git.home.luguber.info/inful/objdoc/internal/generator"
	"git.home.luguber.info/inful/objdoc/internal/templates"
)

// Global carries the process streams into Run.
type Global struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI is the objdoc command line. Every flag has a default reproducing the
// plain invocation: template _template.mdt, inputs *.yml, pages written to
// the working directory.
type CLI struct {
	Template   string           `short:"t" help:"Page template" default:"${template}" env:"OBJDOC_TEMPLATE"`
	Ext        string           `help:"Extension of input files picked up when no paths are given" default:"${ext}" env:"OBJDOC_EXT"`
	Output     string           `short:"o" help:"Directory receiving the generated pages" default:"." env:"OBJDOC_OUTPUT"`
	CheckLinks bool             `name:"check-links" help:"Warn about links to pages that were not generated" env:"OBJDOC_CHECK_LINKS"`
	Verbose    bool             `short:"v" help:"Enable verbose logging"`
	Version    kong.VersionFlag `name:"version" help:"Show version and exit"`

	Paths []string `arg:"" optional:"" name:"path" help:"Object class descriptions to render (default: every ${ext} file in the working directory)"`
}

// Vars returns the interpolation variables used by the CLI tags.
func Vars(version string) kong.Vars {
	return kong.Vars{
		"template": templates.DefaultPath,
		"ext":      document.DefaultExtension,
		"version":  version,
	}
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	w := g.Stderr
	if w == nil {
		w = os.Stderr
	}
	g.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// validate rejects option values that would never select a file.
func (c *CLI) validate() error {
	if strings.TrimSpace(c.Template) == "" {
		return derrors.ConfigInvalid("template", "must not be empty")
	}
	if strings.TrimSpace(c.Ext) == "" {
		return derrors.ConfigInvalid("ext", "must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return derrors.ConfigInvalid("output", "must not be empty")
	}
	return nil
}

// Run renders every input into a page. It stops at the first failing file.
func (c *CLI) Run(g *Global) error {
	if err := c.validate(); err != nil {
		return err
	}

	gen, err := generator.New(generator.Options{
		TemplatePath: c.Template,
		Extension:    c.Ext,
		OutputDir:    c.Output,
		CheckLinks:   c.CheckLinks,
		Progress:     g.Stdout,
		Logger:       g.Logger,
	})
	if err != nil {
		return err
	}

	paths, err := gen.Inputs(c.Paths)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		g.Logger.Warn("No input files found", "extension", c.Ext)
		return nil
	}

	_, err = gen.Run(paths)
	return err
}
