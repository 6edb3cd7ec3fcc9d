package readme

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pmezard/go-difflib/difflib"

	generr "github.com/vrcomputing/readmegen/internal/errors"
	"github.com/vrcomputing/readmegen/internal/highlight"
	"github.com/vrcomputing/readmegen/internal/manifest"
	"github.com/vrcomputing/readmegen/internal/snippet"
)

//go:embed templates/readme.md.tmpl
var templateFS embed.FS

const templateName = "readme.md.tmpl"

// Options locate the inputs and output of one generation pass. Relative
// paths are resolved against Root.
type Options struct {
	Root         string
	ManifestPath string
	DocsDir      string
	Output       string
	ImageRoot    string
	Logger       *slog.Logger
}

// Result summarizes a completed generation.
type Result struct {
	Output     string
	Commands   int
	Properties int
	Bytes      int
}

// CheckResult reports whether the output file matches a fresh rendering.
type CheckResult struct {
	Output   string
	UpToDate bool
	Diff     string
}

// Generator renders the ReadMe for a fixed set of Options.
type Generator struct {
	opts   Options
	tmpl   *template.Template
	logger *slog.Logger
}

// commandView is one command section as the template sees it.
type commandView struct {
	Title       string
	Description string
	Command     string
	Input       string
	Output      string
}

type documentView struct {
	DisplayName string
	Description string
	ImageRoot   string
	Commands    []commandView
	Properties  manifest.Properties
}

// New resolves the paths in opts and parses the embedded template.
func New(opts Options) (*Generator, error) {
	if opts.Root == "" {
		opts.Root = "."
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, generr.Errorf(generr.KindConfig, "resolving root %s: %w", opts.Root, err)
	}
	opts.Root = root
	opts.ManifestPath = resolve(root, opts.ManifestPath)
	opts.DocsDir = resolve(root, opts.DocsDir)
	opts.Output = resolve(root, opts.Output)

	src, err := fs.ReadFile(templateFS, "templates/"+templateName)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", templateName, err)
	}
	tmpl, err := template.New(templateName).
		Option("missingkey=error").
		Funcs(template.FuncMap{"highlight": highlight.Tokens}).
		Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", templateName, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{opts: opts, tmpl: tmpl, logger: logger}, nil
}

// Options returns the resolved options.
func (g *Generator) Options() Options {
	return g.opts
}

// Render produces the ReadMe for m. Snippets are loaded in command order
// and the first missing one aborts rendering.
func (g *Generator) Render(m *manifest.Manifest) ([]byte, error) {
	view := documentView{
		DisplayName: m.DisplayName,
		Description: m.Description,
		ImageRoot:   g.opts.ImageRoot,
		Properties:  m.Contributes.Configuration.Properties,
	}

	for _, c := range m.Contributes.Commands {
		pair, err := snippet.Load(g.opts.DocsDir, c.Command)
		if err != nil {
			return nil, err
		}
		g.logger.Debug("loaded snippet pair", "command", c.Command)
		view.Commands = append(view.Commands, commandView{
			Title:       c.Title,
			Description: c.Description,
			Command:     c.Command,
			Input:       pair.Input,
			Output:      pair.Output,
		})
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", templateName, err)
	}
	return buf.Bytes(), nil
}

// Build loads the manifest and renders the document without writing it.
func (g *Generator) Build() ([]byte, *manifest.Manifest, error) {
	m, err := manifest.Load(g.opts.ManifestPath)
	if err != nil {
		return nil, nil, err
	}
	g.logger.Debug("loaded manifest",
		"path", g.opts.ManifestPath,
		"commands", len(m.Contributes.Commands),
		"properties", len(m.Contributes.Configuration.Properties))

	data, err := g.Render(m)
	if err != nil {
		return nil, nil, err
	}
	return data, m, nil
}

// Generate renders the ReadMe and overwrites the output file.
func (g *Generator) Generate() (*Result, error) {
	data, m, err := g.Build()
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(g.opts.Output, data, 0644); err != nil {
		return nil, generr.Errorf(generr.KindWrite, "writing %s: %w", g.opts.Output, err)
	}
	g.logger.Info("wrote readme", "path", g.opts.Output, "bytes", len(data))

	return &Result{
		Output:     g.opts.Output,
		Commands:   len(m.Contributes.Commands),
		Properties: len(m.Contributes.Configuration.Properties),
		Bytes:      len(data),
	}, nil
}

// Check renders the ReadMe and compares it with the output file on disk.
// A missing output file counts as out of date.
func (g *Generator) Check() (*CheckResult, error) {
	data, _, err := g.Build()
	if err != nil {
		return nil, err
	}

	current, err := os.ReadFile(g.opts.Output)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", g.opts.Output, err)
	}

	result := &CheckResult{Output: g.opts.Output}
	if bytes.Equal(current, data) {
		result.UpToDate = true
		return result, nil
	}

	name := filepath.Base(g.opts.Output)
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(data)),
		FromFile: name + " (current)",
		ToFile:   name + " (generated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return nil, fmt.Errorf("diffing %s: %w", g.opts.Output, err)
	}
	result.Diff = text
	return result, nil
}

func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
