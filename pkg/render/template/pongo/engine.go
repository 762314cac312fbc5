package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/atkphpframework/atk/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	globalData map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS, typically an embedded bundle.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".tmpl" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobalData seeds context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine satisfies template.TemplateRenderer with a pongo2-backed template
// set. Parsed templates are cached; the cache is safe for concurrent use.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	extension string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine from the provided options. A template source (base
// dir or fs.FS) is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tmpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("pongo: need either a base dir or an fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	engine := &Engine{
		set:       pongo2.NewSet("atk", loaders...),
		templates: make(map[string]*pongo2.Template),
		extension: cfg.extension,
	}
	for key, value := range cfg.globalData {
		engine.set.Globals[key] = value
	}
	return engine, nil
}

// Render treats name as inline content when it looks like markup, otherwise
// as a template path.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if isTemplateContent(name) {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the named template from the configured source.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.extension) {
		path += e.extension
	}

	tmpl, err := e.template(path)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, path, data, out)
}

// RenderString executes inline template content without touching the cache.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse inline template: %w", err)
	}
	return e.execute(tmpl, "<inline>", data, out)
}

func (e *Engine) execute(tmpl *pongo2.Template, name string, data any, out []io.Writer) (string, error) {
	ctx, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: convert data for %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("pongo: execute template %s: %w", name, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", fmt.Errorf("pongo: write output of %s: %w", name, err)
		}
	}
	return rendered, nil
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	parsed, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %s: %w", path, err)
	}

	e.mu.Lock()
	e.templates[path] = parsed
	e.mu.Unlock()
	return parsed, nil
}

func convertToContext(data any) (pongo2.Context, error) {
	switch value := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return value, nil
	case map[string]any:
		return pongo2.Context(value), nil
	default:
		return nil, fmt.Errorf("unsupported context type %T", data)
	}
}

func isTemplateContent(name string) bool {
	return strings.ContainsAny(name, "<{\n")
}
