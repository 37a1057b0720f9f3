// Package vanilla renders a barcode form as a static HTML page whose buttons
// post back to the server instead of running client-side handlers.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
	rendertemplate "github.com/goliatone/go-barcodeform/pkg/render/template"
	gotemplate "github.com/goliatone/go-barcodeform/pkg/render/template/gotemplate"
)

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	goTemplate       []gotemplatepkg.Option
	useGoTemplate    bool
	classes          ident.ClassStyle
	stylesheet       string
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithGoTemplateEngine renders the bundled templates with the go-template
// engine instead of the built-in pongo2 adapter. Extra options are applied
// after the template source and extension.
func WithGoTemplateEngine(options ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		cfg.useGoTemplate = true
		cfg.goTemplate = append(cfg.goTemplate, options...)
	}
}

// WithLiteralClasses writes label and fieldset classes the way the legacy page
// did, template text included.
func WithLiteralClasses() Option {
	return func(cfg *config) {
		cfg.classes = ident.LiteralClasses
	}
}

// WithStylesheet links an external stylesheet from the page head.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// WithDefaultStyles inlines the embedded stylesheet.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	classes      ident.ClassStyle
	stylesheet   string
	inlineStyles string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil && cfg.useGoTemplate {
		options := append([]gotemplatepkg.Option{
			gotemplatepkg.WithFS(cfg.templateFS),
			gotemplatepkg.WithExtension(".tmpl"),
		}, cfg.goTemplate...)
		engine, err := gotemplate.NewGoTemplate(options...)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	r := &Renderer{
		templates:  renderer,
		classes:    cfg.classes,
		stylesheet: cfg.stylesheet,
	}
	if cfg.inlineStyles {
		r.inlineStyles = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	page := buildPage(form, opts, r.classes)
	page.StylesheetHref = r.stylesheet
	page.InlineStyles = r.inlineStyles

	result, err := r.templates.RenderTemplate(formTemplate, map[string]any{
		"page": page,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
