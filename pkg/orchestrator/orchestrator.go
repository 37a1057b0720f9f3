package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/goliatone/go-barcodeform/pkg/config"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
	"github.com/goliatone/go-barcodeform/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Loader reads a barcodes file from a source.
type Loader interface {
	Load(ctx context.Context, src config.Source) (config.Document, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom barcodes file loader.
func WithLoader(loader Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that can mutate form models after
// loading but before decorators run.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators that should run against the form model
// before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger sets the logger used for pipeline tracing.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from a barcodes file or an
// in-memory form model to rendered output. It applies sensible defaults
// (file loader, vanilla renderer) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	loader          Loader
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	transformer     Transformer
	logger          hclog.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form.
type Request struct {
	// Source identifies a barcodes file to prefill the form from. Ignored when
	// Form is supplied.
	Source config.Source

	// Form allows callers to bypass the loader when they already hold a model.
	// When both Form and Source are empty an empty form is rendered.
	Form *model.FormModel

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request data such as the form action, hidden
	// inputs, or server-side errors that renderers can surface.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → model → transformer → decorators → renderer
// sequence and returns the rendered bytes (HTML for the default vanilla
// renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	form, err := o.resolveForm(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := o.applyTransformer(ctx, &form); err != nil {
		return nil, err
	}
	if err := o.applyDecorators(&form); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("rendering form", "renderer", renderer.Name(), "sets", len(form.Sets))

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

// Renderer returns the renderer Generate would pick for name.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	return o.rendererFor(name)
}

func (o *Orchestrator) resolveForm(ctx context.Context, req Request) (model.FormModel, error) {
	if req.Form != nil {
		return *req.Form, nil
	}
	if req.Source == nil {
		return *model.NewForm(), nil
	}

	o.logger.Debug("loading barcodes file", "source", req.Source.Location(), "kind", req.Source.Kind())

	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: load barcodes file: %w", err)
	}
	return config.ToForm(doc), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	o.logger.Warn("default renderer missing, falling back", "wanted", target, "using", names[0])

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(form *model.FormModel) error {
	if len(o.decorators) == 0 || form == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, form *model.FormModel) error {
	if o.transformer == nil || form == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, form); err != nil {
		return fmt.Errorf("orchestrator: transform form: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = hclog.NewNullLogger()
	}
	if o.loader == nil {
		o.loader = config.NewLoader()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
