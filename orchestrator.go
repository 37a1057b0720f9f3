// Package barcodeform renders and converts the barcode set form. The
// subpackages hold the pieces; this package wires the common paths.
package barcodeform

import (
	"context"

	"github.com/goliatone/go-barcodeform/pkg/config"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/orchestrator"
	"github.com/goliatone/go-barcodeform/pkg/render"
)

// RenderOptions aliases render.RenderOptions for callers that only import the
// root package.
type RenderOptions = render.RenderOptions

// Source aliases config.Source.
type Source = config.Source

// SourceFromFile returns a Source for a barcodes file on disk.
func SourceFromFile(path string) Source {
	return config.SourceFromFile(path)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader returns a barcodes file loader.
func NewLoader(options ...config.LoaderOption) *config.Loader {
	return config.NewLoader(options...)
}

// GenerateHTML loads the barcodes file at source, or starts from an empty
// form when source is nil, and renders it with the named renderer.
func GenerateHTML(ctx context.Context, source Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromForm renders a form the caller already holds, bypassing the
// loader.
func GenerateHTMLFromForm(ctx context.Context, form model.FormModel, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Form:          &form,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}
