// Package dom renders a form by replaying it through the document builder, the
// same code path the interactive page takes on every click.
package dom

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"

	domtree "github.com/goliatone/go-barcodeform/pkg/dom"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
)

type Option func(*Renderer)

// WithLiteralClasses writes legacy class lists, template text included.
func WithLiteralClasses() Option {
	return func(r *Renderer) {
		r.literal = true
	}
}

// WithLogger forwards builder tracing to logger.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type Renderer struct {
	literal bool
	logger  hclog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{logger: hclog.NewNullLogger()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "dom"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds the document and applies the request options the builder has
// no notion of: the form action and hidden inputs. Field errors are reported
// at form level because the builder never renders messages.
func (r *Renderer) Render(_ context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	builderOpts := []domtree.Option{domtree.WithLogger(r.logger)}
	if r.literal {
		builderOpts = append(builderOpts, domtree.WithLiteralClasses())
	}

	doc, err := domtree.Build(form, builderOpts...)
	if err != nil {
		return nil, fmt.Errorf("dom renderer: %w", err)
	}

	if err := decorate(doc, form, opts); err != nil {
		return nil, fmt.Errorf("dom renderer: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("dom renderer: write document: %w", err)
	}
	return buf.Bytes(), nil
}

func decorate(doc *domtree.Document, form model.FormModel, opts render.RenderOptions) error {
	formNode := doc.ElementByID(domtree.FormID)
	if formNode == nil {
		return domtree.ErrMissingControls
	}

	if opts.Action != "" {
		domtree.SetAttr(formNode, "action", opts.Action)
	}
	if opts.Title != "" {
		for _, title := range doc.ElementsByTagName("title") {
			domtree.SetText(title, opts.Title)
		}
	}

	messages := append([]string(nil), opts.FormErrors...)
	for _, field := range sortedKeys(opts.Errors) {
		for _, message := range opts.Errors[field] {
			messages = append(messages, field+": "+message)
		}
	}
	messages = render.MergeFormErrors(nil, messages...)

	var hidden []domtree.Hidden
	carried := render.MergeHiddenFields(render.CarriedFields(form), render.SortedHiddenFields(opts.Hidden)...)
	for _, field := range render.SortedHiddenFields(carried) {
		hidden = append(hidden, domtree.Hidden{Name: field.Name, Value: field.Value})
	}
	domtree.Prepend(formNode, hidden, messages)
	return nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
