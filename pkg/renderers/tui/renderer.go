// Package tui collects a barcode form on the terminal and emits the barcodes
// file, prompting set by set in the order the web form would lay them out.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-barcodeform/pkg/config"
	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
)

const (
	choiceAddConstant = iota
	choiceAddVariable
	choiceFinish
)

var nextChoices = []string{
	choiceAddConstant: model.AddConstantLabel,
	choiceAddVariable: model.AddVariableLabel,
	choiceFinish:      "Finish",
}

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	mismatches   int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, YAML output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatYAML,
		theme:        Theme{ErrorPrefix: "! "},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	switch r.outputFormat {
	case OutputFormatYAML, OutputFormatJSON:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatJSON {
		return "application/json"
	}
	return "application/yaml"
}

// Render prompts for every set already in form, then offers to add sets until
// the user picks Finish. The collected form is returned serialized.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}

	state := NewState(form, opts.Errors)
	if title := strings.TrimSpace(opts.Title); title != "" {
		if err := r.info(ctx, title); err != nil {
			return nil, err
		}
	}
	for _, message := range opts.FormErrors {
		if err := r.warn(ctx, message); err != nil {
			return nil, err
		}
	}

	if err := r.Collect(ctx, state); err != nil {
		return nil, err
	}
	return r.serialize(*state.Form())
}

// Collect runs the prompt session against state.
func (r *Renderer) Collect(ctx context.Context, state *State) error {
	form := state.Form()
	for i := range form.Sets {
		if err := r.promptSet(ctx, state, &form.Sets[i]); err != nil {
			return err
		}
	}

	for {
		defaultChoice := choiceFinish
		if len(form.Sets) == 0 {
			defaultChoice = choiceAddConstant
		}
		choice, err := r.driver.Select(ctx, SelectConfig{
			Message:      "Next",
			Options:      nextChoices,
			DefaultIndex: defaultChoice,
		})
		if err != nil {
			return err
		}

		var set *model.Set
		switch choice {
		case choiceAddConstant:
			set = form.AddConstantSet()
		case choiceAddVariable:
			set = form.AddVariableSet()
		case choiceFinish:
			return model.Validate(form)
		default:
			return fmt.Errorf("tui: unexpected choice %d", choice)
		}
		if err := r.promptSet(ctx, state, set); err != nil {
			return err
		}
	}
}

func (r *Renderer) promptSet(ctx context.Context, state *State, set *model.Set) error {
	ids := ident.ForSet(set.Letter)

	name, err := r.input(ctx, state, ids.Name(), InputConfig{
		Message: strings.TrimSpace(model.SetLabel(set.Letter, set.Type)),
		Default: set.Name,
		Help:    "Blank names fall back to the set letter.",
	})
	if err != nil {
		return err
	}
	set.Name = name

	switch set.Type {
	case model.SetTypeConstant:
		return r.promptConstant(ctx, state, set)
	case model.SetTypeVariable:
		return r.promptVariable(ctx, state, set)
	default:
		return fmt.Errorf("tui: set %s has unknown type %q", set.Letter, set.Type)
	}
}

func (r *Renderer) promptConstant(ctx context.Context, state *State, set *model.Set) error {
	ids := ident.ForSet(set.Letter)

	position, err := r.input(ctx, state, ids.Position(), InputConfig{
		Message:   strings.TrimSpace(model.PositionLabel),
		Default:   set.Position,
		Help:      model.PositionPlaceholder,
		Validator: validatePosition,
	})
	if err != nil {
		return err
	}
	set.Position = position

	if len(set.Barcodes) == 0 {
		if _, err := set.AddBarcode(); err != nil {
			return err
		}
	}
	for i := range set.Barcodes {
		if err := r.promptBarcode(ctx, state, set.Letter, &set.Barcodes[i]); err != nil {
			return err
		}
	}

	for {
		more, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s to set %s?", model.AddBarcodeLabel, set.Letter),
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		barcode, err := set.AddBarcode()
		if err != nil {
			return err
		}
		if err := r.promptBarcode(ctx, state, set.Letter, barcode); err != nil {
			return err
		}
	}
}

func (r *Renderer) promptBarcode(ctx context.Context, state *State, setLetter string, barcode *model.Barcode) error {
	ids := ident.ForSet(setLetter).Barcode(barcode.Letter)
	caption := strings.TrimSpace(model.BarcodeLabel)

	name, err := r.input(ctx, state, ids.Name(), InputConfig{
		Message: fmt.Sprintf("%s %s%s %s", caption, setLetter, barcode.Letter, model.NamePlaceholder),
		Default: barcode.Name,
	})
	if err != nil {
		return err
	}
	sequence, err := r.input(ctx, state, ids.Sequence(), InputConfig{
		Message: fmt.Sprintf("%s %s%s %s", caption, setLetter, barcode.Letter, model.SequencePlaceholder),
		Default: barcode.Sequence,
	})
	if err != nil {
		return err
	}
	barcode.Name = name
	barcode.Sequence = sequence
	return nil
}

func (r *Renderer) promptVariable(ctx context.Context, state *State, set *model.Set) error {
	ids := ident.ForSet(set.Letter)

	before, err := r.input(ctx, state, ids.Before(), InputConfig{
		Message: strings.TrimSpace(model.BeforeLabel),
		Default: set.Before,
	})
	if err != nil {
		return err
	}
	after, err := r.input(ctx, state, ids.After(), InputConfig{
		Message: strings.TrimSpace(model.AfterLabel),
		Default: set.After,
	})
	if err != nil {
		return err
	}
	translate, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: strings.TrimSpace(model.TranslateLabel),
		Default: set.Translate,
	})
	if err != nil {
		return err
	}

	set.Before = before
	set.After = after
	set.Translate = translate
	return nil
}

// input shows any messages attached to name before prompting.
func (r *Renderer) input(ctx context.Context, state *State, name string, cfg InputConfig) (string, error) {
	for _, message := range state.ErrorsFor(name) {
		if err := r.warn(ctx, message); err != nil {
			return "", err
		}
	}
	value, err := r.driver.Input(ctx, cfg)
	if err != nil {
		return "", err
	}
	state.ClearErrors(name)
	return strings.TrimSpace(value), nil
}

func (r *Renderer) info(ctx context.Context, message string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+message)
}

func (r *Renderer) warn(ctx context.Context, message string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+message)
}

func (r *Renderer) serialize(form model.FormModel) ([]byte, error) {
	if r.outputFormat == OutputFormatJSON {
		data, err := json.MarshalIndent(form, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return data, nil
	}

	doc, err := config.FromForm(form, config.Options{Mismatches: r.mismatches})
	if err != nil {
		return nil, err
	}
	data, err := config.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("tui: encode yaml: %w", err)
	}
	return data, nil
}

func validatePosition(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return config.ErrInvalidPosition
	}
	return nil
}
