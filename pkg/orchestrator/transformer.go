package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-barcodeform/pkg/model"
)

// Transformer mutates a FormModel before decorators run. Implementations can
// rename sets, inject metadata, or perform arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, form *model.FormModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.FormModel) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.FormModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// PresetTransformer applies declarative defaults loaded from a YAML (or JSON)
// document. Sets are addressed by letter and only blank values are filled:
//
//	metadata:
//	  run: "2024-03"
//	sets:
//	  A:
//	    name: sample
//	    position: "0"
//	  B:
//	    before: AAA
//	    after: TTT
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Metadata map[string]string    `yaml:"metadata"`
	Sets     map[string]setPreset `yaml:"sets"`
}

type setPreset struct {
	Name      string `yaml:"name"`
	Position  string `yaml:"position"`
	Before    string `yaml:"before"`
	After     string `yaml:"after"`
	Translate *bool  `yaml:"translate"`
}

// NewPresetTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform fills blank values on the supplied form. Presets naming a set the
// form does not have are ignored.
func (t *PresetTransformer) Transform(ctx context.Context, form *model.FormModel) error {
	if form == nil {
		return errors.New("preset transformer: form model is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(t.document.Metadata) > 0 {
		form.Metadata = mergeStringMap(form.Metadata, t.document.Metadata)
	}

	for letter, preset := range t.document.Sets {
		set, ok := form.Set(strings.TrimSpace(letter))
		if !ok {
			continue
		}
		applySetPreset(set, preset)
	}
	return nil
}

func applySetPreset(set *model.Set, preset setPreset) {
	fill(&set.Name, preset.Name)
	switch set.Type {
	case model.SetTypeConstant:
		fill(&set.Position, preset.Position)
	case model.SetTypeVariable:
		fill(&set.Before, preset.Before)
		fill(&set.After, preset.After)
		if preset.Translate != nil && !set.Translate {
			set.Translate = *preset.Translate
		}
	}
}

func fill(dst *string, value string) {
	if strings.TrimSpace(*dst) == "" && value != "" {
		*dst = value
	}
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
