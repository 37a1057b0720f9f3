package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-barcodeform/pkg/config"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	prompts      []string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	s.prompts = append(s.prompts, cfg.Message)
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestRender_NewConstantAndVariableSets(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{choiceAddConstant, choiceAddVariable, choiceFinish},
		inputs: []string{
			"sample", "3", // set A name, position
			"s1", "ACGT", // barcode Aa
			"s2", "TTGA", // barcode Ab
			"insert", "AAA", "TTT", // set B
		},
		confirm: []bool{true, false, true},
	}
	r, err := New(WithPromptDriver(driver), WithMismatches(1))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), model.FormModel{}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc, err := config.Unmarshal(out)
	if err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	want := config.Document{Sets: []config.SetConfig{
		{
			Name:       "sample",
			Type:       model.SetTypeConstant,
			Start:      3,
			Mismatches: 1,
			Barcodes: []config.Entry{
				{Name: "s1", Sequence: "ACGT"},
				{Name: "s2", Sequence: "TTGA"},
			},
		},
		{
			Name:      "insert",
			Type:      model.SetTypeVariable,
			Before:    "AAA",
			After:     "TTT",
			Translate: true,
		},
	}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != len(driver.inputs) || driver.confirmPos != len(driver.confirm) {
		t.Fatalf("prompts not consumed as expected")
	}
	if driver.prompts[0] != "Set 1 (constant) name:" {
		t.Fatalf("unexpected first prompt %q", driver.prompts[0])
	}
}

func TestRender_EditsExistingFormAndShowsErrors(t *testing.T) {
	form := model.NewForm()
	set := form.AddConstantSet()
	set.Name = "umi"
	set.Position = "x"

	driver := &stubDriver{
		selectIdx: []int{choiceFinish},
		inputs:    []string{"umi", "2", "bc", "GGCC"},
		confirm:   []bool{false},
	}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatJSON))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if r.ContentType() != "application/json" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}

	out, err := r.Render(context.Background(), *form, render.RenderOptions{
		FormErrors: []string{"fix the highlighted fields"},
		Errors:     map[string][]string{"set_A_pos": {"read position must be a non-negative integer"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got model.FormModel
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if got.Sets[0].Position != "2" || got.Sets[0].Barcodes[0].Sequence != "GGCC" {
		t.Fatalf("unexpected form %+v", got)
	}
	if form.Sets[0].Position != "x" {
		t.Fatalf("caller form should not be mutated")
	}

	joined := strings.Join(driver.infoMessages, "\n")
	for _, want := range []string{"! fix the highlighted fields", "! read position must be a non-negative integer"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in messages %q", want, joined)
		}
	}
}

func TestRender_PropagatesAbort(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(context.Background(), model.FormModel{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected driver error to propagate")
	}
}

func TestValidatePosition(t *testing.T) {
	for _, value := range []string{"", "0", " 12 "} {
		if err := validatePosition(value); err != nil {
			t.Fatalf("validatePosition(%q): %v", value, err)
		}
	}
	for _, value := range []string{"-1", "abc", "1.5"} {
		if err := validatePosition(value); !errors.Is(err, config.ErrInvalidPosition) {
			t.Fatalf("validatePosition(%q) = %v", value, err)
		}
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
