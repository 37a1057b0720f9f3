package model_test

import (
	"testing"

	"github.com/goliatone/go-barcodeform/pkg/model"
)

func TestDecoratorFunc(t *testing.T) {
	form := model.NewForm()
	form.AddConstantSet()

	decorator := model.DecoratorFunc(func(f *model.FormModel) error {
		f.Sets[0].Name = "umi"
		return nil
	})
	if err := decorator.Decorate(form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if form.Sets[0].Name != "umi" {
		t.Fatalf("expected decorator to set name, got %q", form.Sets[0].Name)
	}
}

func TestNewFormStartsAtA(t *testing.T) {
	form := model.NewForm()
	if got := form.NextSetLetter(); got != "A" {
		t.Fatalf("expected A, got %q", got)
	}
	if got := model.SetLabel("A", model.SetTypeConstant); got != "Set 1 (constant) name: " {
		t.Fatalf("unexpected label %q", got)
	}
}
