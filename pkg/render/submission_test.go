package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
)

func TestMergeAndSortHiddenFields(t *testing.T) {
	base := map[string]string{
		" existing ": "keep",
		"":           "ignored",
	}

	merged := render.MergeHiddenFields(base,
		render.CSRFToken("_csrf", "token123"),
		render.Hidden("version", 4),
		render.Hidden("  ", "skip"),
	)

	wantMerged := map[string]string{
		"existing": "keep",
		"_csrf":    "token123",
		"version":  "4",
	}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	wantSorted := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(wantSorted, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCarriedFields(t *testing.T) {
	form := model.NewForm()
	form.AddConstantSet().Mismatches = "0"
	form.AddVariableSet().Mismatches = " 1 "
	form.AddConstantSet()

	want := map[string]string{"set_A_mm": "0", "set_B_mm": "1"}
	if diff := cmp.Diff(want, render.CarriedFields(*form)); diff != "" {
		t.Fatalf("carried fields mismatch (-want +got):\n%s", diff)
	}
	if got := render.CarriedFields(model.FormModel{}); got != nil {
		t.Fatalf("expected nil for a form without carried values, got %v", got)
	}
}

