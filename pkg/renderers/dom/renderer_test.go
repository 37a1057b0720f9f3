package dom_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
	domrenderer "github.com/goliatone/go-barcodeform/pkg/renderers/dom"
	"github.com/goliatone/go-barcodeform/pkg/testsupport"
)

func sampleForm(t *testing.T) model.FormModel {
	t.Helper()
	form := model.NewForm()
	set := form.AddConstantSet()
	set.Name = "sample"
	if _, err := form.AddBarcode(set.Letter); err != nil {
		t.Fatalf("add barcode: %v", err)
	}
	form.AddVariableSet()
	return *form
}

func TestRenderer_RendersReplayedDocument(t *testing.T) {
	r := domrenderer.New()
	if r.Name() != "dom" {
		t.Fatalf("unexpected name %q", r.Name())
	}

	out, err := r.Render(testsupport.Context(), sampleForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{
		"barcodes", "file",
		"A_set", "set_A_name", "set_A_pos",
		"A_a_barc", "A_a_name", "A_a_seq",
		"A_b_barc", "A_b_name", "A_b_seq",
		"A_more",
		"B_set", "set_B_name", "set_B_before", "set_B_after", "B_translate",
		"add_constant", "add_variable", "submit",
	}
	if diff := testsupport.CompareGolden(want, testsupport.ElementIDs(t, string(out))); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(out), `value="sample"`) {
		t.Fatalf("expected set name to be filled:\n%s", out)
	}
}

func TestRenderer_AppliesOptions(t *testing.T) {
	out, err := domrenderer.New().Render(testsupport.Context(), sampleForm(t), render.RenderOptions{
		Action:     "/submit",
		Title:      "Run 7",
		FormErrors: []string{"duplicate set name"},
		Errors:     map[string][]string{"set_A_pos": {"bad position"}},
		Hidden:     map[string]string{"csrf_token": "xyz"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		`action="/submit"`,
		"<title>Run 7</title>",
		"<li>duplicate set name</li>",
		"<li>set_A_pos: bad position</li>",
		`<input type="hidden" name="csrf_token" value="xyz"/>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestRenderer_CarriesMismatches(t *testing.T) {
	form := sampleForm(t)
	form.Sets[0].Mismatches = "2"
	form.Sets[1].Mismatches = "1"

	out, err := domrenderer.New().Render(testsupport.Context(), form, render.RenderOptions{
		Hidden: map[string]string{"csrf_token": "xyz"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		`<input type="hidden" name="csrf_token" value="xyz"/>`,
		`<input type="hidden" name="set_A_mm" value="2"/>`,
		`<input type="hidden" name="set_B_mm" value="1"/>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}
