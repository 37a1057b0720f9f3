package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-barcodeform/pkg/config"
	"github.com/goliatone/go-barcodeform/pkg/model"
)

func sampleForm(t *testing.T) model.FormModel {
	t.Helper()

	form := model.NewForm()
	constant := form.AddConstantSet()
	constant.Name = " umi "
	constant.Position = "3"
	constant.Barcodes[0].Name = "bc2"
	constant.Barcodes[0].Sequence = "TTGA"
	barcode, err := form.AddBarcode("A")
	if err != nil {
		t.Fatalf("add barcode: %v", err)
	}
	barcode.Name = "bc1"
	barcode.Sequence = "ACGT"

	variable := form.AddVariableSet()
	variable.Name = "insert"
	variable.Before = "AAA"
	variable.After = "CCC"
	variable.Translate = true
	return *form
}

func sampleDocument() config.Document {
	return config.Document{Sets: []config.SetConfig{
		{
			Name:       "umi",
			Type:       model.SetTypeConstant,
			Start:      3,
			Mismatches: 1,
			Barcodes: []config.Entry{
				{Name: "bc2", Sequence: "TTGA"},
				{Name: "bc1", Sequence: "ACGT"},
			},
		},
		{
			Name:      "insert",
			Type:      model.SetTypeVariable,
			Before:    "AAA",
			After:     "CCC",
			Translate: true,
		},
	}}
}

func TestFromForm(t *testing.T) {
	doc, err := config.FromForm(sampleForm(t), config.Options{Mismatches: 1})
	if err != nil {
		t.Fatalf("from form: %v", err)
	}
	if diff := cmp.Diff(sampleDocument(), doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestFromFormFallbacks(t *testing.T) {
	form := model.NewForm()
	set := form.AddConstantSet()
	set.Barcodes[0].Sequence = "ACGT"
	if _, err := form.AddBarcode("A"); err != nil {
		t.Fatalf("add barcode: %v", err)
	}

	doc, err := config.FromForm(*form, config.Options{})
	if err != nil {
		t.Fatalf("from form: %v", err)
	}
	want := config.Document{Sets: []config.SetConfig{{
		Name:     "A",
		Type:     model.SetTypeConstant,
		Barcodes: []config.Entry{{Name: "ACGT", Sequence: "ACGT"}},
	}}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestFromFormErrors(t *testing.T) {
	t.Run("position", func(t *testing.T) {
		form := model.NewForm()
		form.AddConstantSet().Position = "twelve"
		_, err := config.FromForm(*form, config.Options{})
		if !errors.Is(err, config.ErrInvalidPosition) {
			t.Fatalf("expected ErrInvalidPosition, got %v", err)
		}
		var fieldErr *config.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "set_A_pos" {
			t.Fatalf("expected field error for set_A_pos, got %v", err)
		}
	})

	t.Run("duplicate barcode", func(t *testing.T) {
		form := model.NewForm()
		form.AddConstantSet().Barcodes[0].Name = "x"
		barcode, _ := form.AddBarcode("A")
		barcode.Name = "x"
		_, err := config.FromForm(*form, config.Options{})
		if !errors.Is(err, config.ErrDuplicateBarcode) {
			t.Fatalf("expected ErrDuplicateBarcode, got %v", err)
		}
		var fieldErr *config.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "A_b_name" {
			t.Fatalf("expected field error for A_b_name, got %v", err)
		}
	})

	t.Run("unequal barcode lengths", func(t *testing.T) {
		form := model.NewForm()
		form.AddConstantSet().Barcodes[0].Sequence = "ACGT"
		barcode, _ := form.AddBarcode("A")
		barcode.Sequence = "ACG"
		_, err := config.FromForm(*form, config.Options{})
		if !errors.Is(err, config.ErrBarcodeLength) {
			t.Fatalf("expected ErrBarcodeLength, got %v", err)
		}
		var fieldErr *config.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "A_b_seq" {
			t.Fatalf("expected field error for A_b_seq, got %v", err)
		}
	})

	for _, mm := range []string{"5", "-1", "two"} {
		t.Run("mismatches "+mm, func(t *testing.T) {
			form := model.NewForm()
			set := form.AddConstantSet()
			set.Barcodes[0].Sequence = "ACGT"
			set.Mismatches = mm
			_, err := config.FromForm(*form, config.Options{})
			if !errors.Is(err, config.ErrInvalidMismatches) {
				t.Fatalf("expected ErrInvalidMismatches, got %v", err)
			}
			var fieldErr *config.FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != "set_A_mm" {
				t.Fatalf("expected field error for set_A_mm, got %v", err)
			}
		})
	}

	t.Run("duplicate set", func(t *testing.T) {
		form := model.NewForm()
		form.AddVariableSet().Name = "same"
		form.AddVariableSet().Name = "same"
		if _, err := config.FromForm(*form, config.Options{}); !errors.Is(err, config.ErrDuplicateSet) {
			t.Fatalf("expected ErrDuplicateSet, got %v", err)
		}
	})
}

func TestEncodeKeepsOrder(t *testing.T) {
	data, err := config.Marshal(sampleDocument())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)

	order := []string{"- umi:", "type: constant", "start: 3", "mismatches: 1", "bc2: TTGA", "bc1: ACGT", "- insert:", "before: AAA", "after: CCC", "translate: true"}
	last := -1
	for _, token := range order {
		idx := strings.Index(out, token)
		if idx < 0 {
			t.Fatalf("expected %q in output:\n%s", token, out)
		}
		if idx < last {
			t.Fatalf("expected %q after previous keys in output:\n%s", token, out)
		}
		last = idx
	}
}

func TestDecodeFixture(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "barcodes.yaml"))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	doc, err := config.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(sampleDocument(), doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"not a list":        "umi:\n  type: constant\n",
		"two keys":          "- a:\n    type: variable\n  b:\n    type: variable\n",
		"unknown type":      "- a:\n    type: wobbly\n",
		"missing barcodes":  "- a:\n    type: constant\n    start: 0\n",
		"negative position": "- a:\n    type: constant\n    start: -1\n    barcodes:\n      x: A\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Unmarshal([]byte(input)); err == nil {
				t.Fatalf("expected error for %q", input)
			}
		})
	}
}

func TestDecodeRejectsFilesTheCounterRejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "constant without start",
			input: "- s:\n    type: constant\n    barcodes:\n      x: ACGT\n",
			want:  config.ErrMalformed,
		},
		{
			name:  "unequal lengths",
			input: "- s:\n    type: constant\n    start: 0\n    barcodes:\n      x: AC\n      y: GTTT\n",
			want:  config.ErrMalformed,
		},
		{
			name:  "mismatches longer than barcodes",
			input: "- s:\n    type: constant\n    start: 0\n    mismatches: 3\n    barcodes:\n      x: AC\n",
			want:  config.ErrMalformed,
		},
		{
			name:  "negative mismatches",
			input: "- s:\n    type: constant\n    start: 0\n    mismatches: -1\n    barcodes:\n      x: AC\n",
			want:  config.ErrInvalidMismatches,
		},
		{
			name:  "variable without after",
			input: "- s:\n    type: variable\n    before: AAA\n",
			want:  config.ErrMalformed,
		},
		{
			name:  "variable without before",
			input: "- s:\n    type: variable\n    after: AAA\n",
			want:  config.ErrMalformed,
		},
		{
			name:  "duplicate names",
			input: "- s:\n    type: variable\n    before: A\n    after: C\n- s:\n    type: variable\n    before: G\n    after: T\n",
			want:  config.ErrDuplicateSet,
		},
		{
			name:  "translate maybe",
			input: "- s:\n    type: variable\n    before: A\n    after: C\n    translate: maybe\n",
			want:  config.ErrMalformed,
		},
		{
			name:  "quoted yes",
			input: "- s:\n    type: variable\n    before: A\n    after: C\n    translate: \"yes\"\n",
			want:  config.ErrMalformed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := config.Unmarshal([]byte(tc.input))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got err=%v doc=%+v", tc.want, err, doc)
			}
		})
	}
}

func TestDecodeTranslateSpellings(t *testing.T) {
	cases := map[string]bool{
		"true":    true,
		"True":    true,
		"false":   false,
		`"false"`: false,
		`"TRUE"`:  true,
		"yes":     true,
		"off":     false,
	}
	for spelling, want := range cases {
		t.Run(spelling, func(t *testing.T) {
			input := "- s:\n    type: variable\n    before: A\n    after: C\n    translate: " + spelling + "\n"
			doc, err := config.Unmarshal([]byte(input))
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if doc.Sets[0].Translate != want {
				t.Fatalf("translate %s = %v, want %v", spelling, doc.Sets[0].Translate, want)
			}
		})
	}

	doc, err := config.Unmarshal([]byte("- s:\n    type: variable\n    before: A\n    after: C\n"))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Sets[0].Translate {
		t.Fatalf("missing translate should read as false")
	}
}

func TestDecodeEmpty(t *testing.T) {
	doc, err := config.Unmarshal(nil)
	if err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if len(doc.Sets) != 0 {
		t.Fatalf("expected no sets, got %d", len(doc.Sets))
	}
}

func TestToForm(t *testing.T) {
	form := config.ToForm(sampleDocument())

	if len(form.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(form.Sets))
	}
	constant := form.Sets[0]
	if constant.Letter != "A" || constant.Type != model.SetTypeConstant || constant.Position != "3" {
		t.Fatalf("unexpected constant set %+v", constant)
	}
	want := []model.Barcode{
		{Letter: "a", Name: "bc2", Sequence: "TTGA"},
		{Letter: "b", Name: "bc1", Sequence: "ACGT"},
	}
	if diff := cmp.Diff(want, constant.Barcodes); diff != "" {
		t.Fatalf("barcodes mismatch (-want +got):\n%s", diff)
	}
	if constant.Mismatches != "1" {
		t.Fatalf("expected constant set to carry mismatches 1, got %q", constant.Mismatches)
	}
	variable := form.Sets[1]
	if variable.Letter != "B" || !variable.Translate || variable.Before != "AAA" {
		t.Fatalf("unexpected variable set %+v", variable)
	}
	if variable.Mismatches != "" {
		t.Fatalf("expected no carried mismatches on variable set, got %q", variable.Mismatches)
	}
}

func TestToFormFromFormKeepsMismatches(t *testing.T) {
	doc := sampleDocument()
	doc.Sets[0].Mismatches = 2
	doc.Sets[1].Mismatches = 1

	got, err := config.FromForm(config.ToForm(doc), config.Options{Mismatches: 3})
	if err != nil {
		t.Fatalf("from form: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderSources(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "barcodes.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	loader := config.NewLoader(config.WithFileSystem(fstest.MapFS{
		"sets/barcodes.yaml": {Data: data},
	}))

	for _, src := range []config.Source{
		config.SourceFromFile(filepath.Join("testdata", "barcodes.yaml")),
		config.SourceFromFS("sets/barcodes.yaml"),
	} {
		doc, err := loader.Load(context.Background(), src)
		if err != nil {
			t.Fatalf("load %s: %v", src.Location(), err)
		}
		if len(doc.Sets) != 2 {
			t.Fatalf("load %s: expected 2 sets, got %d", src.Location(), len(doc.Sets))
		}
	}

	if _, err := loader.Load(context.Background(), config.SourceFromURL("https://example.com/b.yaml")); !errors.Is(err, config.ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource for URL without client, got %v", err)
	}
}
