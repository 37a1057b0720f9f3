package submission_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/submission"
)

func TestParse(t *testing.T) {
	values := url.Values{
		"set_A_name":   {"umi"},
		"set_A_pos":    {" 4 "},
		"A_b_name":     {"bc2"},
		"A_b_seq":      {"TTGA"},
		"A_a_name":     {"bc1"},
		"A_a_seq":      {"ACGT"},
		"set_B_name":   {"insert"},
		"set_B_before": {"AAA"},
		"set_B_after":  {"CCC"},
		"B_translate":  {"Translate"},
		"set_A_mm":     {"2"},
		"set_B_mm":     {" 1 "},
		"action":       {"submit"},
		"unrelated":    {"x"},
	}

	got := submission.Parse(values)
	want := model.FormModel{Sets: []model.Set{
		{
			Letter:   "A",
			Type:     model.SetTypeConstant,
			Name:     "umi",
			Position: "4",
			Barcodes: []model.Barcode{
				{Letter: "a", Name: "bc1", Sequence: "ACGT"},
				{Letter: "b", Name: "bc2", Sequence: "TTGA"},
			},
			Mismatches: "2",
		},
		{
			Letter:     "B",
			Type:       model.SetTypeVariable,
			Name:       "insert",
			Before:     "AAA",
			After:      "CCC",
			Translate:  true,
			Mismatches: "1",
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed form mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOrdersLettersPastZ(t *testing.T) {
	values := url.Values{
		"set_ZA_name": {""},
		"set_B_name":  {""},
		"set_Z_name":  {""},
		"set_A_name":  {""},
	}
	form := submission.Parse(values)

	var got []string
	for _, set := range form.Sets {
		got = append(got, set.Letter)
	}
	if diff := cmp.Diff([]string{"A", "B", "Z", "ZA"}, got); diff != "" {
		t.Fatalf("set order mismatch (-want +got):\n%s", diff)
	}
	if next := form.NextSetLetter(); next != "ZB" {
		t.Fatalf("expected next set ZB, got %q", next)
	}
}

func TestParseStripsMarkup(t *testing.T) {
	values := url.Values{
		"set_A_name": {"<b>umi</b><script>alert(1)</script>"},
		"A_a_seq":    {"AC<i>GT</i>"},
	}
	form := submission.Parse(values)
	if got := form.Sets[0].Name; got != "umi" {
		t.Fatalf("expected markup to be stripped, got %q", got)
	}
	if got := form.Sets[0].Barcodes[0].Sequence; got != "ACGT" {
		t.Fatalf("expected markup to be stripped, got %q", got)
	}
}

func TestParseIgnoresOrphanFields(t *testing.T) {
	values := url.Values{
		"set_C_pos": {"1"},
		"C_a_seq":   {"ACGT"},
	}
	if form := submission.Parse(values); len(form.Sets) != 0 {
		t.Fatalf("expected sets without a name field to be ignored, got %+v", form.Sets)
	}
}

func TestParseAction(t *testing.T) {
	cases := map[string]submission.Action{
		"":             {Kind: submission.ActionSubmit},
		"submit":       {Kind: submission.ActionSubmit},
		"add_constant": {Kind: submission.ActionAddConstant},
		"add_variable": {Kind: submission.ActionAddVariable},
		"A_more":       {Kind: submission.ActionAddBarcode, Set: "A", Trigger: "A_more"},
		"ZA_more":      {Kind: submission.ActionAddBarcode, Set: "ZA", Trigger: "ZA_more"},
		"A_B_more":     {Kind: submission.ActionNone, Trigger: "A_B_more"},
		"explode":      {Kind: submission.ActionNone, Trigger: "explode"},
	}
	for raw, want := range cases {
		got := submission.ParseAction(url.Values{"action": {raw}})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ParseAction(%q) mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestParseKeepsPlainPunctuation(t *testing.T) {
	values := url.Values{"set_A_name": {`R&D "pool"`}}
	form := submission.Parse(values)
	if got := form.Sets[0].Name; got != `R&D "pool"` {
		t.Fatalf("unexpected sanitized name %q", got)
	}
}
