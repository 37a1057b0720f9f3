package ident_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-barcodeform/pkg/ident"
)

func TestSetIdentifiers(t *testing.T) {
	set := ident.ForSet("B")

	got := map[string]string{
		"fieldset":  set.Fieldset(),
		"name":      set.Name(),
		"pos":       set.Position(),
		"before":    set.Before(),
		"after":     set.After(),
		"translate": set.Translate(),
		"mm":        set.Mismatches(),
		"more":      set.More(),
		"class":     set.FieldsetClass(),
	}
	want := map[string]string{
		"fieldset":  "B_set",
		"name":      "set_B_name",
		"pos":       "set_B_pos",
		"before":    "set_B_before",
		"after":     "set_B_after",
		"translate": "B_translate",
		"mm":        "set_B_mm",
		"more":      "B_more",
		"class":     "B set group",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("set identifiers mismatch (-want +got):\n%s", diff)
	}
	if set.Number() != 2 {
		t.Fatalf("expected set number 2, got %d", set.Number())
	}
}

func TestBarcodeIdentifiers(t *testing.T) {
	barcode := ident.ForSet("A").Barcode("c")

	if got := barcode.Fieldset(); got != "A_c_barc" {
		t.Fatalf("fieldset id: got %q", got)
	}
	if got := barcode.Name(); got != "A_c_name" {
		t.Fatalf("name id: got %q", got)
	}
	if got := barcode.Sequence(); got != "A_c_seq" {
		t.Fatalf("seq id: got %q", got)
	}
	if got := barcode.NameClass(); got != "A c name barc" {
		t.Fatalf("name class: got %q", got)
	}
	if got := barcode.FieldsetClass(ident.InterpolatedClasses); got != "A c barc field" {
		t.Fatalf("fieldset class: got %q", got)
	}
	if got := barcode.FieldsetClass(ident.LiteralClasses); got != "`${set_let} ${next_let} barc field`" {
		t.Fatalf("literal fieldset class: got %q", got)
	}
}

func TestTriggerSetAndSegment(t *testing.T) {
	if got := ident.TriggerSet("ZA_more"); got != "ZA" {
		t.Fatalf("TriggerSet: got %q", got)
	}
	if got := ident.Segment("A_za_seq", 1); got != "za" {
		t.Fatalf("Segment: got %q", got)
	}
	if got := ident.Segment("A", 1); got != "" {
		t.Fatalf("Segment out of range: got %q", got)
	}
}

func TestParseKey(t *testing.T) {
	cases := map[string]ident.Key{
		"set_A_name":    {Kind: ident.KeySetName, Set: "A"},
		"set_ZA_pos":    {Kind: ident.KeySetPosition, Set: "ZA"},
		"set_B_before":  {Kind: ident.KeySetBefore, Set: "B"},
		"set_B_after":   {Kind: ident.KeySetAfter, Set: "B"},
		"B_translate":   {Kind: ident.KeySetTranslate, Set: "B"},
		"set_B_mm":      {Kind: ident.KeySetMismatches, Set: "B"},
		"A_a_name":      {Kind: ident.KeyBarcodeName, Set: "A", Barcode: "a"},
		"A_za_seq":      {Kind: ident.KeyBarcodeSequence, Set: "A", Barcode: "za"},
		"A_a_barc":      {},
		"set_a_name":    {},
		"action":        {},
		"set_A_unknown": {},
		"a_A_name":      {},
	}
	for name, want := range cases {
		if diff := cmp.Diff(want, ident.ParseKey(name)); diff != "" {
			t.Errorf("ParseKey(%q) mismatch (-want +got):\n%s", name, diff)
		}
	}
}
