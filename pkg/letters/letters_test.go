package letters_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-barcodeform/pkg/letters"
)

func TestNext(t *testing.T) {
	cases := map[string]string{
		"a":   "b",
		"y":   "z",
		"z":   "za",
		"za":  "zb",
		"zz":  "zza",
		"B":   "C",
		"Y":   "Z",
		"Z":   "ZA",
		"AZ":  "AZA",
		"Az":  "Aza",
		"ZA":  "ZB",
		"abc": "abd",
		"":    "",
	}

	for input, want := range cases {
		if got := letters.Next(input); got != want {
			t.Errorf("Next(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNextDoesNotCarry(t *testing.T) {
	label := letters.FirstBarcode
	for i := 0; i < 27; i++ {
		label = letters.Next(label)
	}
	if label != "zb" {
		t.Fatalf("expected 28th label to be %q, got %q", "zb", label)
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"A":   true,
		"za":  true,
		"AZa": true,
		"":    false,
		"A1":  false,
		"é":   false,
		"a-b": false,
	}
	for input, want := range cases {
		if got := letters.Valid(input); got != want {
			t.Errorf("Valid(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[string]int{
		"A":  1,
		"B":  2,
		"Z":  26,
		"ZA": 26,
		"":   0,
	}
	for input, want := range cases {
		if got := letters.Ordinal(input); got != want {
			t.Errorf("Ordinal(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestLessMatchesSequenceOrder(t *testing.T) {
	var sequence []string
	label := letters.FirstSet
	for i := 0; i < 30; i++ {
		sequence = append(sequence, label)
		label = letters.Next(label)
	}

	shuffled := make([]string, 0, len(sequence))
	for i := len(sequence) - 1; i >= 0; i-- {
		shuffled = append(shuffled, sequence[i])
	}
	sort.Slice(shuffled, func(i, j int) bool { return letters.Less(shuffled[i], shuffled[j]) })

	if diff := cmp.Diff(sequence, shuffled); diff != "" {
		t.Fatalf("sort order mismatch (-want +got):\n%s", diff)
	}
}
