// Package ident builds the element identifiers, input names, and class lists
// shared by every renderer and by the submission parser. Keeping the scheme in
// one place means a selector built here always matches the markup built here.
package ident

import (
	"strings"

	"github.com/goliatone/go-barcodeform/pkg/letters"
)

// ClassStyle selects how label and fieldset class lists are written.
type ClassStyle int

const (
	// InterpolatedClasses writes class lists with the set and barcode letters
	// substituted, e.g. "A set pos".
	InterpolatedClasses ClassStyle = iota
	// LiteralClasses reproduces the legacy markup, which wrote the template
	// text itself (e.g. "`${set_let} set`") instead of the letters.
	LiteralClasses
)

// Set names every element that belongs to a barcode set.
type Set struct {
	Letter string
}

// ForSet returns the identifier builder for a set letter.
func ForSet(letter string) Set {
	return Set{Letter: letter}
}

// Fieldset is the id of the set container, "{S}_set".
func (s Set) Fieldset() string { return s.Letter + "_set" }

// FieldsetClass is the class list of the set container.
func (s Set) FieldsetClass() string { return s.Letter + " set group" }

// Name is the id and input name of the set name field.
func (s Set) Name() string { return "set_" + s.Letter + "_name" }

// NameClass is the class list of the set name input.
func (s Set) NameClass() string { return s.Letter + " set name" }

// Position is the id and input name of the read position field.
func (s Set) Position() string { return "set_" + s.Letter + "_pos" }

// PositionClass is the class list of the read position input.
func (s Set) PositionClass() string { return s.Letter + " pos" }

// Before is the id and input name of the upstream flank field.
func (s Set) Before() string { return "set_" + s.Letter + "_before" }

// BeforeClass is the class list of the upstream flank input.
func (s Set) BeforeClass() string { return s.Letter + " before" }

// After is the id and input name of the downstream flank field.
func (s Set) After() string { return "set_" + s.Letter + "_after" }

// AfterClass is the class list of the downstream flank input.
func (s Set) AfterClass() string { return s.Letter + " after" }

// Translate is the id and input name of the translate checkbox.
func (s Set) Translate() string { return s.Letter + "_translate" }

// Mismatches is the name of the hidden input that carries a set's mismatch
// allowance from an uploaded file, "set_{S}_mm".
func (s Set) Mismatches() string { return "set_" + s.Letter + "_mm" }

// More is the id of the add-barcode trigger.
func (s Set) More() string { return s.Letter + "_more" }

// LabelClass is the class of the paragraph holding the set name.
func (s Set) LabelClass(style ClassStyle) string {
	if style == LiteralClasses {
		return "`${set_let} set`"
	}
	return s.Letter + " set"
}

// PositionLabelClass is the class of the paragraph holding the position field.
func (s Set) PositionLabelClass(style ClassStyle) string {
	if style == LiteralClasses {
		return "`${new_set.next_let} set pos`"
	}
	return s.Letter + " set pos"
}

// BeforeLabelClass is the class of the paragraph holding the before field.
func (s Set) BeforeLabelClass(style ClassStyle) string {
	if style == LiteralClasses {
		return "`${new_set.next_let} set before`"
	}
	return s.Letter + " set before"
}

// AfterLabelClass is the class of the paragraph holding the after field.
func (s Set) AfterLabelClass(style ClassStyle) string {
	if style == LiteralClasses {
		return "`${new_set.next_let} set after`"
	}
	return s.Letter + " set after"
}

// Number is the ordinal shown in the set label.
func (s Set) Number() int { return letters.Ordinal(s.Letter) }

// Barcode returns the identifier builder for a barcode inside the set.
func (s Set) Barcode(letter string) Barcode {
	return Barcode{Set: s.Letter, Letter: letter}
}

// Barcode names every element that belongs to one barcode entry.
type Barcode struct {
	Set    string
	Letter string
}

func (b Barcode) join(suffix string) string {
	return strings.Join([]string{b.Set, b.Letter, suffix}, "_")
}

// Fieldset is the id of the barcode container, "{S}_{b}_barc".
func (b Barcode) Fieldset() string { return b.join("barc") }

// Name is the id and input name of the barcode name field.
func (b Barcode) Name() string { return b.join("name") }

// Sequence is the id and input name of the barcode sequence field.
func (b Barcode) Sequence() string { return b.join("seq") }

// NameClass is the class list of the barcode name input.
func (b Barcode) NameClass() string { return b.Set + " " + b.Letter + " name barc" }

// SequenceClass is the class list of the barcode sequence input.
func (b Barcode) SequenceClass() string { return b.Set + " " + b.Letter + " seq barc" }

// FieldsetClass is the class list of the barcode container.
func (b Barcode) FieldsetClass(style ClassStyle) string {
	if style == LiteralClasses {
		return "`${set_let} ${next_let} barc field`"
	}
	return b.Set + " " + b.Letter + " barc field"
}

// LabelClass is the class of the paragraph holding the barcode inputs.
func (b Barcode) LabelClass(style ClassStyle) string {
	if style == LiteralClasses {
		return "`${set_let} ${next_let} barc`"
	}
	return b.Set + " " + b.Letter + " barc"
}

// TriggerSet extracts the set letter from an add-barcode trigger id such as
// "A_more". Ids without an underscore are returned unchanged.
func TriggerSet(id string) string {
	head, _, _ := strings.Cut(id, "_")
	return head
}

// Segment returns the n-th underscore separated part of id, or "" when id has
// fewer parts.
func Segment(id string, n int) string {
	parts := strings.Split(id, "_")
	if n < 0 || n >= len(parts) {
		return ""
	}
	return parts[n]
}
