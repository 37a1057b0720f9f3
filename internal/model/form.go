package model

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-barcodeform/pkg/letters"
)

var (
	// ErrUnknownSet is returned when an operation names a set letter that is
	// not part of the form.
	ErrUnknownSet = errors.New("model: unknown set")
	// ErrNotConstant is returned when barcodes are added to a variable set.
	ErrNotConstant = errors.New("model: barcodes can only be added to constant sets")
)

// NewForm returns an empty form.
func NewForm() *FormModel {
	return &FormModel{}
}

// NextSetLetter reports the letter the next added set will receive.
func (f *FormModel) NextSetLetter() string {
	if f == nil || len(f.Sets) == 0 {
		return letters.FirstSet
	}
	return letters.Next(f.Sets[len(f.Sets)-1].Letter)
}

// AddConstantSet appends a constant set seeded with its first barcode and
// returns a pointer into the form's list.
func (f *FormModel) AddConstantSet() *Set {
	set := Set{
		Letter:   f.NextSetLetter(),
		Type:     SetTypeConstant,
		Barcodes: []Barcode{{Letter: letters.FirstBarcode}},
	}
	f.Sets = append(f.Sets, set)
	return &f.Sets[len(f.Sets)-1]
}

// AddVariableSet appends a variable set. Variable sets carry no barcodes.
func (f *FormModel) AddVariableSet() *Set {
	set := Set{
		Letter: f.NextSetLetter(),
		Type:   SetTypeVariable,
	}
	f.Sets = append(f.Sets, set)
	return &f.Sets[len(f.Sets)-1]
}

// AddSet appends a set of the given type.
func (f *FormModel) AddSet(t SetType) (*Set, error) {
	switch t {
	case SetTypeConstant:
		return f.AddConstantSet(), nil
	case SetTypeVariable:
		return f.AddVariableSet(), nil
	default:
		return nil, fmt.Errorf("model: unsupported set type %q", t)
	}
}

// Set looks up a set by letter.
func (f *FormModel) Set(letter string) (*Set, bool) {
	if f == nil {
		return nil, false
	}
	for i := range f.Sets {
		if f.Sets[i].Letter == letter {
			return &f.Sets[i], true
		}
	}
	return nil, false
}

// AddBarcode appends the next barcode to the constant set with the given
// letter.
func (f *FormModel) AddBarcode(setLetter string) (*Barcode, error) {
	set, ok := f.Set(setLetter)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSet, setLetter)
	}
	return set.AddBarcode()
}

// NextBarcodeLetter reports the letter the next barcode in s will receive.
func (s *Set) NextBarcodeLetter() string {
	if len(s.Barcodes) == 0 {
		return letters.FirstBarcode
	}
	return letters.Next(s.Barcodes[len(s.Barcodes)-1].Letter)
}

// AddBarcode appends the next barcode to a constant set.
func (s *Set) AddBarcode() (*Barcode, error) {
	if s.Type != SetTypeConstant {
		return nil, fmt.Errorf("%w: set %s is %s", ErrNotConstant, s.Letter, s.Type)
	}
	s.Barcodes = append(s.Barcodes, Barcode{Letter: s.NextBarcodeLetter()})
	return &s.Barcodes[len(s.Barcodes)-1], nil
}

// Barcode looks up a barcode inside the set by letter.
func (s *Set) Barcode(letter string) (*Barcode, bool) {
	for i := range s.Barcodes {
		if s.Barcodes[i].Letter == letter {
			return &s.Barcodes[i], true
		}
	}
	return nil, false
}
