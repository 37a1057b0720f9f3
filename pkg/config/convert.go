package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/model"
)

// FieldError ties a conversion failure to the form input that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// FieldName reports the input name the error belongs to.
func (e *FieldError) FieldName() string {
	return e.Field
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Options tunes the conversion from a form to a barcodes file.
type Options struct {
	// Mismatches is written for constant sets that carry no allowance of
	// their own.
	Mismatches int
}

// FromForm converts a submitted form into a barcodes file. Blank set names
// fall back to the set letter; blank barcode names fall back to the
// sequence; barcodes with neither are skipped. An empty read position means
// zero.
func FromForm(form model.FormModel, opts Options) (Document, error) {
	doc := Document{Sets: make([]SetConfig, 0, len(form.Sets))}
	seenSets := make(map[string]struct{}, len(form.Sets))

	for _, set := range form.Sets {
		name := strings.TrimSpace(set.Name)
		if name == "" {
			name = set.Letter
		}
		if _, dup := seenSets[name]; dup {
			return Document{}, &FieldError{
				Field: ident.ForSet(set.Letter).Name(),
				Err:   fmt.Errorf("%w %q", ErrDuplicateSet, name),
			}
		}
		seenSets[name] = struct{}{}

		out := SetConfig{Name: name, Type: set.Type}

		switch set.Type {
		case model.SetTypeConstant:
			start, err := parsePosition(set.Position)
			if err != nil {
				return Document{}, &FieldError{Field: ident.ForSet(set.Letter).Position(), Err: err}
			}
			out.Start = start
			mismatches, err := setMismatches(set, opts)
			if err != nil {
				return Document{}, err
			}
			out.Mismatches = mismatches

			seen := make(map[string]struct{}, len(set.Barcodes))
			for _, barcode := range set.Barcodes {
				seq := strings.TrimSpace(barcode.Sequence)
				bname := strings.TrimSpace(barcode.Name)
				if bname == "" {
					bname = seq
				}
				if bname == "" {
					continue
				}
				if _, dup := seen[bname]; dup {
					return Document{}, &FieldError{
						Field: ident.ForSet(set.Letter).Barcode(barcode.Letter).Name(),
						Err:   fmt.Errorf("%w %q in set %s", ErrDuplicateBarcode, bname, name),
					}
				}
				seen[bname] = struct{}{}
				if len(out.Barcodes) > 0 && len(seq) != len(out.Barcodes[0].Sequence) {
					return Document{}, &FieldError{
						Field: ident.ForSet(set.Letter).Barcode(barcode.Letter).Sequence(),
						Err:   fmt.Errorf("%w in set %s", ErrBarcodeLength, name),
					}
				}
				out.Barcodes = append(out.Barcodes, Entry{Name: bname, Sequence: seq})
			}
			if len(out.Barcodes) > 0 && out.Mismatches > len(out.Barcodes[0].Sequence) {
				return Document{}, &FieldError{
					Field: ident.ForSet(set.Letter).Mismatches(),
					Err:   fmt.Errorf("%w: %d mismatches in %d base barcodes", ErrInvalidMismatches, out.Mismatches, len(out.Barcodes[0].Sequence)),
				}
			}
		case model.SetTypeVariable:
			out.Before = strings.TrimSpace(set.Before)
			out.After = strings.TrimSpace(set.After)
			out.Translate = set.Translate
			if strings.TrimSpace(set.Mismatches) != "" {
				mismatches, err := setMismatches(set, opts)
				if err != nil {
					return Document{}, err
				}
				out.Mismatches = mismatches
			}
		default:
			return Document{}, fmt.Errorf("config: set %s has unknown type %q", set.Letter, set.Type)
		}

		doc.Sets = append(doc.Sets, out)
	}
	return doc, nil
}

// ToForm converts a barcodes file into a form model so it can be rendered
// for editing. Letters are assigned in file order.
func ToForm(doc Document) model.FormModel {
	form := model.NewForm()
	for _, cfg := range doc.Sets {
		set, err := form.AddSet(cfg.Type)
		if err != nil {
			continue
		}
		set.Name = cfg.Name

		switch cfg.Type {
		case model.SetTypeConstant:
			set.Position = strconv.Itoa(cfg.Start)
			set.Mismatches = strconv.Itoa(cfg.Mismatches)
			for i, entry := range cfg.Barcodes {
				barcode := &set.Barcodes[0]
				if i > 0 {
					barcode, _ = set.AddBarcode()
				}
				barcode.Name = entry.Name
				barcode.Sequence = entry.Sequence
			}
		case model.SetTypeVariable:
			set.Before = cfg.Before
			set.After = cfg.After
			set.Translate = cfg.Translate
			if cfg.Mismatches > 0 {
				set.Mismatches = strconv.Itoa(cfg.Mismatches)
			}
		}
	}
	return *form
}

// setMismatches prefers the allowance carried on the set over the default.
func setMismatches(set model.Set, opts Options) (int, error) {
	raw := strings.TrimSpace(set.Mismatches)
	if raw == "" {
		return opts.Mismatches, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, &FieldError{
			Field: ident.ForSet(set.Letter).Mismatches(),
			Err:   fmt.Errorf("%w: %q", ErrInvalidMismatches, raw),
		}
	}
	return value, nil
}

func parsePosition(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, raw)
	}
	return value, nil
}
