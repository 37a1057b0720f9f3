// Package submission turns posted form values back into a form model and
// decodes which control the user pressed.
package submission

import (
	"html"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/letters"
	"github.com/goliatone/go-barcodeform/pkg/model"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// sanitize strips markup from a free text value and trims whitespace. The
// policy escapes what it keeps; renderers escape again, so entities are
// decoded here.
func sanitize(raw string) string {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(raw)))
}

// Parse rebuilds a form model from posted values. A set exists when its name
// field was posted; it is variable when its before field was posted and
// constant otherwise. Unknown keys are ignored and field contents are never
// rejected.
func Parse(values url.Values) model.FormModel {
	type setFields struct {
		set      model.Set
		barcodes map[string]*model.Barcode
		seen     bool
		variable bool
	}

	sets := make(map[string]*setFields)
	entry := func(letter string) *setFields {
		s, ok := sets[letter]
		if !ok {
			s = &setFields{
				set:      model.Set{Letter: letter},
				barcodes: make(map[string]*model.Barcode),
			}
			sets[letter] = s
		}
		return s
	}

	for name, posted := range values {
		key := ident.ParseKey(name)
		if key.Kind == ident.KeyUnknown {
			continue
		}
		value := ""
		if len(posted) > 0 {
			value = sanitize(posted[0])
		}

		s := entry(key.Set)
		switch key.Kind {
		case ident.KeySetName:
			s.seen = true
			s.set.Name = value
		case ident.KeySetPosition:
			s.set.Position = value
		case ident.KeySetBefore:
			s.variable = true
			s.set.Before = value
		case ident.KeySetAfter:
			s.set.After = value
		case ident.KeySetTranslate:
			s.set.Translate = value != ""
		case ident.KeySetMismatches:
			s.set.Mismatches = value
		case ident.KeyBarcodeName, ident.KeyBarcodeSequence:
			b, ok := s.barcodes[key.Barcode]
			if !ok {
				b = &model.Barcode{Letter: key.Barcode}
				s.barcodes[key.Barcode] = b
			}
			if key.Kind == ident.KeyBarcodeName {
				b.Name = value
			} else {
				b.Sequence = value
			}
		}
	}

	order := make([]string, 0, len(sets))
	for letter, s := range sets {
		if s.seen {
			order = append(order, letter)
		}
	}
	sort.Slice(order, func(i, j int) bool { return letters.Less(order[i], order[j]) })

	form := model.FormModel{Sets: make([]model.Set, 0, len(order))}
	for _, letter := range order {
		s := sets[letter]
		set := s.set
		if s.variable {
			set.Type = model.SetTypeVariable
			set.Position = ""
		} else {
			set.Type = model.SetTypeConstant
			set.Translate = false
			set.Barcodes = sortedBarcodes(s.barcodes)
		}
		form.Sets = append(form.Sets, set)
	}
	return form
}

func sortedBarcodes(in map[string]*model.Barcode) []model.Barcode {
	if len(in) == 0 {
		return nil
	}
	keys := make([]string, 0, len(in))
	for letter := range in {
		keys = append(keys, letter)
	}
	sort.Slice(keys, func(i, j int) bool { return letters.Less(keys[i], keys[j]) })

	out := make([]model.Barcode, 0, len(keys))
	for _, letter := range keys {
		out = append(out, *in[letter])
	}
	return out
}
