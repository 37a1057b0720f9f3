package dom

import (
	"fmt"

	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/model"
)

// Build seeds a document and replays form through the builder, clicking the
// add controls in the same order a user would, then fills in the values.
func Build(form model.FormModel, options ...Option) (*Document, error) {
	b := NewBuilder(Seed(), options...)
	if err := b.Replay(form); err != nil {
		return nil, err
	}
	return b.Document(), nil
}

// Replay appends every set and barcode of form to the builder's document and
// copies the entered values into the matching inputs. Letters produced by the
// document must line up with the model; a mismatch is reported as an error.
func (b *Builder) Replay(form model.FormModel) error {
	for _, set := range form.Sets {
		letter, err := b.AppendSet(set.Type)
		if err != nil {
			return fmt.Errorf("dom: replay set %s: %w", set.Letter, err)
		}
		if letter != set.Letter {
			return fmt.Errorf("dom: replay set %s: document assigned %s", set.Letter, letter)
		}

		ids := ident.ForSet(letter)
		for i, barcode := range set.Barcodes {
			if i > 0 {
				next, err := b.AddBarcode(ids.More())
				if err != nil {
					return fmt.Errorf("dom: replay barcode %s%s: %w", letter, barcode.Letter, err)
				}
				if next != barcode.Letter {
					return fmt.Errorf("dom: replay barcode %s%s: document assigned %s", letter, barcode.Letter, next)
				}
			}
			bids := ids.Barcode(barcode.Letter)
			b.fill(bids.Name(), barcode.Name)
			b.fill(bids.Sequence(), barcode.Sequence)
		}

		b.fill(ids.Name(), set.Name)
		switch set.Type {
		case model.SetTypeConstant:
			b.fill(ids.Position(), set.Position)
		case model.SetTypeVariable:
			b.fill(ids.Before(), set.Before)
			b.fill(ids.After(), set.After)
			b.doc.SetChecked(ids.Translate(), set.Translate)
		}
	}
	return nil
}

func (b *Builder) fill(id, value string) {
	if value == "" {
		return
	}
	b.doc.SetValue(id, value)
}
