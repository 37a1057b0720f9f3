package model

import (
	"fmt"

	"github.com/goliatone/go-barcodeform/pkg/letters"
)

// Display text shared by every renderer.
const (
	PositionLabel    = "Position in read: "
	BeforeLabel      = "Before sequence: "
	AfterLabel       = "After sequence: "
	TranslateLabel   = "Translate extracted sequences: "
	TranslateValue   = "Translate"
	BarcodeLabel     = "Barcode: "
	AddBarcodeLabel  = "Add barcode"
	AddConstantLabel = "Add constant set"
	AddVariableLabel = "Add variable set"

	NamePlaceholder     = "Name"
	SequencePlaceholder = "Sequence"
	PositionPlaceholder = "0-based position"
)

// SetLabel returns the caption written before a set's name field, e.g.
// "Set 2 (variable) name: ".
func SetLabel(letter string, t SetType) string {
	return fmt.Sprintf("Set %d (%s) name: ", letters.Ordinal(letter), t)
}
