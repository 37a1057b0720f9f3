package dom

import "errors"

var (
	// ErrMissingControls is returned when the document has fewer than two
	// buttons, so there is no anchor to insert a set in front of.
	ErrMissingControls = errors.New("dom: document needs two trailing control buttons")
	// ErrSetNotFound is returned when a trigger names a set with no inputs.
	ErrSetNotFound = errors.New("dom: set not found")
	// ErrBarcodeNotFound is returned when the last barcode fieldset of a set
	// cannot be located.
	ErrBarcodeNotFound = errors.New("dom: barcode fieldset not found")
	// ErrUnknownSetType is returned for set types other than constant and
	// variable.
	ErrUnknownSetType = errors.New("dom: unknown set type")
)
