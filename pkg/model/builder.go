package model

import internalmodel "github.com/goliatone/go-barcodeform/internal/model"

// NewForm returns an empty form model. Sets and barcodes are added through the
// model's methods so letters always follow the list order.
func NewForm() *FormModel {
	return internalmodel.NewForm()
}

// Validate checks a form before it is exported. Every form is accepted.
func Validate(form *FormModel) error {
	return internalmodel.Validate(form)
}

// SetLabel returns the caption written before a set's name field.
func SetLabel(letter string, t SetType) string {
	return internalmodel.SetLabel(letter, t)
}
