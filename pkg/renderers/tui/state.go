package tui

import (
	"github.com/goliatone/go-barcodeform/pkg/model"
)

// State holds the form being edited and the messages attached to its inputs.
type State struct {
	form   *model.FormModel
	errors map[string][]string
}

// NewState seeds the state with a copy of form and the given input errors.
func NewState(form model.FormModel, errs map[string][]string) *State {
	copied := cloneForm(form)
	return &State{
		form:   &copied,
		errors: cloneErrors(errs),
	}
}

// Form returns the form being edited (mutable).
func (s *State) Form() *model.FormModel {
	if s == nil {
		return nil
	}
	return s.form
}

// ErrorsFor returns the messages attached to an input name.
func (s *State) ErrorsFor(name string) []string {
	if s == nil || len(s.errors) == 0 {
		return nil
	}
	return s.errors[name]
}

// ClearErrors drops the messages for an input once it has been answered.
func (s *State) ClearErrors(name string) {
	if s == nil {
		return
	}
	delete(s.errors, name)
}

func cloneForm(form model.FormModel) model.FormModel {
	out := model.FormModel{Sets: make([]model.Set, len(form.Sets))}
	for i, set := range form.Sets {
		set.Barcodes = append([]model.Barcode(nil), set.Barcodes...)
		out.Sets[i] = set
	}
	if len(form.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(form.Metadata))
		for key, value := range form.Metadata {
			out.Metadata[key] = value
		}
	}
	return out
}

func cloneErrors(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for key, messages := range in {
		out[key] = append([]string(nil), messages...)
	}
	return out
}
