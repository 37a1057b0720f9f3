package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/model"
)

// FieldError is implemented by errors that point at a single form input.
type FieldError interface {
	error
	FieldName() string
}

// ErrorMapping splits errors into input-level and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors places each error next to the input it names when that input
// exists in form. Errors that name no input, or an input the form does not
// render, become form-level messages so nothing is lost.
func MapErrors(form model.FormModel, errs ...error) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	known := inputNames(form)

	for _, err := range errs {
		if err == nil {
			continue
		}
		message := strings.TrimSpace(err.Error())
		var fieldErr FieldError
		if errors.As(err, &fieldErr) {
			name := fieldErr.FieldName()
			if _, ok := known[name]; ok {
				if inner := errors.Unwrap(fieldErr); inner != nil {
					message = strings.TrimSpace(inner.Error())
				}
				mapping.Fields[name] = normalizeMessages(append(mapping.Fields[name], message))
				continue
			}
		}
		mapping.Form = append(mapping.Form, message)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates and normalises form-level messages, trimming
// whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func inputNames(form model.FormModel) map[string]struct{} {
	names := make(map[string]struct{})
	for _, set := range form.Sets {
		ids := ident.ForSet(set.Letter)
		names[ids.Name()] = struct{}{}
		switch set.Type {
		case model.SetTypeConstant:
			names[ids.Position()] = struct{}{}
		case model.SetTypeVariable:
			names[ids.Before()] = struct{}{}
			names[ids.After()] = struct{}{}
			names[ids.Translate()] = struct{}{}
		}
		for _, barcode := range set.Barcodes {
			bids := ids.Barcode(barcode.Letter)
			names[bids.Name()] = struct{}{}
			names[bids.Sequence()] = struct{}{}
		}
	}
	return names
}
