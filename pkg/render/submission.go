package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/model"
)

// HiddenField represents a hidden form input emitted alongside the sets.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// MergeHiddenFields returns a copy of base with the provided fields applied.
// Empty names are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		out[field.Name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields returns the fields ordered by name for deterministic
// output. Empty names are dropped.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	result := make([]HiddenField, 0, len(fields))
	for name, value := range fields {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		result = append(result, HiddenField{Name: key, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// CarriedFields returns hidden inputs for set values that have no visible
// field, so they survive a round trip through the browser.
func CarriedFields(form model.FormModel) map[string]string {
	out := make(map[string]string)
	for _, set := range form.Sets {
		if value := strings.TrimSpace(set.Mismatches); value != "" {
			out[ident.ForSet(set.Letter).Mismatches()] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
