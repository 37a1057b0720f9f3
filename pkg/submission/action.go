package submission

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-barcodeform/pkg/ident"
)

// ActionKind names the control that submitted the form.
type ActionKind string

const (
	ActionNone        ActionKind = ""
	ActionAddConstant ActionKind = "add_constant"
	ActionAddVariable ActionKind = "add_variable"
	ActionAddBarcode  ActionKind = "add_barcode"
	ActionSubmit      ActionKind = "submit"
)

// ActionField is the name shared by every submit control.
const ActionField = "action"

// Action is a decoded button press. Set is filled for ActionAddBarcode.
type Action struct {
	Kind    ActionKind
	Set     string
	Trigger string
}

// ParseAction decodes the pressed control. Add-barcode triggers post their
// own id ("A_more"); a missing action counts as a plain submit.
func ParseAction(values url.Values) Action {
	raw := strings.TrimSpace(values.Get(ActionField))
	switch raw {
	case "", string(ActionSubmit):
		return Action{Kind: ActionSubmit}
	case string(ActionAddConstant):
		return Action{Kind: ActionAddConstant}
	case string(ActionAddVariable):
		return Action{Kind: ActionAddVariable}
	}

	if strings.HasSuffix(raw, "_more") {
		set := ident.TriggerSet(raw)
		if set != "" && ident.ForSet(set).More() == raw {
			return Action{Kind: ActionAddBarcode, Set: set, Trigger: raw}
		}
	}
	return Action{Kind: ActionNone, Trigger: raw}
}
