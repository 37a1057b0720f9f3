package dom

import (
	"fmt"

	"github.com/goliatone/go-barcodeform/pkg/model"
)

// Action values posted by the form's submit buttons.
const (
	ActionAddConstant = "add_constant"
	ActionAddVariable = "add_variable"
	ActionSubmit      = "submit"
	ActionField       = "action"
)

// FormID is the id of the form element in seeded documents.
const FormID = "barcodes"

// DefaultActionClass marks the off-screen submit input placed first in the
// form. Browsers press the first submit control when Enter is hit in a text
// field, so it has to be the submit action rather than a set's add-barcode
// button.
const DefaultActionClass = "default-action"

var seedMarkup = fmt.Sprintf(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Barcodes</title></head><body>
<form id="%[1]s" method="post" enctype="multipart/form-data">
<input type="submit" class="%[8]s" name="%[4]s" value="%[7]s" tabindex="-1" aria-hidden="true" style="position:absolute;left:-10000px">
<p class="upload">Barcodes file: <input type="file" id="file" name="file" accept=".yaml,.yml"></p>
<button type="submit" id="%[2]s" name="%[4]s" value="%[2]s">%[5]s</button>
<button type="submit" id="%[3]s" name="%[4]s" value="%[3]s">%[6]s</button>
<input type="submit" id="%[7]s" name="%[4]s" value="%[7]s">
</form>
</body></html>`,
	FormID, ActionAddConstant, ActionAddVariable, ActionField,
	model.AddConstantLabel, model.AddVariableLabel, ActionSubmit, DefaultActionClass)

// Seed returns an empty form page. Its last two buttons are the add-set
// controls, which every inserted set is placed in front of.
func Seed() *Document {
	doc, err := ParseString(seedMarkup)
	if err != nil {
		panic(err)
	}
	return doc
}
