package vanilla

import (
	"strings"

	"github.com/goliatone/go-barcodeform/pkg/dom"
	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/render"
)

const (
	defaultTitle = "Barcodes"
	uploadLabel  = "Barcodes file: "
)

type pageView struct {
	Title          string            `json:"title"`
	Action         string            `json:"action,omitempty"`
	FormID         string            `json:"form_id"`
	ActionField    string            `json:"action_field"`
	DefaultAction  string            `json:"default_action"`
	DefaultClass   string            `json:"default_action_class"`
	StylesheetHref string            `json:"stylesheet_href,omitempty"`
	InlineStyles   string            `json:"inline_styles,omitempty"`
	UploadLabel    string            `json:"upload_label"`
	Hidden         []hiddenView      `json:"hidden,omitempty"`
	FormErrors     []string          `json:"form_errors,omitempty"`
	Sets           []setView         `json:"sets"`
	Controls       []controlView     `json:"controls"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type hiddenView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type fieldView struct {
	ID          string   `json:"id"`
	Class       string   `json:"class"`
	LabelClass  string   `json:"label_class,omitempty"`
	Caption     string   `json:"caption,omitempty"`
	Placeholder string   `json:"placeholder"`
	Value       string   `json:"value,omitempty"`
	Errors      []string `json:"errors,omitempty"`
}

type barcodeView struct {
	FieldsetID    string    `json:"fieldset_id"`
	FieldsetClass string    `json:"fieldset_class"`
	LabelClass    string    `json:"label_class"`
	Caption       string    `json:"caption"`
	Name          fieldView `json:"name"`
	Sequence      fieldView `json:"sequence"`
	Errors        []string  `json:"errors,omitempty"`
}

type checkboxView struct {
	ID      string `json:"id"`
	Caption string `json:"caption"`
	Value   string `json:"value"`
	Checked bool   `json:"checked,omitempty"`
}

type controlView struct {
	ID      string `json:"id"`
	Caption string `json:"caption,omitempty"`
	Button  bool   `json:"button,omitempty"`
}

type setView struct {
	Letter        string        `json:"letter"`
	Type          model.SetType `json:"type"`
	FieldsetID    string        `json:"fieldset_id"`
	FieldsetClass string        `json:"fieldset_class"`
	Name          fieldView     `json:"name"`
	Fields        []fieldView   `json:"fields,omitempty"`
	Barcodes      []barcodeView `json:"barcodes,omitempty"`
	Translate     *checkboxView `json:"translate,omitempty"`
	More          *controlView  `json:"more,omitempty"`
}

func buildPage(form model.FormModel, opts render.RenderOptions, classes ident.ClassStyle) pageView {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultTitle
	}

	page := pageView{
		Title:         title,
		Action:        strings.TrimSpace(opts.Action),
		FormID:        dom.FormID,
		ActionField:   dom.ActionField,
		DefaultAction: dom.ActionSubmit,
		DefaultClass:  dom.DefaultActionClass,
		UploadLabel:   uploadLabel,
		FormErrors:    opts.FormErrors,
		Sets:          make([]setView, 0, len(form.Sets)),
		Metadata:      form.Metadata,
		Controls: []controlView{
			{ID: dom.ActionAddConstant, Caption: model.AddConstantLabel, Button: true},
			{ID: dom.ActionAddVariable, Caption: model.AddVariableLabel, Button: true},
			{ID: dom.ActionSubmit},
		},
	}
	hidden := render.MergeHiddenFields(render.CarriedFields(form), render.SortedHiddenFields(opts.Hidden)...)
	for _, field := range render.SortedHiddenFields(hidden) {
		page.Hidden = append(page.Hidden, hiddenView{Name: field.Name, Value: field.Value})
	}

	for _, set := range form.Sets {
		page.Sets = append(page.Sets, buildSet(set, opts.Errors, classes))
	}
	return page
}

func buildSet(set model.Set, errs map[string][]string, classes ident.ClassStyle) setView {
	ids := ident.ForSet(set.Letter)

	view := setView{
		Letter:        set.Letter,
		Type:          set.Type,
		FieldsetID:    ids.Fieldset(),
		FieldsetClass: ids.FieldsetClass(),
		Name: fieldView{
			ID:          ids.Name(),
			Class:       ids.NameClass(),
			LabelClass:  ids.LabelClass(classes),
			Caption:     model.SetLabel(set.Letter, set.Type),
			Placeholder: model.NamePlaceholder,
			Value:       set.Name,
			Errors:      errs[ids.Name()],
		},
	}

	switch set.Type {
	case model.SetTypeConstant:
		view.Fields = []fieldView{{
			ID:          ids.Position(),
			Class:       ids.PositionClass(),
			LabelClass:  ids.PositionLabelClass(classes),
			Caption:     model.PositionLabel,
			Placeholder: model.PositionPlaceholder,
			Value:       set.Position,
			Errors:      errs[ids.Position()],
		}}
		for _, barcode := range set.Barcodes {
			view.Barcodes = append(view.Barcodes, buildBarcode(ids.Barcode(barcode.Letter), barcode, errs, classes))
		}
		view.More = &controlView{ID: ids.More(), Caption: model.AddBarcodeLabel, Button: true}
	case model.SetTypeVariable:
		view.Fields = []fieldView{
			{
				ID:          ids.Before(),
				Class:       ids.BeforeClass(),
				LabelClass:  ids.BeforeLabelClass(classes),
				Caption:     model.BeforeLabel,
				Placeholder: model.SequencePlaceholder,
				Value:       set.Before,
				Errors:      errs[ids.Before()],
			},
			{
				ID:          ids.After(),
				Class:       ids.AfterClass(),
				LabelClass:  ids.AfterLabelClass(classes),
				Caption:     model.AfterLabel,
				Placeholder: model.SequencePlaceholder,
				Value:       set.After,
				Errors:      errs[ids.After()],
			},
		}
		view.Translate = &checkboxView{
			ID:      ids.Translate(),
			Caption: model.TranslateLabel,
			Value:   model.TranslateValue,
			Checked: set.Translate,
		}
	}
	return view
}

func buildBarcode(ids ident.Barcode, barcode model.Barcode, errs map[string][]string, classes ident.ClassStyle) barcodeView {
	var messages []string
	messages = append(messages, errs[ids.Name()]...)
	messages = append(messages, errs[ids.Sequence()]...)

	return barcodeView{
		FieldsetID:    ids.Fieldset(),
		FieldsetClass: ids.FieldsetClass(classes),
		LabelClass:    ids.LabelClass(classes),
		Caption:       model.BarcodeLabel,
		Name: fieldView{
			ID:          ids.Name(),
			Class:       ids.NameClass(),
			Placeholder: model.NamePlaceholder,
			Value:       barcode.Name,
		},
		Sequence: fieldView{
			ID:          ids.Sequence(),
			Class:       ids.SequenceClass(),
			Placeholder: model.SequencePlaceholder,
			Value:       barcode.Sequence,
		},
		Errors: messages,
	}
}
