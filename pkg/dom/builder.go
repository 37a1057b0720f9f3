package dom

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-barcodeform/pkg/ident"
	"github.com/goliatone/go-barcodeform/pkg/letters"
	"github.com/goliatone/go-barcodeform/pkg/model"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLiteralClasses writes label and fieldset class lists exactly as the
// legacy page did, template text included.
func WithLiteralClasses() Option {
	return func(b *Builder) {
		b.classes = ident.LiteralClasses
	}
}

// WithLogger routes builder tracing to logger.
func WithLogger(logger hclog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Builder mutates a Document in response to add-set and add-barcode events.
type Builder struct {
	doc     *Document
	classes ident.ClassStyle
	logger  hclog.Logger
}

// NewBuilder returns a Builder operating on doc.
func NewBuilder(doc *Document, options ...Option) *Builder {
	b := &Builder{
		doc:     doc,
		classes: ident.InterpolatedClasses,
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Document returns the document being built.
func (b *Builder) Document() *Document {
	return b.doc
}

// NextSetLetter reads the letter of the last set fieldset in the document and
// returns the one after it, or "A" when there are none.
func (b *Builder) NextSetLetter() string {
	sets := b.doc.ElementsByClassName("group set")
	if len(sets) == 0 {
		return letters.FirstSet
	}
	last := ident.Segment(Attr(sets[len(sets)-1], "id"), 0)
	return letters.Next(last)
}

// CreateNewSet builds an unattached set fieldset holding the name field and
// returns it with its letter. Callers append type-specific fields and then
// pass the fieldset to AddSet.
func (b *Builder) CreateNewSet(t model.SetType) (string, *html.Node) {
	letter := b.NextSetLetter()
	ids := ident.ForSet(letter)

	b.logger.Debug("creating set", "type", t, "set", letter)

	fieldset := newElement(atom.Fieldset,
		"id", ids.Fieldset(),
		"class", ids.FieldsetClass(),
	)

	label := newElement(atom.P, "class", ids.LabelClass(b.classes))
	label.AppendChild(newText(model.SetLabel(letter, t)))
	label.AppendChild(newElement(atom.Input,
		"type", "text",
		"id", ids.Name(),
		"class", ids.NameClass(),
		"name", ids.Name(),
		"placeholder", model.NamePlaceholder,
	))
	fieldset.AppendChild(label)

	return letter, fieldset
}

// AddSet inserts a set fieldset in front of the second-to-last button, which
// keeps the two trailing control buttons at the end of the form.
func (b *Builder) AddSet(set *html.Node) error {
	buttons := b.doc.ElementsByTagName("button")
	if len(buttons) < 2 {
		return ErrMissingControls
	}
	anchor := buttons[len(buttons)-2]
	anchor.Parent.InsertBefore(set, anchor)
	return nil
}

// AddConstSet appends a constant set with its position field, the first
// barcode, and the add-barcode trigger. It returns the new set letter.
func (b *Builder) AddConstSet() (string, error) {
	letter, set := b.CreateNewSet(model.SetTypeConstant)
	ids := ident.ForSet(letter)

	set.AppendChild(b.textField(
		ids.PositionLabelClass(b.classes), model.PositionLabel,
		ids.Position(), ids.PositionClass(), model.PositionPlaceholder,
	))
	set.AppendChild(b.CreateBarcode(letter, letters.FirstBarcode))

	more := newElement(atom.Button,
		"id", ids.More(),
		"type", "submit",
		"name", ActionField,
		"value", ids.More(),
	)
	more.AppendChild(newText(model.AddBarcodeLabel))
	set.AppendChild(more)

	if err := b.AddSet(set); err != nil {
		return "", err
	}
	return letter, nil
}

// AddVarSet appends a variable set with its flanking sequence fields and the
// translate checkbox. It returns the new set letter.
func (b *Builder) AddVarSet() (string, error) {
	letter, set := b.CreateNewSet(model.SetTypeVariable)
	ids := ident.ForSet(letter)

	set.AppendChild(b.textField(
		ids.BeforeLabelClass(b.classes), model.BeforeLabel,
		ids.Before(), ids.BeforeClass(), model.SequencePlaceholder,
	))
	set.AppendChild(b.textField(
		ids.AfterLabelClass(b.classes), model.AfterLabel,
		ids.After(), ids.AfterClass(), model.SequencePlaceholder,
	))

	label := newElement(atom.Label, "for", ids.Translate())
	label.AppendChild(newText(model.TranslateLabel))
	set.AppendChild(label)
	set.AppendChild(newElement(atom.Input,
		"type", "checkbox",
		"id", ids.Translate(),
		"name", ids.Translate(),
		"value", model.TranslateValue,
	))

	if err := b.AddSet(set); err != nil {
		return "", err
	}
	return letter, nil
}

// AppendSet dispatches to AddConstSet or AddVarSet.
func (b *Builder) AppendSet(t model.SetType) (string, error) {
	switch t {
	case model.SetTypeConstant:
		return b.AddConstSet()
	case model.SetTypeVariable:
		return b.AddVarSet()
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSetType, t)
	}
}

// CreateBarcode builds an unattached barcode fieldset with its name and
// sequence inputs.
func (b *Builder) CreateBarcode(setLetter, letter string) *html.Node {
	ids := ident.ForSet(setLetter).Barcode(letter)

	fieldset := newElement(atom.Fieldset,
		"id", ids.Fieldset(),
		"class", ids.FieldsetClass(b.classes),
	)
	label := newElement(atom.P, "class", ids.LabelClass(b.classes))
	label.AppendChild(newText(model.BarcodeLabel))
	label.AppendChild(newElement(atom.Input,
		"type", "text",
		"name", ids.Name(),
		"placeholder", model.NamePlaceholder,
		"class", ids.NameClass(),
		"id", ids.Name(),
	))
	label.AppendChild(newElement(atom.Input,
		"type", "text",
		"name", ids.Sequence(),
		"placeholder", model.SequencePlaceholder,
		"class", ids.SequenceClass(),
		"id", ids.Sequence(),
	))
	fieldset.AppendChild(label)
	return fieldset
}

// AddBarcode handles a click on a set's add-barcode trigger. The last input
// tagged with the set letter names the last barcode; the next barcode is
// inserted directly after that barcode's fieldset so the trigger stays last.
// It returns the new barcode letter.
func (b *Builder) AddBarcode(triggerID string) (string, error) {
	setLetter := ident.TriggerSet(triggerID)

	inputs := b.doc.QuerySelectorAll("input", setLetter)
	if setLetter == "" || len(inputs) == 0 {
		return "", fmt.Errorf("%w: %q", ErrSetNotFound, triggerID)
	}
	last := ident.Segment(Attr(inputs[len(inputs)-1], "id"), 1)
	next := letters.Next(last)

	anchorID := ident.ForSet(setLetter).Barcode(last).Fieldset()
	anchor := b.doc.ElementByID(anchorID)
	if anchor == nil || anchor.Parent == nil {
		return "", fmt.Errorf("%w: %q", ErrBarcodeNotFound, anchorID)
	}

	b.logger.Debug("adding barcode", "set", setLetter, "barcode", next)

	insertAfter(b.CreateBarcode(setLetter, next), anchor)
	return next, nil
}

// ValidateForm accepts the form unconditionally.
func (b *Builder) ValidateForm() bool {
	return true
}

func (b *Builder) textField(labelClass, caption, id, class, placeholder string) *html.Node {
	label := newElement(atom.P, "class", labelClass)
	label.AppendChild(newText(caption))
	label.AppendChild(newElement(atom.Input,
		"type", "text",
		"id", id,
		"class", class,
		"name", id,
		"placeholder", placeholder,
	))
	return label
}
