package model

import internalmodel "github.com/goliatone/go-barcodeform/internal/model"

// SetType re-exports the internal set type enumeration.
type SetType = internalmodel.SetType

const (
	SetTypeConstant = internalmodel.SetTypeConstant
	SetTypeVariable = internalmodel.SetTypeVariable
)

type Barcode = internalmodel.Barcode
type Set = internalmodel.Set
type FormModel = internalmodel.FormModel

var (
	ErrUnknownSet  = internalmodel.ErrUnknownSet
	ErrNotConstant = internalmodel.ErrNotConstant
)

// Display text shared by renderers.
const (
	PositionLabel       = internalmodel.PositionLabel
	BeforeLabel         = internalmodel.BeforeLabel
	AfterLabel          = internalmodel.AfterLabel
	TranslateLabel      = internalmodel.TranslateLabel
	TranslateValue      = internalmodel.TranslateValue
	BarcodeLabel        = internalmodel.BarcodeLabel
	AddBarcodeLabel     = internalmodel.AddBarcodeLabel
	AddConstantLabel    = internalmodel.AddConstantLabel
	AddVariableLabel    = internalmodel.AddVariableLabel
	NamePlaceholder     = internalmodel.NamePlaceholder
	SequencePlaceholder = internalmodel.SequencePlaceholder
	PositionPlaceholder = internalmodel.PositionPlaceholder
)
