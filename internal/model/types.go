package model

// SetType distinguishes how the pipeline locates a set of barcodes in a read.
type SetType string

const (
	// SetTypeConstant sets list every barcode and sit at a fixed read position.
	SetTypeConstant SetType = "constant"
	// SetTypeVariable sets are extracted from between two flanking sequences.
	SetTypeVariable SetType = "variable"
)

// Valid reports whether t is one of the known set types.
func (t SetType) Valid() bool {
	return t == SetTypeConstant || t == SetTypeVariable
}

// Barcode is a single name/sequence pair inside a constant set. Both values
// are free text as entered by the user.
type Barcode struct {
	Letter   string `json:"letter"`
	Name     string `json:"name,omitempty"`
	Sequence string `json:"sequence,omitempty"`
}

// Set groups barcodes under one letter. Position applies to constant sets;
// Before, After, and Translate apply to variable sets.
type Set struct {
	Letter    string    `json:"letter"`
	Type      SetType   `json:"type"`
	Name      string    `json:"name,omitempty"`
	Position  string    `json:"position,omitempty"`
	Before    string    `json:"before,omitempty"`
	After     string    `json:"after,omitempty"`
	Translate bool      `json:"translate,omitempty"`
	Barcodes  []Barcode `json:"barcodes,omitempty"`

	// Mismatches carries the allowance read from an uploaded file. The form
	// has no visible field for it; blank means the configured default.
	Mismatches string `json:"mismatches,omitempty"`
}

// FormModel is the ordered list of sets a renderer turns into markup. The
// list is the source of truth for letters; nothing is re-derived from output.
type FormModel struct {
	Sets     []Set             `json:"sets"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
