package ident

import "strings"

// KeyKind classifies a submitted form field name.
type KeyKind string

const (
	KeyUnknown         KeyKind = ""
	KeySetName         KeyKind = "set.name"
	KeySetPosition     KeyKind = "set.pos"
	KeySetBefore       KeyKind = "set.before"
	KeySetAfter        KeyKind = "set.after"
	KeySetTranslate    KeyKind = "set.translate"
	KeySetMismatches   KeyKind = "set.mm"
	KeyBarcodeName     KeyKind = "barcode.name"
	KeyBarcodeSequence KeyKind = "barcode.seq"
)

// Key is a parsed form field name.
type Key struct {
	Kind    KeyKind
	Set     string
	Barcode string
}

// ParseKey maps an input name back to the element it was generated for.
// Names outside the scheme return a Key with KeyUnknown.
func ParseKey(name string) Key {
	parts := strings.Split(strings.TrimSpace(name), "_")

	switch len(parts) {
	case 2:
		if parts[1] == "translate" && isLetters(parts[0], upper) {
			return Key{Kind: KeySetTranslate, Set: parts[0]}
		}
	case 3:
		if parts[0] == "set" && isLetters(parts[1], upper) {
			kind := KeyUnknown
			switch parts[2] {
			case "name":
				kind = KeySetName
			case "pos":
				kind = KeySetPosition
			case "before":
				kind = KeySetBefore
			case "after":
				kind = KeySetAfter
			case "mm":
				kind = KeySetMismatches
			}
			if kind != KeyUnknown {
				return Key{Kind: kind, Set: parts[1]}
			}
			return Key{}
		}
		if isLetters(parts[0], upper) && isLetters(parts[1], lower) {
			switch parts[2] {
			case "name":
				return Key{Kind: KeyBarcodeName, Set: parts[0], Barcode: parts[1]}
			case "seq":
				return Key{Kind: KeyBarcodeSequence, Set: parts[0], Barcode: parts[1]}
			}
		}
	}
	return Key{}
}

type letterCase int

const (
	upper letterCase = iota
	lower
)

func isLetters(s string, c letterCase) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch c {
		case upper:
			if ch < 'A' || ch > 'Z' {
				return false
			}
		case lower:
			if ch < 'a' || ch > 'z' {
				return false
			}
		}
	}
	return true
}
