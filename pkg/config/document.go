// Package config reads and writes the barcodes file consumed by the counting
// pipeline. The file is a YAML list in which every entry maps a set name to
// its settings:
//
//	- umi:
//	    type: constant
//	    start: 0
//	    mismatches: 0
//	    barcodes:
//	      bc1: ACGT
//	- insert:
//	    type: variable
//	    before: AAA
//	    after: TTT
//	    translate: true
package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-barcodeform/pkg/model"
)

var (
	// ErrInvalidPosition is returned when a constant set's read position is not
	// a non-negative integer.
	ErrInvalidPosition = errors.New("config: read position must be a non-negative integer")
	// ErrDuplicateBarcode is returned when two barcodes in a set share a name.
	ErrDuplicateBarcode = errors.New("config: duplicate barcode name")
	// ErrDuplicateSet is returned when two sets share a name.
	ErrDuplicateSet = errors.New("config: duplicate set name")
	// ErrInvalidMismatches is returned when a mismatch allowance is not a
	// non-negative integer.
	ErrInvalidMismatches = errors.New("config: mismatches must be a non-negative integer")
	// ErrBarcodeLength is returned when the sequences of a constant set differ
	// in length.
	ErrBarcodeLength = errors.New("config: all barcodes in a set must be the same length")
	// ErrMalformed is returned when a barcodes file does not follow the layout.
	ErrMalformed = errors.New("config: malformed barcodes file")
)

// Entry is one named barcode in a constant set.
type Entry struct {
	Name     string
	Sequence string
}

// SetConfig describes one set in the barcodes file.
type SetConfig struct {
	Name       string
	Type       model.SetType
	Start      int
	Mismatches int
	Barcodes   []Entry
	Before     string
	After      string
	Translate  bool
}

// Document is the full barcodes file, in set order.
type Document struct {
	Sets []SetConfig
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// Marshal returns doc as YAML bytes.
func Marshal(doc Document) ([]byte, error) {
	var b strings.Builder
	if err := Encode(&b, doc); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// Decode reads a barcodes file.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("config: decode: %w", err)
	}
	return doc, nil
}

// Unmarshal parses YAML bytes into a Document.
func Unmarshal(data []byte) (Document, error) {
	return Decode(strings.NewReader(string(data)))
}

// MarshalYAML keeps set and barcode order stable in the output.
func (d Document) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, set := range d.Sets {
		body := &yaml.Node{Kind: yaml.MappingNode}
		appendPair(body, "type", scalar(string(set.Type)))

		switch set.Type {
		case model.SetTypeConstant:
			appendPair(body, "start", intScalar(set.Start))
			appendPair(body, "mismatches", intScalar(set.Mismatches))
			barcodes := &yaml.Node{Kind: yaml.MappingNode}
			for _, entry := range set.Barcodes {
				appendPair(barcodes, entry.Name, scalar(entry.Sequence))
			}
			appendPair(body, "barcodes", barcodes)
		case model.SetTypeVariable:
			appendPair(body, "before", scalar(set.Before))
			appendPair(body, "after", scalar(set.After))
			appendPair(body, "translate", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(set.Translate)})
			if set.Mismatches > 0 {
				appendPair(body, "mismatches", intScalar(set.Mismatches))
			}
		default:
			return nil, fmt.Errorf("config: set %q has unknown type %q", set.Name, set.Type)
		}

		item := &yaml.Node{Kind: yaml.MappingNode}
		appendPair(item, set.Name, body)
		seq.Content = append(seq.Content, item)
	}
	return seq, nil
}

// UnmarshalYAML reads the list-of-single-key-maps layout.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: expected a list of sets (line %d)", ErrMalformed, node.Line)
	}

	sets := make([]SetConfig, 0, len(node.Content))
	seen := make(map[string]struct{}, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			return fmt.Errorf("%w: each list entry must map one set name to its settings (line %d)", ErrMalformed, item.Line)
		}
		set, err := decodeSet(item.Content[0].Value, item.Content[1])
		if err != nil {
			return err
		}
		if _, dup := seen[set.Name]; dup {
			return fmt.Errorf("%w: %w %q", ErrMalformed, ErrDuplicateSet, set.Name)
		}
		seen[set.Name] = struct{}{}
		sets = append(sets, set)
	}
	d.Sets = sets
	return nil
}

type rawSet struct {
	Type       string    `yaml:"type"`
	Start      *int      `yaml:"start"`
	Mismatches *int      `yaml:"mismatches"`
	Barcodes   yaml.Node `yaml:"barcodes"`
	Before     *string   `yaml:"before"`
	After      *string   `yaml:"after"`
	Translate  yaml.Node `yaml:"translate"`
}

func decodeSet(name string, node *yaml.Node) (SetConfig, error) {
	var raw rawSet
	if err := node.Decode(&raw); err != nil {
		return SetConfig{}, fmt.Errorf("%w: set %q: %v", ErrMalformed, name, err)
	}

	set := SetConfig{
		Name: name,
		Type: model.SetType(strings.ToLower(strings.TrimSpace(raw.Type))),
	}
	if raw.Mismatches != nil {
		set.Mismatches = *raw.Mismatches
		if set.Mismatches < 0 {
			return SetConfig{}, fmt.Errorf("%w: set %q: %w", ErrMalformed, name, ErrInvalidMismatches)
		}
	}

	switch set.Type {
	case model.SetTypeConstant:
		if raw.Barcodes.Kind != yaml.MappingNode {
			return SetConfig{}, fmt.Errorf("%w: constant set %q needs a barcodes map", ErrMalformed, name)
		}
		if raw.Start == nil {
			return SetConfig{}, fmt.Errorf("%w: constant set %q needs a start position", ErrMalformed, name)
		}
		set.Start = *raw.Start
		if set.Start < 0 {
			return SetConfig{}, fmt.Errorf("%w: set %q", ErrInvalidPosition, name)
		}
		for i := 0; i+1 < len(raw.Barcodes.Content); i += 2 {
			set.Barcodes = append(set.Barcodes, Entry{
				Name:     raw.Barcodes.Content[i].Value,
				Sequence: raw.Barcodes.Content[i+1].Value,
			})
		}
		if err := checkBarcodeLengths(set); err != nil {
			return SetConfig{}, err
		}
	case model.SetTypeVariable:
		if raw.Before == nil || raw.After == nil {
			return SetConfig{}, fmt.Errorf("%w: variable set %q needs before and after sequences", ErrMalformed, name)
		}
		set.Before = *raw.Before
		set.After = *raw.After
		translate, err := interpretBool(&raw.Translate)
		if err != nil {
			return SetConfig{}, fmt.Errorf("%w: set %q: %v", ErrMalformed, name, err)
		}
		set.Translate = translate
	default:
		return SetConfig{}, fmt.Errorf("%w: set %q has unknown type %q", ErrMalformed, name, raw.Type)
	}
	return set, nil
}

// checkBarcodeLengths requires equal length sequences and no more mismatches
// than a sequence has bases.
func checkBarcodeLengths(set SetConfig) error {
	if len(set.Barcodes) == 0 {
		return nil
	}
	width := len(set.Barcodes[0].Sequence)
	for _, entry := range set.Barcodes[1:] {
		if len(entry.Sequence) != width {
			return fmt.Errorf("%w: set %q: %w", ErrMalformed, set.Name, ErrBarcodeLength)
		}
	}
	if set.Mismatches > width {
		return fmt.Errorf("%w: set %q allows %d mismatches in %d base barcodes", ErrMalformed, set.Name, set.Mismatches, width)
	}
	return nil
}

// interpretBool reads the translate flag. A missing value is false. Quoted
// strings must spell true or false; plain scalars also take the YAML 1.1
// yes/no/on/off forms that hand-edited files use.
func interpretBool(node *yaml.Node) (bool, error) {
	if node.Kind == 0 {
		return false, nil
	}
	if node.Kind != yaml.ScalarNode {
		return false, fmt.Errorf("translate must be true or false")
	}
	value := strings.ToLower(strings.TrimSpace(node.Value))
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) == 0 {
		switch value {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off":
			return false, nil
		}
	}
	return false, fmt.Errorf("could not understand %q in translate field, use true or false", node.Value)
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, scalar(key), value)
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func intScalar(value int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(value)}
}
