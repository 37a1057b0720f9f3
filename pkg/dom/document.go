// Package dom builds barcode set fieldsets directly on an HTML node tree.
//
// It mirrors the page-level handler contract of the form: letters are read
// back from the ids already in the document, new fieldsets are spliced in next
// to their siblings, and the trailing control buttons always stay last. Use
// the model package when the letters should come from an explicit list; use
// this package when the document itself is the state.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document wraps the root of a parsed or seeded HTML tree.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Root exposes the underlying node tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("dom: render document: %w", err)
	}
	return nil
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// ElementByID returns the first element whose id matches, or nil.
func (d *Document) ElementByID(id string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && Attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ElementsByTagName returns every element with the tag name in document
// order.
func (d *Document) ElementsByTagName(tag string) []*html.Node {
	var out []*html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ElementsByClassName returns every element carrying all of the
// space-separated class names, in document order.
func (d *Document) ElementsByClassName(classNames string) []*html.Node {
	tokens := strings.Fields(classNames)
	if len(tokens) == 0 {
		return nil
	}
	var out []*html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasClasses(n, tokens) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// QuerySelectorAll returns elements matching "tag.class" in document order.
// Either part may be empty.
func (d *Document) QuerySelectorAll(tag, class string) []*html.Node {
	var tokens []string
	if class != "" {
		tokens = []string{class}
	}
	var out []*html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if tag != "" && n.Data != tag {
			return true
		}
		if hasClasses(n, tokens) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// SetValue sets the value attribute of the element with the given id. It
// reports whether the element exists.
func (d *Document) SetValue(id, value string) bool {
	n := d.ElementByID(id)
	if n == nil {
		return false
	}
	SetAttr(n, "value", value)
	return true
}

// SetChecked toggles the checked attribute of the element with the given id.
func (d *Document) SetChecked(id string, checked bool) bool {
	n := d.ElementByID(id)
	if n == nil {
		return false
	}
	if checked {
		SetAttr(n, "checked", "checked")
	} else {
		RemoveAttr(n, "checked")
	}
	return true
}

// Attr returns the value of the attribute key, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr drops an attribute if present.
func RemoveAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}

func newElement(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func newText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func insertAfter(node, existing *html.Node) {
	existing.Parent.InsertBefore(node, existing.NextSibling)
}

func hasClasses(n *html.Node, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	have := strings.Fields(Attr(n, "class"))
	for _, want := range tokens {
		found := false
		for _, got := range have {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// walk visits n and its descendants depth-first in document order until fn
// returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
