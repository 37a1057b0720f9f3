package testsupport

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/net/html"
)

// Control is the subset of an HTML form control tests usually assert on.
type Control struct {
	Tag   string
	ID    string
	Name  string
	Type  string
	Value string
	Class string
}

// MustParseHTML parses markup or fails the test.
func MustParseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// ElementIDs returns every id attribute in document order.
func ElementIDs(t *testing.T, markup string) []string {
	t.Helper()

	var ids []string
	walk(MustParseHTML(t, markup), func(n *html.Node) {
		if id := attr(n, "id"); id != "" {
			ids = append(ids, id)
		}
	})
	return ids
}

// Controls returns the input, button, and textarea elements in document order.
func Controls(t *testing.T, markup string) []Control {
	t.Helper()

	var out []Control
	walk(MustParseHTML(t, markup), func(n *html.Node) {
		switch n.Data {
		case "input", "button", "textarea", "select":
		default:
			return
		}
		out = append(out, Control{
			Tag:   n.Data,
			ID:    attr(n, "id"),
			Name:  attr(n, "name"),
			Type:  attr(n, "type"),
			Value: attr(n, "value"),
			Class: attr(n, "class"),
		})
	})
	return out
}

// TextDiff returns a readable character diff between want and got, or an
// empty string when they match.
func TextDiff(want, got string) string {
	if want == got {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	return dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs))
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
