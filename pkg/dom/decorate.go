package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Hidden is a hidden input written at the top of the form.
type Hidden struct {
	Name  string
	Value string
}

// SetText replaces the children of n with a single text node.
func SetText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(newText(text))
}

// Prepend inserts hidden inputs and, when messages is not empty, an error list
// as the first children of form.
func Prepend(form *html.Node, hidden []Hidden, messages []string) {
	var nodes []*html.Node
	for _, field := range hidden {
		nodes = append(nodes, newElement(atom.Input,
			"type", "hidden",
			"name", field.Name,
			"value", field.Value,
		))
	}
	if len(messages) > 0 {
		list := newElement(atom.Ul, "class", "errors")
		for _, message := range messages {
			item := newElement(atom.Li)
			item.AppendChild(newText(message))
			list.AppendChild(item)
		}
		nodes = append(nodes, list)
	}

	first := form.FirstChild
	for _, n := range nodes {
		form.InsertBefore(n, first)
	}
}
