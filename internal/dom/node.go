package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/surfaces/internal/ports"
)

// Node wraps a non-element node: text, comment, doctype or the document itself.
type Node struct {
	node *html.Node
}

// Element reports false; Node never wraps an element.
func (n *Node) Element() (ports.Element, bool) {
	return nil, false
}

// Element wraps an element node. Wrappers are cheap and several may share one
// parse tree node.
type Element struct {
	node *html.Node
}

// Element returns the receiver.
func (e *Element) Element() (ports.Element, bool) {
	return e, true
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// ID returns the id attribute, or "" when absent.
func (e *Element) ID() string {
	id, _ := e.Attribute("id")
	return id
}

// ClassName returns the raw class attribute.
func (e *Element) ClassName() string {
	class, _ := e.Attribute("class")
	return class
}

// Classes returns the class attribute split on whitespace.
func (e *Element) Classes() []string {
	return strings.Fields(e.ClassName())
}

// Attribute returns the value of name. Names are matched case-insensitively, as
// the HTML parser lower-cases them.
func (e *Element) Attribute(name string) (string, bool) {
	key := strings.ToLower(name)
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttribute sets name to value, keeping the attribute's position when present.
func (e *Element) SetAttribute(name, value string) {
	key := strings.ToLower(name)
	for i, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute deletes name if present.
func (e *Element) RemoveAttribute(name string) {
	key := strings.ToLower(name)
	kept := e.node.Attr[:0]
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			continue
		}
		kept = append(kept, attr)
	}
	e.node.Attr = kept
}

// Children returns the direct children in order.
func (e *Element) Children() []ports.Node {
	var children []ports.Node
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, wrap(c))
	}
	return children
}

func wrap(n *html.Node) ports.Node {
	if n.Type == html.ElementNode {
		return &Element{node: n}
	}
	return &Node{node: n}
}

func unwrap(n ports.Node) (*html.Node, bool) {
	switch v := n.(type) {
	case *Element:
		if v == nil || v.node == nil {
			return nil, false
		}
		return v.node, true
	case *Node:
		if v == nil || v.node == nil {
			return nil, false
		}
		return v.node, true
	default:
		return nil, false
	}
}

var (
	_ ports.Element = (*Element)(nil)
	_ ports.Node    = (*Node)(nil)
)
