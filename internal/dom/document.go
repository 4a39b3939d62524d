// Package dom is an in-memory HTML document that implements the tree query and
// insertion notification ports on top of golang.org/x/net/html.
//
// A Document is not safe for concurrent use. Insertion records are queued and
// delivered when the owner calls Flush, the equivalent of a host's micro-task
// checkpoint.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/surfaces/internal/ports"
)

var (
	// ErrForeignNode is returned when a node was not created by this package.
	ErrForeignNode = errors.New("dom: node does not belong to this package")
	// ErrAttached is returned when appending a node that already has a parent.
	ErrAttached = errors.New("dom: node is already attached")
	// ErrNotChild is returned when removing a node from a parent it is not under.
	ErrNotChild = errors.New("dom: node is not a child of parent")
)

// Document is a parsed HTML document.
type Document struct {
	root      *html.Node
	observers []*observer
	nextID    int
	flushing  bool
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses markup held in memory.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// New returns an empty document with html, head and body elements.
func New() *Document {
	doc, err := ParseString("")
	if err != nil {
		panic("dom: parse empty document: " + err.Error())
	}
	return doc
}

// Root returns the document node.
func (d *Document) Root() ports.Node {
	return &Node{node: d.root}
}

// Body returns the body element, or nil for documents without one.
func (d *Document) Body() *Element {
	if n := d.body(); n != nil {
		return &Element{node: n}
	}
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return &Element{node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// CreateText returns a detached text node.
func (d *Document) CreateText(text string) *Node {
	return &Node{node: &html.Node{Type: html.TextNode, Data: text}}
}

// CreateComment returns a detached comment node.
func (d *Document) CreateComment(text string) *Node {
	return &Node{node: &html.Node{Type: html.CommentNode, Data: text}}
}

// AppendChild attaches child as the last child of parent and queues an insertion
// record when parent is inside the body.
func (d *Document) AppendChild(parent, child ports.Node) error {
	p, ok := unwrap(parent)
	if !ok {
		return ErrForeignNode
	}
	c, ok := unwrap(child)
	if !ok {
		return ErrForeignNode
	}
	if c.Parent != nil {
		return ErrAttached
	}

	p.AppendChild(c)
	d.recordInsertion(p, []*html.Node{c})
	return nil
}

// AppendHTML parses markup in the context of parent, appends the resulting nodes
// and queues a single insertion record for all of them.
func (d *Document) AppendHTML(parent *Element, markup string) ([]ports.Node, error) {
	if parent == nil || parent.node == nil {
		return nil, ErrForeignNode
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), parent.node)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	added := make([]ports.Node, 0, len(nodes))
	for _, n := range nodes {
		parent.node.AppendChild(n)
		added = append(added, wrap(n))
	}
	d.recordInsertion(parent.node, nodes)
	return added, nil
}

// RemoveChild detaches child from parent. Removals are not reported to observers.
func (d *Document) RemoveChild(parent, child ports.Node) error {
	p, ok := unwrap(parent)
	if !ok {
		return ErrForeignNode
	}
	c, ok := unwrap(child)
	if !ok {
		return ErrForeignNode
	}
	if c.Parent != p {
		return ErrNotChild
	}
	p.RemoveChild(c)
	return nil
}

// GetElementByID returns the first element in document order whose id matches.
func (d *Document) GetElementByID(id string) *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		for _, attr := range n.Attr {
			if attr.Namespace == "" && attr.Key == "id" && attr.Val == id {
				found = n
				return false
			}
		}
		return true
	})
	if found == nil {
		return nil
	}
	return &Element{node: found}
}

// QueryAll implements ports.Tree.
func (d *Document) QueryAll(root ports.Node, attr string) []ports.Element {
	start := d.root
	if root != nil {
		n, ok := unwrap(root)
		if !ok {
			return nil
		}
		start = n
	}

	key := strings.ToLower(attr)
	var matches []ports.Element
	for c := start.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(n *html.Node) bool {
			if n.Type == html.ElementNode && hasAttr(n, key) {
				matches = append(matches, &Element{node: n})
			}
			return true
		})
	}
	return matches
}

func (d *Document) body() *html.Node {
	var body *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return false
		}
		return true
	})
	return body
}

// walk visits n and its descendants in document order until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return true
		}
	}
	return false
}

var _ ports.Tree = (*Document)(nil)
