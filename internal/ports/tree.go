package ports

// Node is any node of a document tree. Only element nodes carry attributes.
type Node interface {
	// Element returns the node as an element, or false for text, comment and
	// document nodes.
	Element() (Element, bool)
}

// Element is a node with attributes. The class list is the "class" attribute.
type Element interface {
	Node
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// Tree finds elements in a document.
type Tree interface {
	// QueryAll returns every element strictly below root that carries attr, in
	// document order. A nil root means the whole document.
	QueryAll(root Node, attr string) []Element
}

// MutationRecord lists the nodes inserted by one structural change.
type MutationRecord struct {
	Added []Node
}

// MutationHandler receives one batch of records. Batches are delivered serially.
type MutationHandler func(records []MutationRecord)

// Notifier reports structural insertions into the observed document.
type Notifier interface {
	ObserveInsertions(handler MutationHandler) (Subscription, error)
}

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving batches.
type Subscription interface {
	Unsubscribe()
}
