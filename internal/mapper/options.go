package mapper

import "github.com/alexisbeaulieu97/surfaces/internal/ports"

// DefaultAttribute is the marker attribute read when Options.Attribute is empty.
const DefaultAttribute = "data-surface"

// Options controls how marker attributes are translated. The zero value keeps
// existing classes and watches for insertions in Init.
type Options struct {
	// Attribute names the marker attribute. Empty means DefaultAttribute.
	Attribute string
	// RemoveAttribute strips the marker once the element has been processed.
	RemoveAttribute bool
	// DiscardExisting replaces the classes the element already carries.
	DiscardExisting bool
	// Root scopes batch processing. Nil means the whole document.
	Root ports.Node
	// DisableAutoProcess skips the insertion watcher in Init.
	DisableAutoProcess bool
}

// DefaultOptions returns the options used when callers have no preference.
func DefaultOptions() Options {
	return Options{Attribute: DefaultAttribute}
}

func (o Options) attribute() string {
	if o.Attribute == "" {
		return DefaultAttribute
	}
	return o.Attribute
}

func (o Options) preserveExisting() bool {
	return !o.DiscardExisting
}

func (o Options) autoProcess() bool {
	return !o.DisableAutoProcess
}
