// Package vocabulary holds the closed token sets that classify presentation classes.
package vocabulary

// Category identifies which vocabulary a class token belongs to.
type Category int

const (
	Other Category = iota
	Component
	Finish
	Density
	Bloom
	Material
	Shape
)

func (c Category) String() string {
	switch c {
	case Component:
		return "component"
	case Finish:
		return "finish"
	case Density:
		return "density"
	case Bloom:
		return "bloom"
	case Material:
		return "material"
	case Shape:
		return "shape"
	default:
		return "other"
	}
}

var (
	components = []string{"button", "chip", "surface", "code", "block"}

	finishes = []string{
		"transparent", "milky", "tinted", "liquid", "water",
		"metallic", "polished", "frosted", "glossy",
		"anodized", "etched", "trimmed", "banded", "flat",
	}

	densities = []string{"dense", "packed"}

	blooms = []string{"bloom-weak", "bloom-mild", "bloom-strong"}

	materials = []string{
		"default-primary", "default-secondary", "default-contrast",
		"onyx", "jade", "emerald", "sapphire", "ruby", "gold", "topaz",
		"diamond", "copper", "silver", "carbon", "glass",
		"amber", "amethyst", "matrix", "black-hole", "tron", "scifi",
	}

	shapes = []string{
		"pill", "round", "window", "tile", "gem",
		"plaque", "chevron-start", "chevron-middle",
	}

	internal = []string{"menu", "surface", "overlay"}

	displayOrder = []Category{Finish, Density, Bloom, Material, Shape}

	index = buildIndex()
)

// Internal lists the structural tokens that never appear in exported class stacks.
func Internal() []string {
	return append([]string(nil), internal...)
}

// DisplayOrder lists the categories in the order the copy helper renders them.
func DisplayOrder() []Category {
	return append([]Category(nil), displayOrder...)
}

// Members returns a copy of the tokens in the category, in listing order.
// Other has no members.
func Members(c Category) []string {
	var src []string
	switch c {
	case Component:
		src = components
	case Finish:
		src = finishes
	case Density:
		src = densities
	case Bloom:
		src = blooms
	case Material:
		src = materials
	case Shape:
		src = shapes
	}
	return append([]string(nil), src...)
}

// Is reports whether token belongs to the category.
func Is(c Category, token string) bool {
	cats, ok := index[token]
	if !ok {
		return false
	}
	for _, cat := range cats {
		if cat == c {
			return true
		}
	}
	return false
}

// Categorize returns the display category of token. Display categories win over
// Component so that a token is always placed where the copy helper would put it.
func Categorize(token string) Category {
	for _, c := range displayOrder {
		if Is(c, token) {
			return c
		}
	}
	if Is(Component, token) {
		return Component
	}
	return Other
}

func buildIndex() map[string][]Category {
	idx := make(map[string][]Category)
	for _, c := range []Category{Component, Finish, Density, Bloom, Material, Shape} {
		for _, token := range Members(c) {
			idx[token] = append(idx[token], c)
		}
	}
	return idx
}
