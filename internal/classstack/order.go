package classstack

import (
	"strings"

	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
)

// Orderer renders class lists in category order. Tokens in Exclude are dropped;
// each entry of Categories is one bucket, emitted in slice order; everything else
// trails in its original relative order.
type Orderer struct {
	Exclude    []string
	Categories [][]string
}

// DefaultOrderer strips the internal structural tokens and orders by finish,
// density, bloom, material, then shape.
func DefaultOrderer() Orderer {
	order := vocabulary.DisplayOrder()
	categories := make([][]string, 0, len(order))
	for _, c := range order {
		categories = append(categories, vocabulary.Members(c))
	}
	return Orderer{Exclude: vocabulary.Internal(), Categories: categories}
}

// Order returns the tokens regrouped by category. Within a bucket tokens keep
// their input order, not the vocabulary's listing order. Duplicates are kept.
func (o Orderer) Order(tokens []string) []string {
	exclude := toSet(o.Exclude)
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, skip := exclude[token]; skip {
			continue
		}
		filtered = append(filtered, token)
	}

	used := make(map[string]struct{}, len(filtered))
	out := make([]string, 0, len(filtered))
	for _, members := range o.Categories {
		set := toSet(members)
		for _, token := range filtered {
			if _, claimed := used[token]; claimed {
				continue
			}
			if _, ok := set[token]; ok {
				out = append(out, token)
			}
		}
		for token := range set {
			used[token] = struct{}{}
		}
	}

	for _, token := range filtered {
		if _, claimed := used[token]; !claimed {
			out = append(out, token)
		}
	}
	return out
}

// Format joins the ordered tokens with single spaces.
func (o Orderer) Format(tokens []string) string {
	return strings.TrimSpace(strings.Join(o.Order(tokens), " "))
}

// Format renders tokens with the default orderer.
func Format(tokens []string) string {
	return DefaultOrderer().Format(tokens)
}

// FormatString renders a space separated class list with the default orderer.
func FormatString(classes string) string {
	return Format(Fields(classes))
}

// Group buckets tokens by vocabulary category, keeping input order inside each
// bucket. Internal structural tokens are dropped.
func Group(tokens []string) map[vocabulary.Category][]string {
	exclude := toSet(vocabulary.Internal())
	groups := make(map[vocabulary.Category][]string)
	for _, token := range tokens {
		if _, skip := exclude[token]; skip || token == "" {
			continue
		}
		c := vocabulary.Categorize(token)
		groups[c] = append(groups[c], token)
	}
	return groups
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
