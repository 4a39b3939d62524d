// Package classstack merges class lists and renders them in the canonical
// finish, density, bloom, material, shape order used when classes are copied out.
package classstack

import "strings"

// Fields splits a class attribute value on runs of whitespace.
func Fields(s string) []string {
	return strings.Fields(s)
}

// Merge returns the ordered union of groups. The first occurrence of a token wins
// and empty tokens are dropped.
func Merge(groups ...[]string) []string {
	var size int
	for _, group := range groups {
		size += len(group)
	}

	merged := make([]string, 0, size)
	seen := make(map[string]struct{}, size)
	for _, group := range groups {
		for _, token := range group {
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			merged = append(merged, token)
		}
	}
	return merged
}
