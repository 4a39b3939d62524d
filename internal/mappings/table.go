// Package mappings provides the immutable table that expands semantic keys into
// presentation class tokens.
package mappings

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	surfaceserrors "github.com/alexisbeaulieu97/surfaces/pkg/errors"
)

// Entry declares one semantic key and the class tokens it expands to.
// Exempt entries use their own schema and are skipped by Check.
type Entry struct {
	Key     string
	Classes []string
	Exempt  bool
}

// Table maps semantic keys to class tokens. A Table is never mutated after
// construction; every accessor hands out copies.
type Table struct {
	entries map[string][]string
	exempt  map[string]struct{}
	keys    []string
}

// New builds a table from entries. Keys must be unique and non-empty; tokens must be
// non-empty and free of whitespace.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make(map[string][]string, len(entries)),
		exempt:  make(map[string]struct{}),
	}

	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		if _, exists := t.entries[entry.Key]; exists {
			return nil, surfaceserrors.NewValidationError(field(entry.Key), "duplicate semantic key", nil)
		}
		t.put(entry)
	}

	t.sortKeys()
	return t, nil
}

// Parse builds a table from the "key: space separated classes" form. Keys listed in
// exempt are marked exempt; naming an undeclared key is an error.
func Parse(raw map[string]string, exempt ...string) (*Table, error) {
	skip := make(map[string]bool, len(exempt))
	for _, key := range exempt {
		if _, ok := raw[key]; !ok {
			return nil, surfaceserrors.NewValidationError(field(key), "exempt key is not declared", nil)
		}
		skip[key] = true
	}

	entries := make([]Entry, 0, len(raw))
	for key, value := range raw {
		entries = append(entries, Entry{Key: key, Classes: strings.Fields(value), Exempt: skip[key]})
	}
	return New(entries)
}

// Extend returns a new table holding the receiver's entries plus entries, which
// replace existing keys of the same name. The receiver is left untouched.
func (t *Table) Extend(entries []Entry) (*Table, error) {
	next := &Table{
		entries: make(map[string][]string, len(t.entries)+len(entries)),
		exempt:  make(map[string]struct{}, len(t.exempt)),
	}
	for _, key := range t.keys {
		_, exempt := t.exempt[key]
		next.put(Entry{Key: key, Classes: t.entries[key], Exempt: exempt})
	}

	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		if _, dup := seen[entry.Key]; dup {
			return nil, surfaceserrors.NewValidationError(field(entry.Key), "duplicate semantic key", nil)
		}
		seen[entry.Key] = struct{}{}
		delete(next.exempt, entry.Key)
		next.put(entry)
	}

	next.sortKeys()
	return next, nil
}

// Lookup returns the class tokens for key. Keys are matched exactly.
func (t *Table) Lookup(key string) ([]string, bool) {
	if t == nil {
		return nil, false
	}
	classes, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), classes...), true
}

// Value returns the space separated class string for key.
func (t *Table) Value(key string) (string, bool) {
	classes, ok := t.Lookup(key)
	if !ok {
		return "", false
	}
	return strings.Join(classes, " "), true
}

// Has reports whether key is declared.
func (t *Table) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.entries[key]
	return ok
}

// Exempt reports whether key opted out of the vocabulary rules.
func (t *Table) Exempt(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.exempt[key]
	return ok
}

// Snapshot returns a copy of the table in its "key: classes" form. Changes to the
// returned map are never visible through the table.
func (t *Table) Snapshot() map[string]string {
	if t == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(t.entries))
	for key, classes := range t.entries {
		out[key] = strings.Join(classes, " ")
	}
	return out
}

// Keys returns the declared keys in lexical order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Len returns the number of declared keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func (t *Table) put(entry Entry) {
	if _, exists := t.entries[entry.Key]; !exists {
		t.keys = append(t.keys, entry.Key)
	}
	t.entries[entry.Key] = append([]string(nil), entry.Classes...)
	if entry.Exempt {
		t.exempt[entry.Key] = struct{}{}
	}
}

func (t *Table) sortKeys() {
	sort.Strings(t.keys)
}

func validateEntry(entry Entry) error {
	if strings.TrimSpace(entry.Key) == "" {
		return surfaceserrors.NewValidationError("mappings", "semantic key must not be empty", nil)
	}
	if strings.IndexFunc(entry.Key, unicode.IsSpace) >= 0 {
		return surfaceserrors.NewValidationError(field(entry.Key), "semantic key must not contain whitespace", nil)
	}
	for i, token := range entry.Classes {
		if token == "" {
			return surfaceserrors.NewValidationError(fmt.Sprintf("%s[%d]", field(entry.Key), i), "class token must not be empty", nil)
		}
		if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
			return surfaceserrors.NewValidationError(fmt.Sprintf("%s[%d]", field(entry.Key), i), fmt.Sprintf("class token %q must not contain whitespace", token), nil)
		}
	}
	return nil
}

func field(key string) string {
	return "mappings." + key
}
