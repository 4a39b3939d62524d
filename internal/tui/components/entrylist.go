package components

import (
	"strings"

	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

// Entry is one table row prepared for rendering.
type Entry struct {
	Key     string
	Classes []string
	Exempt  bool
}

// EntryList holds the table rows that match a filter, sorted by key.
type EntryList struct {
	entries []Entry
	total   int
}

// NewEntryList keeps the rows of table whose key contains filter or whose
// classes include a token starting with it. An empty filter keeps every row.
func NewEntryList(table *mappings.Table, filter string) EntryList {
	filter = strings.ToLower(strings.TrimSpace(filter))
	keys := table.Keys()

	list := EntryList{entries: make([]Entry, 0, len(keys)), total: len(keys)}
	for _, key := range keys {
		classes, _ := table.Lookup(key)
		if filter != "" && !matches(key, classes, filter) {
			continue
		}
		list.entries = append(list.entries, Entry{Key: key, Classes: classes, Exempt: table.Exempt(key)})
	}
	return list
}

func matches(key string, classes []string, filter string) bool {
	if strings.Contains(strings.ToLower(key), filter) {
		return true
	}
	for _, class := range classes {
		if strings.HasPrefix(strings.ToLower(class), filter) {
			return true
		}
	}
	return false
}

// Entries returns the matching rows.
func (l EntryList) Entries() []Entry {
	clone := make([]Entry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// Len returns the number of matching rows.
func (l EntryList) Len() int {
	return len(l.entries)
}

// Total returns the number of rows before filtering.
func (l EntryList) Total() int {
	return l.total
}

// At returns row i, or false when out of range.
func (l EntryList) At(i int) (Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}
