package stylesheet

import (
	"sort"

	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

// Report lists table tokens the stylesheet does not define.
type Report struct {
	// Missing maps each undefined class to the keys that emit it, sorted.
	Missing map[string][]string
	// Tokens is the number of distinct classes the table emits.
	Tokens int
	// Defined is the number of classes the stylesheet declares.
	Defined int
}

// OK reports whether every emitted class is defined.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// MissingClasses returns the undefined classes in sorted order.
func (r Report) MissingClasses() []string {
	out := make([]string, 0, len(r.Missing))
	for class := range r.Missing {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// Audit compares the classes emitted by table with the defined set.
func Audit(table *mappings.Table, defined map[string]struct{}) Report {
	report := Report{Missing: map[string][]string{}, Defined: len(defined)}
	emitted := make(map[string]struct{})

	for _, key := range table.Keys() {
		classes, _ := table.Lookup(key)
		for _, class := range classes {
			emitted[class] = struct{}{}
			if _, ok := defined[class]; ok {
				continue
			}
			keys := report.Missing[class]
			if len(keys) == 0 || keys[len(keys)-1] != key {
				report.Missing[class] = append(keys, key)
			}
		}
	}

	report.Tokens = len(emitted)
	return report
}
