package mapper

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexisbeaulieu97/surfaces/internal/classstack"
	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

// DefaultCacheSize bounds the number of distinct marker values remembered.
const DefaultCacheSize = 256

// resolution is the table's answer for one raw marker value.
type resolution struct {
	classes []string
	unknown []string
}

// resolver memoises marker resolution. Tables are immutable, so an entry never
// goes stale.
type resolver struct {
	table *mappings.Table
	cache *lru.Cache[string, resolution]
}

func newResolver(table *mappings.Table, size int) *resolver {
	r := &resolver{table: table}
	if size > 0 {
		// lru.New only fails for a non-positive size.
		cache, err := lru.New[string, resolution](size)
		if err == nil {
			r.cache = cache
		}
	}
	return r
}

func (r *resolver) resolve(marker string) resolution {
	if r.cache != nil {
		if cached, ok := r.cache.Get(marker); ok {
			return cached
		}
	}

	var res resolution
	groups := make([][]string, 0, 4)
	for _, key := range strings.Fields(marker) {
		classes, ok := r.table.Lookup(key)
		if !ok {
			res.unknown = append(res.unknown, key)
			continue
		}
		groups = append(groups, classes)
	}
	res.classes = classstack.Merge(groups...)

	if r.cache != nil {
		r.cache.Add(marker, res)
	}
	return res
}

func (r *resolver) len() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.Len()
}
