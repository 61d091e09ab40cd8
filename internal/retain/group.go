package retain

import (
	"strings"

	"blobtidy/internal/storage"
)

// Index maps group keys to their records. It remembers first-seen key order,
// which is the tie-break order for groups that have no timestamp to sort by.
type Index struct {
	keys   []string
	groups map[string][]storage.Record
}

// Keys returns the group keys in first-seen order.
func (ix *Index) Keys() []string {
	return ix.keys
}

// Group returns the records of one group in listing order, or nil for an
// unknown key.
func (ix *Index) Group(key string) []storage.Record {
	return ix.groups[key]
}

// Len returns the number of groups.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// Group partitions a raw listing into groups keyed by DeriveKey. Names
// containing a path separator are nested entries: skipped and counted, never
// an error. Every surviving record lands in exactly one group, appended in
// listing order, so skipped plus the sum of group sizes equals total.
func Group(records []storage.Record) (ix *Index, skipped, total int) {
	ix = &Index{groups: make(map[string][]storage.Record)}
	total = len(records)
	for _, r := range records {
		if strings.ContainsRune(r.Name, '/') {
			skipped++
			continue
		}
		key := DeriveKey(r.Name)
		if _, ok := ix.groups[key]; !ok {
			ix.keys = append(ix.keys, key)
		}
		ix.groups[key] = append(ix.groups[key], r)
	}
	return ix, skipped, total
}
