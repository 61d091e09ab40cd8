package retain

import (
	"sort"
	"time"

	"blobtidy/internal/storage"
)

// Entry is one group with its ordering timestamp resolved.
type Entry struct {
	Key      string
	Records  []storage.Record
	Earliest *time.Time
}

// Earliest returns the minimum defined LastModified in the group, or nil when
// no record carries one. Equal timestamps keep the first one seen.
func Earliest(group []storage.Record) *time.Time {
	var min *time.Time
	for _, r := range group {
		if r.LastModified == nil {
			continue
		}
		if min == nil || r.LastModified.Before(*min) {
			min = r.LastModified
		}
	}
	return min
}

// Ordered returns all groups ascending by earliest timestamp. Groups without
// any timestamp sort after every timestamped group, keeping first-seen order
// among themselves.
func (ix *Index) Ordered() []Entry {
	entries := make([]Entry, 0, len(ix.keys))
	for _, k := range ix.keys {
		g := ix.groups[k]
		entries = append(entries, Entry{Key: k, Records: g, Earliest: Earliest(g)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ei, ej := entries[i].Earliest, entries[j].Earliest
		if ei == nil {
			return false
		}
		if ej == nil {
			return true
		}
		return ei.Before(*ej)
	})
	return entries
}
