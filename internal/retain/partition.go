package retain

import (
	"sort"

	"blobtidy/internal/storage"
)

// MinGroupSize gates retention: a group needs at least three records before
// anything counts as excess. Smaller groups have too little history to prune.
const MinGroupSize = 3

// Split is the retention partition of one group. Excess followed by Kept, in
// the order the group was given, reconstructs the group exactly.
type Split struct {
	Excess []storage.Record
	Kept   []storage.Record
}

// Partition splits a qualifying group into the records to retire and the two
// most recent to keep. Recency is positional: the last two records of the
// given order are kept. Returns false for groups below MinGroupSize.
func Partition(group []storage.Record) (Split, bool) {
	if len(group) < MinGroupSize {
		return Split{}, false
	}
	n := len(group)
	return Split{
		Excess: append([]storage.Record(nil), group[:n-2]...),
		Kept:   append([]storage.Record(nil), group[n-2:]...),
	}, true
}

// SortedByName returns a name-sorted copy of the group for display. The
// retention decision never looks at this order.
func SortedByName(group []storage.Record) []storage.Record {
	out := append([]storage.Record(nil), group...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SortedByModified returns a copy stable-sorted ascending by LastModified.
// Records without a timestamp sort after the timestamped ones, keeping their
// relative order. Used when the listing order cannot be trusted to be
// chronological and retention should split on modification time instead.
func SortedByModified(group []storage.Record) []storage.Record {
	out := append([]storage.Record(nil), group...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].LastModified, out[j].LastModified
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.Before(*tj)
	})
	return out
}
