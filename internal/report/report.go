package report

import (
	"time"

	"blobtidy/internal/retain"
	"blobtidy/internal/storage"
)

// TimeLayout is the timestamp format used in every text artifact: local date
// and time followed by the numeric zone offset.
const TimeLayout = "2006-01-02 15:04:05 -07:00"

// FormatTime renders a timestamp for report output, or the N/A sentinel for
// records the source reported without one.
func FormatTime(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format(TimeLayout)
}

// GroupReport is one qualifying group prepared for output: the retention
// split in retention order, plus a name-sorted view for display.
type GroupReport struct {
	Key      string
	Earliest *time.Time
	Display  []storage.Record
	Split    retain.Split
}

// Build turns ordered groups into group reports, dropping every group below
// the retention gate. With byModified set, records are re-sorted ascending by
// modification time before the split, instead of trusting listing order to be
// chronological.
func Build(entries []retain.Entry, byModified bool) []GroupReport {
	var out []GroupReport
	for _, e := range entries {
		records := e.Records
		if byModified {
			records = retain.SortedByModified(records)
		}
		split, ok := retain.Partition(records)
		if !ok {
			continue
		}
		out = append(out, GroupReport{
			Key:      e.Key,
			Earliest: e.Earliest,
			Display:  retain.SortedByName(e.Records),
			Split:    split,
		})
	}
	return out
}

// ExcessRecords flattens the excess of every group, sorted ascending by
// modification time. Records without a timestamp come last, in input order.
func ExcessRecords(groups []GroupReport) []storage.Record {
	var all []storage.Record
	for _, g := range groups {
		all = append(all, g.Split.Excess...)
	}
	return retain.SortedByModified(all)
}
