package report

import (
	"testing"
	"time"

	"blobtidy/internal/retain"
	"blobtidy/internal/storage"
)

func rec(name string) storage.Record {
	return storage.Record{Name: name}
}

func recAt(name string, sec int) storage.Record {
	t := time.Date(2025, 6, 1, 0, 0, sec, 0, time.UTC)
	return storage.Record{Name: name, LastModified: &t}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(nil); got != "N/A" {
		t.Errorf("FormatTime(nil) = %q, want N/A", got)
	}
	ts := time.Date(2025, 6, 1, 13, 4, 5, 0, time.UTC)
	if got := FormatTime(&ts); got != "2025-06-01 13:04:05 +00:00" {
		t.Errorf("FormatTime = %q", got)
	}
}

func TestBuild_DropsSmallGroups(t *testing.T) {
	records := []storage.Record{
		recAt("big.1.js", 1), recAt("big.2.js", 2), recAt("big.3.js", 3),
		recAt("small.1.js", 4), recAt("small.2.js", 5),
	}
	ix, _, _ := retain.Group(records)
	groups := Build(ix.Ordered(), false)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Key != "big" {
		t.Errorf("kept group %q, want big", groups[0].Key)
	}
}

func TestBuild_DisplaySortedRetentionPositional(t *testing.T) {
	// Listing order b, a, c: display is name-sorted, retention keeps the
	// last two of listing order.
	records := []storage.Record{recAt("b.x.js", 1), recAt("a.x.js", 2), recAt("c.x.js", 3)}
	entry := retain.Entry{Key: "g", Records: records, Earliest: retain.Earliest(records)}
	groups := Build([]retain.Entry{entry}, false)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	g := groups[0]
	if g.Display[0].Name != "a.x.js" || g.Display[1].Name != "b.x.js" || g.Display[2].Name != "c.x.js" {
		t.Errorf("Display = %v, want name-sorted", g.Display)
	}
	if len(g.Split.Excess) != 1 || g.Split.Excess[0].Name != "b.x.js" {
		t.Errorf("Excess = %v, want [b.x.js]", g.Split.Excess)
	}
}

func TestBuild_ByModified(t *testing.T) {
	// Listing order is newest-first; with byModified the oldest becomes
	// excess anyway.
	records := []storage.Record{recAt("g.new.js", 9), recAt("g.mid.js", 5), recAt("g.old.js", 1)}
	entry := retain.Entry{Key: "g", Records: records, Earliest: retain.Earliest(records)}

	groups := Build([]retain.Entry{entry}, true)
	if got := groups[0].Split.Excess[0].Name; got != "g.old.js" {
		t.Errorf("Excess = %q, want g.old.js", got)
	}

	groups = Build([]retain.Entry{entry}, false)
	if got := groups[0].Split.Excess[0].Name; got != "g.new.js" {
		t.Errorf("positional Excess = %q, want g.new.js", got)
	}
}

func TestExcessRecords_SortedByModified(t *testing.T) {
	ga := GroupReport{Split: retain.Split{Excess: []storage.Record{recAt("late", 9)}}}
	gb := GroupReport{Split: retain.Split{Excess: []storage.Record{recAt("early", 1), rec("never")}}}

	got := ExcessRecords([]GroupReport{ga, gb})
	want := []string{"early", "late", "never"}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("record %d = %q, want %q", i, got[i].Name, want[i])
		}
	}
}
