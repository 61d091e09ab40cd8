package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	csvName    = "alldata.csv"
	jsonName   = "alldata.json"
	excessName = "earliest_totals.txt"
)

// Writer renders report artifacts into a single output directory. Every
// artifact is independent: a failed write is logged and the rest still
// happen.
type Writer struct {
	Dir string
	Log *slog.Logger
}

// Result summarizes one report run.
type Result struct {
	Groups     int
	Records    int
	Excess     int
	WriteFails int
}

// Write renders the per-group reports, the aggregate CSV/JSON exports and the
// excess summary. It fails only when the output directory itself cannot be
// created; individual file errors are logged and counted.
func (w *Writer) Write(groups []GroupReport) (Result, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return Result{}, fmt.Errorf("create output dir %s: %w", w.Dir, err)
	}

	var res Result
	res.Groups = len(groups)
	for _, g := range groups {
		res.Records += len(g.Display)
		res.Excess += len(g.Split.Excess)
		if err := w.writeGroup(g); err != nil {
			w.Log.Error("write group report", "group", g.Key, "error", err)
			res.WriteFails++
		}
	}

	if err := w.writeCSV(groups); err != nil {
		w.Log.Error("write csv export", "error", err)
		res.WriteFails++
	}
	if err := w.writeJSON(groups); err != nil {
		w.Log.Error("write json export", "error", err)
		res.WriteFails++
	}
	if err := w.writeExcess(groups); err != nil {
		w.Log.Error("write excess summary", "error", err)
		res.WriteFails++
	}
	return res, nil
}

func (w *Writer) writeGroup(g GroupReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Group: %s\n", g.Key)
	fmt.Fprintf(&b, "Earliest: %s\n\n", FormatTime(g.Earliest))
	for _, r := range g.Display {
		fmt.Fprintf(&b, "%s\t%s\n", r.Name, FormatTime(r.LastModified))
	}
	path := filepath.Join(w.Dir, SanitizeFilename(g.Key)+".txt")
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func (w *Writer) writeExcess(groups []GroupReport) error {
	excess := ExcessRecords(groups)
	var b strings.Builder
	fmt.Fprintf(&b, "Excess files: %d\n\n", len(excess))
	for _, r := range excess {
		fmt.Fprintf(&b, "%s\t%s\n", r.Name, FormatTime(r.LastModified))
	}
	return os.WriteFile(filepath.Join(w.Dir, excessName), []byte(b.String()), 0644)
}
