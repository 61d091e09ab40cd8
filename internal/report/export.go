package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"blobtidy/internal/storage"
)

// allRecords flattens every qualifying group in group order, rows per group
// in the same name-sorted order as the per-group reports.
func allRecords(groups []GroupReport) []storage.Record {
	var all []storage.Record
	for _, g := range groups {
		all = append(all, g.Display...)
	}
	return all
}

func (w *Writer) writeCSV(groups []GroupReport) error {
	f, err := os.Create(filepath.Join(w.Dir, csvName))
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	rows := [][]string{{"Name", "Last Modified"}}
	for _, r := range allRecords(groups) {
		rows = append(rows, []string{r.Name, FormatTime(r.LastModified)})
	}
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *Writer) writeJSON(groups []GroupReport) error {
	records := allRecords(groups)
	if records == nil {
		records = []storage.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.Dir, jsonName), append(data, '\n'), 0644)
}
