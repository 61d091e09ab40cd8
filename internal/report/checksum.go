package report

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

const checksumsName = "checksums.txt"

// WriteChecksums writes a BLAKE3 digest line for every artifact in the output
// directory, so a later run can tell whether reports drifted between runs.
func (w *Writer) WriteChecksums() error {
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return fmt.Errorf("read output dir %s: %w", w.Dir, err)
	}
	var b strings.Builder
	for _, e := range entries {
		if e.IsDir() || e.Name() == checksumsName {
			continue
		}
		data, err := os.ReadFile(filepath.Join(w.Dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Name(), err)
		}
		sum := blake3.Sum256(data)
		fmt.Fprintf(&b, "%s  %s\n", hex.EncodeToString(sum[:]), e.Name())
	}
	return os.WriteFile(filepath.Join(w.Dir, checksumsName), []byte(b.String()), 0644)
}
