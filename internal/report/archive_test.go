package report

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestArchive_GzipRoundTrip(t *testing.T) {
	w := testWriter(t)
	if err := os.WriteFile(filepath.Join(w.Dir, "main.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	path, err := w.Archive(ArchiveGzip)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, ".tar.gz") {
		t.Errorf("archive path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	checkTar(t, gr)
}

func TestArchive_ZstdRoundTrip(t *testing.T) {
	w := testWriter(t)
	if err := os.WriteFile(filepath.Join(w.Dir, "main.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	path, err := w.Archive(ArchiveZstd)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	checkTar(t, zr)
}

func TestArchive_UnknownFormat(t *testing.T) {
	w := testWriter(t)
	if _, err := w.Archive(ArchiveFormat("7z")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func checkTar(t *testing.T, r io.Reader) {
	t.Helper()
	tr := tar.NewReader(r)
	hdr, err := tr.Next()
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Name != "main.txt" {
		t.Errorf("tar entry = %q, want main.txt", hdr.Name)
	}
	body, err := io.ReadAll(tr)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "hello" {
		t.Errorf("tar body = %q, want hello", body)
	}
	if _, err := tr.Next(); err != io.EOF {
		t.Errorf("expected single entry, got err %v", err)
	}
}
