package report

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// ArchiveFormat selects the compression applied to the report archive.
type ArchiveFormat string

const (
	ArchiveGzip ArchiveFormat = "gz"
	ArchiveZstd ArchiveFormat = "zst"
)

// Archive packs every artifact of the output directory into a sibling
// <dir>.tar.<format> file and returns its path.
func (w *Writer) Archive(format ArchiveFormat) (string, error) {
	dir := filepath.Clean(w.Dir)
	path := dir + ".tar." + string(format)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create archive %s: %w", path, err)
	}

	var cw io.WriteCloser
	switch format {
	case ArchiveGzip:
		cw = gzip.NewWriter(f)
	case ArchiveZstd:
		cw, err = zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return "", fmt.Errorf("zstd writer: %w", err)
		}
	default:
		f.Close()
		return "", fmt.Errorf("unknown archive format %q", format)
	}

	if err := w.tarDir(tar.NewWriter(cw)); err != nil {
		cw.Close()
		f.Close()
		return "", err
	}
	if err := cw.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("close compressor: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close archive: %w", err)
	}
	return path, nil
}

func (w *Writer) tarDir(tw *tar.Writer) error {
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return fmt.Errorf("read output dir %s: %w", w.Dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("tar header %s: %w", e.Name(), err)
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("write header %s: %w", e.Name(), err)
		}
		src, err := os.Open(filepath.Join(w.Dir, e.Name()))
		if err != nil {
			return fmt.Errorf("open %s: %w", e.Name(), err)
		}
		_, err = io.Copy(tw, src)
		src.Close()
		if err != nil {
			return fmt.Errorf("copy %s: %w", e.Name(), err)
		}
	}
	return tw.Close()
}
