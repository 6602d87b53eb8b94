package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to the entries of an in-memory EPUB archive.
type Reader struct {
	zr    *zip.Reader
	files map[string]*zip.File
}

// NewReader opens raw EPUB bytes as a zip archive.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("epub: open zip: %w", err)
	}

	r := &Reader{
		zr:    zr,
		files: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		r.files[normalizePath(f.Name)] = f
	}
	return r, nil
}

// Has reports whether the archive contains an entry with the given path.
func (r *Reader) Has(path string) bool {
	_, ok := r.files[normalizePath(path)]
	return ok
}

// ReadFile reads an archive entry into a freshly allocated buffer.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	f, ok := r.files[normalizePath(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("epub: open entry %s: %w", path, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// normalizePath normalizes archive entry paths (removes ./ prefix).
func normalizePath(path string) string {
	return strings.TrimPrefix(path, "./")
}
