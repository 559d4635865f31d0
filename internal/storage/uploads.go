// Package storage keeps uploaded images on local disk under a public
// directory. File lifecycles are deliberately decoupled from article rows: a
// failed unlink after a committed delete leaves an orphaned file, which is
// logged and accepted.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// PublicPath is the URL prefix uploaded files are served under.
const PublicPath = "/public/uploads/"

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes one uploaded image under a collision-resistant name and returns
// that name. Disallowed extension, oversize file, or any I/O error rejects the
// upload with nothing left on disk.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("disallowed file extension %q", ext)
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return "", fmt.Errorf("file exceeds %d bytes", s.maxBytes)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("IMAGE-%d-%s", time.Now().UnixMilli(), sanitizeName(fh.Filename))
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return name, nil
}

// Remove maps a previously returned file URL back onto the upload directory
// and unlinks it. Only the base name is used, so a crafted URL cannot reach
// outside the directory.
func (s *Store) Remove(fileURL string) error {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("parse file url: %w", err)
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("no file name in url %q", fileURL)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// sanitizeName flattens path separators out of the client-supplied name.
func sanitizeName(name string) string {
	name = filepath.ToSlash(name)
	name = path.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}
