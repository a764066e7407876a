// Package upload stages a photo attachment for transmission. A staged
// file is an ephemeral copy of the caller's image bytes held in a local
// staging directory for the lifetime of one request; the caller removes
// it once the request completes, success or failure.
package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Staged is a pending photo upload.
type Staged struct {
	path        string
	name        string
	contentType string
}

// Stage copies r into a new file under dir and sniffs its content type
// from the leading bytes. dir is created if missing.
func Stage(dir string, r io.Reader) (*Staged, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}

	name := "upload_" + uuid.NewString()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	if _, err := f.Write(head); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to close staged file: %w", err)
	}

	contentType := http.DetectContentType(head)

	return &Staged{
		path:        path,
		name:        name + extensionFor(contentType),
		contentType: contentType,
	}, nil
}

// StageFile stages an existing file on disk.
func StageFile(dir, srcPath string) (*Staged, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer src.Close()
	return Stage(dir, src)
}

// Name is the file name to present in the multipart part.
func (s *Staged) Name() string { return s.name }

// ContentType is the sniffed MIME type of the staged bytes.
func (s *Staged) ContentType() string { return s.contentType }

// Path is the on-disk location of the staged copy.
func (s *Staged) Path() string { return s.path }

// Open opens the staged copy for reading.
func (s *Staged) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

// Remove deletes the staged copy. Safe to call more than once.
func (s *Staged) Remove() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
