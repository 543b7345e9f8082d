// Package fs implements domain.BlobStore on the local filesystem. Bundle
// uploads are handed out as file:// URLs, which suits single-node and
// development deployments where the CLI and control plane share a disk.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/differentialHQ/differential/internal/domain"
)

// Store roots all bundle keys under a single directory.
type Store struct {
	Root string
}

// New builds a Store rooted at dir.
func New(dir string) *Store {
	return &Store{Root: dir}
}

// path resolves a key inside Root, rejecting traversal out of it.
func (s *Store) path(key string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(key))
	p := filepath.Join(s.Root, clean)
	root := filepath.Clean(s.Root)
	if p != root && !strings.HasPrefix(p, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: blob key escapes store root", domain.ErrInvalidArgument)
	}
	return p, nil
}

// UploadURL returns a writable location for the key and ensures its parent
// directory exists.
func (s *Store) UploadURL(_ domain.Context, key string) (string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("op=blob.upload_url: %w", err)
	}
	return "file://" + p, nil
}

// Exists reports whether a bundle has been written under the key.
func (s *Store) Exists(_ domain.Context, key string) (bool, error) {
	p, err := s.path(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("op=blob.exists: %w", err)
	}
	return true, nil
}

// Open streams the bundle stored under the key.
func (s *Store) Open(_ domain.Context, key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: bundle %s", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("op=blob.open: %w", err)
	}
	return f, nil
}
