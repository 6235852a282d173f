// Package filesystem provides the on-disk document store used by the
// config patcher.
package filesystem

import (
	"fmt"
	"os"

	"github.com/entrig/entrig/internal/application/ports"
)

// defaultFilePerms applies to documents created from scratch.
const defaultFilePerms = 0o644

// DocumentStore reads and writes configuration documents on the local
// filesystem. Writes are atomic: data lands in a temp file that replaces
// the target on commit, so an interrupted run never leaves a torn document.
type DocumentStore struct{}

// NewDocumentStore creates a new on-disk document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// FileExists reports whether a regular file (or symlink to one) exists at path.
func (s *DocumentStore) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// DirExists reports whether a directory exists at path.
func (s *DocumentStore) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Read returns the raw document bytes.
func (s *DocumentStore) Read(path string) ([]byte, error) {
	//nolint:gosec // G304: path comes from the resolved project layout
	return os.ReadFile(path)
}

// Write atomically replaces the document, keeping the permissions of an
// existing file.
func (s *DocumentStore) Write(path string, data []byte) error {
	return writeAtomic(path, data, defaultFilePerms)
}

// Backup copies src to dst verbatim, overwriting any previous backup.
func (s *DocumentStore) Backup(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	//nolint:gosec // G304: path comes from the resolved project layout
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read backup source: %w", err)
	}

	return writeAtomic(dst, data, info.Mode().Perm())
}

// StoreFactory hands out the store for a run.
type StoreFactory struct {
	disk *DocumentStore
}

// NewStoreFactory creates a factory backed by the local filesystem.
func NewStoreFactory() *StoreFactory {
	return &StoreFactory{disk: NewDocumentStore()}
}

// NewStore returns the disk store, or a dry-run overlay of it.
func (f *StoreFactory) NewStore(dryRun bool) ports.DocumentStore {
	if dryRun {
		return NewDryRunStore(f.disk)
	}
	return f.disk
}
