package filesystem

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/entrig/entrig/internal/application/ports"
)

type writeKind string

const (
	kindWrite  writeKind = "write"
	kindBackup writeKind = "backup"
)

// pendingWrite is an operation a dry run would have performed.
type pendingWrite struct {
	path string
	kind writeKind
	data []byte
}

// DryRunStore overlays an underlying store. Reads fall through to the
// underlying store, writes are captured in memory and shadow it for the rest
// of the run. Nothing ever reaches disk.
type DryRunStore struct {
	inner   ports.DocumentStore
	mu      sync.Mutex
	overlay map[string][]byte
	log     []pendingWrite
}

// NewDryRunStore wraps inner.
func NewDryRunStore(inner ports.DocumentStore) *DryRunStore {
	return &DryRunStore{
		inner:   inner,
		overlay: make(map[string][]byte),
	}
}

// FileExists also reports documents written earlier in the run.
func (s *DryRunStore) FileExists(path string) (bool, error) {
	s.mu.Lock()
	_, ok := s.overlay[filepath.Clean(path)]
	s.mu.Unlock()
	if ok {
		return true, nil
	}
	return s.inner.FileExists(path)
}

// DirExists defers to the underlying store.
func (s *DryRunStore) DirExists(path string) (bool, error) {
	return s.inner.DirExists(path)
}

// Read returns the overlay copy of path if one was written.
func (s *DryRunStore) Read(path string) ([]byte, error) {
	s.mu.Lock()
	data, ok := s.overlay[filepath.Clean(path)]
	s.mu.Unlock()
	if ok {
		return append([]byte(nil), data...), nil
	}
	return s.inner.Read(path)
}

// Write records data for path without touching disk.
func (s *DryRunStore) Write(path string, data []byte) error {
	s.record(path, kindWrite, data)
	return nil
}

// Backup records a copy of src at dst.
func (s *DryRunStore) Backup(src, dst string) error {
	data, err := s.Read(src)
	if err != nil {
		return fmt.Errorf("read backup source: %w", err)
	}
	s.record(dst, kindBackup, data)
	return nil
}

// pending returns the recorded operations in the order they happened.
func (s *DryRunStore) pending() []pendingWrite {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]pendingWrite, len(s.log))
	copy(out, s.log)
	return out
}

// paths returns the distinct paths touched, sorted.
func (s *DryRunStore) paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := make([]string, 0, len(s.overlay))
	for p := range s.overlay {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (s *DryRunStore) record(path string, kind writeKind, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := append([]byte(nil), data...)
	s.overlay[filepath.Clean(path)] = buf
	s.log = append(s.log, pendingWrite{path: path, kind: kind, data: buf})
}
