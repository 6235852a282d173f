package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/entrig/entrig/internal/application/dto"
	"github.com/entrig/entrig/internal/application/ports"
	"github.com/entrig/entrig/internal/domain/entities"
)

var errDiskFailure = errors.New("disk failure")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory DocumentStore that counts mutations.
type memStore struct {
	files   map[string][]byte
	dirs    map[string]bool
	writes  []string
	backups []string

	readErr  error
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (s *memStore) put(path, content string) {
	s.files[path] = []byte(content)
	s.dirs[filepath.Dir(path)] = true
}

func (s *memStore) get(path string) (string, bool) {
	data, ok := s.files[path]
	return string(data), ok
}

func (s *memStore) FileExists(path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func (s *memStore) DirExists(path string) (bool, error) {
	return s.dirs[path], nil
}

func (s *memStore) Read(path string) ([]byte, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	data, ok := s.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return append([]byte(nil), data...), nil
}

func (s *memStore) Write(path string, data []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, path)
	s.files[path] = append([]byte(nil), data...)
	return nil
}

func (s *memStore) Backup(src, dst string) error {
	data, ok := s.files[src]
	if !ok {
		return errors.New("no such file")
	}
	s.backups = append(s.backups, dst)
	s.files[dst] = append([]byte(nil), data...)
	return nil
}

// memStoreFactory hands out the same memStore and remembers the mode.
type memStoreFactory struct {
	store      *memStore
	lastDryRun bool
}

func (f *memStoreFactory) NewStore(dryRun bool) ports.DocumentStore {
	f.lastDryRun = dryRun
	return f.store
}

type fakeResolver struct {
	layout  entities.ProjectLayout
	err     error
	lastReq dto.LayoutRequest
}

func (r *fakeResolver) Resolve(_ context.Context, req dto.LayoutRequest) (entities.ProjectLayout, error) {
	r.lastReq = req
	if r.err != nil {
		return entities.ProjectLayout{}, r.err
	}
	return r.layout, nil
}
