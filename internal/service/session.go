package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-content-sync/internal/store"
)

type dbSession struct {
	repo      store.SessionRepository
	sessionID string
}

// NewDBSession returns the [SyncSession] of sessionID persisted in the
// session table.
func NewDBSession(repo store.SessionRepository, sessionID string) SyncSession {
	return &dbSession{repo: repo, sessionID: sessionID}
}

func (s *dbSession) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.repo.Load(ctx, s.sessionID, key)
}

func (s *dbSession) Set(ctx context.Context, key string, data []byte) error {
	return s.repo.Save(ctx, s.sessionID, key, data)
}

// MemorySession keeps session blobs in memory. The CLI and tests use it.
type MemorySession struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemorySession() *MemorySession {
	return &MemorySession{data: make(map[string][]byte)}
}

func (s *MemorySession) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[key]
	return data, ok, nil
}

func (s *MemorySession) Set(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = data
	return nil
}
