package objectstore

import (
	"context"
	"strings"
	"sync"

	dErrors "innflow/pkg/domain-errors"
)

// InMemory is the test fake for the object store. Failure toggles let tests
// exercise the best-effort degradation paths.
type InMemory struct {
	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string
	baseURL string

	FailUpload bool
	FailMove   bool
	FailDelete bool
}

func NewInMemory() *InMemory {
	return &InMemory{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
		baseURL: "https://cdn.test",
	}
}

func (s *InMemory) Upload(_ context.Context, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailUpload {
		return dErrors.New(dErrors.CodeInternal, "object store unavailable")
	}
	s.objects[key] = append([]byte(nil), data...)
	s.types[key] = contentType
	return nil
}

func (s *InMemory) MoveMany(_ context.Context, keys []string, destPrefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailMove {
		return nil, dErrors.New(dErrors.CodeInternal, "object store unavailable")
	}
	moved := make([]string, 0, len(keys))
	for _, key := range keys {
		data, ok := s.objects[key]
		if !ok {
			return moved, dErrors.Newf(dErrors.CodeNotFound, "object %s not found", key)
		}
		dest := Rebase(key, destPrefix)
		s.objects[dest] = data
		s.types[dest] = s.types[key]
		delete(s.objects, key)
		delete(s.types, key)
		moved = append(moved, dest)
	}
	return moved, nil
}

func (s *InMemory) DeleteMany(_ context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailDelete {
		return dErrors.New(dErrors.CodeInternal, "object store unavailable")
	}
	for _, key := range keys {
		delete(s.objects, key)
		delete(s.types, key)
	}
	return nil
}

func (s *InMemory) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// Has reports whether a key is resolvable; test assertion helper.
func (s *InMemory) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok
}

// KeysWithPrefix lists stored keys under a prefix; test assertion helper.
func (s *InMemory) KeysWithPrefix(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Object returns stored bytes; test assertion helper.
func (s *InMemory) Object(key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[key]
}
