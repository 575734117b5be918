package store

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-course-auth/models"
)

// memoryOAuthStateStore keeps OAuth states in process memory. It holds at
// most capacity entries; writing a new state into a full store evicts the
// oldest one. Entries expire ttl after their last write.
type memoryOAuthStateStore struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	claimed  map[string]struct{}
	order    *list.List // front is oldest
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewMemoryOAuthStateStore returns an in-memory [OAuthStateStore].
func NewMemoryOAuthStateStore(ttl time.Duration, capacity int) OAuthStateStore {
	return newMemoryOAuthStateStore(ttl, capacity, time.Now)
}

func newMemoryOAuthStateStore(ttl time.Duration, capacity int, now func() time.Time) *memoryOAuthStateStore {
	return &memoryOAuthStateStore{
		entries:  make(map[string]*list.Element),
		claimed:  make(map[string]struct{}),
		order:    list.New(),
		ttl:      ttl,
		capacity: capacity,
		now:      now,
	}
}

func (s *memoryOAuthStateStore) Put(_ context.Context, status models.OAuthStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status.ExpiresAt = s.now().Add(s.ttl)

	if elem, ok := s.entries[status.State]; ok {
		elem.Value = status
		s.order.MoveToBack(elem)
		return nil
	}

	for s.order.Len() >= s.capacity {
		oldest := s.order.Front()
		s.remove(oldest)
	}

	s.entries[status.State] = s.order.PushBack(status)
	return nil
}

func (s *memoryOAuthStateStore) Get(_ context.Context, state string) (models.OAuthStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[state]
	if !ok {
		return models.OAuthStatus{}, ErrOAuthStateNotFound
	}

	status := elem.Value.(models.OAuthStatus)
	if !status.ExpiresAt.After(s.now()) {
		s.remove(elem)
		return models.OAuthStatus{}, ErrOAuthStateNotFound
	}

	return status, nil
}

func (s *memoryOAuthStateStore) Claim(_ context.Context, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[state]
	if !ok {
		return false, ErrOAuthStateNotFound
	}

	status := elem.Value.(models.OAuthStatus)
	if !status.ExpiresAt.After(s.now()) {
		s.remove(elem)
		return false, ErrOAuthStateNotFound
	}

	if _, taken := s.claimed[state]; taken || status.Status != models.OAuthStatePending {
		return false, nil
	}
	s.claimed[state] = struct{}{}

	return true, nil
}

func (s *memoryOAuthStateStore) Evict(_ context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for elem := s.order.Front(); elem != nil; {
		next := elem.Next()
		status := elem.Value.(models.OAuthStatus)
		if !status.ExpiresAt.After(now) {
			s.remove(elem)
			evicted++
		}
		elem = next
	}

	return evicted
}

// remove must be called with mu held.
func (s *memoryOAuthStateStore) remove(elem *list.Element) {
	state := elem.Value.(models.OAuthStatus).State
	s.order.Remove(elem)
	delete(s.entries, state)
	delete(s.claimed, state)
}
