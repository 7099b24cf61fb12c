package storage

import (
	"context"
	"fmt"
	"sync"

	usermodel "github.com/YeMinHein/App-Management/internal/models/user"
)

// MemoryUserStore keeps users in memory, indexed by email and id. Email
// comparison is exact and case-sensitive.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*usermodel.User
	byID    map[string]*usermodel.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byEmail: make(map[string]*usermodel.User),
		byID:    make(map[string]*usermodel.User),
	}
}

func (s *MemoryUserStore) Create(ctx context.Context, u *usermodel.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return fmt.Errorf("user with email %s already exists", u.Email)
	}

	userCopy := *u
	s.byEmail[u.Email] = &userCopy
	s.byID[u.ID] = &userCopy
	return nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.byEmail[email]
	if !exists {
		return nil, nil
	}

	userCopy := *u
	return &userCopy, nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.byID[id]
	if !exists {
		return nil, nil
	}

	userCopy := *u
	return &userCopy, nil
}
