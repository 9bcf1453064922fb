// Package directory provides user-directory adapters. The real directory
// is owned by the external login subsystem; this static adapter serves
// configured display names for local use and tests.
package directory

import (
	"sync"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var _ types.Directory = (*Static)(nil)

// Static is an in-memory Directory seeded from configuration.
// Safe for concurrent use.
type Static struct {
	mu    sync.RWMutex
	users map[int64]types.User
}

// NewStatic creates a directory holding the given users.
func NewStatic(users map[int64]string) *Static {
	s := &Static{users: make(map[int64]types.User, len(users))}
	for id, name := range users {
		s.users[id] = types.User{UserID: id, Name: name}
	}
	return s
}

// GetUser returns the user with the given ID, or ErrNotFound.
func (s *Static) GetUser(id int64) (types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return types.User{}, types.ErrNotFound
	}
	return u, nil
}

// Add registers or replaces a user entry.
func (s *Static) Add(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = types.User{UserID: id, Name: name}
}
