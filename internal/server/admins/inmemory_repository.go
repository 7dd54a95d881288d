package admins

import (
	"context"
	"fmt"
	"sync"
	"time"

	"user-service/internal/common"
	"user-service/internal/server/auth"
)

// InMemoryRepository is a mutex-guarded map of administrator identities.
// It is populated exactly once at construction and read-only afterwards;
// the lock still guards it because lookups run on concurrent request
// handlers.
type InMemoryRepository struct {
	mu     sync.Mutex
	admins map[string]*Admin
}

// NewSeededRepository builds a repository containing the single configured
// administrator, hashing the seed password with bcrypt.
func NewSeededRepository(username, password string) (*InMemoryRepository, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}

	return &InMemoryRepository{
		admins: map[string]*Admin{
			username: {
				Username:     username,
				PasswordHash: hash,
				CreatedAt:    time.Now(),
			},
		},
	}, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, username string) (*Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	admin, ok := r.admins[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	clone := *admin
	return &clone, nil
}
