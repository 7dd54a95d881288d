package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"user-service/internal/common"
)

// InMemoryRepository is a map guarded by a single mutex across all
// operations. The coarse lock linearizes every mutation and read: a read
// started after a write's unlock observes that write.
//
// IDs are random UUIDs, so concurrent creates cannot collide the way
// wall-clock-derived ids can.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, name, email string) (*User, error) {
	user := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user

	clone := *user
	return &clone, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	clone := *user
	return &clone, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// allocated even when empty so the transport serializes [] rather
	// than null
	list := make([]*User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		list = append(list, &clone)
	}

	return list, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, patch UpdatePatch) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}

	clone := *user
	return &clone, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return common.ErrorNotFound
	}

	delete(r.users, id)
	return nil
}
