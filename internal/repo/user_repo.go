package repo

import (
	"context"
	"errors"
	"sort"
	"sync"

	dom "userdir/internal/domain"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("user already exists")
)

// UserRepo provides user storage keyed by email.
type UserRepo interface {
	Exists(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	List(ctx context.Context) ([]dom.User, error)
}

// MemUserRepo implements UserRepo with a process-local map.
// Contents live only as long as the value does.
type MemUserRepo struct {
	mu    sync.RWMutex
	users map[string]dom.User
}

// NewMemUserRepo returns an empty MemUserRepo.
func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[string]dom.User)}
}

// Exists reports whether a user with the given email is stored.
func (r *MemUserRepo) Exists(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[email]
	return ok, nil
}

// GetByEmail returns the user by email or ErrNotFound.
func (r *MemUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return dom.User{}, ErrNotFound
	}
	return u, nil
}

// Create inserts u keyed by u.Email. An existing entry is never
// overwritten; ErrConflict is returned instead.
func (r *MemUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return dom.User{}, ErrConflict
	}
	r.users[u.Email] = u
	return u, nil
}

// List returns every stored user ordered by creation time.
func (r *MemUserRepo) List(_ context.Context) ([]dom.User, error) {
	r.mu.RLock()
	list := make([]dom.User, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, u)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}
