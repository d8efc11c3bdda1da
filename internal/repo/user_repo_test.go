package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "userdir/internal/domain"
)

func newUser(id, email string, at time.Time) dom.User {
	return dom.User{ID: id, Name: "n-" + id, Email: email, Password: "pw", CreatedAt: at}
}

func TestMemUserRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewMemUserRepo()

	ok, err := r.Exists(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.GetByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	u := newUser("user_1", "a@example.com", time.Now())
	created, err := r.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, u, created)

	ok, err = r.Exists(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestMemUserRepo_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	r := NewMemUserRepo()

	_, err := r.Create(ctx, newUser("user_1", "a@example.com", time.Now()))
	require.NoError(t, err)

	ok, err := r.Exists(ctx, "A@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemUserRepo_CreateConflictDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	r := NewMemUserRepo()

	first := newUser("user_1", "a@example.com", time.Now())
	_, err := r.Create(ctx, first)
	require.NoError(t, err)

	_, err = r.Create(ctx, newUser("user_2", "a@example.com", time.Now()))
	assert.ErrorIs(t, err, ErrConflict)

	got, err := r.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user_1", got.ID)

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemUserRepo_ListOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	r := NewMemUserRepo()
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	_, err := r.Create(ctx, newUser("user_3", "c@example.com", base.Add(2*time.Second)))
	require.NoError(t, err)
	_, err = r.Create(ctx, newUser("user_1", "a@example.com", base))
	require.NoError(t, err)
	_, err = r.Create(ctx, newUser("user_2", "b@example.com", base.Add(time.Second)))
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "user_1", list[0].ID)
	assert.Equal(t, "user_2", list[1].ID)
	assert.Equal(t, "user_3", list[2].ID)
}

func TestMemUserRepo_ListEmpty(t *testing.T) {
	list, err := NewMemUserRepo().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemUserRepo_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	r := NewMemUserRepo()

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Create(ctx, newUser(fmt.Sprintf("user_%d", i), "race@example.com", time.Now()))
			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				created++
			case ErrConflict:
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
