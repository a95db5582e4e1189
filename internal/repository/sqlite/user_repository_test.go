package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Casm101/leovegas-technical-test/internal/domain"
	"github.com/Casm101/leovegas-technical-test/internal/repository"
)

func newTestRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func newUser(email string) *domain.User {
	return &domain.User{
		ID:           uuid.NewString(),
		Name:         "Peter Griffin",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		Role:         domain.RoleUser,
	}
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	user := newUser("peter@x.com")
	require.NoError(t, repo.Create(ctx, user))
	require.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, byID.Email)
	require.Equal(t, domain.RoleUser, byID.Role)

	byEmail, err := repo.GetByEmail(ctx, "peter@x.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, newUser("peter@x.com")))
	require.ErrorIs(t, repo.Create(ctx, newUser("peter@x.com")), domain.ErrEmailTaken)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.GetByID(ctx, "no-such-id")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, newUser("a@x.com")))
	require.NoError(t, repo.Create(ctx, newUser("b@x.com")))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	user := newUser("peter@x.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.Create(ctx, newUser("lois@x.com")))

	name := "Brian Griffin"
	role := domain.RoleAdmin
	updated, err := repo.Update(ctx, user.ID, domain.UserUpdate{Name: &name, Role: &role})
	require.NoError(t, err)
	require.Equal(t, "Brian Griffin", updated.Name)
	require.Equal(t, domain.RoleAdmin, updated.Role)
	require.Equal(t, "peter@x.com", updated.Email)

	taken := "lois@x.com"
	_, err = repo.Update(ctx, user.ID, domain.UserUpdate{Email: &taken})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = repo.Update(ctx, "no-such-id", domain.UserUpdate{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	user := newUser("peter@x.com")
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.SetAccessToken(ctx, user.ID, "token-1"))
	require.NoError(t, repo.SetAccessToken(ctx, user.ID, "token-2"))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "token-2", stored.AccessToken)

	require.ErrorIs(t, repo.SetAccessToken(ctx, "no-such-id", "t"), domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepo(t)

	user := newUser("peter@x.com")
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, user.ID), domain.ErrNotFound)
}
