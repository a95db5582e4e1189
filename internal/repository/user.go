package repository

import (
	"context"

	"github.com/Casm101/leovegas-technical-test/internal/domain"
)

// UserRepository defines persistence operations for User entities.
// Implementations return domain.ErrNotFound for absent records and
// domain.ErrEmailTaken for unique-email violations.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, changes domain.UserUpdate) (*domain.User, error)
	SetAccessToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}
