package repositories

import (
	"context"

	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

// UserRepository persists User records. Lookups return (nil, nil) when no
// record matches, so callers can distinguish absence from store failures.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindAll(ctx context.Context) ([]*entities.User, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
