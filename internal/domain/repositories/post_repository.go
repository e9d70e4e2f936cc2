package repositories

import (
	"context"

	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

// PostRepository persists Post records. Lookups and in-place updates return
// (nil, nil) when no record matches.
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) (*entities.Post, error)
	FindByID(ctx context.Context, id string) (*entities.Post, error)
	FindAll(ctx context.Context) ([]*entities.Post, error)
	FindByCreator(ctx context.Context, creatorID string) ([]*entities.Post, error)
	// Update overwrites message and links and stamps updatedTime.
	Update(ctx context.Context, id, message string, links []string) (*entities.Post, error)
	// AddShare atomically adds userID to the share set and stamps updatedTime.
	AddShare(ctx context.Context, id, userID string) (*entities.Post, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByCreator(ctx context.Context, creatorID string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
