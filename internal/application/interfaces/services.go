package interfaces

import (
	"context"

	"github.com/cecobask/socialdeck-api/internal/application/command"
	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

type AuthService interface {
	SignUp(ctx context.Context, cmd *command.SignUpCommand) (*command.AuthResult, error)
	LogIn(ctx context.Context, cmd *command.LogInCommand) (*command.AuthResult, error)
}

type UserService interface {
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindAll(ctx context.Context) ([]*entities.User, error)
	DeleteByID(ctx context.Context, id string) (*entities.User, error)
	DeleteAll(ctx context.Context) (string, error)
}

type PostService interface {
	Create(ctx context.Context, identity *entities.Identity, cmd *command.CreatePostCommand) (*entities.Post, error)
	FindByID(ctx context.Context, id string) (*entities.Post, error)
	FindAll(ctx context.Context) ([]*entities.Post, error)
	FindByCreator(ctx context.Context, creatorID string) ([]*entities.Post, error)
	Update(ctx context.Context, identity *entities.Identity, cmd *command.UpdatePostCommand) (*entities.Post, error)
	Share(ctx context.Context, identity *entities.Identity, postID string) (*entities.Post, error)
	DeleteByID(ctx context.Context, identity *entities.Identity, id string) (*entities.Post, error)
	DeleteAll(ctx context.Context) (string, error)
}
