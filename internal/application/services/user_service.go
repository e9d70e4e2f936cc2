package services

import (
	"context"
	"fmt"

	"github.com/cecobask/socialdeck-api/internal/application/common"
	"github.com/cecobask/socialdeck-api/internal/application/interfaces"
	"github.com/cecobask/socialdeck-api/internal/domain/entities"
	"github.com/cecobask/socialdeck-api/internal/domain/repositories"
)

type UserService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
) interfaces.UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *UserService) FindByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if user == nil {
		return nil, common.NewInvalidQueryError(
			fmt.Sprintf("No user with ID %s found!", id))
	}
	return user, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]*entities.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if len(users) == 0 {
		return nil, common.NewInvalidQueryError("No users in the database!")
	}
	return users, nil
}

// DeleteByID cascades: the user's posts go first, then the user. Returns the
// pre-deletion record.
func (s *UserService) DeleteByID(ctx context.Context, id string) (*entities.User, error) {
	userToDelete, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if userToDelete == nil {
		return nil, common.NewInvalidQueryError(
			fmt.Sprintf("No user with ID %s found!", id))
	}

	// Delete the user's posts first.
	if _, err := s.postRepo.DeleteByCreator(ctx, id); err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if err := s.userRepo.DeleteByID(ctx, id); err != nil {
		return nil, common.NewInternalError(err.Error())
	}

	return userToDelete, nil
}

func (s *UserService) DeleteAll(ctx context.Context) (string, error) {
	// Delete all user posts first.
	if _, err := s.postRepo.DeleteAll(ctx); err != nil {
		return "", common.NewInternalError(err.Error())
	}

	count, err := s.userRepo.DeleteAll(ctx)
	if err != nil {
		return "", common.NewInternalError(err.Error())
	}
	// Means the users database is empty.
	if count == 0 {
		return "", common.NewInvalidQueryError("No users in the database!")
	}

	return "Successfully deleted all users!", nil
}
