package services

import (
	"context"
	"fmt"
	"log"

	"github.com/cecobask/socialdeck-api/internal/application/command"
	"github.com/cecobask/socialdeck-api/internal/application/common"
	"github.com/cecobask/socialdeck-api/internal/application/interfaces"
	"github.com/cecobask/socialdeck-api/internal/domain/entities"
	"github.com/cecobask/socialdeck-api/internal/domain/repositories"
)

// EventPublisher emits post lifecycle events. Publishing is best-effort and
// never fails a mutation.
type EventPublisher interface {
	Publish(subject string, payload interface{}) error
}

type PostService struct {
	postRepo  repositories.PostRepository
	publisher EventPublisher
}

func NewPostService(postRepo repositories.PostRepository, publisher EventPublisher) interfaces.PostService {
	return &PostService{
		postRepo:  postRepo,
		publisher: publisher,
	}
}

func (s *PostService) Create(ctx context.Context, identity *entities.Identity, cmd *command.CreatePostCommand) (*entities.Post, error) {
	// The creator is always the acting identity, never client input.
	post := entities.NewPost(identity.ID, cmd.Message, cmd.Links)

	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}

	s.publish("posts.created", created)
	return created, nil
}

func (s *PostService) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if post == nil {
		return nil, common.NewInvalidQueryError(
			fmt.Sprintf("No post with ID %s found!", id))
	}
	return post, nil
}

func (s *PostService) FindAll(ctx context.Context) ([]*entities.Post, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if len(posts) == 0 {
		return nil, common.NewInvalidQueryError("No posts in the database!")
	}
	return posts, nil
}

// FindByCreator backs the nested User.posts field; an empty result is an
// empty list here, not an error.
func (s *PostService) FindByCreator(ctx context.Context, creatorID string) ([]*entities.Post, error) {
	posts, err := s.postRepo.FindByCreator(ctx, creatorID)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	return posts, nil
}

func (s *PostService) Update(ctx context.Context, identity *entities.Identity, cmd *command.UpdatePostCommand) (*entities.Post, error) {
	existing, err := s.postRepo.FindByID(ctx, cmd.PostID)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if existing == nil {
		return nil, common.NewInvalidQueryError(
			fmt.Sprintf("No post with ID %s found!", cmd.PostID))
	}
	if existing.CreatorID != identity.ID {
		return nil, common.NewAuthenticationError(
			"You cannot update a post created by someone else!")
	}

	updated, err := s.postRepo.Update(ctx, cmd.PostID, cmd.Message, cmd.Links)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if updated == nil {
		return nil, common.NewInvalidQueryError(
			fmt.Sprintf("No post with ID %s found!", cmd.PostID))
	}
	return updated, nil
}

func (s *PostService) Share(ctx context.Context, identity *entities.Identity, postID string) (*entities.Post, error) {
	// Adds the user id to the 'shares' set, if it doesn't exist there.
	updated, err := s.postRepo.AddShare(ctx, postID, identity.ID)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if updated == nil {
		return nil, common.NewInvalidQueryError(
			fmt.Sprintf("No post with ID %s found!", postID))
	}

	s.publish("posts.shared", updated)
	return updated, nil
}

// DeleteByID enforces ownership: only the creator may delete. Returns the
// pre-deletion record.
func (s *PostService) DeleteByID(ctx context.Context, identity *entities.Identity, id string) (*entities.Post, error) {
	postToDelete, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if postToDelete == nil {
		return nil, common.NewInvalidQueryError(
			fmt.Sprintf("No post with ID %s found!", id))
	}
	if postToDelete.CreatorID != identity.ID {
		return nil, common.NewAuthenticationError(
			"You cannot delete a post created by someone else!")
	}

	if err := s.postRepo.DeleteByID(ctx, id); err != nil {
		return nil, common.NewInternalError(err.Error())
	}

	s.publish("posts.deleted", postToDelete)
	return postToDelete, nil
}

func (s *PostService) DeleteAll(ctx context.Context) (string, error) {
	count, err := s.postRepo.DeleteAll(ctx)
	if err != nil {
		return "", common.NewInternalError(err.Error())
	}
	// Means the posts database is empty.
	if count == 0 {
		return "", common.NewInvalidQueryError("No posts in the database!")
	}

	return "Successfully deleted all posts!", nil
}

func (s *PostService) publish(subject string, post *entities.Post) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(subject, post); err != nil {
		log.Printf("failed to publish %s event: %v", subject, err)
	}
}
