package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecobask/socialdeck-api/internal/application/common"
	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

func TestFindUserByIDAbsent(t *testing.T) {
	users := NewUserService(newFakeUserRepo(), newFakePostRepo())

	_, err := users.FindByID(context.Background(), "5dbff437f482e01d03fecd4b")
	var apiErr *common.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, common.CodeInvalidQuery, apiErr.Code)
	assert.Equal(t, "No user with ID 5dbff437f482e01d03fecd4b found!", apiErr.Message)
}

func TestFindAllUsersEmpty(t *testing.T) {
	users := NewUserService(newFakeUserRepo(), newFakePostRepo())

	_, err := users.FindAll(context.Background())
	var apiErr *common.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, common.CodeInvalidQuery, apiErr.Code)
	assert.Equal(t, "No users in the database!", apiErr.Message)
}

func TestDeleteUserCascadesToPosts(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	users := NewUserService(userRepo, postRepo)

	u := entities.NewUser("alice@example.com", "pw1", "Alice", "A")
	_, err := userRepo.Create(ctx, u)
	require.NoError(t, err)
	other := entities.NewUser("bob@example.com", "pw2", "Bob", "B")
	_, err = userRepo.Create(ctx, other)
	require.NoError(t, err)

	_, err = postRepo.Create(ctx, entities.NewPost(u.ID.Hex(), "mine", nil))
	require.NoError(t, err)
	_, err = postRepo.Create(ctx, entities.NewPost(other.ID.Hex(), "theirs", nil))
	require.NoError(t, err)

	deleted, err := users.DeleteByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, u.ID, deleted.ID)

	// No posts with the deleted user's creator id remain.
	remaining, err := postRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID.Hex(), remaining[0].CreatorID)
}

func TestDeleteAllUsersEmpty(t *testing.T) {
	users := NewUserService(newFakeUserRepo(), newFakePostRepo())

	_, err := users.DeleteAll(context.Background())
	var apiErr *common.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, common.CodeInvalidQuery, apiErr.Code)
	assert.Equal(t, "No users in the database!", apiErr.Message)
}

func TestDeleteAllUsers(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	users := NewUserService(userRepo, postRepo)

	u := entities.NewUser("alice@example.com", "pw1", "Alice", "A")
	_, err := userRepo.Create(ctx, u)
	require.NoError(t, err)
	_, err = postRepo.Create(ctx, entities.NewPost(u.ID.Hex(), "mine", nil))
	require.NoError(t, err)

	msg, err := users.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Successfully deleted all users!", msg)

	remaining, err := postRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
