package mapper

import "github.com/cecobask/socialdeck-api/internal/domain/entities"

// NewIdentityFromUser snapshots a user record into the identity carried by
// sessions and tokens.
func NewIdentityFromUser(user *entities.User) *entities.Identity {
	return &entities.Identity{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
