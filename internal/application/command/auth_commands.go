package command

import "github.com/cecobask/socialdeck-api/internal/domain/entities"

type SignUpCommand struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LogInCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult carries the signed credential plus the authenticated user, from
// which the caller establishes the session.
type AuthResult struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user"`
}
