package services

import (
	"context"
	"fmt"
	"log"

	"github.com/cecobask/socialdeck-api/internal/application/command"
	"github.com/cecobask/socialdeck-api/internal/application/common"
	"github.com/cecobask/socialdeck-api/internal/application/interfaces"
	"github.com/cecobask/socialdeck-api/internal/application/mapper"
	"github.com/cecobask/socialdeck-api/internal/domain/entities"
	"github.com/cecobask/socialdeck-api/internal/domain/repositories"
	"github.com/cecobask/socialdeck-api/internal/infrastructure"
)

type AuthService struct {
	userRepo    repositories.UserRepository
	jwtService  *infrastructure.JWTService
	rateLimiter *infrastructure.RateLimiter
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	rateLimiter *infrastructure.RateLimiter,
) interfaces.AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		rateLimiter: rateLimiter,
	}
}

func (s *AuthService) SignUp(ctx context.Context, cmd *command.SignUpCommand) (*command.AuthResult, error) {
	if s.rateLimiter != nil && !s.rateLimiter.Allow(cmd.Email) {
		return nil, common.NewInternalError("Too many attempts, please try again later.")
	}

	// Check if user exists in the database.
	existingUser, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if existingUser != nil {
		return nil, common.NewInternalError(
			fmt.Sprintf("User with email %s already exists!", cmd.Email))
	}

	newUser := entities.NewUser(cmd.Email, cmd.Password, cmd.FirstName, cmd.LastName)
	if err := newUser.Validate(); err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if err := newUser.HashPassword(); err != nil {
		return nil, common.NewInternalError(err.Error())
	}

	createdUser, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		// The unique index can still fire under concurrent sign-ups.
		return nil, common.NewInternalError(
			fmt.Sprintf("User with email %s already exists!", cmd.Email))
	}

	return s.issueCredential(createdUser)
}

func (s *AuthService) LogIn(ctx context.Context, cmd *command.LogInCommand) (*command.AuthResult, error) {
	if s.rateLimiter != nil && !s.rateLimiter.Allow(cmd.Email) {
		return nil, common.NewInternalError("Too many attempts, please try again later.")
	}

	// Find user with matching email.
	existingUser, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, common.NewInternalError(err.Error())
	}
	if existingUser == nil {
		return nil, common.NewInvalidQueryError(
			fmt.Sprintf("No user with email %s!", cmd.Email))
	}

	// Compare password from arguments to hashed password from db.
	if err := existingUser.CheckPassword(cmd.Password); err != nil {
		return nil, common.NewAuthenticationError("Incorrect password!")
	}

	return s.issueCredential(existingUser)
}

func (s *AuthService) issueCredential(user *entities.User) (*command.AuthResult, error) {
	token, err := s.jwtService.GenerateToken(mapper.NewIdentityFromUser(user))
	if err != nil {
		log.Printf("failed to sign token for user %s: %v", user.ID.Hex(), err)
		return nil, common.NewInternalError("Failed to sign credential.")
	}
	return &command.AuthResult{Token: token, User: user}, nil
}
