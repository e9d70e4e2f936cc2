package gql

import (
	"context"
	"log"

	"github.com/graphql-go/graphql"

	"github.com/cecobask/socialdeck-api/internal/application/command"
	"github.com/cecobask/socialdeck-api/internal/application/common"
	"github.com/cecobask/socialdeck-api/internal/application/interfaces"
	"github.com/cecobask/socialdeck-api/internal/application/mapper"
	"github.com/cecobask/socialdeck-api/internal/config"
	"github.com/cecobask/socialdeck-api/internal/domain/entities"
	"github.com/cecobask/socialdeck-api/internal/infrastructure"
)

// Resolver dispatches every GraphQL operation. Each protected operation's
// first action is the identity gate; nothing executes past it anonymously.
type Resolver struct {
	auth     interfaces.AuthService
	users    interfaces.UserService
	posts    interfaces.PostService
	sessions *infrastructure.SessionStore
	cfg      *config.Config
}

func NewResolver(
	auth interfaces.AuthService,
	users interfaces.UserService,
	posts interfaces.PostService,
	sessions *infrastructure.SessionStore,
	cfg *config.Config,
) *Resolver {
	return &Resolver{
		auth:     auth,
		users:    users,
		posts:    posts,
		sessions: sessions,
		cfg:      cfg,
	}
}

func (r *Resolver) requireIdentity(p graphql.ResolveParams) (*entities.Identity, error) {
	scope := ScopeFromContext(p.Context)
	if scope == nil || scope.Identity == nil {
		return nil, common.NewAuthenticationError("You must authenticate first!")
	}
	return scope.Identity, nil
}

// --- Query ---

func (r *Resolver) me(p graphql.ResolveParams) (interface{}, error) {
	identity, err := r.requireIdentity(p)
	if err != nil {
		return nil, err
	}
	return r.users.FindByID(p.Context, identity.ID)
}

func (r *Resolver) allUsers(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireIdentity(p); err != nil {
		return nil, err
	}
	return r.users.FindAll(p.Context)
}

func (r *Resolver) findUserByID(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireIdentity(p); err != nil {
		return nil, err
	}
	return r.users.FindByID(p.Context, p.Args["_id"].(string))
}

func (r *Resolver) allPosts(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireIdentity(p); err != nil {
		return nil, err
	}
	return r.posts.FindAll(p.Context)
}

func (r *Resolver) findPostByID(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireIdentity(p); err != nil {
		return nil, err
	}
	return r.posts.FindByID(p.Context, p.Args["_id"].(string))
}

// userPosts backs the nested User.posts field.
func (r *Resolver) userPosts(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*entities.User)
	if !ok {
		return nil, common.NewInternalError("Unexpected source type for User.posts.")
	}
	return r.posts.FindByCreator(p.Context, user.ID.Hex())
}

// --- Mutation ---

func (r *Resolver) signUp(p graphql.ResolveParams) (interface{}, error) {
	scope := ScopeFromContext(p.Context)
	if scope != nil && scope.Identity != nil {
		return nil, common.NewAlreadyAuthenticatedError(
			"You cannot sign up while you are logged in!")
	}

	cmd := &command.SignUpCommand{
		Email:     p.Args["email"].(string),
		Password:  p.Args["password"].(string),
		FirstName: p.Args["firstName"].(string),
		LastName:  p.Args["lastName"].(string),
	}
	result, err := r.auth.SignUp(p.Context, cmd)
	if err != nil {
		return nil, err
	}

	r.establishSession(p.Context, scope, result.User)
	return result.Token, nil
}

func (r *Resolver) logIn(p graphql.ResolveParams) (interface{}, error) {
	scope := ScopeFromContext(p.Context)
	if scope != nil && scope.Identity != nil {
		return nil, common.NewAlreadyAuthenticatedError("You are already logged in!")
	}

	cmd := &command.LogInCommand{
		Email:    p.Args["email"].(string),
		Password: p.Args["password"].(string),
	}
	result, err := r.auth.LogIn(p.Context, cmd)
	if err != nil {
		return nil, err
	}

	r.establishSession(p.Context, scope, result.User)
	return result.Token, nil
}

func (r *Resolver) logOut(p graphql.ResolveParams) (interface{}, error) {
	scope := ScopeFromContext(p.Context)
	if scope == nil || scope.Identity == nil {
		return nil, common.NewAuthenticationError(
			"You cannot log out before you are logged in!")
	}

	if scope.SessionID != "" {
		if err := r.sessions.Destroy(p.Context, scope.SessionID); err != nil {
			log.Printf("failed to destroy session: %v", err)
		}
	}
	scope.ClearSessionCookie(r.cfg.SessionCookieName)
	scope.Identity = nil
	return "Successfully logged out.", nil
}

func (r *Resolver) createPost(p graphql.ResolveParams) (interface{}, error) {
	identity, err := r.requireIdentity(p)
	if err != nil {
		return nil, err
	}
	cmd := &command.CreatePostCommand{
		Message: p.Args["message"].(string),
		Links:   toStringSlice(p.Args["links"]),
	}
	return r.posts.Create(p.Context, identity, cmd)
}

func (r *Resolver) updatePost(p graphql.ResolveParams) (interface{}, error) {
	identity, err := r.requireIdentity(p)
	if err != nil {
		return nil, err
	}
	cmd := &command.UpdatePostCommand{
		PostID:  p.Args["postID"].(string),
		Message: p.Args["message"].(string),
		Links:   toStringSlice(p.Args["links"]),
	}
	return r.posts.Update(p.Context, identity, cmd)
}

func (r *Resolver) sharePost(p graphql.ResolveParams) (interface{}, error) {
	identity, err := r.requireIdentity(p)
	if err != nil {
		return nil, err
	}
	return r.posts.Share(p.Context, identity, p.Args["postID"].(string))
}

func (r *Resolver) deletePostByID(p graphql.ResolveParams) (interface{}, error) {
	identity, err := r.requireIdentity(p)
	if err != nil {
		return nil, err
	}
	return r.posts.DeleteByID(p.Context, identity, p.Args["_id"].(string))
}

func (r *Resolver) deleteAllPosts(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireIdentity(p); err != nil {
		return nil, err
	}
	return r.posts.DeleteAll(p.Context)
}

func (r *Resolver) deleteUserByID(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireIdentity(p); err != nil {
		return nil, err
	}
	return r.users.DeleteByID(p.Context, p.Args["_id"].(string))
}

func (r *Resolver) deleteAllUsers(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireIdentity(p); err != nil {
		return nil, err
	}
	return r.users.DeleteAll(p.Context)
}

// establishSession assigns a server-side session after signUp/logIn when
// sessions are the authoritative mechanism. The signed token is returned to
// the client either way.
func (r *Resolver) establishSession(ctx context.Context, scope *RequestScope, user *entities.User) {
	if r.cfg.AuthMode != config.AuthModeSession || scope == nil {
		return
	}
	sessionID, err := r.sessions.Create(ctx, mapper.NewIdentityFromUser(user))
	if err != nil {
		log.Printf("failed to create session: %v", err)
		return
	}
	scope.SessionID = sessionID
	scope.SetSessionCookie(r.cfg.SessionCookieName, sessionID, r.cfg.SessionTTL)
}

func toStringSlice(arg interface{}) []string {
	values, ok := arg.([]interface{})
	if !ok {
		return []string{}
	}
	links := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			links = append(links, s)
		}
	}
	return links
}
