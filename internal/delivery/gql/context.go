package gql

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

type scopeKey struct{}

// RequestScope is the per-request value threaded into every resolver: the
// resolved identity (nil = anonymous), the backing session id, and access to
// the response for cookie writes. Never stored outside the request context.
type RequestScope struct {
	Identity  *entities.Identity
	SessionID string
	echo      echo.Context
}

func NewRequestScope(c echo.Context, identity *entities.Identity, sessionID string) *RequestScope {
	return &RequestScope{
		Identity:  identity,
		SessionID: sessionID,
		echo:      c,
	}
}

func (rs *RequestScope) SetSessionCookie(name, sessionID string, ttl time.Duration) {
	if rs.echo == nil {
		return
	}
	rs.echo.SetCookie(&http.Cookie{
		Name:     name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
	})
}

func (rs *RequestScope) ClearSessionCookie(name string) {
	if rs.echo == nil {
		return
	}
	rs.echo.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func WithRequestScope(ctx context.Context, scope *RequestScope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

func ScopeFromContext(ctx context.Context) *RequestScope {
	scope, _ := ctx.Value(scopeKey{}).(*RequestScope)
	return scope
}
