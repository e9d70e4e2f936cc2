package gql

import (
	"log"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cecobask/socialdeck-api/internal/config"
	"github.com/cecobask/socialdeck-api/internal/domain/entities"
	"github.com/cecobask/socialdeck-api/internal/infrastructure"
)

// IdentityMiddleware resolves the acting identity once per request from
// whichever mechanism the deployment treats as authoritative. Resolution
// failures (missing cookie, dead session, invalid token) yield anonymous,
// never an error; the per-operation gate decides what absence means.
func IdentityMiddleware(
	cfg *config.Config,
	sessions *infrastructure.SessionStore,
	jwtService *infrastructure.JWTService,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var identity *entities.Identity
			var sessionID string

			switch cfg.AuthMode {
			case config.AuthModeToken:
				identity = identityFromBearer(c, jwtService)
			default:
				identity, sessionID = identityFromCookie(c, cfg.SessionCookieName, sessions)
			}

			scope := NewRequestScope(c, identity, sessionID)
			ctx := WithRequestScope(c.Request().Context(), scope)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func identityFromCookie(c echo.Context, cookieName string, sessions *infrastructure.SessionStore) (*entities.Identity, string) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ""
	}
	identity, err := sessions.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		log.Printf("session lookup failed: %v", err)
		return nil, ""
	}
	return identity, cookie.Value
}

func identityFromBearer(c echo.Context, jwtService *infrastructure.JWTService) *entities.Identity {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil
	}
	return jwtService.VerifyToken(token)
}
