package middleware

import (
	"recyclemart/internal/delivery/api/response"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/usecase"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// SessionMiddleware resolves the stored session before a handler runs.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUC usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessionUC: sessionUC}
}

// Authenticate rejects requests without a logged-in user and stores the actor on the context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.sessionUC.Current(c.Request().Context())
		if err != nil {
			return response.HandleAppError(c, err)
		}
		c.Set(actorKey, actor)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the actor's role.
// Services check roles again; this only fails fast at the edge.
func (m *SessionMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := m.sessionUC.Require(c.Request().Context(), roles...)
			if err != nil {
				return response.HandleAppError(c, err)
			}
			c.Set(actorKey, actor)

			return next(c)
		}
	}
}

// GetActor returns the actor stored by Authenticate or RequireRole.
func GetActor(c echo.Context) (*entity.Actor, bool) {
	actor, ok := c.Get(actorKey).(*entity.Actor)

	return actor, ok && actor != nil
}
