package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zlee-dev/dice-rewards/internal/session"
)

// AdminGate redirects requests without a live admin session to the
// login form.
func AdminGate(sessions *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/admin/login")
			}

			ok, err := sessions.Exists(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}
			if !ok {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			return next(c)
		}
	}
}
