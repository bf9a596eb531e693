package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zlee-dev/dice-rewards/internal/game"
	"github.com/zlee-dev/dice-rewards/internal/session"
	"github.com/zlee-dev/dice-rewards/internal/user"
)

const recentHistoryLimit = 20

type AdminHandler struct {
	users    *user.Service
	games    *game.Service
	sessions *session.Store
	username string
	password string
}

func NewAdminHandler(users *user.Service, games *game.Service, sessions *session.Store, username, password string) *AdminHandler {
	return &AdminHandler{
		users:    users,
		games:    games,
		sessions: sessions,
		username: username,
		password: password,
	}
}

func (h *AdminHandler) Register(e *echo.Echo, gate echo.MiddlewareFunc) {
	e.GET("/admin/login", h.LoginForm)
	e.POST("/admin/login", h.Login)
	e.GET("/admin/logout", h.Logout)
	e.GET("/admin", h.Dashboard, gate)
}

func (h *AdminHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

func (h *AdminHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username != h.username || password != h.password {
		return c.Render(http.StatusOK, "login.html", map[string]interface{}{
			"Error": "登录失败",
		})
	}

	token, err := h.sessions.Create(c.Request().Context())
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(session.TTL),
	})
	return c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusFound, "/admin/login")
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	users, err := h.users.ListByPoints()
	if err != nil {
		return err
	}
	history, err := h.games.RecentHistory(recentHistoryLimit)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "dashboard.html", map[string]interface{}{
		"Users":   users,
		"History": history,
	})
}
