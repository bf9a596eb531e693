package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zlee-dev/dice-rewards/internal/apperrors"
	"github.com/zlee-dev/dice-rewards/internal/game"
	"github.com/zlee-dev/dice-rewards/internal/user"
)

type GameHandler struct {
	games *game.Service
	users *user.Service
}

func NewGameHandler(games *game.Service, users *user.Service) *GameHandler {
	return &GameHandler{games: games, users: users}
}

func (h *GameHandler) Register(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/dice_game", h.DiceGame)
	e.GET("/api/play_game", h.PlayGame)
}

// Home forwards to the game page for the oldest eligible account. A
// demo convenience, not a security boundary.
func (h *GameHandler) Home(c echo.Context) error {
	u, err := h.users.FirstEligible()
	if err != nil {
		return err
	}
	if u == nil {
		return c.String(http.StatusBadRequest, "❌ 没有可用的用户，请先注册或授权手机号")
	}
	return c.HTML(http.StatusOK,
		fmt.Sprintf(`<meta http-equiv="refresh" content="0; url=/dice_game?user_id=%d">`, u.UserID))
}

func (h *GameHandler) DiceGame(c echo.Context) error {
	return c.Render(http.StatusOK, "dice_game.html", nil)
}

func (h *GameHandler) PlayGame(c echo.Context) error {
	userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return apperrors.NewAppError(400, "缺少 user_id 参数", nil)
	}

	resp, err := h.games.Play(userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
