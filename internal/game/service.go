package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zlee-dev/dice-rewards/internal/apperrors"
	"github.com/zlee-dev/dice-rewards/internal/user"
)

// Product constants, deliberately not configurable.
const (
	dailyPlayLimit = 10
	pointsWin      = 10
	pointsLose     = -5
)

const (
	resultWin  = "赢"
	resultLose = "输"
	resultDraw = "平局"
)

// rollDie is a package var so tests can pin the dice.
var rollDie = func() int {
	return rand.Intn(6) + 1
}

type Service struct {
	users user.UserRepository
	repo  GameRepository
}

func NewService(users user.UserRepository, repo GameRepository) *Service {
	return &Service{users: users, repo: repo}
}

// Play runs one dice-game transaction for userID: eligibility checks,
// two rolls, and the atomic score-plus-history commit.
func (s *Service) Play(userID int64) (*PlayResponse, error) {
	u, err := s.users.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewAppError(400, "用户未注册", nil)
	}
	if u.IsBlocked {
		return nil, apperrors.NewAppError(400, "你已被封禁", nil)
	}
	if u.Phone == nil || *u.Phone == "" {
		return nil, apperrors.NewAppError(400, "请先授权手机号", nil)
	}
	if u.Plays >= dailyPlayLimit {
		return nil, apperrors.NewAppError(400, "今日已达游戏次数上限", nil)
	}

	userScore := rollDie()
	botScore := rollDie()
	delta, result := score(userScore, botScore)

	entry := &History{
		UserID:       userID,
		CreatedAt:    time.Now(),
		UserScore:    userScore,
		BotScore:     botScore,
		Result:       result,
		PointsChange: delta,
	}

	total, err := s.repo.RecordPlay(entry)
	if err != nil {
		if errors.Is(err, ErrPlayRejected) {
			// The guard lost a race after the checks above passed.
			if fresh, ferr := s.users.GetUser(userID); ferr == nil && fresh != nil && fresh.IsBlocked {
				return nil, apperrors.NewAppError(400, "你已被封禁", nil)
			}
			return nil, apperrors.NewAppError(400, "今日已达游戏次数上限", nil)
		}
		return nil, err
	}

	return &PlayResponse{
		UserScore:   userScore,
		BotScore:    botScore,
		Message:     playMessage(result, delta),
		TotalPoints: total,
	}, nil
}

func (s *Service) RecentHistory(limit int) ([]History, error) {
	return s.repo.RecentHistory(limit)
}

func score(userScore, botScore int) (int, string) {
	switch {
	case userScore > botScore:
		return pointsWin, resultWin
	case userScore < botScore:
		return pointsLose, resultLose
	default:
		return 0, resultDraw
	}
}

func playMessage(result string, delta int) string {
	if delta > 0 {
		return fmt.Sprintf("你%s了！+%d 分", result, delta)
	}
	return fmt.Sprintf("你%s了！%d 分", result, delta)
}
