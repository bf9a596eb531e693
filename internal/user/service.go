package user

import (
	"github.com/rs/zerolog/log"

	"github.com/zlee-dev/dice-rewards/internal/apperrors"
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// Register creates the account for a Telegram user on first /start and
// acknowledges repeat calls. Returns whether a new account was created.
func (s *Service) Register(userID int64, username string, inviterID *int64) (bool, error) {
	existing, err := s.repo.GetUser(userID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	newUser := User{
		UserID:    userID,
		Username:  username,
		InviterID: inviterID,
	}
	if err := s.repo.CreateUser(&newUser); err != nil {
		return false, err
	}
	return true, nil
}

// Bind records telegramID against the single account whose username or
// phone equals handle. Zero or multiple matches both fail and mutate
// nothing.
func (s *Service) Bind(telegramID int64, handle string) error {
	matches, err := s.repo.FindByHandle(handle)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return apperrors.NewAppError(400, "未找到匹配账户", nil)
	}
	if len(matches) > 1 {
		return apperrors.NewAppError(400, "匹配到多个账户", nil)
	}

	return s.repo.SetTelegramID(matches[0].UserID, telegramID)
}

func (s *Service) FirstEligible() (*User, error) {
	return s.repo.FirstEligible()
}

func (s *Service) ListByPoints() ([]User, error) {
	return s.repo.ListByPoints()
}

// ResetDailyPlays is invoked by the scheduler once per day. Idempotent.
func (s *Service) ResetDailyPlays() error {
	n, err := s.repo.ResetDailyPlays()
	if err != nil {
		return err
	}
	log.Info().Int64("accounts", n).Msg("daily play counters reset")
	return nil
}
