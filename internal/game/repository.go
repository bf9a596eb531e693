package game

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zlee-dev/dice-rewards/internal/user"
)

// ErrPlayRejected means the guarded update matched no row: the account
// hit the daily limit or was blocked between the eligibility check and
// the commit.
var ErrPlayRejected = errors.New("play rejected by account guard")

type GameRepository interface {
	// RecordPlay applies one play atomically: the guarded account update,
	// the history insert and the points read-back commit together or not
	// at all. Returns the new points total.
	RecordPlay(entry *History) (int, error)
	RecentHistory(limit int) ([]History, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) RecordPlay(entry *History) (int, error) {
	var total int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Single conditional update: the row count, not the earlier read,
		// decides whether the play counts. Two racing plays cannot both
		// pass the limit.
		result := tx.Model(&user.User{}).
			Where("user_id = ? AND is_blocked = ? AND plays < ?",
				entry.UserID, false, dailyPlayLimit).
			Updates(map[string]interface{}{
				"points":    gorm.Expr("points + ?", entry.PointsChange),
				"plays":     gorm.Expr("plays + 1"),
				"last_play": entry.CreatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPlayRejected
		}

		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&user.User{}).
			Select("points").
			Where("user_id = ?", entry.UserID).
			Scan(&total).Error
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormGameRepository) RecentHistory(limit int) ([]History, error) {
	var entries []History
	result := r.db.Order("created_at DESC").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
