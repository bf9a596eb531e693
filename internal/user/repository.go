package user

import (
	"errors"

	"gorm.io/gorm"
)

type UserRepository interface {
	// GetUser returns (nil, nil) when no account exists for id.
	GetUser(id int64) (*User, error)
	CreateUser(u *User) error
	// FindByHandle matches accounts whose username or phone equals handle.
	FindByHandle(handle string) ([]User, error)
	SetTelegramID(userID, telegramID int64) error
	// FirstEligible returns the oldest unblocked, phone-verified account,
	// or (nil, nil) when none exists.
	FirstEligible() (*User, error)
	ListByPoints() ([]User, error)
	// ResetDailyPlays zeroes every play counter and reports how many rows
	// actually changed. Running it against zeroed counters is a no-op.
	ResetDailyPlays() (int64, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetUser(id int64) (*User, error) {
	var u User
	result := r.db.Where("user_id = ?", id).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &u, nil
}

func (r *GormUserRepository) CreateUser(u *User) error {
	return r.db.Create(u).Error
}

func (r *GormUserRepository) FindByHandle(handle string) ([]User, error) {
	var users []User
	result := r.db.Where("username = ? OR phone = ?", handle, handle).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *GormUserRepository) SetTelegramID(userID, telegramID int64) error {
	return r.db.Model(&User{}).
		Where("user_id = ?", userID).
		Update("telegram_id", telegramID).Error
}

func (r *GormUserRepository) FirstEligible() (*User, error) {
	var u User
	result := r.db.
		Where("phone IS NOT NULL AND is_blocked = ?", false).
		Order("created_at ASC").
		First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &u, nil
}

func (r *GormUserRepository) ListByPoints() ([]User, error) {
	var users []User
	result := r.db.Order("points DESC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *GormUserRepository) ResetDailyPlays() (int64, error) {
	result := r.db.Model(&User{}).
		Where("plays > 0").
		Update("plays", 0)
	return result.RowsAffected, result.Error
}
