package user

import "time"

// User is one game account. For accounts created through the bot the
// primary key is the Telegram user id; TelegramID is only set by /bind
// for accounts registered elsewhere.
type User struct {
	UserID     int64      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username   string     `gorm:"not null" json:"username"`
	Phone      *string    `json:"phone,omitempty"`
	Points     int        `gorm:"not null;default:0" json:"points"`
	Plays      int        `gorm:"not null;default:0" json:"plays"`
	IsBlocked  bool       `gorm:"not null;default:false" json:"is_blocked"`
	LastPlay   *time.Time `json:"last_play,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	TelegramID *int64     `gorm:"index" json:"telegram_id,omitempty"`
	InviterID  *int64     `json:"inviter_id,omitempty"`
}

func (User) TableName() string {
	return "users"
}
