package game

import "time"

// History is one completed play. Rows are written once by the play
// transaction and never updated.
type History struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       int64     `gorm:"not null;index" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UserScore    int       `gorm:"not null" json:"user_score"`
	BotScore     int       `gorm:"not null" json:"bot_score"`
	Result       string    `gorm:"not null" json:"result"`
	PointsChange int       `gorm:"not null" json:"points_change"`
}

func (History) TableName() string {
	return "game_history"
}

type PlayResponse struct {
	UserScore   int    `json:"user_score"`
	BotScore    int    `json:"bot_score"`
	Message     string `json:"message"`
	TotalPoints int    `json:"total_points"`
}
