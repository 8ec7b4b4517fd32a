package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents an end-user account stored in the database.
//
// Level is always recomputed from Experience when the aggregate is written;
// it is persisted only so read paths and leaderboards avoid recomputing it.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Username string `gorm:"type:text;not null;uniqueIndex" json:"username"`      // Unique login name, stored lowercase.
	Password string `gorm:"type:text;not null" json:"-"`                         // Hashed password.
	Country  string `gorm:"type:text;not null;default:'Unknown'" json:"country"` // Self-reported country.

	TotalSessions int        `gorm:"not null;default:0" json:"total_sessions"` // Count of recorded sessions, doubles as spendable points.
	CurrentStreak int        `gorm:"not null;default:0" json:"current_streak"` // Consecutive-day streak ending today.
	LongestStreak int        `gorm:"not null;default:0" json:"longest_streak"` // High-water mark of CurrentStreak.
	LastSession   *time.Time `json:"last_session,omitempty"`                   // Timestamp of the most recent session.

	Experience int `gorm:"not null;default:0" json:"experience"` // Cumulative experience points, never decreases.
	Level      int `gorm:"not null;default:1" json:"level"`      // Derived from Experience via the level curve.

	ActiveSkin string         `gorm:"type:text;not null;default:'default'" json:"active_skin"` // Active UI skin name.
	Badges     datatypes.JSON `gorm:"default:'[]'" json:"badges"`                              // JSON array of owned badge emoji.

	EquippedTheme       string `gorm:"type:text" json:"equipped_theme"`        // Equipped theme item name.
	EquippedBadge       string `gorm:"type:text" json:"equipped_badge"`        // Equipped badge item name.
	EquippedAvatarFrame string `gorm:"type:text" json:"equipped_avatar_frame"` // Equipped avatar frame item name.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp, anchors the consistency score.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"` // Last update timestamp.
}
