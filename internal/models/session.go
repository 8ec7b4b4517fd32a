package models

import "time"

// Session is one immutable check-in event. Rows are append-only; the
// day-of-week and hour-of-day buckets are captured at insert time so the
// analytics histograms never depend on the reader's timezone.
type Session struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID uint64 `gorm:"not null;index" json:"user_id"` // Owning user ID.
	User   User   `gorm:"foreignKey:UserID" json:"-"`    // Owning user record.

	Timestamp time.Time `gorm:"not null;index" json:"timestamp"` // Server-captured check-in time (UTC).
	Notes     string    `gorm:"type:text" json:"notes"`          // Optional free-text note, at most 500 characters.

	DayOfWeek int `gorm:"not null" json:"day_of_week"` // 0 (Sunday) through 6 (Saturday).
	HourOfDay int `gorm:"not null" json:"hour_of_day"` // 0 through 23.
}
