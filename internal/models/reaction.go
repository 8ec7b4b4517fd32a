package models

import "time"

// ReactionType enumerates the supported reaction emoji.
type ReactionType string

// ReactionType values.
const (
	ReactionLike  ReactionType = "like"
	ReactionFire  ReactionType = "fire"
	ReactionCheer ReactionType = "cheer"
	ReactionWow   ReactionType = "wow"
)

// ReactionTargetType enumerates what a reaction can attach to.
type ReactionTargetType string

// ReactionTargetType values.
const (
	TargetSession     ReactionTargetType = "session"
	TargetAchievement ReactionTargetType = "achievement"
	TargetStreak      ReactionTargetType = "streak"
)

// Reaction is a lightweight social response to another user's activity.
type Reaction struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID       uint64 `gorm:"not null;index" json:"user_id"`        // Reacting user ID.
	User         User   `gorm:"foreignKey:UserID" json:"-"`           // Reacting user record.
	TargetUserID uint64 `gorm:"not null;index" json:"target_user_id"` // User whose activity is reacted to.

	TargetType ReactionTargetType `gorm:"type:text;not null;index:idx_reaction_target" json:"target_type"` // Kind of target entity.
	TargetID   uint64             `gorm:"not null;index:idx_reaction_target" json:"target_id"`             // ID of the target entity.

	ReactionType ReactionType `gorm:"type:text;not null" json:"reaction_type"` // Reaction emoji kind.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}
