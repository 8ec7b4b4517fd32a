package models

import "time"

// AchievementCategory groups achievements for display.
type AchievementCategory string

// AchievementCategory values.
const (
	// CategoryConsistency marks streak-driven achievements.
	CategoryConsistency AchievementCategory = "consistency"
	// CategorySocial marks friend-driven achievements.
	CategorySocial AchievementCategory = "social"
	// CategoryMilestones marks session-count achievements.
	CategoryMilestones AchievementCategory = "milestones"
)

// RequirementType selects which user statistic an achievement checks.
type RequirementType string

// RequirementType values.
const (
	// RequirementSessions compares against total session count.
	RequirementSessions RequirementType = "sessions"
	// RequirementStreak compares against the longest streak.
	RequirementStreak RequirementType = "streak"
	// RequirementFriends compares against the accepted friend count.
	RequirementFriends RequirementType = "friends"
)

// Achievement is a static catalog entry. The catalog is reference data seeded
// at migration time and never mutated by request handling.
type Achievement struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name        string `gorm:"type:text;not null;uniqueIndex" json:"name"` // Display name.
	Description string `gorm:"type:text" json:"description"`               // Display description.
	BadgeEmoji  string `gorm:"type:text" json:"badge_emoji"`               // Emoji shown next to the name.

	Category         AchievementCategory `gorm:"type:text;not null" json:"category"`          // Display grouping.
	RequirementType  RequirementType     `gorm:"type:text;not null" json:"requirement_type"`  // Statistic the threshold applies to.
	RequirementValue int                 `gorm:"not null" json:"requirement_value"`           // Threshold that unlocks the achievement.
	ExperienceReward int                 `gorm:"not null;default:0" json:"experience_reward"` // One-time XP granted on unlock.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}

// UserAchievement joins a user to an unlocked achievement. The unique index
// makes unlocks idempotent at the storage layer.
type UserAchievement struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID        uint64      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`        // Owning user ID.
	AchievementID uint64      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"` // Unlocked achievement ID.
	Achievement   Achievement `gorm:"foreignKey:AchievementID" json:"-"`                               // Unlocked achievement record.

	UnlockedAt time.Time `gorm:"not null" json:"unlocked_at"` // Unlock timestamp.
}
