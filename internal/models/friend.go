package models

import "time"

// Friendship links two users. A stored row is a confirmed friendship. The
// pair is unique in one direction; queries that need both directions check
// (user_id, friend_id) either way.
type Friendship struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID   uint64 `gorm:"not null;uniqueIndex:idx_friend_pair" json:"user_id"`   // Adding user ID.
	FriendID uint64 `gorm:"not null;uniqueIndex:idx_friend_pair" json:"friend_id"` // Added user ID.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}
