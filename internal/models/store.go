package models

import "time"

// StoreItemType identifies the cosmetic slot an item occupies.
type StoreItemType string

// StoreItemType values.
const (
	// ItemTheme re-skins the check-in surface.
	ItemTheme StoreItemType = "theme"
	// ItemBadge is a profile badge.
	ItemBadge StoreItemType = "badge"
	// ItemAvatarFrame decorates the avatar border.
	ItemAvatarFrame StoreItemType = "avatar_frame"
)

// StoreItem is a purchasable cosmetic catalog entry. Prices are denominated
// in session points (User.TotalSessions).
type StoreItem struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name        string        `gorm:"type:text;not null;uniqueIndex" json:"name"` // Display name.
	Type        StoreItemType `gorm:"type:text;not null;index" json:"type"`       // Cosmetic slot.
	Price       int           `gorm:"not null" json:"price"`                      // Price in session points.
	Description string        `gorm:"type:text" json:"description"`               // Display description.
	ImageURL    string        `gorm:"type:text" json:"image_url"`                 // Asset path.

	LevelRequired int `gorm:"not null;default:1" json:"level_required"` // Minimum user level to purchase.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}

// Purchase records one-time item ownership. The unique index gives purchases
// insert-or-ignore semantics.
type Purchase struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID uint64    `gorm:"not null;uniqueIndex:idx_user_item" json:"user_id"` // Buying user ID.
	ItemID uint64    `gorm:"not null;uniqueIndex:idx_user_item" json:"item_id"` // Purchased item ID.
	Item   StoreItem `gorm:"foreignKey:ItemID" json:"-"`                        // Purchased item record.

	PurchasedAt time.Time `gorm:"not null" json:"purchased_at"` // Purchase timestamp.
}
