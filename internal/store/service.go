// Package store implements the cosmetic store: catalog listing with
// per-user availability and gated, idempotent purchases.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crankerz/crankerz/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Purchase gating errors.
var (
	// ErrItemNotFound indicates the item does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInsufficientPoints indicates the user cannot afford the item.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrAlreadyOwned indicates the user already purchased the item.
	ErrAlreadyOwned = errors.New("item already owned")
)

// LevelRequiredError indicates the user's level is below the item's gate.
type LevelRequiredError struct {
	Required int
}

// Error implements the error interface.
func (e *LevelRequiredError) Error() string {
	return fmt.Sprintf("level %d required", e.Required)
}

// ItemWithAvailability decorates a catalog entry with per-user purchase
// availability.
type ItemWithAvailability struct {
	models.StoreItem
	Available bool `json:"available"`
}

// Service exposes store catalog reads and purchases.
type Service struct {
	db *gorm.DB
}

// NewService constructs a Service.
func NewService(conn *gorm.DB) *Service {
	return &Service{db: conn}
}

// ListItems returns the full catalog annotated with availability for the
// given user's level.
func (s *Service) ListItems(ctx context.Context, userID uint64) ([]ItemWithAvailability, error) {
	var user models.User
	if errFind := s.db.WithContext(ctx).First(&user, userID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", errFind)
	}

	var items []models.StoreItem
	if errFind := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error; errFind != nil {
		return nil, fmt.Errorf("load store items: %w", errFind)
	}

	annotated := make([]ItemWithAvailability, 0, len(items))
	for _, item := range items {
		annotated = append(annotated, ItemWithAvailability{
			StoreItem: item,
			Available: user.Level >= item.LevelRequired,
		})
	}
	return annotated, nil
}

// ListPurchases returns the user's purchases with their items preloaded,
// newest first.
func (s *Service) ListPurchases(ctx context.Context, userID uint64) ([]models.Purchase, error) {
	var purchases []models.Purchase
	errFind := s.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&purchases).Error
	if errFind != nil {
		return nil, fmt.Errorf("load purchases: %w", errFind)
	}
	return purchases, nil
}

// PurchaseItem buys an item for the user. The purchase is gated on the
// item's level requirement and the user's session-point balance, and is
// idempotent: a repeat purchase returns ErrAlreadyOwned without touching
// the database.
func (s *Service) PurchaseItem(ctx context.Context, userID, itemID uint64) (models.Purchase, error) {
	var purchase models.Purchase

	errTx := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.StoreItem
		if errFind := tx.First(&item, itemID).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("load item: %w", errFind)
		}

		var user models.User
		if errFind := tx.First(&user, userID).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("load user: %w", errFind)
		}

		if user.Level < item.LevelRequired {
			return &LevelRequiredError{Required: item.LevelRequired}
		}
		if user.TotalSessions < item.Price {
			return ErrInsufficientPoints
		}

		purchase = models.Purchase{UserID: userID, ItemID: itemID, PurchasedAt: time.Now().UTC()}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&purchase)
		if result.Error != nil {
			return fmt.Errorf("create purchase: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyOwned
		}
		purchase.Item = item
		return nil
	})
	if errTx != nil {
		return models.Purchase{}, errTx
	}
	return purchase, nil
}
