package db

import (
	"fmt"

	"github.com/crankerz/crankerz/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates the schema and seeds the static reference catalogs. Both
// catalogs upsert by name so re-running migrations is harmless.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}

	if errAutoMigrate := conn.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.StoreItem{},
		&models.Purchase{},
		&models.Friendship{},
		&models.Reaction{},
	); errAutoMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errAutoMigrate)
	}

	if errSeed := seedAchievements(conn); errSeed != nil {
		return errSeed
	}
	if errSeed := seedStoreItems(conn); errSeed != nil {
		return errSeed
	}
	return nil
}

// seedAchievements inserts the achievement catalog, ignoring rows that
// already exist.
func seedAchievements(conn *gorm.DB) error {
	catalog := DefaultAchievements()
	if errCreate := conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&catalog).Error; errCreate != nil {
		return fmt.Errorf("db: seed achievements: %w", errCreate)
	}
	return nil
}

// seedStoreItems inserts the store catalog, ignoring rows that already exist.
func seedStoreItems(conn *gorm.DB) error {
	catalog := DefaultStoreItems()
	if errCreate := conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&catalog).Error; errCreate != nil {
		return fmt.Errorf("db: seed store items: %w", errCreate)
	}
	return nil
}
