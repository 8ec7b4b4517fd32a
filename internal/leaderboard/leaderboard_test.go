package leaderboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/crankerz/crankerz/internal/db"
	"github.com/crankerz/crankerz/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return conn
}

func seedUsers(t *testing.T, conn *gorm.DB) []models.User {
	t.Helper()
	users := []models.User{
		{Username: "alpha", Password: "hash", Country: "Norway", TotalSessions: 50, Level: 3},
		{Username: "bravo", Password: "hash", Country: "Norway", TotalSessions: 120, Level: 4},
		{Username: "charlie", Password: "hash", Country: "Japan", TotalSessions: 80, Level: 3},
	}
	for i := range users {
		if err := conn.Create(&users[i]).Error; err != nil {
			t.Fatalf("create user %s: %v", users[i].Username, err)
		}
	}
	return users
}

func TestGlobal_OrderAndLevel(t *testing.T) {
	conn := openTestDB(t)
	seedUsers(t, conn)

	entries, err := NewService(conn, nil, "", 0).Global(context.Background())
	if err != nil {
		t.Fatalf("global: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Username != "bravo" || entries[1].Username != "charlie" || entries[2].Username != "alpha" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	if entries[0].Level != 4 {
		t.Fatalf("expected level 4 on top entry, got %d", entries[0].Level)
	}
}

func TestCountry_FiltersByCountry(t *testing.T) {
	conn := openTestDB(t)
	seedUsers(t, conn)

	entries, err := NewService(conn, nil, "", 0).Country(context.Background(), "Norway")
	if err != nil {
		t.Fatalf("country: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Country != "Norway" {
			t.Fatalf("unexpected country in %+v", entry)
		}
	}
}

func TestFriends_BothDirectionsDedupedExcludingSelf(t *testing.T) {
	conn := openTestDB(t)
	users := seedUsers(t, conn)

	// alpha and bravo link each other; bravo also links charlie, which must
	// stay off alpha's board.
	friendships := []models.Friendship{
		{UserID: users[0].ID, FriendID: users[1].ID},
		{UserID: users[1].ID, FriendID: users[0].ID},
		{UserID: users[1].ID, FriendID: users[2].ID},
	}
	for i := range friendships {
		if err := conn.Create(&friendships[i]).Error; err != nil {
			t.Fatalf("create friendship: %v", err)
		}
	}

	entries, err := NewService(conn, nil, "", 0).Friends(context.Background(), users[0].ID)
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(entries) != 1 || entries[0].Username != "bravo" {
		t.Fatalf("expected bravo once, got %+v", entries)
	}
}

func TestGlobal_UsesRedisCache(t *testing.T) {
	conn := openTestDB(t)
	seedUsers(t, conn)

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	service := NewService(conn, cache, "crankerz:", time.Minute)

	first, err := service.Global(context.Background())
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	if !mr.Exists("crankerz:leaderboard:global") {
		t.Fatalf("expected cache key after first read")
	}

	// A database change is invisible until the cached board expires.
	if errUpdate := conn.Model(&models.User{}).Where("username = ?", "alpha").
		Update("total_sessions", 500).Error; errUpdate != nil {
		t.Fatalf("update user: %v", errUpdate)
	}
	second, err := service.Global(context.Background())
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if second[0].Username != first[0].Username {
		t.Fatalf("expected cached order, got %+v", second)
	}

	mr.FastForward(2 * time.Minute)
	third, err := service.Global(context.Background())
	if err != nil {
		t.Fatalf("third read: %v", err)
	}
	if third[0].Username != "alpha" {
		t.Fatalf("expected refreshed board led by alpha, got %+v", third)
	}
}
