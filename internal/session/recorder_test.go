package session

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/crankerz/crankerz/internal/db"
	"github.com/crankerz/crankerz/internal/models"
	"github.com/glebarez/sqlite"
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

func createTestUser(t *testing.T, conn *gorm.DB) models.User {
	t.Helper()
	user := models.User{Username: "cranker", Password: "hash", Country: "Unknown", Level: 1}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestRecord_FirstSession(t *testing.T) {
	conn := openTestDB(t)
	user := createTestUser(t, conn)

	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	recorder := NewRecorder(conn, func() time.Time { return now })

	result, err := recorder.Record(context.Background(), user.ID, "first one")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if result.SessionID == 0 {
		t.Fatalf("expected non-zero session id")
	}
	if result.Message != "Session recorded successfully! +10 XP" {
		t.Fatalf("unexpected message %q", result.Message)
	}

	// First Timer unlocks on the first session and rewards 10 XP.
	if len(result.Unlocked) != 1 || result.Unlocked[0].Name != "First Timer" {
		t.Fatalf("expected First Timer unlock, got %+v", result.Unlocked)
	}
	if result.ExperienceGained != 20 {
		t.Fatalf("expected 20 XP gained, got %d", result.ExperienceGained)
	}

	var reloaded models.User
	if errFind := conn.First(&reloaded, user.ID).Error; errFind != nil {
		t.Fatalf("reload user: %v", errFind)
	}
	if reloaded.TotalSessions != 1 {
		t.Fatalf("expected 1 session, got %d", reloaded.TotalSessions)
	}
	if reloaded.Experience != 20 {
		t.Fatalf("expected 20 experience, got %d", reloaded.Experience)
	}
	if reloaded.CurrentStreak != 1 || reloaded.LongestStreak != 1 {
		t.Fatalf("expected streaks 1/1, got %d/%d", reloaded.CurrentStreak, reloaded.LongestStreak)
	}
	if reloaded.LastSession == nil || !reloaded.LastSession.Equal(now) {
		t.Fatalf("expected last session %s, got %v", now, reloaded.LastSession)
	}

	var stored models.Session
	if errFind := conn.First(&stored, result.SessionID).Error; errFind != nil {
		t.Fatalf("load session: %v", errFind)
	}
	if stored.DayOfWeek != 1 || stored.HourOfDay != 9 {
		t.Fatalf("expected Monday 9am, got day=%d hour=%d", stored.DayOfWeek, stored.HourOfDay)
	}
	if stored.Notes != "first one" {
		t.Fatalf("expected notes to survive, got %q", stored.Notes)
	}
}

func TestRecord_SameDayKeepsStreak(t *testing.T) {
	conn := openTestDB(t)
	user := createTestUser(t, conn)

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	recorder := NewRecorder(conn, func() time.Time { return now })

	if _, err := recorder.Record(context.Background(), user.ID, ""); err != nil {
		t.Fatalf("record first: %v", err)
	}
	now = now.Add(3 * time.Hour)
	result, err := recorder.Record(context.Background(), user.ID, "")
	if err != nil {
		t.Fatalf("record second: %v", err)
	}
	if len(result.Unlocked) != 0 {
		t.Fatalf("expected no new unlocks, got %+v", result.Unlocked)
	}

	var reloaded models.User
	if errFind := conn.First(&reloaded, user.ID).Error; errFind != nil {
		t.Fatalf("reload user: %v", errFind)
	}
	if reloaded.TotalSessions != 2 {
		t.Fatalf("expected 2 sessions, got %d", reloaded.TotalSessions)
	}
	if reloaded.CurrentStreak != 1 {
		t.Fatalf("expected same-day streak 1, got %d", reloaded.CurrentStreak)
	}
	// 2 sessions plus the First Timer reward.
	if reloaded.Experience != 30 {
		t.Fatalf("expected 30 experience, got %d", reloaded.Experience)
	}
}

func TestRecord_ConsecutiveDaysGrowStreakAndUnlock(t *testing.T) {
	conn := openTestDB(t)
	user := createTestUser(t, conn)

	now := time.Date(2026, 8, 25, 20, 0, 0, 0, time.UTC)
	recorder := NewRecorder(conn, func() time.Time { return now })

	var last Result
	for day := 0; day < 3; day++ {
		var err error
		last, err = recorder.Record(context.Background(), user.ID, "")
		if err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
		now = now.Add(24 * time.Hour)
	}

	// Day three crosses the Streak Starter threshold.
	found := false
	for _, achievement := range last.Unlocked {
		if achievement.Name == "Streak Starter" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Streak Starter on day 3, got %+v", last.Unlocked)
	}

	var reloaded models.User
	if errFind := conn.First(&reloaded, user.ID).Error; errFind != nil {
		t.Fatalf("reload user: %v", errFind)
	}
	if reloaded.CurrentStreak != 3 || reloaded.LongestStreak != 3 {
		t.Fatalf("expected streaks 3/3, got %d/%d", reloaded.CurrentStreak, reloaded.LongestStreak)
	}
}

func TestRecord_FriendUnlocksSocialButterfly(t *testing.T) {
	conn := openTestDB(t)
	user := createTestUser(t, conn)
	friend := models.User{Username: "buddy", Password: "hash", Country: "Unknown", Level: 1}
	if err := conn.Create(&friend).Error; err != nil {
		t.Fatalf("create friend: %v", err)
	}
	if err := conn.Create(&models.Friendship{UserID: user.ID, FriendID: friend.ID}).Error; err != nil {
		t.Fatalf("create friendship: %v", err)
	}

	recorder := NewRecorder(conn, nil)
	result, err := recorder.Record(context.Background(), user.ID, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	found := false
	for _, achievement := range result.Unlocked {
		if achievement.Name == "Social Butterfly" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Social Butterfly unlock, got %+v", result.Unlocked)
	}
}

func TestRecord_MultibyteNoteWithinLimit(t *testing.T) {
	conn := openTestDB(t)
	user := createTestUser(t, conn)

	// 300 characters, well over 500 bytes; the bound counts characters.
	note := strings.Repeat("練", 300)
	recorder := NewRecorder(conn, nil)
	result, err := recorder.Record(context.Background(), user.ID, note)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	var stored models.Session
	if errFind := conn.First(&stored, result.SessionID).Error; errFind != nil {
		t.Fatalf("load session: %v", errFind)
	}
	if stored.Notes != note {
		t.Fatalf("expected note to survive, got %q", stored.Notes)
	}

	if _, errLong := recorder.Record(context.Background(), user.ID, strings.Repeat("練", MaxNoteLength+1)); errLong != ErrNoteTooLong {
		t.Fatalf("expected ErrNoteTooLong, got %v", errLong)
	}
}

func TestRecord_NoteTooLong(t *testing.T) {
	conn := openTestDB(t)
	user := createTestUser(t, conn)

	recorder := NewRecorder(conn, nil)
	_, err := recorder.Record(context.Background(), user.ID, strings.Repeat("x", MaxNoteLength+1))
	if err != ErrNoteTooLong {
		t.Fatalf("expected ErrNoteTooLong, got %v", err)
	}

	var count int64
	if errCount := conn.Model(&models.Session{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count sessions: %v", errCount)
	}
	if count != 0 {
		t.Fatalf("expected no session rows, got %d", count)
	}
}

func TestRecord_UnknownUser(t *testing.T) {
	conn := openTestDB(t)
	recorder := NewRecorder(conn, nil)
	if _, err := recorder.Record(context.Background(), 999, ""); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
