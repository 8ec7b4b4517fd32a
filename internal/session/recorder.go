// Package session implements the check-in orchestrator: it appends the
// session event and rolls the derived user aggregate forward in one
// transaction.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/crankerz/crankerz/internal/db"
	"github.com/crankerz/crankerz/internal/models"
	"github.com/crankerz/crankerz/internal/progression"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxNoteLength bounds the optional check-in note.
const MaxNoteLength = 500

// Recorder errors.
var (
	// ErrNoteTooLong indicates the note exceeds MaxNoteLength.
	ErrNoteTooLong = errors.New("notes must be less than 500 characters")
	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Result reports the outcome of one recorded check-in.
type Result struct {
	SessionID        uint64               // ID of the appended session row.
	Message          string               // Human-readable confirmation.
	ExperienceGained int                  // Session XP plus any achievement rewards.
	Unlocked         []models.Achievement // Achievements unlocked by this check-in.
}

// Recorder records check-ins against the user aggregate.
type Recorder struct {
	db    *gorm.DB
	nowFn func() time.Time
}

// NewRecorder constructs a Recorder. A nil nowFn uses the wall clock.
func NewRecorder(conn *gorm.DB, nowFn func() time.Time) *Recorder {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Recorder{db: conn, nowFn: nowFn}
}

// Record appends a session for the user and updates the derived stats:
// session count, experience, level, streaks, and achievement unlocks. The
// whole update runs in one transaction so a failure leaves neither a counted
// session without XP nor XP without a session.
func (r *Recorder) Record(ctx context.Context, userID uint64, notes string) (Result, error) {
	if utf8.RuneCountInString(notes) > MaxNoteLength {
		return Result{}, ErrNoteTooLong
	}

	now := r.nowFn().UTC()
	var result Result

	errTx := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userQuery := tx
		// Postgres serializes concurrent check-ins per user on the row lock.
		// SQLite is single-writer, so the lock clause is unnecessary there.
		if !db.IsSQLite(tx) {
			userQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var user models.User
		if errFind := userQuery.First(&user, userID).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("load user: %w", errFind)
		}

		record := models.Session{
			UserID:    userID,
			Timestamp: now,
			Notes:     notes,
			DayOfWeek: int(now.Weekday()),
			HourOfDay: now.Hour(),
		}
		if errCreate := tx.Create(&record).Error; errCreate != nil {
			return fmt.Errorf("append session: %w", errCreate)
		}

		var sessionCount int64
		if errCount := tx.Model(&models.Session{}).Where("user_id = ?", userID).Count(&sessionCount).Error; errCount != nil {
			return fmt.Errorf("count sessions: %w", errCount)
		}

		var timestamps []time.Time
		if errPluck := tx.Model(&models.Session{}).Where("user_id = ?", userID).Pluck("timestamp", &timestamps).Error; errPluck != nil {
			return fmt.Errorf("load session timestamps: %w", errPluck)
		}

		user.TotalSessions = int(sessionCount)
		user.Experience += progression.SessionExperience
		user.CurrentStreak = progression.CurrentStreak(timestamps, now)
		user.LongestStreak = progression.UpdateLongestStreak(user.LongestStreak, user.CurrentStreak)
		user.LastSession = &now

		unlocked, reward, errEvaluate := evaluateUnlocks(tx, &user, now)
		if errEvaluate != nil {
			return errEvaluate
		}
		user.Experience += reward
		user.Level = progression.Level(user.Experience)

		if errSave := tx.Save(&user).Error; errSave != nil {
			return fmt.Errorf("save user: %w", errSave)
		}

		result = Result{
			SessionID:        record.ID,
			Message:          fmt.Sprintf("Session recorded successfully! +%d XP", progression.SessionExperience),
			ExperienceGained: progression.SessionExperience + reward,
			Unlocked:         unlocked,
		}
		return nil
	})
	if errTx != nil {
		return Result{}, errTx
	}

	log.WithField("user_id", userID).WithField("xp", result.ExperienceGained).Debug("session recorded")
	return result, nil
}

// evaluateUnlocks runs the achievement evaluator against the refreshed stats
// and persists any new unlocks. Inserts are insert-or-ignore, so an unlock
// raced by a concurrent check-in stays a no-op.
func evaluateUnlocks(tx *gorm.DB, user *models.User, now time.Time) ([]models.Achievement, int, error) {
	var catalog []models.Achievement
	if errFind := tx.Order("id ASC").Find(&catalog).Error; errFind != nil {
		return nil, 0, fmt.Errorf("load achievement catalog: %w", errFind)
	}

	var unlockedIDs []uint64
	if errPluck := tx.Model(&models.UserAchievement{}).Where("user_id = ?", user.ID).
		Pluck("achievement_id", &unlockedIDs).Error; errPluck != nil {
		return nil, 0, fmt.Errorf("load unlocked achievements: %w", errPluck)
	}
	unlocked := make(map[uint64]struct{}, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = struct{}{}
	}

	friendCount, errFriends := countFriends(tx, user.ID)
	if errFriends != nil {
		return nil, 0, errFriends
	}

	evaluation := progression.EvaluateAchievements(catalog, unlocked, progression.Stats{
		TotalSessions: user.TotalSessions,
		LongestStreak: user.LongestStreak,
		FriendCount:   friendCount,
	})
	if len(evaluation.Unlocked) == 0 {
		return nil, 0, nil
	}

	rows := make([]models.UserAchievement, 0, len(evaluation.Unlocked))
	for _, achievement := range evaluation.Unlocked {
		rows = append(rows, models.UserAchievement{
			UserID:        user.ID,
			AchievementID: achievement.ID,
			UnlockedAt:    now,
		})
	}
	if errCreate := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; errCreate != nil {
		return nil, 0, fmt.Errorf("persist unlocks: %w", errCreate)
	}
	return evaluation.Unlocked, evaluation.ExperienceReward, nil
}

// countFriends counts a user's friends across both directions. A pair
// linked both ways counts once.
func countFriends(tx *gorm.DB, userID uint64) (int, error) {
	var count int64
	errCount := tx.Raw(
		"SELECT COUNT(DISTINCT CASE WHEN user_id = ? THEN friend_id ELSE user_id END) FROM friendships WHERE user_id = ? OR friend_id = ?",
		userID, userID, userID,
	).Scan(&count).Error
	if errCount != nil {
		return 0, fmt.Errorf("count friends: %w", errCount)
	}
	return int(count), nil
}
