package progression

import (
	"testing"
	"time"
)

var streakNow = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return streakNow.AddDate(0, 0, -n) }

func TestCurrentStreak_NoSessions(t *testing.T) {
	if got := CurrentStreak(nil, streakNow); got != 0 {
		t.Fatalf("expected streak 0, got %d", got)
	}
}

func TestCurrentStreak_ThreeConsecutiveDays(t *testing.T) {
	sessions := []time.Time{daysAgo(2), daysAgo(1), daysAgo(0)}
	if got := CurrentStreak(sessions, streakNow); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestCurrentStreak_GapResetsToZero(t *testing.T) {
	// Session two days ago, nothing yesterday or today.
	sessions := []time.Time{daysAgo(2)}
	if got := CurrentStreak(sessions, streakNow); got != 0 {
		t.Fatalf("expected streak 0 after gap, got %d", got)
	}
}

func TestCurrentStreak_NoSessionTodayIsZero(t *testing.T) {
	sessions := []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)}
	if got := CurrentStreak(sessions, streakNow); got != 0 {
		t.Fatalf("expected streak 0 without a session today, got %d", got)
	}
}

func TestCurrentStreak_MultipleSameDaySessionsCountOnce(t *testing.T) {
	sessions := []time.Time{
		daysAgo(0),
		daysAgo(0).Add(-2 * time.Hour),
		daysAgo(0).Add(-5 * time.Hour),
		daysAgo(1),
	}
	if got := CurrentStreak(sessions, streakNow); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}

func TestCurrentStreak_StopsAtFirstMissingDay(t *testing.T) {
	sessions := []time.Time{daysAgo(0), daysAgo(1), daysAgo(3), daysAgo(4)}
	if got := CurrentStreak(sessions, streakNow); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}

func TestUpdateLongestStreak_NeverDecreases(t *testing.T) {
	longest := 0
	currents := []int{1, 2, 3, 0, 1, 2, 0, 5, 0}
	highWater := 0
	for _, current := range currents {
		longest = UpdateLongestStreak(longest, current)
		if current > highWater {
			highWater = current
		}
		if longest != highWater {
			t.Fatalf("watermark = %d after current=%d, want %d", longest, current, highWater)
		}
	}
}
