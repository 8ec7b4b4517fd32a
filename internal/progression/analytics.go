package progression

import (
	"math"
	"time"

	"github.com/crankerz/crankerz/internal/models"
)

// trendMonths is how many trailing calendar months the monthly trend covers.
const trendMonths = 6

// dayNames maps day-of-week bucket indexes to display names.
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// MonthlyTrend is one month's session count in the trend series.
type MonthlyTrend struct {
	Month    string `json:"month"` // Calendar month, formatted YYYY-MM.
	Sessions int    `json:"sessions"`
}

// Patterns holds the day/hour histograms and their best buckets.
type Patterns struct {
	BestDay    string  `json:"bestDay"`  // Name of the busiest weekday.
	BestHour   int     `json:"bestHour"` // Busiest hour of day, 0-23.
	DayCounts  [7]int  `json:"dayCounts"`
	HourCounts [24]int `json:"hourCounts"`
}

// Report is the full analytics summary derived from a user's session log.
// It carries no state of its own and is safe to recompute at any time.
type Report struct {
	BasicStats       BasicStats     `json:"basicStats"`
	Patterns         Patterns       `json:"patterns"`
	MonthlyTrends    []MonthlyTrend `json:"monthlyTrends"`
	ConsistencyScore int            `json:"consistencyScore"`
}

// BasicStats echoes the user aggregate fields the analytics page shows.
type BasicStats struct {
	TotalSessions int       `json:"total_sessions"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	Level         int       `json:"level"`
	Experience    int       `json:"experience"`
	JoinDate      time.Time `json:"join_date"`
}

// Analyze summarizes a user's full session history. Ties in the histograms
// resolve to the lowest bucket index.
func Analyze(user models.User, sessions []models.Session, now time.Time) Report {
	report := Report{
		BasicStats: BasicStats{
			TotalSessions: user.TotalSessions,
			CurrentStreak: user.CurrentStreak,
			LongestStreak: user.LongestStreak,
			Level:         user.Level,
			Experience:    user.Experience,
			JoinDate:      user.CreatedAt,
		},
	}

	for _, session := range sessions {
		if session.DayOfWeek >= 0 && session.DayOfWeek < 7 {
			report.Patterns.DayCounts[session.DayOfWeek]++
		}
		if session.HourOfDay >= 0 && session.HourOfDay < 24 {
			report.Patterns.HourCounts[session.HourOfDay]++
		}
	}
	report.Patterns.BestDay = dayNames[maxIndex(report.Patterns.DayCounts[:])]
	report.Patterns.BestHour = maxIndex(report.Patterns.HourCounts[:])

	report.MonthlyTrends = monthlyTrends(sessions, now)
	report.ConsistencyScore = ConsistencyScore(user.TotalSessions, user.CreatedAt, now)
	return report
}

// maxIndex returns the index of the largest count, lowest index on ties.
func maxIndex(counts []int) int {
	best := 0
	for i, count := range counts {
		if count > counts[best] {
			best = i
		}
	}
	return best
}

// monthlyTrends counts sessions per calendar month for the trailing window,
// oldest month first.
func monthlyTrends(sessions []models.Session, now time.Time) []MonthlyTrend {
	now = now.UTC()
	counts := make(map[string]int, trendMonths)
	for _, session := range sessions {
		counts[session.Timestamp.UTC().Format("2006-01")]++
	}

	trends := make([]MonthlyTrend, 0, trendMonths)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendMonths - 1), 0)
	for i := 0; i < trendMonths; i++ {
		month := first.AddDate(0, i, 0).Format("2006-01")
		trends = append(trends, MonthlyTrend{Month: month, Sessions: counts[month]})
	}
	return trends
}

// ConsistencyScore is the session-per-day ratio as a percentage capped at
// 100. Days since join is floored at one so the join day never divides by
// zero.
func ConsistencyScore(totalSessions int, joinDate, now time.Time) int {
	days := int(math.Floor(now.Sub(joinDate).Hours() / 24))
	if days < 1 {
		days = 1
	}
	score := int(math.Round(float64(totalSessions) / float64(days) * 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
