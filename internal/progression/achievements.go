package progression

import "github.com/crankerz/crankerz/internal/models"

// Stats is the aggregate snapshot the achievement evaluator checks
// thresholds against.
type Stats struct {
	TotalSessions int
	LongestStreak int
	FriendCount   int
}

// EvaluationResult lists what a single evaluator pass unlocked.
type EvaluationResult struct {
	Unlocked         []models.Achievement // Newly qualified achievements, catalog order.
	ExperienceReward int                  // Sum of their XP rewards.
}

// statValue resolves the statistic an achievement's requirement applies to.
func statValue(stats Stats, requirement models.RequirementType) int {
	switch requirement {
	case models.RequirementSessions:
		return stats.TotalSessions
	case models.RequirementStreak:
		return stats.LongestStreak
	case models.RequirementFriends:
		return stats.FriendCount
	}
	return 0
}

// EvaluateAchievements returns every catalog achievement that the stats now
// satisfy and that is not already unlocked. A single pass may unlock several
// achievements; re-running with the same inputs unlocks nothing further, so
// the call is idempotent. Rewards sum in catalog order, though order does not
// affect the resulting experience total.
func EvaluateAchievements(catalog []models.Achievement, unlocked map[uint64]struct{}, stats Stats) EvaluationResult {
	var result EvaluationResult
	for _, achievement := range catalog {
		if _, ok := unlocked[achievement.ID]; ok {
			continue
		}
		if statValue(stats, achievement.RequirementType) < achievement.RequirementValue {
			continue
		}
		result.Unlocked = append(result.Unlocked, achievement)
		result.ExperienceReward += achievement.ExperienceReward
	}
	return result
}
