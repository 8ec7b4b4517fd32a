// Package progression holds the derived-stats core: the level curve, the
// streak calculator, the achievement evaluator, and the analytics
// aggregator. Everything here is a pure function of the session log and the
// user aggregate, so both the HTTP server and offline tooling can share one
// implementation instead of drifting apart.
package progression

import "math"

// SessionExperience is the fixed XP awarded per recorded session.
const SessionExperience = 10

// Level maps cumulative experience to a level number. Defined for all
// non-negative experience; level 1 is the floor.
func Level(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return int(math.Floor(math.Sqrt(float64(experience)/100))) + 1
}

// ExperienceForLevel returns the cumulative experience needed to leave the
// given level, i.e. the ceiling of the level's progress bar.
func ExperienceForLevel(level int) int {
	if level < 0 {
		level = 0
	}
	return level * level * 100
}

// LevelProgress describes position within the current level's XP band.
type LevelProgress struct {
	Current    int `json:"current"`    // XP earned within the current level.
	Needed     int `json:"needed"`     // XP span of the current level.
	Percentage int `json:"percentage"` // Rounded progress, clamped to [0,100].
}

// ProgressFor computes the level progress bar for a user's experience. The
// band floor is the previous level's ceiling, so a fresh level always starts
// at zero percent.
func ProgressFor(experience int) LevelProgress {
	level := Level(experience)
	floor := 0
	if level > 1 {
		floor = ExperienceForLevel(level - 1)
	}
	ceiling := ExperienceForLevel(level)
	needed := ceiling - floor

	current := experience - floor
	if current < 0 {
		current = 0
	}

	percentage := 0
	if needed > 0 {
		percentage = int(math.Round(float64(current) / float64(needed) * 100))
	}
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	return LevelProgress{Current: current, Needed: needed, Percentage: percentage}
}
