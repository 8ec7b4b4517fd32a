package progression

import "time"

// streakDay truncates a timestamp to its UTC calendar day.
func streakDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentStreak returns the length of the unbroken run of calendar days with
// at least one session, ending today. Multiple sessions on one day count
// once, and a day without a session resets the streak to zero rather than
// decaying it.
func CurrentStreak(timestamps []time.Time, now time.Time) int {
	if len(timestamps) == 0 {
		return 0
	}

	days := make(map[time.Time]struct{}, len(timestamps))
	for _, ts := range timestamps {
		days[streakDay(ts)] = struct{}{}
	}

	streak := 0
	for day := streakDay(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

// UpdateLongestStreak advances the longest-streak watermark. It never
// decreases: a broken current streak leaves the record intact.
func UpdateLongestStreak(longest, current int) int {
	if current > longest {
		return current
	}
	return longest
}
