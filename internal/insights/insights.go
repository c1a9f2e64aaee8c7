// Package insights derives read-only views over the entry list. Everything
// here is a pure function recomputed from whatever the store last loaded;
// there is no cache to invalidate.
package insights

import (
	"sort"
	"time"

	"github.com/julianstephens/moodlog/internal/models"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// prevDay and nextDay step by calendar date components rather than
// AddDate, which keeps the normalized clock time and so drifts off the
// day-key midnight when a daylight-saving shift lands at midnight.
func prevDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d-1, 0, 0, 0, 0, time.Local)
}

func nextDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.Local)
}

// On filters entries to the calendar day of date (local day boundary, not a
// rolling 24h window). The input is assumed newest-first and order is kept.
func On(entries []models.Entry, date time.Time) []models.Entry {
	var out []models.Entry
	for _, e := range entries {
		if sameDay(e.Timestamp, date) {
			out = append(out, e)
		}
	}
	return out
}

// Today returns the entries for the current calendar day.
func Today(entries []models.Entry) []models.Entry {
	return On(entries, time.Now())
}

// HasToday reports whether any entry was logged today, short-circuiting.
func HasToday(entries []models.Entry) bool {
	now := time.Now()
	for _, e := range entries {
		if sameDay(e.Timestamp, now) {
			return true
		}
	}
	return false
}

// CurrentStreak counts consecutive calendar days ending at now (inclusive)
// that each have at least one entry. A day without entries stops the walk,
// so a quiet today yields 0.
func CurrentStreak(entries []models.Entry, now time.Time) int {
	days := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		days[startOfDay(e.Timestamp)] = true
	}

	streak := 0
	check := startOfDay(now)
	for days[check] {
		streak++
		check = prevDay(check)
	}
	return streak
}

// LongestStreak finds the longest run of consecutive calendar days that each
// contain at least one entry. Multiple entries on one day count once; any
// entry at all makes the minimum result 1.
func LongestStreak(entries []models.Entry) int {
	if len(entries) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool, len(entries))
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		day := startOfDay(e.Timestamp)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	// Oldest first.
	sortDays(days)

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(nextDay(days[i-1])) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

func sortDays(days []time.Time) {
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
}

// Dominant returns the mood with the highest count among entries. Ties go
// to the first mood to reach the maximum in input order, which makes the
// result deterministic for a given list. The second result is false for an
// empty list.
func Dominant(entries []models.Entry) (models.Mood, bool) {
	if len(entries) == 0 {
		return "", false
	}

	counts := make(map[models.Mood]int, len(models.AllMoods))
	var best models.Mood
	bestCount := 0
	for _, e := range entries {
		counts[e.Mood]++
		if counts[e.Mood] > bestCount {
			bestCount = counts[e.Mood]
			best = e.Mood
		}
	}
	return best, true
}

// MoodStat is one mood's share of a distribution.
type MoodStat struct {
	Count    int
	Fraction float64
}

// Distribution returns count and fraction per mood. Every known mood gets
// an entry; with no input the fractions are all 0, never NaN.
func Distribution(entries []models.Entry) map[models.Mood]MoodStat {
	out := make(map[models.Mood]MoodStat, len(models.AllMoods))
	for _, m := range models.AllMoods {
		out[m] = MoodStat{}
	}
	for _, e := range entries {
		stat := out[e.Mood]
		stat.Count++
		out[e.Mood] = stat
	}
	if len(entries) == 0 {
		return out
	}
	total := float64(len(entries))
	for m, stat := range out {
		stat.Fraction = float64(stat.Count) / total
		out[m] = stat
	}
	return out
}

// ThisWeekCount counts entries since the start of the current week
// (weeks start Monday).
func ThisWeekCount(entries []models.Entry, now time.Time) int {
	day := startOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -offset)

	count := 0
	for _, e := range entries {
		if !e.Timestamp.Before(weekStart) {
			count++
		}
	}
	return count
}
