// Package mockdata seeds backdated demo entries. This is the only code
// path that assigns anything other than the current time to a new entry.
package mockdata

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/moodlog/internal/models"
)

var sampleNotes = []string{
	"",
	"long walk after lunch",
	"slept badly",
	"good call with an old friend",
	"deadline pressure",
	"rainy all day",
	"",
}

// Entries generates count entries spread randomly over the past days. The
// result is unordered; saving through the store sorts it.
func Entries(count, days int) []models.Entry {
	if count <= 0 || days <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	entries := make([]models.Entry, 0, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		daysBack := rng.Intn(days)
		at := now.AddDate(0, 0, -daysBack).
			Add(-time.Duration(rng.Intn(12)) * time.Hour).
			Add(-time.Duration(rng.Intn(60)) * time.Minute)

		entries = append(entries, models.Entry{
			ID:        uuid.New().String(),
			Timestamp: at,
			Mood:      models.AllMoods[rng.Intn(len(models.AllMoods))],
			Note:      sampleNotes[rng.Intn(len(sampleNotes))],
		})
	}
	return entries
}
