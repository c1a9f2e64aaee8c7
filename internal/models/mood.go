package models

import "fmt"

// Mood is one of the five fixed mood categories. The set is closed;
// values are compiled in and never created at runtime.
type Mood string

const (
	MoodJoyful    Mood = "joyful"
	MoodNeutral   Mood = "neutral"
	MoodLow       Mood = "low"
	MoodIrritated Mood = "irritated"
	MoodDrowsy    Mood = "drowsy"
)

// AllMoods lists every mood in display order.
var AllMoods = []Mood{MoodJoyful, MoodNeutral, MoodLow, MoodIrritated, MoodDrowsy}

// MoodProfile is the display metadata for a mood. It is looked up from the
// mood tag and intentionally kept off the stored record.
type MoodProfile struct {
	Label    string
	Emoji    string
	Color    string    // primary display color, hex
	Gradient [2]string // widget gradient pair, hex
	IconName string    // icon asset variant for the dominant-mood icon
}

var moodProfiles = map[Mood]MoodProfile{
	MoodJoyful: {
		Label:    "Joyful",
		Emoji:    "😊",
		Color:    "4ECDC4",
		Gradient: [2]string{"FFD93D", "FFAA80"},
		IconName: "icon-joyful",
	},
	MoodNeutral: {
		Label:    "Neutral",
		Emoji:    "😐",
		Color:    "A8D8EA",
		Gradient: [2]string{"A8D8EA", "6BA3BE"},
		IconName: "icon-neutral",
	},
	MoodLow: {
		Label:    "Low",
		Emoji:    "😔",
		Color:    "9B7EBD",
		Gradient: [2]string{"C8B6E2", "9B7EBD"},
		IconName: "icon-low",
	},
	MoodIrritated: {
		Label:    "Irritated",
		Emoji:    "😡",
		Color:    "E63946",
		Gradient: [2]string{"FF6B6B", "E63946"},
		IconName: "icon-irritated",
	},
	MoodDrowsy: {
		Label:    "Drowsy",
		Emoji:    "😴",
		Color:    "C9C9C9",
		Gradient: [2]string{"F4E4C1", "C9C9C9"},
		IconName: "icon-drowsy",
	},
}

// Valid reports whether m is one of the five known moods.
func (m Mood) Valid() bool {
	_, ok := moodProfiles[m]
	return ok
}

// Profile returns the display metadata for m. Unknown moods get the
// neutral profile so rendering never fails on stale data.
func (m Mood) Profile() MoodProfile {
	if p, ok := moodProfiles[m]; ok {
		return p
	}
	return moodProfiles[MoodNeutral]
}

// ParseMood converts user input into a Mood.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood: %q (valid: joyful, neutral, low, irritated, drowsy)", s)
	}
	return m, nil
}
