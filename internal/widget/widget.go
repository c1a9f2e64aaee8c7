// Package widget renders the home-screen glance. It reads only the
// projected key and is nudged to re-render through a refresh-signal file in
// the namespace directory, the cheapest cross-process invalidation there is.
package widget

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/models"
)

// FileRefresher invalidates cached widget renderings by touching a marker
// file inside the shared namespace directory. Widget processes watch the
// marker's mtime.
type FileRefresher struct {
	dir string
}

func NewFileRefresher(namespaceDir string) *FileRefresher {
	return &FileRefresher{dir: namespaceDir}
}

func (r *FileRefresher) signalPath() string {
	return filepath.Join(r.dir, constants.RefreshSignalName)
}

// RequestRefresh bumps the marker. Fire-and-forget; callers log and ignore
// failures.
func (r *FileRefresher) RequestRefresh() error {
	now := time.Now()
	if err := os.Chtimes(r.signalPath(), now, now); err == nil {
		return nil
	}
	f, err := os.OpenFile(r.signalPath(), os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to touch refresh signal: %w", err)
	}
	return f.Close()
}

// SignalTime returns the last invalidation time, or zero when no signal has
// ever fired.
func (r *FileRefresher) SignalTime() time.Time {
	info, err := os.Stat(r.signalPath())
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

var (
	glanceTitleStyle = lipgloss.NewStyle().Bold(true)
	glanceNoteStyle  = lipgloss.NewStyle().Faint(true)
	glanceBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

// Glance renders the widget face: the latest shared entry plus a count of
// today's logs. A nil latest renders the empty-state prompt.
func Glance(entries []models.SharedEntry, now time.Time) string {
	if len(entries) == 0 {
		return glanceBoxStyle.Render("No mood logged yet\nOpen moodlog to start")
	}

	latest := entries[0]
	profile := latest.Mood.Profile()

	todayCount := 0
	for _, e := range entries {
		if sameDay(e.Timestamp, now) {
			todayCount++
		}
	}

	var b strings.Builder
	title := glanceTitleStyle.
		Foreground(lipgloss.Color("#" + profile.Color)).
		Render(fmt.Sprintf("%s %s", profile.Emoji, profile.Label))
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(latest.Timestamp.Local().Format("Jan 2, 3:04 PM"))
	if latest.Note != "" {
		b.WriteString("\n")
		b.WriteString(glanceNoteStyle.Render(truncate(latest.Note, 40)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d logged today", todayCount))

	return glanceBoxStyle.
		BorderForeground(lipgloss.Color("#" + profile.Gradient[0])).
		Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
