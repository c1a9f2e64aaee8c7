package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateHistory:
		content = m.viewHistory()
	case StateInsights:
		content = m.viewInsights()
	case StateNote:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.toast != "" {
		parts = append(parts, toastStyle.Render(m.toast))
	}
	parts = append(parts, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Home", "History", "Insights"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	var cards []string
	for i, mood := range models.AllMoods {
		profile := mood.Profile()
		label := fmt.Sprintf("%s\n%s", profile.Emoji, profile.Label)
		style := moodCardStyle
		if i == m.moodCursor {
			style = selectedMoodCardStyle.BorderForeground(lipgloss.Color("#" + profile.Color))
		}
		cards = append(cards, style.Render(label))
	}

	header := "How are you feeling?"
	if !m.store.Available() {
		header += "\n" + faintStyle.Render("shared storage unavailable: entries will not be saved")
	}

	footer := faintStyle.Render("Nothing logged today yet")
	if insights.HasToday(m.entries) {
		footer = faintStyle.Render(fmt.Sprintf("%d logged today", len(insights.Today(m.entries))))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		footer,
	))
}

func (m Model) viewHistory() string {
	if len(m.entries) == 0 {
		return docStyle.Render("No entries yet. Log your first mood on the Home tab.")
	}

	var b strings.Builder
	var lastDay string
	for i, e := range m.entries {
		day := e.Timestamp.Local().Format("Mon, Jan 2")
		if day != lastDay {
			if lastDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(faintStyle.Render(day))
			b.WriteString("\n")
			lastDay = day
		}

		profile := e.Mood.Profile()
		line := fmt.Sprintf("%s  %s %-9s", e.Timestamp.Local().Format("15:04"), profile.Emoji, profile.Label)
		if e.Note != "" {
			line += "  " + e.Note
		}
		if e.HasAttachments() {
			line += "  [attachments]"
		}

		if i == m.historyCursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewInsights() string {
	now := time.Now()
	var b strings.Builder

	fmt.Fprintf(&b, "Current streak  %dd\n", insights.CurrentStreak(m.entries, now))
	fmt.Fprintf(&b, "Longest streak  %dd\n", insights.LongestStreak(m.entries))
	fmt.Fprintf(&b, "This week       %d\n", insights.ThisWeekCount(m.entries, now))
	if mood, ok := insights.Dominant(m.entries); ok {
		profile := mood.Profile()
		fmt.Fprintf(&b, "Most common     %s %s\n", profile.Emoji, profile.Label)
	}

	b.WriteString("\n")
	dist := insights.Distribution(m.entries)
	for _, mood := range models.AllMoods {
		stat := dist[mood]
		profile := mood.Profile()
		bar := strings.Repeat("█", int(stat.Fraction*20+0.5))
		fmt.Fprintf(&b, "%s %-9s %3d  %s\n", profile.Emoji, profile.Label, stat.Count, bar)
	}

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	e := m.entries[m.historyCursor]
	profile := e.Mood.Profile()
	return docStyle.Render(fmt.Sprintf(
		"Delete %s %s from %s?\n\n[y] Yes  [n] No",
		profile.Emoji, profile.Label, e.Timestamp.Local().Format("Jan 2, 15:04"),
	))
}
