package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodlog/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateNote:
			return m.updateNoteForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.toast = ""
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.toast = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			switch m.state {
			case StateHome:
				return m.updateHome(msg)
			case StateHistory:
				return m.updateHistory(msg)
			}
		}
	}

	return m, nil
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moodCursor = (m.moodCursor - 1 + len(models.AllMoods)) % len(models.AllMoods)
	case key.Matches(msg, m.keys.Right):
		m.moodCursor = (m.moodCursor + 1) % len(models.AllMoods)
	case key.Matches(msg, m.keys.Enter):
		m.pendingMood = models.AllMoods[m.moodCursor]
		m.noteForm = &NoteFormModel{}
		m.form = newNoteForm(m.noteForm)
		m.state = StateNote
		return m, m.form.Init()
	default:
		// Number shortcuts mirror the five buttons on the home screen.
		if s := msg.String(); len(s) == 1 {
			if n := int(s[0] - '1'); n >= 0 && n < len(models.AllMoods) {
				m.moodCursor = n
			}
		}
	}
	return m, nil
}

func (m Model) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateHome
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		entry := m.store.Add(m.pendingMood, m.noteForm.Note)
		m.entries = m.store.Entries()
		profile := entry.Mood.Profile()
		m.toast = fmt.Sprintf("Logged %s %s", profile.Emoji, profile.Label)
		if !m.store.Available() {
			m.toast += " (in memory only)"
		}
		m.state = StateHome
	case huh.StateAborted:
		m.state = StateHome
	}
	return m, cmd
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.historyCursor < len(m.entries)-1 {
			m.historyCursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if len(m.entries) > 0 {
			m.state = StateConfirmDelete
		}
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.historyCursor < len(m.entries) {
			m.store.Delete(m.entries[m.historyCursor].ID)
			m.entries = m.store.Entries()
			if m.historyCursor >= len(m.entries) && m.historyCursor > 0 {
				m.historyCursor--
			}
			m.toast = "Entry deleted"
		}
		m.state = StateHistory
	case "n", "N", "esc":
		m.state = StateHistory
	}
	return m, nil
}
