package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/store"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateHistory
	StateInsights
	StateNote
	StateConfirmDelete
)

const tabCount = 3

// NoteFormModel holds the note being typed for a freshly picked mood.
type NoteFormModel struct {
	Note string
}

type Model struct {
	store         *store.SharedStore
	state         SessionState
	keys          KeyMap
	help          help.Model
	entries       []models.Entry
	moodCursor    int
	historyCursor int
	form          *huh.Form
	noteForm      *NoteFormModel
	pendingMood   models.Mood
	toast         string
	quitting      bool
	width         int
	height        int
}

func NewModel(s *store.SharedStore) Model {
	return Model{
		store:   s,
		state:   StateHome,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		entries: s.Entries(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Note").
				Description("Optional. Enter to save.").
				Value(&fm.Note),
		),
	)
}
