// Package icon recomputes the dominant-mood-today icon state after every
// mutation. The launcher reads the marker file to pick the icon variant.
package icon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/insights"
	"github.com/julianstephens/moodlog/internal/models"
)

// Updater persists the icon variant for today's dominant mood.
type Updater struct {
	path string
}

func NewUpdater(stateDir string) *Updater {
	return &Updater{path: filepath.Join(stateDir, constants.IconStateName)}
}

// Path returns the marker file location.
func (u *Updater) Path() string {
	return u.path
}

// Update recomputes the dominant mood over today's slice of the given
// (post-mutation) list and writes the matching icon name. A day with no
// entries keeps the current icon.
func (u *Updater) Update(entries []models.Entry) error {
	today := insights.Today(entries)
	if len(today) == 0 {
		return nil
	}

	mood, ok := insights.Dominant(today)
	if !ok {
		return nil
	}

	name := mood.Profile().IconName
	if current, err := os.ReadFile(u.path); err == nil && string(current) == name {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(u.path), 0700); err != nil {
		return fmt.Errorf("failed to create icon state directory: %w", err)
	}
	if err := os.WriteFile(u.path, []byte(name), 0600); err != nil {
		return fmt.Errorf("failed to write icon state: %w", err)
	}
	return nil
}

// Current returns the stored icon name, or empty when none has been set.
func (u *Updater) Current() string {
	data, err := os.ReadFile(u.path)
	if err != nil {
		return ""
	}
	return string(data)
}
