package notify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/keyring"
	"github.com/julianstephens/moodlog/internal/models"
)

type fakeLogger struct {
	moods []models.Mood
	notes []string
}

func (l *fakeLogger) Add(mood models.Mood, note string) models.Entry {
	l.moods = append(l.moods, mood)
	l.notes = append(l.notes, note)
	return models.Entry{ID: "new", Timestamp: time.Now(), Mood: mood, Note: note}
}

func TestHandleAction_LogsExactlyOnce(t *testing.T) {
	logger := &fakeLogger{}

	entry := HandleAction(logger, models.MoodJoyful)
	if len(logger.moods) != 1 {
		t.Fatalf("expected exactly one logged entry, got %d", len(logger.moods))
	}
	if logger.moods[0] != models.MoodJoyful {
		t.Errorf("logged mood = %v", logger.moods[0])
	}
	if logger.notes[0] != constants.NotificationNote {
		t.Errorf("logged note = %q, want the notification note", logger.notes[0])
	}
	if entry.Mood != models.MoodJoyful {
		t.Errorf("returned entry mood = %v", entry.Mood)
	}
}

type fakeProcess struct {
	pid        int
	executable string
}

func (p *fakeProcess) Pid() int           { return p.pid }
func (p *fakeProcess) PPid() int          { return 0 }
func (p *fakeProcess) Executable() string { return p.executable }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), constants.NotifierLockfileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	orig := findProcessFunc
	defer func() { findProcessFunc = orig }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &fakeProcess{pid: pid, executable: "moodlog-tray"}, nil
	}

	port, secret, err := findAndValidateTrayProcess(writeLockfile(t, "8173|1234|s3cret"))
	if err != nil {
		t.Fatalf("valid lockfile rejected: %v", err)
	}
	if port != "8173" || secret != "s3cret" {
		t.Errorf("got port %q secret %q", port, secret)
	}
}

func TestFindAndValidateTrayProcess_BadLockfiles(t *testing.T) {
	orig := findProcessFunc
	defer func() { findProcessFunc = orig }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &fakeProcess{pid: pid, executable: "moodlog-tray"}, nil
	}

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing fields", "8173|1234", "malformed"},
		{"bad port", "eighty|1234|s", "invalid port"},
		{"port out of range", "70000|1234|s", "outside valid range"},
		{"bad pid", "8173|abc|s", "invalid process ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := findAndValidateTrayProcess(writeLockfile(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestFindAndValidateTrayProcess_WrongExecutable(t *testing.T) {
	orig := findProcessFunc
	defer func() { findProcessFunc = orig }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &fakeProcess{pid: pid, executable: "someother-daemon"}, nil
	}

	if _, _, err := findAndValidateTrayProcess(writeLockfile(t, "8173|1234|s")); err == nil {
		t.Error("expected rejection when the PID belongs to another process")
	}
}

func TestFindAndValidateTrayProcess_EmptySecretAllowed(t *testing.T) {
	orig := findProcessFunc
	defer func() { findProcessFunc = orig }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &fakeProcess{pid: pid, executable: "moodlog-tray"}, nil
	}

	// The tray may keep the secret only in the OS keyring; a blank
	// lockfile field is not a parse error.
	_, secret, err := findAndValidateTrayProcess(writeLockfile(t, "8173|1234| "))
	if err != nil {
		t.Fatalf("blank secret field rejected: %v", err)
	}
	if secret != "" {
		t.Errorf("secret = %q, want empty", secret)
	}
}

func TestResolveSecret(t *testing.T) {
	orig := getTraySecretFunc
	defer func() { getTraySecretFunc = orig }()

	// Keyring secret wins over the lockfile field.
	getTraySecretFunc = func() (string, error) { return "from-keyring", nil }
	got, err := resolveSecret("from-lockfile")
	if err != nil || got != "from-keyring" {
		t.Errorf("resolveSecret = %q, %v, want the keyring secret", got, err)
	}

	// Without a stored secret the lockfile field is the fallback.
	getTraySecretFunc = func() (string, error) { return "", keyring.ErrNotFound }
	got, err = resolveSecret("from-lockfile")
	if err != nil || got != "from-lockfile" {
		t.Errorf("resolveSecret = %q, %v, want the lockfile secret", got, err)
	}

	// Neither source means no way to authenticate the webhook.
	if _, err := resolveSecret(""); err == nil {
		t.Error("expected an error when no secret exists anywhere")
	}
}

func TestFindAndValidateTrayProcess_NoLockfile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.lock")
	if _, _, err := findAndValidateTrayProcess(missing); err == nil {
		t.Error("expected an error when the lockfile is absent")
	}
}
