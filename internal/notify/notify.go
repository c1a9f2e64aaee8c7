// Package notify delivers mood reminders through the moodlog tray process
// and handles the shortcut actions those reminders carry. The tray process
// advertises its webhook port through a lockfile; we validate the process
// is actually alive before posting.
package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/keyring"
	"github.com/julianstephens/moodlog/internal/models"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
	getTraySecretFunc = keyring.GetTraySecret
)

type Notifier struct{}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{}
}

// Notify shows a reminder toast via the tray process.
func (n *Notifier) Notify(text string) error {
	configDir, err := TrayConfigDir()
	if err != nil {
		return err
	}

	port, lockSecret, err := findAndValidateTrayProcess(filepath.Join(configDir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	secret, err := resolveSecret(lockSecret)
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	}
	return sendNotification(port, secret, payload)
}

// MoodLogger is the slice of the store the action handler needs.
type MoodLogger interface {
	Add(mood models.Mood, note string) models.Entry
}

// HandleAction is invoked when the user taps a mood shortcut on a
// reminder. Exactly one entry is logged per invocation.
func HandleAction(store MoodLogger, mood models.Mood) models.Entry {
	return store.Add(mood, constants.NotificationNote)
}

// TrayConfigDir returns the configuration directory used by the tray
// process, honoring a custom lockfile dir from its settings file.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.AppIdentifier+"-tray")

	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var settings struct {
				LockfileDir *string `json:"lockfile_dir"`
			}
			if err := json.Unmarshal(data, &settings); err == nil {
				if settings.LockfileDir != nil && *settings.LockfileDir != "" {
					return *settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("moodlog-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	// The secret field may be blank when the tray keeps it in the OS
	// keyring instead of the plaintext lockfile.
	secret := strings.TrimSpace(parts[2])

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("moodlog-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), "moodlog-tray") {
		return "", "", fmt.Errorf("process with PID %d is not moodlog-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

// resolveSecret picks the webhook secret: the OS keyring when one is
// stored there, otherwise the lockfile's plaintext field.
func resolveSecret(lockSecret string) (string, error) {
	if s, err := getTraySecretFunc(); err == nil && s != "" {
		return s, nil
	}
	if lockSecret == "" {
		return "", errors.New("no webhook secret in keyring or lockfile")
	}
	return lockSecret, nil
}

func sendNotification(port string, secret string, payload WebhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Moodlog-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
