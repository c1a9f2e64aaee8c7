package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/moodlog/internal/keyring"
)

// SecretCmd manages the tray notifier's webhook secret in the OS keyring.
// With a stored secret the tray lockfile can leave its secret field blank.
type SecretCmd struct {
	Set   *SecretSetCmd   `cmd:"" help:"Store the tray webhook secret in the OS keyring."`
	Show  *SecretShowCmd  `cmd:"" help:"Show whether a secret is stored (masked)."`
	Clear *SecretClearCmd `cmd:"" help:"Remove the tray webhook secret from the OS keyring."`
}

type SecretSetCmd struct {
	Secret string `arg:"" help:"Webhook secret shared with the tray process."`
}

func (cmd *SecretSetCmd) Run(ctx *Context) error {
	if strings.TrimSpace(cmd.Secret) == "" {
		return errors.New("secret cannot be blank")
	}
	if err := keyring.SetTraySecret(cmd.Secret); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	fmt.Println("✓ Webhook secret stored in the OS keyring")
	fmt.Println("  The tray lockfile no longer needs to carry it in plaintext")
	return nil
}

type SecretShowCmd struct{}

func (cmd *SecretShowCmd) Run(ctx *Context) error {
	secret, err := keyring.GetTraySecret()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No secret stored; reminders fall back to the lockfile secret.")
			return nil
		}
		return fmt.Errorf("failed to read secret from keyring: %w", err)
	}
	fmt.Printf("Secret stored (%s)\n", maskSecret(secret))
	return nil
}

type SecretClearCmd struct{}

func (cmd *SecretClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteTraySecret(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no secret stored in the keyring")
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	fmt.Println("✓ Webhook secret removed from the OS keyring")
	return nil
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
