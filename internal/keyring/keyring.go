// Package keyring stores the tray notifier's webhook secret in the OS
// keyring, so the plaintext lockfile only has to carry the port and pid.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/moodlog/internal/constants"
)

const secretUser = "tray-webhook"

var (
	// ErrNotFound is returned when no secret is stored in the keyring
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetTraySecret retrieves the tray webhook secret from the OS keyring.
// Returns ErrNotFound if no secret is stored.
func GetTraySecret() (string, error) {
	secret, err := keyring.Get(constants.AppIdentifier, secretUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		// Wrap other keyring errors as unavailable
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// SetTraySecret stores the tray webhook secret in the OS keyring.
func SetTraySecret(secret string) error {
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppIdentifier, secretUser, secret); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

// DeleteTraySecret removes the tray webhook secret from the OS keyring.
func DeleteTraySecret() error {
	err := keyring.Delete(constants.AppIdentifier, secretUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppIdentifier, "test-availability")
	// ErrNotFound means the keyring answered, it is just empty
	return err == nil || err == keyring.ErrNotFound
}
