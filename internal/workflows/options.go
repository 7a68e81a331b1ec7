package workflows

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/affine/internal/cipher"
	"github.com/PolarWolf314/affine/internal/configs"
	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/history"
)

// KeyOptions selects the key pair. Nil fields fall back to the configured
// default keys.
type KeyOptions struct {
	A *int
	B *int
}

// resolve returns the effective key pair.
func (k KeyOptions) resolve(config *configs.Config) (int, int) {
	a, b := config.Keys.A, config.Keys.B
	if k.A != nil {
		a = *k.A
	}
	if k.B != nil {
		b = *k.B
	}
	return a, b
}

// checkPositiveA rejects an a below 1. Such keys never produce letters, so
// they are refused even when exploring.
func checkPositiveA(a int) error {
	if a < 1 {
		return fmt.Errorf("a=%d must be positive: %w", a, kerrors.ErrInvalidKeyA)
	}
	return nil
}

// checkKeys converts an invalid key into the matching error.
func checkKeys(a, b int, v cipher.KeyValidation) error {
	if !v.AValid {
		return fmt.Errorf("a=%d: %w", a, kerrors.ErrInvalidKeyA)
	}
	if !v.BValid {
		return fmt.Errorf("b=%d: %w", b, kerrors.ErrInvalidKeyB)
	}
	return nil
}

func checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return kerrors.ErrNoInput
	}
	return nil
}

func historyStore() *history.Store {
	return history.NewStore(configs.HistoryFilePath())
}

// record appends an entry and prunes the log to the configured size.
func record(config *configs.Config, entry history.Entry) (string, error) {
	if !config.History.Enabled {
		return "", nil
	}

	store := historyStore()
	stored, err := store.Append(entry)
	if err != nil {
		return "", fmt.Errorf("recording history: %w", err)
	}
	if err := store.Prune(config.History.MaxEntries); err != nil {
		return "", fmt.Errorf("pruning history: %w", err)
	}
	return stored.ID, nil
}
