package configs

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/affine/internal/cipher"
	kerrors "github.com/PolarWolf314/affine/internal/errors"
)

type Config struct {
	Keys    Keys          `toml:"keys" json:"keys"`
	History HistoryConfig `toml:"history" json:"history"`
	Display DisplayConfig `toml:"display" json:"display"`
}

// Keys are the default key pair for encrypt and decrypt.
type Keys struct {
	A int `toml:"a" json:"a"`
	B int `toml:"b" json:"b"`
}

type HistoryConfig struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	// MaxEntries caps the log; 0 keeps every entry.
	MaxEntries int `toml:"max_entries" json:"max_entries"`
}

type DisplayConfig struct {
	ShowSteps bool `toml:"show_steps" json:"show_steps"`
	// InverseSteps is how many inverse probes are listed before the trace
	// is shortened; a negative value lists all of them.
	InverseSteps int `toml:"inverse_steps" json:"inverse_steps"`
	BarWidth     int `toml:"bar_width" json:"bar_width"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Keys: Keys{A: 5, B: 8},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 100,
		},
		Display: DisplayConfig{
			ShowSteps:    true,
			InverseSteps: 6,
			BarWidth:     40,
		},
	}
}

// Validate reports values that would make the CLI misbehave.
func (c *Config) Validate() error {
	v := cipher.ValidateKeys(c.Keys.A, c.Keys.B)
	if !v.AValid {
		return fmt.Errorf("%w: keys.a=%d: %v", kerrors.ErrInvalidConfig, c.Keys.A, kerrors.ErrInvalidKeyA)
	}
	if !v.BValid {
		return fmt.Errorf("%w: keys.b=%d: %v", kerrors.ErrInvalidConfig, c.Keys.B, kerrors.ErrInvalidKeyB)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("%w: history.max_entries must not be negative", kerrors.ErrInvalidConfig)
	}
	if c.Display.BarWidth < 0 {
		return fmt.Errorf("%w: display.bar_width must not be negative", kerrors.ErrInvalidConfig)
	}
	return nil
}

// LoadConfig loads the user configuration, falling back to DefaultConfig
// when the file does not exist. Fields missing from the file keep their
// default values.
func LoadConfig() (*Config, error) {
	configPath := ConfigFilePath()
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig validates and writes the user configuration.
func SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
