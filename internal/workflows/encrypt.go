package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/affine/internal/cipher"
	"github.com/PolarWolf314/affine/internal/configs"
	"github.com/PolarWolf314/affine/internal/history"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	Text string
	Keys KeyOptions

	// Explore runs the cipher even when the keys are invalid. The result
	// is not decryptable and is never recorded in the history.
	Explore bool

	// SkipHistory disables recording for this call.
	SkipHistory bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	cipher.EncryptResult

	A          int                  `json:"a"`
	B          int                  `json:"b"`
	Validation cipher.KeyValidation `json:"validation"`

	// HistoryID is the ID of the recorded entry, empty when nothing was recorded.
	HistoryID string `json:"history_id,omitempty"`
}

// Encrypt encrypts opts.Text with the chosen or configured keys.
//
// Returns ErrNoInput if the text is blank.
// Returns ErrInvalidKeyA or ErrInvalidKeyB for unusable keys unless
// opts.Explore is set. An a below 1 is always ErrInvalidKeyA.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkText(opts.Text); err != nil {
		return nil, err
	}

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a, b := opts.Keys.resolve(config)
	if err := checkPositiveA(a); err != nil {
		return nil, err
	}
	validation := cipher.ValidateKeys(a, b)
	if !validation.Valid && !opts.Explore {
		return nil, checkKeys(a, b, validation)
	}

	result := &EncryptResult{
		EncryptResult: cipher.Encrypt(opts.Text, a, b),
		A:             a,
		B:             b,
		Validation:    validation,
	}

	if !validation.Valid || opts.SkipHistory {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, err := record(config, history.Entry{
		Type:   history.TypeEncrypt,
		Input:  opts.Text,
		Output: result.Ciphertext,
		KeyA:   a,
		KeyB:   b,
	})
	if err != nil {
		return nil, err
	}
	result.HistoryID = id

	return result, nil
}
