package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/affine/internal/cipher"
	"github.com/PolarWolf314/affine/internal/configs"
	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/history"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	Text string
	Keys KeyOptions

	// Explore runs the cipher with an out-of-range b. An a without an
	// inverse still fails because decryption is impossible.
	Explore bool

	SkipHistory bool
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	cipher.DecryptResult

	A          int                  `json:"a"`
	B          int                  `json:"b"`
	Validation cipher.KeyValidation `json:"validation"`
	HistoryID  string               `json:"history_id,omitempty"`
}

// Decrypt decrypts opts.Text with the chosen or configured keys.
//
// Returns ErrNoInput if the text is blank.
// Returns ErrNoInverse, together with the result holding the (empty)
// inverse trace, when a has no inverse modulo 26.
// Returns ErrInvalidKeyA if a is below 1.
// Returns ErrInvalidKeyB for an out-of-range b unless opts.Explore is set.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
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
	if validation.AValid && !validation.BValid && !opts.Explore {
		return nil, checkKeys(a, b, validation)
	}

	result := &DecryptResult{
		DecryptResult: cipher.Decrypt(opts.Text, a, b),
		A:             a,
		B:             b,
		Validation:    validation,
	}
	if !result.HasInverse {
		return result, fmt.Errorf("a=%d: %w", a, kerrors.ErrNoInverse)
	}

	if !validation.Valid || opts.SkipHistory {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, err := record(config, history.Entry{
		Type:   history.TypeDecrypt,
		Input:  opts.Text,
		Output: result.Plaintext,
		KeyA:   a,
		KeyB:   b,
	})
	if err != nil {
		return nil, err
	}
	result.HistoryID = id

	return result, nil
}
