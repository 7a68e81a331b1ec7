package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/affine/internal/cipher"
	kerrors "github.com/PolarWolf314/affine/internal/errors"
)

// InspectResult explains whether a is usable as a multiplicative key
// modulo M.
type InspectResult struct {
	A, M     int
	GCD      cipher.GCDResult
	Coprime  bool
	Inverse  cipher.ModInverseResult
	ValidKey bool // a is one of the valid keys for M = 26
}

// Inspect computes the GCD trace and inverse search for a modulo m.
//
// Returns ErrInvalidModulus if m < 2 and ErrInvalidNumber if a < 1.
func Inspect(ctx context.Context, a, m int) (*InspectResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m < 2 {
		return nil, fmt.Errorf("m=%d: %w", m, kerrors.ErrInvalidModulus)
	}
	if a < 1 {
		return nil, fmt.Errorf("a=%d must be positive: %w", a, kerrors.ErrInvalidNumber)
	}

	gcd := cipher.GCD(a, m)
	return &InspectResult{
		A:        a,
		M:        m,
		GCD:      gcd,
		Coprime:  gcd.Result == 1,
		Inverse:  cipher.ModInverse(a, m),
		ValidKey: m == cipher.AlphabetSize && cipher.ValidateKeys(a, 0).AValid,
	}, nil
}
