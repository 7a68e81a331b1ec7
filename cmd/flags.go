package cmd

import (
	"fmt"
	"strconv"

	kerrors "github.com/PolarWolf314/affine/internal/errors"
)

// keyFlag is an integer flag that remembers whether it was given, so an
// unset key can fall back to the configured default.
type keyFlag struct {
	value int
	set   bool
}

func (k *keyFlag) String() string {
	if !k.set {
		return ""
	}
	return strconv.Itoa(k.value)
}

func (k *keyFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidNumber, s)
	}
	k.value = n
	k.set = true
	return nil
}

func (k *keyFlag) Type() string {
	return "int"
}

// Ptr returns the flag value, or nil when the flag was not given.
func (k *keyFlag) Ptr() *int {
	if !k.set {
		return nil
	}
	v := k.value
	return &v
}

func (k *keyFlag) reset() {
	*k = keyFlag{}
}

// parseIntArg parses a positional integer argument.
func parseIntArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q", name, kerrors.ErrInvalidNumber, s)
	}
	return n, nil
}
