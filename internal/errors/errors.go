package errors

import "errors"

// Key errors indicate a key pair that cannot be used for the requested operation.
var (
	// ErrInvalidKeyA indicates the multiplicative key is not coprime with 26.
	ErrInvalidKeyA = errors.New("key a is not coprime with 26")

	// ErrInvalidKeyB indicates the additive key is outside [0, 26).
	ErrInvalidKeyB = errors.New("key b must be between 0 and 25")

	// ErrNoInverse indicates key a has no modular inverse, so decryption is impossible.
	ErrNoInverse = errors.New("key a has no modular inverse")
)

// Input errors indicate missing or malformed user input.
var (
	// ErrNoInput indicates no text was given as an argument, file or stdin.
	ErrNoInput = errors.New("no input text provided")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrInvalidNumber indicates an argument that should be an integer is not one.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidModulus indicates a modulus smaller than 2.
	ErrInvalidModulus = errors.New("modulus must be at least 2")
)

// History errors indicate issues with the operation history log.
var (
	// ErrHistoryEntryNotFound indicates no history entry has the given ID.
	ErrHistoryEntryNotFound = errors.New("history entry not found")

	// ErrInvalidHistoryType indicates an entry type other than encrypt or decrypt.
	ErrInvalidHistoryType = errors.New("invalid history entry type")
)

// Config errors indicate issues with the user configuration.
var (
	// ErrInvalidConfig indicates the configuration file is malformed or holds invalid values.
	ErrInvalidConfig = errors.New("configuration is invalid")
)
