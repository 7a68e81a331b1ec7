// Package cipher implements the mathematics of the affine cipher.
//
// The affine cipher maps every letter position x of a 26-letter alphabet to
// (a*x + b) mod 26. It is a historically weak substitution cipher and is
// implemented here for teaching only.
//
// # Operations
//
// Every operation is a pure function that returns its result together with
// an ordered trace of the arithmetic it performed, so callers can show the
// work step by step:
//
//	GCD(a, b)               // Euclidean algorithm, one step per division
//	IsCoprime(a, m)         // gcd(a, m) == 1
//	ValidateKeys(a, b)      // a >= 1 and coprime with 26, 0 <= b < 26
//	ModInverse(a, m)        // brute-force search for a^-1 mod m
//	Encrypt(text, a, b)     // per-character transform
//	Decrypt(text, a, b)     // inverse transform using ModInverse
//	FrequencyAnalysis(text) // letter counts and percentages
//
// # Failure as data
//
// Nothing in this package returns an error or panics on bad keys. Invalid
// keys are reported by ValidateKeys; Encrypt still runs with them and
// produces meaningless output, while Decrypt returns an empty result with
// HasInverse set to false when a has no inverse modulo 26.
//
// # Concurrency
//
// The package holds no state. All functions may be called concurrently.
package cipher
