package cipher

// AlphabetSize is the modulus of the cipher: the letters A to Z.
const AlphabetSize = 26

// validKeyA holds the reduced residues modulo 26.
var validKeyA = [...]int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}

// ValidKeyA returns the twelve multiplicative keys that have an inverse
// modulo 26, in ascending order. The returned slice is a copy.
func ValidKeyA() []int {
	keys := make([]int, len(validKeyA))
	copy(keys, validKeyA[:])
	return keys
}

// KeyValidation reports which parts of an (a, b) key pair are usable.
type KeyValidation struct {
	Valid  bool `json:"valid"`
	AValid bool `json:"a_valid"`
	BValid bool `json:"b_valid"`
}

// IsCoprime reports whether gcd(a, m) is 1.
func IsCoprime(a, m int) bool {
	return GCD(a, m).Result == 1
}

// ValidateKeys checks a key pair against the alphabet size. a must be
// positive and coprime with 26, and b must lie in [0, 26).
func ValidateKeys(a, b int) KeyValidation {
	aValid := a >= 1 && IsCoprime(a, AlphabetSize)
	bValid := b >= 0 && b < AlphabetSize
	return KeyValidation{
		Valid:  aValid && bValid,
		AValid: aValid,
		BValid: bValid,
	}
}
