package cipher

import "strings"

// EncryptionStep records how one input character was encrypted. For
// characters outside the alphabet the numeric fields are zero, IsLetter is
// false and Encrypted equals Original.
type EncryptionStep struct {
	Index     int  `json:"index"`
	Original  rune `json:"original"`
	X         int  `json:"x"`
	AX        int  `json:"ax"`
	AXPlusB   int  `json:"ax_plus_b"`
	Result    int  `json:"result"`
	Encrypted rune `json:"encrypted"`
	IsLetter  bool `json:"is_letter"`
}

// DecryptionStep records how one ciphertext character was decrypted.
type DecryptionStep struct {
	Index            int  `json:"index"`
	Original         rune `json:"original"`
	Y                int  `json:"y"`
	YMinusB          int  `json:"y_minus_b"`
	AInvTimesYMinusB int  `json:"a_inv_times_y_minus_b"`
	Result           int  `json:"result"`
	Decrypted        rune `json:"decrypted"`
	IsLetter         bool `json:"is_letter"`
}

// EncryptResult is the ciphertext and one step per input character.
type EncryptResult struct {
	Ciphertext string           `json:"ciphertext"`
	Steps      []EncryptionStep `json:"steps"`
}

// DecryptResult is the plaintext, one step per input character, and the
// inverse of a that was used. When HasInverse is false the plaintext and
// steps are empty and ModInverseSteps holds the (empty) search trace.
type DecryptResult struct {
	Plaintext       string           `json:"plaintext"`
	Steps           []DecryptionStep `json:"steps"`
	AInverse        int              `json:"a_inverse"`
	HasInverse      bool             `json:"has_inverse"`
	ModInverseSteps []ModInverseStep `json:"mod_inverse_steps"`
}

// Encrypt applies E(x) = (a*x + b) mod 26 to every letter of plaintext,
// keeping its case. Other characters are copied unchanged.
//
// The keys are not validated. With an a that is not coprime with 26 the
// output is not decryptable, but Encrypt still returns it.
func Encrypt(plaintext string, a, b int) EncryptResult {
	var sb strings.Builder
	sb.Grow(len(plaintext))
	steps := make([]EncryptionStep, 0, len(plaintext))

	i := 0
	for _, ch := range plaintext {
		if !IsLetter(ch) {
			sb.WriteRune(ch)
			steps = append(steps, EncryptionStep{Index: i, Original: ch, Encrypted: ch})
			i++
			continue
		}

		x := CharToNum(ch)
		ax := a * x
		axPlusB := ax + b
		// axPlusB is non-negative for validated keys, so plain % is enough.
		result := axPlusB % AlphabetSize
		encrypted := matchCase(ch, NumToChar(result))

		sb.WriteRune(encrypted)
		steps = append(steps, EncryptionStep{
			Index:     i,
			Original:  ch,
			X:         x,
			AX:        ax,
			AXPlusB:   axPlusB,
			Result:    result,
			Encrypted: encrypted,
			IsLetter:  true,
		})
		i++
	}

	return EncryptResult{Ciphertext: sb.String(), Steps: steps}
}

// Decrypt applies D(y) = a^-1 * (y - b) mod 26 to every letter of
// ciphertext, keeping its case. Other characters are copied unchanged.
func Decrypt(ciphertext string, a, b int) DecryptResult {
	inv := ModInverse(a, AlphabetSize)
	if !inv.Found {
		return DecryptResult{ModInverseSteps: inv.Steps}
	}

	var sb strings.Builder
	sb.Grow(len(ciphertext))
	steps := make([]DecryptionStep, 0, len(ciphertext))

	i := 0
	for _, ch := range ciphertext {
		if !IsLetter(ch) {
			sb.WriteRune(ch)
			steps = append(steps, DecryptionStep{Index: i, Original: ch, Decrypted: ch})
			i++
			continue
		}

		y := CharToNum(ch)
		yMinusB := y - b
		aInvTimesYMinusB := inv.Inverse * yMinusB
		// yMinusB can be negative and Go's % keeps the dividend's sign.
		result := ((aInvTimesYMinusB % AlphabetSize) + AlphabetSize) % AlphabetSize
		decrypted := matchCase(ch, NumToChar(result))

		sb.WriteRune(decrypted)
		steps = append(steps, DecryptionStep{
			Index:            i,
			Original:         ch,
			Y:                y,
			YMinusB:          yMinusB,
			AInvTimesYMinusB: aInvTimesYMinusB,
			Result:           result,
			Decrypted:        decrypted,
			IsLetter:         true,
		})
		i++
	}

	return DecryptResult{
		Plaintext:       sb.String(),
		Steps:           steps,
		AInverse:        inv.Inverse,
		HasInverse:      true,
		ModInverseSteps: inv.Steps,
	}
}
