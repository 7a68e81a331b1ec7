package cipher

import (
	"strings"
	"testing"
)

func TestCharToNum(t *testing.T) {
	tests := []struct {
		in   rune
		want int
	}{
		{'A', 0}, {'a', 0}, {'H', 7}, {'h', 7}, {'Z', 25}, {'z', 25},
	}
	for _, tt := range tests {
		if got := CharToNum(tt.in); got != tt.want {
			t.Errorf("CharToNum(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
	for n := 0; n < AlphabetSize; n++ {
		if got := CharToNum(NumToChar(n)); got != n {
			t.Errorf("CharToNum(NumToChar(%d)) = %d", n, got)
		}
	}
	if NumToChar(17) != 'R' {
		t.Errorf("NumToChar(17) = %q, want 'R'", NumToChar(17))
	}
}

func TestIsLetter(t *testing.T) {
	for _, r := range "AZaz" {
		if !IsLetter(r) {
			t.Errorf("IsLetter(%q) = false", r)
		}
	}
	for _, r := range "09 ,!@[`{é" {
		if IsLetter(r) {
			t.Errorf("IsLetter(%q) = true", r)
		}
	}
}

func TestEncrypt_Hello(t *testing.T) {
	res := Encrypt("HELLO", 5, 8)
	if res.Ciphertext != "RCLLA" {
		t.Fatalf("Encrypt(HELLO, 5, 8) = %q, want RCLLA", res.Ciphertext)
	}

	want := []EncryptionStep{
		{Index: 0, Original: 'H', X: 7, AX: 35, AXPlusB: 43, Result: 17, Encrypted: 'R', IsLetter: true},
		{Index: 1, Original: 'E', X: 4, AX: 20, AXPlusB: 28, Result: 2, Encrypted: 'C', IsLetter: true},
		{Index: 2, Original: 'L', X: 11, AX: 55, AXPlusB: 63, Result: 11, Encrypted: 'L', IsLetter: true},
		{Index: 3, Original: 'L', X: 11, AX: 55, AXPlusB: 63, Result: 11, Encrypted: 'L', IsLetter: true},
		{Index: 4, Original: 'O', X: 14, AX: 70, AXPlusB: 78, Result: 0, Encrypted: 'A', IsLetter: true},
	}
	if len(res.Steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(res.Steps), len(want))
	}
	for i := range want {
		if res.Steps[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, res.Steps[i], want[i])
		}
	}

	dec := Decrypt(res.Ciphertext, 5, 8)
	if dec.Plaintext != "HELLO" {
		t.Errorf("Decrypt(%q, 5, 8) = %q, want HELLO", res.Ciphertext, dec.Plaintext)
	}
	if !dec.HasInverse || dec.AInverse != 21 {
		t.Errorf("Decrypt used inverse %d (found=%v), want 21", dec.AInverse, dec.HasInverse)
	}
	if len(dec.ModInverseSteps) != 21 {
		t.Errorf("Decrypt returned %d inverse steps, want 21", len(dec.ModInverseSteps))
	}
}

func TestEncrypt_IdentityKey(t *testing.T) {
	in := "Hi, World!"
	res := Encrypt(in, 1, 0)
	if res.Ciphertext != in {
		t.Errorf("Encrypt(%q, 1, 0) = %q, want unchanged", in, res.Ciphertext)
	}
	if len(res.Steps) != len([]rune(in)) {
		t.Fatalf("got %d steps, want %d", len(res.Steps), len([]rune(in)))
	}

	comma := res.Steps[2]
	want := EncryptionStep{Index: 2, Original: ',', Encrypted: ',', IsLetter: false}
	if comma != want {
		t.Errorf("step for ',' = %+v, want %+v", comma, want)
	}
}

func TestEncrypt_PreservesCase(t *testing.T) {
	res := Encrypt("Hello", 5, 8)
	if res.Ciphertext != "Rclla" {
		t.Errorf("Encrypt(Hello, 5, 8) = %q, want Rclla", res.Ciphertext)
	}
}

func TestEncrypt_Empty(t *testing.T) {
	res := Encrypt("", 5, 8)
	if res.Ciphertext != "" || len(res.Steps) != 0 {
		t.Errorf("Encrypt(\"\") = %+v, want empty", res)
	}
}

func TestEncrypt_InvalidKeyDoesNotFail(t *testing.T) {
	res := Encrypt("ABCN", 2, 0)
	// A and N both map to A when a = 2.
	if res.Ciphertext != "ACEA" {
		t.Errorf("Encrypt(ABCN, 2, 0) = %q, want ACEA", res.Ciphertext)
	}
}

func TestEncrypt_RuneIndex(t *testing.T) {
	res := Encrypt("é a", 1, 1)
	if res.Ciphertext != "é b" {
		t.Errorf("Encrypt = %q, want %q", res.Ciphertext, "é b")
	}
	if res.Steps[2].Index != 2 || res.Steps[2].Original != 'a' {
		t.Errorf("step 2 = %+v, want index 2 for 'a'", res.Steps[2])
	}
}

func TestDecrypt_BoundaryKey(t *testing.T) {
	// a = 25, b = 25 makes y - b negative for every letter but Z.
	enc := Encrypt("AbZ", 25, 25)
	dec := Decrypt(enc.Ciphertext, 25, 25)
	if dec.Plaintext != "AbZ" {
		t.Fatalf("round trip with (25, 25) = %q, want AbZ", dec.Plaintext)
	}
	if dec.AInverse != 25 {
		t.Errorf("AInverse = %d, want 25", dec.AInverse)
	}

	step := Decrypt("A", 25, 25).Steps[0]
	want := DecryptionStep{Index: 0, Original: 'A', Y: 0, YMinusB: -25, AInvTimesYMinusB: -625, Result: 25, Decrypted: 'Z', IsLetter: true}
	if step != want {
		t.Errorf("step = %+v, want %+v", step, want)
	}
	for _, s := range dec.Steps {
		if s.Result < 0 || s.Result >= AlphabetSize {
			t.Errorf("result %d out of range", s.Result)
		}
	}
}

func TestDecrypt_NoInverse(t *testing.T) {
	for _, a := range []int{2, 4, 13} {
		dec := Decrypt("RCLLA", a, 8)
		if dec.Plaintext != "" || len(dec.Steps) != 0 {
			t.Errorf("Decrypt with a=%d = %+v, want empty", a, dec)
		}
		if dec.HasInverse || dec.AInverse != 0 {
			t.Errorf("Decrypt with a=%d reports inverse %d", a, dec.AInverse)
		}
		if len(dec.ModInverseSteps) != 0 {
			t.Errorf("Decrypt with a=%d returned %d inverse steps", a, len(dec.ModInverseSteps))
		}
	}
}

func TestDecrypt_NonLetterStep(t *testing.T) {
	dec := Decrypt("R-1", 5, 8)
	if dec.Plaintext != "H-1" {
		t.Fatalf("Decrypt = %q, want H-1", dec.Plaintext)
	}
	want := DecryptionStep{Index: 1, Original: '-', Decrypted: '-'}
	if dec.Steps[1] != want {
		t.Errorf("step = %+v, want %+v", dec.Steps[1], want)
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"HELLO",
		"Hello, World!",
		"The quick brown fox jumps over the lazy dog. 1234567890",
		"MiXeD cAsE\twith\nwhitespace ~!@#$%^&*()",
		strings.Repeat("Zebra", 20),
	}

	for _, a := range ValidKeyA() {
		for b := 0; b < AlphabetSize; b++ {
			for _, text := range texts {
				enc := Encrypt(text, a, b)
				dec := Decrypt(enc.Ciphertext, a, b)
				if dec.Plaintext != text {
					t.Fatalf("round trip (%d, %d) of %q = %q", a, b, text, dec.Plaintext)
				}
				if len(dec.Steps) != len(enc.Steps) {
					t.Fatalf("round trip (%d, %d): %d decrypt steps, %d encrypt steps", a, b, len(dec.Steps), len(enc.Steps))
				}
			}
		}
	}
}
