package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/workflows"
)

func TestEncryptCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "encrypt", "-a", "5", "-b", "8", "--steps=false", "HELLO")
	if err != nil {
		t.Fatalf("encrypt failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Ciphertext: 'RCLLA'") {
		t.Errorf("expected ciphertext in output, got:\n%s", output)
	}
	if strings.Contains(output, "E(x) =") {
		t.Errorf("expected no step table with --steps=false, got:\n%s", output)
	}
	if !strings.Contains(output, "(history ") {
		t.Errorf("expected history reference, got:\n%s", output)
	}

	entries, err := workflows.ListHistory(context.Background(), workflows.ListHistoryOptions{})
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Output != "RCLLA" {
		t.Errorf("expected one recorded entry with output RCLLA, got %+v", entries)
	}
}

func TestEncryptCommand_StepsFromConfig(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "encrypt", "-a", "5", "-b", "8", "Hi!")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if !strings.Contains(output, "E(x) = (5·x + 8) mod 26") {
		t.Errorf("expected step table by default, got:\n%s", output)
	}
	if !strings.Contains(output, "unchanged") {
		t.Errorf("expected '!' to be listed as unchanged, got:\n%s", output)
	}
}

func TestEncryptCommand_NoHistory(t *testing.T) {
	setupTestEnvironment(t)

	if _, err := runCommand(t, "encrypt", "--no-history", "HELLO"); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	entries, err := workflows.ListHistory(context.Background(), workflows.ListHistoryOptions{})
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no history, got %d entries", len(entries))
	}
}

func TestEncryptCommand_InvalidKey(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "encrypt", "-a", "13", "-b", "0", "ABCN")
	if err != nil {
		t.Fatalf("invalid keys should be reported, not returned: %v", err)
	}
	if !strings.Contains(output, "Invalid key") || !strings.Contains(output, "`affine keys`") {
		t.Errorf("expected invalid key message, got:\n%s", output)
	}
	if strings.Contains(output, "Ciphertext") {
		t.Errorf("expected no ciphertext, got:\n%s", output)
	}
}

func TestEncryptCommand_Explore(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "encrypt", "-a", "13", "-b", "0", "--explore", "--steps=false", "ABCN")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if !strings.Contains(output, "cannot be decrypted") {
		t.Errorf("expected a warning for invalid keys, got:\n%s", output)
	}
	if !strings.Contains(output, "Ciphertext: 'ANAN'") {
		t.Errorf("expected ciphertext ANAN, got:\n%s", output)
	}
	if strings.Contains(output, "(history ") {
		t.Errorf("explored runs must not be recorded, got:\n%s", output)
	}
}

func TestEncryptCommand_NegativeKeyA(t *testing.T) {
	setupTestEnvironment(t)

	for _, command := range []string{"encrypt", "decrypt"} {
		output, err := runCommand(t, command, "--a=-25", "-b", "0", "--explore", "HELLO")
		if err != nil {
			t.Fatalf("%s failed: %v", command, err)
		}
		if !strings.Contains(output, "Invalid key") || !strings.Contains(output, "must be positive") {
			t.Errorf("%s: expected invalid key message, got:\n%s", command, output)
		}
		if strings.Contains(output, "gcd(-25") {
			t.Errorf("%s: negative a blamed on gcd, got:\n%s", command, output)
		}
	}

	entries, err := workflows.ListHistory(context.Background(), workflows.ListHistoryOptions{})
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no history, got %+v", entries)
	}
}

func TestEncryptCommand_JSON(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "encrypt", "-a", "5", "-b", "8", "--json", "Hi")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	var result struct {
		Ciphertext string `json:"ciphertext"`
		A          int    `json:"a"`
		B          int    `json:"b"`
		Steps      []struct {
			Original  string `json:"original"`
			Encrypted string `json:"encrypted"`
		} `json:"steps"`
	}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if result.Ciphertext != "Rw" || result.A != 5 || result.B != 8 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(result.Steps) != 2 || result.Steps[1].Original != "i" || result.Steps[1].Encrypted != "w" {
		t.Errorf("unexpected steps: %+v", result.Steps)
	}
}

func TestEncryptCommand_InvalidFlag(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCommand(t, "encrypt", "-a", "five", "HELLO")
	if err == nil || !strings.Contains(err.Error(), "invalid number") {
		t.Errorf("expected invalid number error, got %v", err)
	}
}

func TestDecryptCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "decrypt", "-a", "5", "-b", "8", "--steps=false", "RCLLA")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if !strings.Contains(output, "Plaintext: 'HELLO'") {
		t.Errorf("expected plaintext in output, got:\n%s", output)
	}
}

func TestDecryptCommand_Steps(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "decrypt", "-a", "5", "-b", "8", "--steps", "RC")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	for _, want := range []string{"5⁻¹ mod 26", "inverse = '21'", "(15 more steps)", "Plaintext: 'HE'"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestDecryptCommand_NoInverse(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "decrypt", "-a", "13", "-b", "0", "ANAN")
	if err != nil {
		t.Fatalf("missing inverse should be reported, not returned: %v", err)
	}
	if !strings.Contains(output, "Cannot decrypt") || !strings.Contains(output, "`affine gcd 13 26`") {
		t.Errorf("expected no-inverse message, got:\n%s", output)
	}
	if !strings.Contains(output, kerrors.ErrNoInverse.Error()) {
		t.Errorf("expected the underlying error, got:\n%s", output)
	}
}

func TestGCDCommand(t *testing.T) {
	setupTestEnvironment(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"Coprime", []string{"gcd", "5", "26"}, []string{"gcd(5, 26)", "gcd = '1'", "5 and 26 are coprime"}},
		{"NotCoprime", []string{"gcd", "13", "26"}, []string{"gcd = '13'", "not coprime"}},
		{"InvalidModulus", []string{"gcd", "5", "1"}, []string{"Cannot compute gcd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("gcd failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("expected %q in output, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestGCDCommand_NotANumber(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCommand(t, "gcd", "x", "26")
	if !errors.Is(err, kerrors.ErrInvalidNumber) {
		t.Errorf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestInverseCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "inverse", "7")
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}
	if !strings.Contains(output, "(9 more steps)") || !strings.Contains(output, "inverse = '15'") {
		t.Errorf("expected truncated trace, got:\n%s", output)
	}

	output, err = runCommand(t, "inverse", "7", "--all")
	if err != nil {
		t.Fatalf("inverse --all failed: %v", err)
	}
	if strings.Contains(output, "more steps") {
		t.Errorf("expected full trace with --all, got:\n%s", output)
	}
	if !strings.Contains(output, "(7 × 15) mod 26") {
		t.Errorf("expected final probe in output, got:\n%s", output)
	}
}

func TestInverseCommand_NotCoprime(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "inverse", "4")
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}
	if !strings.Contains(output, "not coprime") || !strings.Contains(output, "`affine gcd 4 26`") {
		t.Errorf("expected not coprime message, got:\n%s", output)
	}
}

func TestInverseCommand_Modulus(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "inverse", "3", "--modulus", "7", "--json")
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}

	var result struct {
		Inverse int  `json:"inverse"`
		Found   bool `json:"found"`
	}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if !result.Found || result.Inverse != 5 {
		t.Errorf("expected inverse 5, got %+v", result)
	}
}

func TestKeysCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "keys")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if !strings.Contains(output, "1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25") {
		t.Errorf("expected valid keys, got:\n%s", output)
	}
	if !strings.Contains(output, "312 usable keys") {
		t.Errorf("expected key count, got:\n%s", output)
	}
}

func TestKeysCheckCommand(t *testing.T) {
	setupTestEnvironment(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"keys", "check", "5", "8"}, "Key is valid"},
		{[]string{"keys", "check", "27", "8"}, "Key is valid"},
		{[]string{"keys", "check", "13", "8"}, "Key is invalid"},
		{[]string{"keys", "check", "5", "26"}, "Key is invalid"},
		{[]string{"keys", "check", "--", "-25", "0"}, "Key is invalid"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[len(tt.args)-2:], "_"), func(t *testing.T) {
			output, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("keys check failed: %v", err)
			}
			if !strings.Contains(output, tt.want) {
				t.Errorf("expected %q, got:\n%s", tt.want, output)
			}
		})
	}
}
