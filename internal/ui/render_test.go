package ui

import (
	"strings"
	"testing"

	"github.com/PolarWolf314/affine/internal/cipher"
)

func TestGCDTrace(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := GCDTrace(5, 26, cipher.GCD(5, 26))
	for _, want := range []string{"gcd(5, 26)", "5 = 26 × 0 + 5", "26 = 5 × 5 + 1", "5 = 1 × 5 + 0", "gcd = '1'"} {
		if !strings.Contains(out, want) {
			t.Errorf("GCDTrace output missing %q:\n%s", want, out)
		}
	}

	out = GCDTrace(7, 0, cipher.GCD(7, 0))
	if !strings.Contains(out, "no division needed") {
		t.Errorf("GCDTrace with b=0 should say no division was needed:\n%s", out)
	}
}

func TestInverseTrace(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	res := cipher.ModInverse(5, 26)
	out := InverseTrace(5, 26, res, 6)
	if !strings.Contains(out, "(5 × 6) mod 26 = 4") {
		t.Errorf("InverseTrace missing sixth probe:\n%s", out)
	}
	if strings.Contains(out, "(5 × 7) mod 26") {
		t.Errorf("InverseTrace should stop listing after six probes:\n%s", out)
	}
	if !strings.Contains(out, "(15 more steps)") {
		t.Errorf("InverseTrace missing hidden step count:\n%s", out)
	}
	if !strings.Contains(out, "inverse = '21'") {
		t.Errorf("InverseTrace missing inverse:\n%s", out)
	}

	full := InverseTrace(5, 26, res, -1)
	if !strings.Contains(full, "✓ x=21 (5 × 21) mod 26 = 1") {
		t.Errorf("full InverseTrace missing found probe:\n%s", full)
	}

	none := InverseTrace(4, 26, cipher.ModInverse(4, 26), 6)
	if !strings.Contains(none, "not coprime") {
		t.Errorf("InverseTrace for a=4 should report no inverse:\n%s", none)
	}
}

func TestEncryptionTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	res := cipher.Encrypt("H i", 5, 8)
	out := EncryptionTable(res.Steps, 5, 8)
	if !strings.Contains(out, "E(x) = (5·x + 8) mod 26") {
		t.Errorf("missing formula:\n%s", out)
	}
	if !strings.Contains(out, "   7     35       43     17  R") {
		t.Errorf("missing row for H:\n%s", out)
	}
	if !strings.Contains(out, "␣    (unchanged)") {
		t.Errorf("missing pass-through row for space:\n%s", out)
	}
}

func TestDecryptionTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	res := cipher.Decrypt("R", 5, 8)
	out := DecryptionTable(res.Steps, res.AInverse, 8)
	if !strings.Contains(out, "D(y) = 21·(y - 8) mod 26") {
		t.Errorf("missing formula:\n%s", out)
	}
	if !strings.Contains(out, "  17      9        189      7  H") {
		t.Errorf("missing row for R:\n%s", out)
	}
}

func TestFrequencyBars(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := FrequencyBars(cipher.FrequencyAnalysis("AAB"), 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "A "+strings.Repeat("█", 10)+"  66.7% (2)") {
		t.Errorf("line for A = %q", lines[0])
	}
	if !strings.Contains(lines[1], "B "+strings.Repeat("█", 4)) || !strings.Contains(lines[1], "33.3% (1)") {
		t.Errorf("line for B = %q", lines[1])
	}
	if !strings.Contains(lines[2], "3 letters, 2 distinct") {
		t.Errorf("summary line = %q", lines[2])
	}

	if got := FrequencyBars(nil, 10); !strings.Contains(got, "(no letters)") {
		t.Errorf("FrequencyBars(nil) = %q", got)
	}
}

func TestLetterCounts(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	freq := cipher.FrequencyAnalysis("Meme e")
	out := LetterCounts(freq, "e,zE m")
	want := "  E  60.0% (3)\n" +
		"  Z   0.0% (0)\n" +
		"  M  40.0% (2)\n"
	if out != want {
		t.Errorf("LetterCounts() =\n%q\nwant\n%q", out, want)
	}

	if out := LetterCounts(freq, "123"); !strings.Contains(out, "no letters requested") {
		t.Errorf("expected placeholder, got %q", out)
	}
}

func TestKeyStatus(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := KeyStatus(4, 30, cipher.ValidateKeys(4, 30))
	if !strings.Contains(out, "✗ a = 4 (gcd(4, 26) ≠ 1)") {
		t.Errorf("missing a status:\n%s", out)
	}
	if !strings.Contains(out, "✗ b = 30 (must be 0 to 25)") {
		t.Errorf("missing b status:\n%s", out)
	}

	out = KeyStatus(-25, 0, cipher.ValidateKeys(-25, 0))
	if !strings.Contains(out, "✗ a = -25 (must be positive)") {
		t.Errorf("negative a not reported as invalid:\n%s", out)
	}

	out = KeyStatus(5, 8, cipher.ValidateKeys(5, 8))
	if strings.Contains(out, "✗") {
		t.Errorf("valid keys reported as invalid:\n%s", out)
	}
}
