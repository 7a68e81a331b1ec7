package ui

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/affine/internal/cipher"
)

// printable returns a visible stand-in for whitespace characters.
func printable(r rune) string {
	switch r {
	case ' ':
		return "␣"
	case '\t':
		return "⇥"
	case '\n':
		return "↵"
	}
	return string(r)
}

// GCDTrace renders the divisions of the Euclidean algorithm, one per line,
// in the form a = b × q + r.
func GCDTrace(a, m int, res cipher.GCDResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "gcd(%d, %d)\n", a, m)
	if len(res.Steps) == 0 {
		b.WriteString(Muted.Sprint("no division needed") + "\n")
	}
	for i, s := range res.Steps {
		fmt.Fprintf(&b, "  %2d. %s = %s × %s + %s\n",
			i+1,
			Number.Sprint(s.A), Number.Sprint(s.B),
			Number.Sprint(s.Quotient), Number.Sprint(s.Remainder))
	}
	fmt.Fprintf(&b, "  %s gcd = %s\n", Info.Sprint("→"), Highlight.Sprint(res.Result))
	return b.String()
}

// InverseTrace renders the probes of the modular inverse search. At most
// limit probes are listed; a negative limit lists all of them.
func InverseTrace(a, m int, res cipher.ModInverseResult, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d⁻¹ mod %d\n", a, m)
	if !res.Found && len(res.Steps) == 0 {
		fmt.Fprintf(&b, "  %s %d and %d are not coprime, no inverse exists\n", Error.Sprint("✗"), a, m)
		return b.String()
	}

	shown, hidden := res.Truncated(limit)
	for _, s := range shown {
		mark := " "
		if s.Found {
			mark = Success.Sprint("✓")
		}
		fmt.Fprintf(&b, "  %s x=%-2d %s = %s\n", mark, s.X, s.Calculation, Number.Sprint(s.Result))
	}
	if hidden > 0 {
		fmt.Fprintf(&b, "  %s\n", Muted.Sprintf("%d more steps", hidden))
	}

	if res.Found {
		fmt.Fprintf(&b, "  %s inverse = %s\n", Info.Sprint("→"), Highlight.Sprint(res.Inverse))
	} else {
		fmt.Fprintf(&b, "  %s no inverse found\n", Error.Sprint("✗"))
	}
	return b.String()
}

// EncryptionTable renders one row per character: x, a·x, a·x+b, the
// residue and the output letter.
func EncryptionTable(steps []cipher.EncryptionStep, a, bKey int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "E(x) = (%d·x + %d) mod %d\n", a, bKey, cipher.AlphabetSize)
	fmt.Fprintf(&b, "  %4s  %-4s %4s %6s %8s %6s  %s\n", "#", "char", "x", "a·x", "a·x+b", "mod", "out")
	for _, s := range steps {
		if !s.IsLetter {
			fmt.Fprintf(&b, "  %4d  %-4s %s\n", s.Index, printable(s.Original), Muted.Sprint("unchanged"))
			continue
		}
		fmt.Fprintf(&b, "  %4d  %-4s %4d %6d %8d %6d  %s\n",
			s.Index, string(s.Original), s.X, s.AX, s.AXPlusB, s.Result, Letter.Sprint(string(s.Encrypted)))
	}
	return b.String()
}

// DecryptionTable renders one row per character: y, y-b, a⁻¹·(y-b), the
// residue and the output letter.
func DecryptionTable(steps []cipher.DecryptionStep, aInverse, bKey int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "D(y) = %d·(y - %d) mod %d\n", aInverse, bKey, cipher.AlphabetSize)
	fmt.Fprintf(&b, "  %4s  %-4s %4s %6s %10s %6s  %s\n", "#", "char", "y", "y-b", "a⁻¹·(y-b)", "mod", "out")
	for _, s := range steps {
		if !s.IsLetter {
			fmt.Fprintf(&b, "  %4d  %-4s %s\n", s.Index, printable(s.Original), Muted.Sprint("unchanged"))
			continue
		}
		fmt.Fprintf(&b, "  %4d  %-4s %4d %6d %10d %6d  %s\n",
			s.Index, string(s.Original), s.Y, s.YMinusB, s.AInvTimesYMinusB, s.Result, Letter.Sprint(string(s.Decrypted)))
	}
	return b.String()
}

// FrequencyBars renders one bar per letter, scaled so the most frequent
// letter fills width cells.
func FrequencyBars(freq cipher.Frequency, width int) string {
	if len(freq) == 0 {
		return Muted.Sprint("no letters") + "\n"
	}
	if width <= 0 {
		width = 40
	}

	var b strings.Builder
	scale := freq.MaxPercentage()
	for _, e := range freq {
		cells := int(e.Percentage / scale * float64(width))
		if cells == 0 && e.Count > 0 {
			cells = 1
		}
		fmt.Fprintf(&b, "  %s %s %5.1f%% %s\n",
			Letter.Sprint(string(e.Letter)),
			Info.Sprint(strings.Repeat("█", cells)+strings.Repeat(" ", width-cells)),
			e.Percentage,
			Muted.Sprintf("%d", e.Count))
	}
	fmt.Fprintf(&b, "  %d letters, %d distinct\n", freq.Total(), len(freq))
	return b.String()
}

// LetterCounts renders the count and share of each letter in letters, in
// the order given. Letters absent from the text are shown with a zero count;
// characters outside the alphabet and repeated letters are skipped.
func LetterCounts(freq cipher.Frequency, letters string) string {
	var b strings.Builder
	seen := make(map[rune]bool)
	for _, r := range letters {
		if !cipher.IsLetter(r) {
			continue
		}
		e, ok := freq.Lookup(r)
		if !ok {
			e = cipher.FrequencyEntry{Letter: cipher.NumToChar(cipher.CharToNum(r))}
		}
		if seen[e.Letter] {
			continue
		}
		seen[e.Letter] = true
		fmt.Fprintf(&b, "  %s %5.1f%% %s\n", Letter.Sprint(string(e.Letter)), e.Percentage, Muted.Sprintf("%d", e.Count))
	}
	if b.Len() == 0 {
		return Muted.Sprint("no letters requested") + "\n"
	}
	return b.String()
}

// KeyStatus renders the validation of a key pair.
func KeyStatus(a, bKey int, v cipher.KeyValidation) string {
	var b strings.Builder
	mark := func(ok bool) string {
		if ok {
			return Success.Sprint("✓")
		}
		return Error.Sprint("✗")
	}
	fmt.Fprintf(&b, "%s a = %d", mark(v.AValid), a)
	switch {
	case !v.AValid && a < 1:
		b.WriteString(" " + Muted.Sprint("must be positive"))
	case !v.AValid:
		fmt.Fprintf(&b, " %s", Muted.Sprintf("gcd(%d, %d) ≠ 1", a, cipher.AlphabetSize))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s b = %d", mark(v.BValid), bKey)
	if !v.BValid {
		fmt.Fprintf(&b, " %s", Muted.Sprintf("must be 0 to %d", cipher.AlphabetSize-1))
	}
	b.WriteString("\n")
	return b.String()
}
