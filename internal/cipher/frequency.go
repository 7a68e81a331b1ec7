package cipher

import (
	"sort"
	"unicode"
)

// FrequencyEntry is the count and share of one letter.
type FrequencyEntry struct {
	Letter     rune    `json:"letter"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Frequency lists observed letters ordered by descending count. Letters
// with equal counts keep the order in which they first appear in the text.
type Frequency []FrequencyEntry

// FrequencyAnalysis counts the letters of text, case-insensitively, and
// reports each letter's share of all letters as a percentage. Characters
// outside the alphabet are ignored and letters that never occur are
// omitted.
func FrequencyAnalysis(text string) Frequency {
	var counts [AlphabetSize]int
	var order []rune
	total := 0

	for _, ch := range text {
		if !IsLetter(ch) {
			continue
		}
		upper := unicode.ToUpper(ch)
		n := CharToNum(upper)
		if counts[n] == 0 {
			order = append(order, upper)
		}
		counts[n]++
		total++
	}

	freq := make(Frequency, 0, len(order))
	for _, letter := range order {
		count := counts[CharToNum(letter)]
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		freq = append(freq, FrequencyEntry{Letter: letter, Count: count, Percentage: pct})
	}

	sort.SliceStable(freq, func(i, j int) bool {
		return freq[i].Count > freq[j].Count
	})
	return freq
}

// Lookup returns the entry for letter, matched case-insensitively.
func (f Frequency) Lookup(letter rune) (FrequencyEntry, bool) {
	upper := unicode.ToUpper(letter)
	for _, e := range f {
		if e.Letter == upper {
			return e, true
		}
	}
	return FrequencyEntry{}, false
}

// Total returns the number of letters counted.
func (f Frequency) Total() int {
	total := 0
	for _, e := range f {
		total += e.Count
	}
	return total
}

// MaxPercentage returns the largest percentage in f, never less than 1.
// It is the scale used when drawing frequency bars.
func (f Frequency) MaxPercentage() float64 {
	top := 1.0
	for _, e := range f {
		if e.Percentage > top {
			top = e.Percentage
		}
	}
	return top
}
