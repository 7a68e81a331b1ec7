package cipher

import "fmt"

// ModInverseStep records one probe of the inverse search.
type ModInverseStep struct {
	X           int    `json:"x"`
	Calculation string `json:"calculation"`
	Result      int    `json:"result"`
	Found       bool   `json:"found"`
}

// ModInverseResult is the outcome of ModInverse. Inverse is only
// meaningful when Found is true.
type ModInverseResult struct {
	Inverse int              `json:"inverse"`
	Found   bool             `json:"found"`
	Steps   []ModInverseStep `json:"steps"`
}

// ModInverse searches x = 1, 2, ..., m-1 for the first x with
// (a*x) mod m == 1 and records every probe up to and including it.
//
// When a is not coprime with m no search is done and the trace is empty.
func ModInverse(a, m int) ModInverseResult {
	if !IsCoprime(a, m) {
		return ModInverseResult{}
	}

	var steps []ModInverseStep
	for x := 1; x < m; x++ {
		result := (a * x) % m
		found := result == 1
		steps = append(steps, ModInverseStep{
			X:           x,
			Calculation: fmt.Sprintf("(%d × %d) mod %d", a, x, m),
			Result:      result,
			Found:       found,
		})
		if found {
			return ModInverseResult{Inverse: x, Found: true, Steps: steps}
		}
	}

	// Unreachable for m > 1 once a is coprime with m.
	return ModInverseResult{Steps: steps}
}

// Truncated returns at most n leading steps of the trace and the number of
// steps left out. A negative n returns the full trace.
func (r ModInverseResult) Truncated(n int) ([]ModInverseStep, int) {
	if n < 0 || n >= len(r.Steps) {
		return r.Steps, 0
	}
	return r.Steps[:n], len(r.Steps) - n
}
