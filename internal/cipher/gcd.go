package cipher

// GCDStep is one division of the Euclidean algorithm:
// A = B*Quotient + Remainder.
type GCDStep struct {
	A         int `json:"a"`
	B         int `json:"b"`
	Quotient  int `json:"quotient"`
	Remainder int `json:"remainder"`
}

// GCDResult is the greatest common divisor and the divisions that produced it.
type GCDResult struct {
	Result int       `json:"result"`
	Steps  []GCDStep `json:"steps"`
}

// GCD computes gcd(a, b) by repeated division and records every division
// performed. No step is recorded when b is already 0.
//
// Inputs are expected to be non-negative. Negative values follow Go's
// truncated division and are not otherwise handled.
func GCD(a, b int) GCDResult {
	var steps []GCDStep
	for b != 0 {
		q, r := a/b, a%b
		steps = append(steps, GCDStep{A: a, B: b, Quotient: q, Remainder: r})
		a, b = b, r
	}
	return GCDResult{Result: a, Steps: steps}
}
