package solver

import "fmt"

// DefaultOpeners are the fixed first guesses, chosen offline for letter
// coverage. They are not derived from the candidates.
var DefaultOpeners = []string{"ratio", "mends", "lucky"}

// Selector picks the next guess: the openers in order, then the first live
// candidate in dictionary order.
type Selector struct {
	Openers []string
}

// Next returns guess number n (1-based).
func (s Selector) Next(set *CandidateSet, n int) (string, error) {
	if n >= 1 && n <= len(s.Openers) {
		return s.Openers[n-1], nil
	}
	w, ok := set.First()
	if !ok {
		return "", fmt.Errorf("guess %d: %w", n, ErrNoCandidatesRemaining)
	}
	return w, nil
}
