// internal/game/types.go
//
// Core type definitions for guess evaluation.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - Feedback: the marks for a whole guess, aligned with its letters.

package game

import "strings"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the secret but in a different position.
//   - "absent":  letter has no remaining (uncredited) occurrence in the secret.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Feedback holds one Mark per guess position.
type Feedback []Mark

// Solved reports whether every position is exact.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkExact {
			return false
		}
	}
	return true
}

// Credits returns how many positions were credited (exact or present) to letter c.
func (f Feedback) Credits(guess string, c byte) int {
	n := 0
	for i, m := range f {
		if i < len(guess) && guess[i] == c && m != MarkAbsent {
			n++
		}
	}
	return n
}

// String renders the compact code: '=' exact, '*' present, '.' absent.
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, m := range f {
		switch m {
		case MarkExact:
			b.WriteByte('=')
		case MarkPresent:
			b.WriteByte('*')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Equal reports whether two feedbacks carry the same marks.
func (f Feedback) Equal(o Feedback) bool {
	if len(f) != len(o) {
		return false
	}
	for i := range f {
		if f[i] != o[i] {
			return false
		}
	}
	return true
}
