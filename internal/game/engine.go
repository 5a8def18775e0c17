// internal/game/engine.go
//
// Guess evaluation for the solver.
// Responsibilities:
//   - Score a guess against a secret using the two-pass Wordle algorithm.
//   - Parse the compact feedback code read by the candidates command.
//
// Notes:
//   - Inputs are validated lowercase a–z words of equal length (see words package).
//   - Repeated letters earn at most one credit per occurrence in the secret.
package game

import (
	"errors"
	"fmt"
)

// ErrBadCode is returned by ParseFeedback for characters outside "=*.".
var ErrBadCode = errors.New("invalid feedback code")

// Evaluate scores guess against secret.
//
// Pass 1:
//   - Mark exact matches and count remaining (non-exact) secret letters.
//
// Pass 2:
//   - For each non-exact guess letter: if an uncredited occurrence remains,
//     mark Present and consume it; otherwise mark Absent.
//
// Mismatched lengths yield an all-absent feedback of guess length.
func Evaluate(guess, secret string) Feedback {
	n := len(guess)
	res := make(Feedback, n)
	for i := range res {
		res[i] = MarkAbsent
	}
	if len(secret) != n {
		return res
	}

	// Letter frequency for the non-exact secret positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = MarkExact
		} else if j := idx(secret[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkExact {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		}
	}
	return res
}

// ParseFeedback turns a code such as "=*..=" back into a Feedback.
func ParseFeedback(code string) (Feedback, error) {
	out := make(Feedback, len(code))
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '=':
			out[i] = MarkExact
		case '*':
			out[i] = MarkPresent
		case '.':
			out[i] = MarkAbsent
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrBadCode, code[i], i)
		}
	}
	return out, nil
}

// idx maps a lowercase ASCII letter to 0..25, or -1 for anything else.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}
