package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// rule rejects candidate words that contradict one position of a feedback.
type rule interface {
	rejects(w string) bool
}

// absentRule covers an absent position. When the letter earned no credit
// anywhere in the guess it is banned outright; otherwise the secret holds
// exactly `credits` copies and none of them sits at pos.
type absentRule struct {
	letter  byte
	pos     int
	credits int
}

func (r absentRule) rejects(w string) bool {
	if r.credits == 0 {
		return countByte(w, r.letter) > 0
	}
	return w[r.pos] == r.letter || countByte(w, r.letter) != r.credits
}

// presentRule: the letter is not at pos but occurs at least `credits` times.
type presentRule struct {
	letter  byte
	pos     int
	credits int
}

func (r presentRule) rejects(w string) bool {
	return w[r.pos] == r.letter || countByte(w, r.letter) < r.credits
}

// exactRule: the letter sits at pos.
type exactRule struct {
	letter byte
	pos    int
}

func (r exactRule) rejects(w string) bool { return w[r.pos] != r.letter }

// rules derives the per-position rules from a feedback, grouped absent,
// present, exact.
func rules(guess string, fb game.Feedback) []rule {
	var absent, present, exact []rule
	for i, m := range fb {
		c := guess[i]
		switch m {
		case game.MarkAbsent:
			absent = append(absent, absentRule{letter: c, pos: i, credits: fb.Credits(guess, c)})
		case game.MarkPresent:
			present = append(present, presentRule{letter: c, pos: i, credits: fb.Credits(guess, c)})
		case game.MarkExact:
			exact = append(exact, exactRule{letter: c, pos: i})
		}
	}
	out := make([]rule, 0, len(fb))
	out = append(out, absent...)
	out = append(out, present...)
	return append(out, exact...)
}

// Filter eliminates every candidate inconsistent with fb for guess and
// returns how many were eliminated. Each rule scans the candidates that were
// live before this call; eliminations are applied together at the end.
func Filter(set *CandidateSet, guess string, fb game.Feedback) int {
	if len(guess) != len(fb) {
		return 0
	}
	before := set.snapshot()
	doomed := bitset.New(uint(set.Size()))
	for _, r := range rules(guess, fb) {
		for i, ok := before.NextSet(0); ok; i, ok = before.NextSet(i + 1) {
			if doomed.Test(i) {
				continue
			}
			w := set.Word(int(i))
			if len(w) != len(guess) || r.rejects(w) {
				doomed.Set(i)
			}
		}
	}
	return set.eliminate(doomed)
}

func countByte(s string, c byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			n++
		}
	}
	return n
}
