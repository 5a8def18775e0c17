package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// CandidateSet is the per-round view of the dictionary: an arena of words in
// load order plus a liveness bitmap. Eliminating a word clears its bit; the
// arena itself is never mutated, so indices stay stable for a whole round.
type CandidateSet struct {
	arena []string
	live  *bitset.BitSet
}

// NewCandidateSet returns a set with every dictionary word live.
// The arena is a private copy, so rounds never share mutable state.
func NewCandidateSet(d *words.Dictionary) *CandidateSet {
	arena := d.Words()
	n := uint(len(arena))
	live := bitset.New(n)
	for i := uint(0); i < n; i++ {
		live.Set(i)
	}
	return &CandidateSet{arena: arena, live: live}
}

// Len is the number of live candidates.
func (c *CandidateSet) Len() int { return int(c.live.Count()) }

// Size is the arena size, live or not.
func (c *CandidateSet) Size() int { return len(c.arena) }

// Live reports whether arena slot i is still a candidate.
func (c *CandidateSet) Live(i int) bool { return i >= 0 && c.live.Test(uint(i)) }

// Word returns arena slot i regardless of liveness.
func (c *CandidateSet) Word(i int) string { return c.arena[i] }

// Contains reports whether w is a live candidate.
func (c *CandidateSet) Contains(w string) bool {
	for i, ok := c.live.NextSet(0); ok; i, ok = c.live.NextSet(i + 1) {
		if c.arena[i] == w {
			return true
		}
	}
	return false
}

// First returns the first live candidate in arena order.
func (c *CandidateSet) First() (string, bool) {
	i, ok := c.live.NextSet(0)
	if !ok {
		return "", false
	}
	return c.arena[i], true
}

// Words lists the live candidates in arena order.
func (c *CandidateSet) Words() []string {
	idx := make([]uint, c.live.Count())
	_, idx = c.live.NextSetMany(0, idx)
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = c.arena[i]
	}
	return out
}

// snapshot copies the liveness bitmap so rules can scan the pre-filter set.
func (c *CandidateSet) snapshot() *bitset.BitSet { return c.live.Clone() }

// eliminate clears every bit set in doomed and returns how many live words it removed.
func (c *CandidateSet) eliminate(doomed *bitset.BitSet) int {
	n := c.live.IntersectionCardinality(doomed)
	c.live.InPlaceDifference(doomed)
	return int(n)
}
