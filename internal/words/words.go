// internal/words/words.go
//
// Provides the dictionary the solver narrows down.
//
// Responsibilities:
//   - Load a whitespace-delimited word list from a file, or fall back to the
//     embedded default (see embedded.go).
//   - Keep words in load order; that order is the solver's tie-break.
//   - Supply lookups (Contains, Index) and RandomWord for secret selection.
//
// Constraints:
//   • Words must be Length alphabetic letters (a–z).
//   • Lists are normalized to lowercase.
//   • Invalid tokens are skipped (and logged); duplicates keep their first position.
//   • A Dictionary is read-only once built; rounds copy what they mutate.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Length is the fixed number of letters in every word.
const Length = 5

// ErrEmpty is returned when a word list holds no valid words.
var ErrEmpty = errors.New("words: list is empty")

// Dictionary is an ordered, immutable word list with O(1) lookups.
type Dictionary struct {
	source string
	words  []string
	index  map[string]int
}

// Load reads the dictionary at path. An empty path selects the embedded list.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return LoadEmbedded()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Read(path, f)
}

// Read builds a dictionary from r. source names it in messages.
func Read(source string, r io.Reader) (*Dictionary, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var list []string
	skipped := 0
	for sc.Scan() {
		w := strings.ToLower(sc.Text())
		if !Valid(w) {
			skipped++
			continue
		}
		list = append(list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	if skipped > 0 {
		log.Warn().Str("source", source).Int("skipped", skipped).Msg("ignored malformed words")
	}
	return New(source, list)
}

// New builds a dictionary from an in-memory list, dropping duplicates.
func New(source string, list []string) (*Dictionary, error) {
	d := &Dictionary{
		source: source,
		words:  make([]string, 0, len(list)),
		index:  make(map[string]int, len(list)),
	}
	for _, w := range list {
		if _, dup := d.index[w]; dup {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmpty)
	}
	return d, nil
}

// Valid reports whether w is Length lowercase ASCII letters.
func Valid(w string) bool {
	return len(w) == Length && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Source names where the words came from (a path or the embedded file name).
func (d *Dictionary) Source() string { return d.source }

// Len is the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// At returns the i-th word in load order.
func (d *Dictionary) At(i int) string { return d.words[i] }

// Index returns the load position of w.
func (d *Dictionary) Index(w string) (int, bool) {
	i, ok := d.index[strings.ToLower(w)]
	return i, ok
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.Index(w)
	return ok
}

// Words returns a copy of the word list in load order.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// RandomWord returns a uniformly random word using crypto/rand.
func (d *Dictionary) RandomWord() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.words))))
	if err != nil {
		return d.words[0]
	}
	return d.words[nBig.Int64()]
}
