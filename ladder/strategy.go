package ladder

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/editdist"
)

// DefaultAlphabet is the letter set Synthesis uses when none is given.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Strategy names accepted by NewStrategy.
const (
	StrategySynthesis = "synthesis"
	StrategyScan      = "scan"
)

// Strategy enumerates the words one edit away from word that are still
// live in rem, calling yield for each in a fixed order until yield returns
// false. A Strategy must not modify rem; the search takes the words.
// Candidates may repeat a word; the search ignores words already taken.
type Strategy interface {
	Name() string
	Candidates(word string, rem *dictionary.Remaining, yield func(string) bool)
}

// Synthesis builds every string one substitution, insertion or deletion
// away from the word and keeps the ones still in the Remaining.
// Words and Alphabet are handled rune by rune.
type Synthesis struct {
	Alphabet string
}

// Name implements Strategy.
func (Synthesis) Name() string { return StrategySynthesis }

func (s Synthesis) alphabet() []rune {
	if s.Alphabet == "" {
		return []rune(DefaultAlphabet)
	}
	return []rune(s.Alphabet)
}

// Candidates implements Strategy. Order: substitutions by position then
// letter, insertions by gap then letter, deletions by position.
func (s Synthesis) Candidates(word string, rem *dictionary.Remaining, yield func(string) bool) {
	alpha := s.alphabet()
	emit := func(cand []rune) bool {
		w := string(cand)
		return !rem.Contains(w) || yield(w)
	}
	runes := []rune(word)
	n := len(runes)

	// substitutions
	buf := make([]rune, n)
	copy(buf, runes)
	for i := 0; i < n; i++ {
		for _, r := range alpha {
			if r == runes[i] {
				continue
			}
			buf[i] = r
			if !emit(buf) {
				return
			}
		}
		buf[i] = runes[i]
	}

	// insertions, gap i sits before runes[i]
	ins := make([]rune, n+1)
	for i := 0; i <= n; i++ {
		copy(ins, runes[:i])
		copy(ins[i+1:], runes[i:])
		for _, r := range alpha {
			ins[i] = r
			if !emit(ins) {
				return
			}
		}
	}

	// deletions
	del := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		del = append(append(del[:0], runes[:i]...), runes[i+1:]...)
		if !emit(del) {
			return
		}
	}
}

// Scan tests the live words of rune length len-1, len and len+1 against
// the edit-distance oracle.
type Scan struct{}

// Name implements Strategy.
func (Scan) Name() string { return StrategyScan }

// Candidates implements Strategy. Partitions are walked shortest first,
// each in sorted order.
func (Scan) Candidates(word string, rem *dictionary.Remaining, yield func(string) bool) {
	n := utf8.RuneCountInString(word)
	for _, size := range [...]int{n - 1, n, n + 1} {
		if size <= 0 {
			continue
		}
		stopped := false
		rem.Each(size, func(cand string) bool {
			if !editdist.IsAdjacent(word, cand) {
				return true
			}
			if !yield(cand) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
	}
}

// NewStrategy resolves a strategy by name. An empty name selects Synthesis.
// alphabet only applies to Synthesis.
func NewStrategy(name, alphabet string) (Strategy, error) {
	switch name {
	case "", StrategySynthesis:
		return Synthesis{Alphabet: alphabet}, nil
	case StrategyScan:
		return Scan{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}
