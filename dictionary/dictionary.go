package dictionary

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrNoWords is returned when a word source yields no usable words.
var ErrNoWords = errors.New("dictionary: no words found")

// Dictionary is an immutable set of unique words.
type Dictionary struct {
	set    map[string]struct{}
	sorted []string
	byLen  map[int][]string // keyed by rune count
}

// New builds a Dictionary from words. Duplicates and empty strings are
// dropped; words are stored as given, see Normalize for case folding.
func New(words ...string) *Dictionary {
	d := &Dictionary{
		set:   make(map[string]struct{}, len(words)),
		byLen: make(map[int][]string),
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := d.set[w]; ok {
			continue
		}
		d.set[w] = struct{}{}
		d.sorted = append(d.sorted, w)
	}
	sort.Strings(d.sorted)
	for _, w := range d.sorted {
		n := utf8.RuneCountInString(w)
		d.byLen[n] = append(d.byLen[n], w)
	}

	return d
}

// Normalize trims surrounding whitespace and lowercases word.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.sorted)
}

// Words returns all words in sorted order. The slice is a copy.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.sorted))
	copy(out, d.sorted)
	return out
}

// Lengths returns the distinct word lengths, in runes, in ascending order.
func (d *Dictionary) Lengths() []int {
	out := make([]int, 0, len(d.byLen))
	for n := range d.byLen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// WithLength returns the sorted words that are n runes long. The slice is a copy.
func (d *Dictionary) WithLength(n int) []string {
	src := d.byLen[n]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
