package ladder

import (
	"fmt"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/editdist"
)

// Verify checks that l is a valid ladder from start to end over dict:
// matching endpoints, every step one edit, every word but the first in
// dict, and no word twice. It returns an error wrapping ErrInvalidLadder
// describing the first violation.
func Verify(l Ladder, start, end string, dict *dictionary.Dictionary) error {
	if dict == nil {
		return ErrNilDictionary
	}
	if len(l) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidLadder)
	}
	if l.Start() != start {
		return fmt.Errorf("%w: starts with %q, want %q", ErrInvalidLadder, l.Start(), start)
	}
	if l.End() != end {
		return fmt.Errorf("%w: ends with %q, want %q", ErrInvalidLadder, l.End(), end)
	}

	seen := make(map[string]struct{}, len(l))
	for i, word := range l {
		if _, dup := seen[word]; dup {
			return fmt.Errorf("%w: %q repeats at step %d", ErrInvalidLadder, word, i)
		}
		seen[word] = struct{}{}
		if i == 0 {
			continue
		}
		if !dict.Contains(word) {
			return fmt.Errorf("%w: %q at step %d is not in the dictionary", ErrInvalidLadder, word, i)
		}
		if !editdist.IsAdjacent(l[i-1], word) {
			return fmt.Errorf("%w: %q -> %q is more than one edit", ErrInvalidLadder, l[i-1], word)
		}
	}
	return nil
}
