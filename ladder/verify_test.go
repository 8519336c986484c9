package ladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// TestVerify covers each rule a ladder must satisfy.
func TestVerify(t *testing.T) {
	dict := dictionary.New("cot", "cog", "dog", "cat", "dot")
	cases := []struct {
		name string
		l    ladder.Ladder
		ok   bool
	}{
		{"valid", ladder.Ladder{"cat", "cot", "cog", "dog"}, true},
		{"empty", nil, false},
		{"wrong end", ladder.Ladder{"cat", "cot", "cog"}, false},
		{"two edits", ladder.Ladder{"cat", "cog", "dog"}, false},
		{"repeat", ladder.Ladder{"cat", "cot", "cat", "cot", "dot", "dog"}, false},
		{"self step", ladder.Ladder{"cat", "cot", "cot", "dot", "dog"}, false},
		{"unknown word", ladder.Ladder{"cat", "cut", "cot", "dot", "dog"}, false},
	}
	for _, tc := range cases {
		err := ladder.Verify(tc.l, "cat", "dog", dict)
		if tc.ok {
			assert.NoError(t, err, tc.name)
		} else {
			assert.ErrorIs(t, err, ladder.ErrInvalidLadder, tc.name)
		}
	}

	// a start word outside the dictionary is fine when the rest is valid
	assert.NoError(t, ladder.Verify(ladder.Ladder{"cax", "cat", "cot", "dot", "dog"}, "cax", "dog",
		dictionary.New("cat", "cot", "dot", "dog")))
	assert.ErrorIs(t, ladder.Verify(ladder.Ladder{"cat"}, "cat", "cat", nil), ladder.ErrNilDictionary)
}
