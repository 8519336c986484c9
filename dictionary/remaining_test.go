package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordladder/dictionary"
)

// collect returns the live words of length n in iteration order.
func collect(r *dictionary.Remaining, n int) []string {
	var out []string
	r.Each(n, func(w string) bool {
		out = append(out, w)
		return true
	})
	return out
}

// TestRemaining_Take verifies consumption is one-shot and tracked in Len.
func TestRemaining_Take(t *testing.T) {
	d := dictionary.New("cat", "cot", "cog", "dog", "at")
	r := dictionary.NewRemaining(d)

	assert.Equal(t, 5, r.Len())
	assert.True(t, r.Take("cot"))
	assert.False(t, r.Take("cot"), "second take must fail")
	assert.False(t, r.Take("zebra"), "unknown length")
	assert.False(t, r.Take("zzz"), "unknown word")
	assert.False(t, r.Contains("cot"))
	assert.True(t, r.Contains("cog"))
	assert.Equal(t, 4, r.Len())

	// the source dictionary is untouched
	assert.True(t, d.Contains("cot"))
}

// TestRemaining_Unicode looks multi-byte words up in their rune partition.
func TestRemaining_Unicode(t *testing.T) {
	r := dictionary.NewRemaining(dictionary.New("ab", "aéb", "abc"))

	assert.True(t, r.Contains("aéb"))
	assert.Equal(t, []string{"abc", "aéb"}, collect(r, 3))
	assert.True(t, r.Take("aéb"))
	assert.False(t, r.Contains("aéb"))
	assert.Equal(t, []string{"abc"}, collect(r, 3))
	assert.Empty(t, collect(r, 4))
}

// TestRemaining_Independent ensures two copies do not share liveness.
func TestRemaining_Independent(t *testing.T) {
	d := dictionary.New("cat", "cot")
	r1 := dictionary.NewRemaining(d)
	r2 := dictionary.NewRemaining(d)

	r1.Take("cat")
	assert.False(t, r1.Contains("cat"))
	assert.True(t, r2.Contains("cat"))
}

// TestRemaining_Each checks order, skipping taken words and early stop.
func TestRemaining_Each(t *testing.T) {
	d := dictionary.New("dog", "cat", "cot", "cog", "at", "chat")
	r := dictionary.NewRemaining(d)

	assert.Equal(t, []string{"cat", "cog", "cot", "dog"}, collect(r, 3))
	assert.Empty(t, collect(r, 9))

	r.Take("cog")
	assert.Equal(t, []string{"cat", "cot", "dog"}, collect(r, 3))

	// taking ahead of the cursor hides the word from the running walk
	var seen []string
	r.Each(3, func(w string) bool {
		seen = append(seen, w)
		r.Take("dog")
		return true
	})
	assert.Equal(t, []string{"cat", "cot"}, seen)

	// early stop
	var first []string
	r.Each(3, func(w string) bool {
		first = append(first, w)
		return false
	})
	assert.Equal(t, []string{"cat"}, first)
}
