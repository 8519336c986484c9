// Package wordladder finds shortest word ladders: chains of dictionary words
// from a start word to an end word where each step inserts, deletes, or
// substitutes exactly one letter and no word appears twice.
//
// The module is organized into three packages plus a command:
//
//	editdist/      — bounded Levenshtein distance and the one-edit adjacency test
//	dictionary/    — immutable word set, per-search Remaining view, word list loader
//	ladder/        — breadth-first ladder search, verification, batch queries
//	cmd/wordladder — CLI: find, verify, distance
//
// Quick example:
//
//	dict, _ := dictionary.LoadFile("words.txt")
//	res, err := ladder.Find("cat", "dog", dict)
//	if err != nil {
//		// errors.Is(err, ladder.ErrNoLadder) when the words are not connected
//	}
//	fmt.Println(res.Ladder) // cat -> cot -> dot -> dog
//
// A search is breadth-first, so the first ladder reaching the end word is a
// shortest one. Every word is consumed the first time it is discovered, which
// keeps each search linear in the number of dictionary words it touches.
//
//	go get github.com/katalvlaran/wordladder
package wordladder
