// Package ladder finds shortest word ladders: chains of dictionary words from
// a start word to an end word where each step is exactly one character edit
// (insertion, deletion, or substitution) and no word appears twice.
//
// What
//
//   - Breadth-first search over the implicit graph whose vertices are
//     dictionary words and whose edges join words one edit apart.
//   - The first ladder that reaches the end word is returned; BFS explores
//     ladders in non-decreasing length, so it is a shortest one.
//   - Each search owns a dictionary.Remaining. A word is taken from it the
//     moment any branch reaches it, so no later branch can reuse it.
//   - Ladders are rebuilt from parent links only once the end word is found;
//     frontier entries are indices into a node arena, not copied paths.
//
// Candidate strategies
//
//   - Synthesis (default): generate every string one substitution, insertion
//     or deletion away over a fixed alphabet and keep those still in the
//     Remaining. Cost grows with word length × alphabet, not dictionary size.
//   - Scan: walk the Remaining partitions of length len-1, len and len+1 and
//     keep words editdist.IsAdjacent to the current word. Prefer it for long
//     words over large alphabets.
//
// Determinism
//
//	Synthesis emits substitutions (position, then alphabet order), then
//	insertions (gap, then alphabet order), then deletions (position order).
//	Scan walks partitions shortest first, each in sorted order. Among several
//	shortest ladders the one returned is fixed by that order; no "smallest"
//	ladder is promised beyond length.
//
// Complexity (W = words, L = word length, A = alphabet size)
//
//   - Synthesis: O(W · L · A · L) time in the worst case, O(W) memory.
//   - Scan:      O(W · W_len · L²) time, where W_len is the partition size.
//
// Usage
//
//	dict, _ := dictionary.LoadFile("words.txt")
//	res, err := ladder.Find("cat", "dog", dict,
//	    ladder.WithContext(ctx),
//	    ladder.WithStrategy(ladder.Scan{}),
//	    ladder.WithMaxExpansions(100000),
//	)
//	switch {
//	case errors.Is(err, ladder.ErrInvalidInput):   // start == end
//	case errors.Is(err, ladder.ErrNoLadder):       // exhausted
//	case errors.Is(err, ladder.ErrSearchAborted):  // ceiling or ctx
//	}
//	fmt.Println(res.Ladder) // cat -> cot -> cog -> dog
//
// Errors
//
//   - ErrInvalidInput     start equals end, or either word is empty.
//   - ErrNoLadder         no chain connects the words.
//   - ErrSearchAborted    expansion ceiling hit or context done.
//   - ErrNilDictionary    nil dictionary.
//   - ErrOptionViolation  invalid Option (e.g. negative ceiling).
//
// The first three arrive as *Error, carrying the start and end words and a
// human-readable message, and are also reported on the configured logger.
//
// Concurrency
//
//	Find never mutates the Dictionary, so independent searches may share one.
//	FindAll runs a batch of searches on a bounded worker pool.
package ladder
