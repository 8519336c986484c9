// Package editdist computes Levenshtein edit distance between words and
// answers bounded "within d edits?" questions with early termination.
//
// What
//
//   - Within(a, b, d): true iff a can be turned into b with at most d
//     single-character insertions, deletions, or substitutions.
//   - IsAdjacent(a, b): Within(a, b, 1). A word is adjacent to itself.
//   - Distance(a, b): the exact edit distance, no early exit.
//   - Matrix(a, b): the full (|a|+1)×(|b|+1) DP table.
//
// Algorithm
//
//	D[i][0] = i, D[0][j] = j
//	D[i][j] = D[i-1][j-1]                                  if a[i-1] == b[j-1]
//	        = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])   otherwise
//
// Within keeps only two rows. It returns false before touching the table
// when ||a|-|b|| > d, and after each row when the row minimum already
// exceeds d: row minima never decrease, so no alignment can recover.
//
// Complexity
//
//   - Time:   O(|a|·|b|), usually far less for Within thanks to the row cut.
//   - Memory: O(|b|) for Within and Distance, O(|a|·|b|) for Matrix.
//
// All functions are pure and safe for concurrent use. Characters are
// compared as runes.
package editdist
