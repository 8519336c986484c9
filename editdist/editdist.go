package editdist

// Within reports whether the edit distance between a and b is at most budget.
// A negative budget can never be met and yields false.
func Within(a, b string, budget int) bool {
	if budget < 0 {
		return false
	}
	// Compare per rune, not per byte
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	// Every length difference costs one insertion or deletion
	if abs(n-m) > budget {
		return false
	}

	// Two rolling rows; row 0 is the cost of building b[:j] from nothing
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= m; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min3(prev[j], curr[j-1], prev[j-1])
			}
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		// Row minima never decrease, so the budget is already lost
		if rowMin > budget {
			return false
		}
		prev, curr = curr, prev
	}

	return prev[m] <= budget
}

// IsAdjacent reports whether a and b are at most one edit apart.
// Identical words are adjacent; callers that need a strict step must
// exclude equality themselves.
func IsAdjacent(a, b string) bool {
	return Within(a, b, 1)
}

// Distance returns the Levenshtein distance between a and b.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min3(prev[j], curr[j-1], prev[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// Matrix returns the full DP table for a and b. Cell [i][j] holds the
// distance between the first i runes of a and the first j runes of b,
// so the bottom-right cell equals Distance(a, b).
func Matrix(a, b string) [][]int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if ra[i-1] == rb[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = 1 + min3(
				dp[i-1][j],   // deletion
				dp[i][j-1],   // insertion
				dp[i-1][j-1], // substitution
			)
		}
	}

	return dp
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
