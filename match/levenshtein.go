package match

import "unicode"

// Distance computes the Levenshtein distance (edit distance) between two
// property names. The distance is the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to transform one name
// into the other. Characters are compared case-insensitively, so
// Distance("Name", "name") is 0.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	if len(ar) == 0 {
		return len(br)
	}

	if len(br) == 0 {
		return len(ar)
	}

	// Ensure ar is the shorter string for space optimization
	if len(ar) > len(br) {
		ar, br = br, ar
	}

	// Use two rows instead of the full matrix
	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)

	// Initialize first row
	for i := range prev {
		prev[i] = i
	}

	// Fill in the rest of the matrix
	for j := 1; j <= len(br); j++ {
		curr[0] = j

		for i := 1; i <= len(ar); i++ {
			cost := 0
			if !foldEqual(ar[i-1], br[j-1]) {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ar)]
}

// foldEqual compares two runes case-insensitively.
func foldEqual(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}

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
