package fuzzy

import (
	"strings"
)

// LevenshteinDistance calculates the edit distance between two strings:
// how many single-character insertions, deletions, or substitutions are
// required to change one into the other.
func LevenshteinDistance(s1, s2 string) int {
	s1 = normalizeString(s1)
	s2 = normalizeString(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}

	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// FuzzyMatch checks if query fuzzy-matches text within a given threshold,
// the maximum allowed edit distance per word.
func FuzzyMatch(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)

	if strings.Contains(text, query) {
		return true
	}

	words := strings.Fields(text)
	for _, word := range words {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	// Whole-text distance only makes sense for short texts
	if len(text) < 50 {
		distance := LevenshteinDistance(query, text)
		maxDistance := threshold + len(query)/5
		if distance <= maxDistance {
			return true
		}
	}

	return false
}

// MatchEntry checks if a journal entry matches the query, looking at the
// entry content and its category name with typo tolerance scaled to the
// query length.
func MatchEntry(query, content, categoryName string) bool {
	threshold := 2
	if len(query) <= 3 {
		threshold = 1
	} else if len(query) >= 8 {
		threshold = 3
	}

	if FuzzyMatch(query, categoryName, threshold) {
		return true
	}

	// Cap the scanned content for long entries
	snippet := content
	if len(snippet) > 500 {
		snippet = snippet[:500]
	}
	return FuzzyMatch(query, snippet, threshold)
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

// normalizeString lowercases and collapses whitespace
func normalizeString(s string) string {
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}
