package search

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// normalize lowercases text and collapses whitespace
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// tokenize splits a normalized query into words of at least minLen runes
func tokenize(query string, minLen int) []string {
	var tokens []string
	for _, word := range strings.FieldsFunc(query, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '/' || r == '-'
	}) {
		if len([]rune(word)) >= minLen {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// approxDistance returns the smallest edit distance between pattern and any
// substring of text (Sellers' algorithm). It stops early and returns
// maxErrors+1 once no alignment can stay within maxErrors.
func approxDistance(pattern, text []rune, maxErrors int) int {
	m, n := len(pattern), len(text)
	if m == 0 {
		return 0
	}
	if n == 0 {
		return m
	}

	prev := make([]int, n+1) // row 0 is all zeros: a match may start anywhere
	cur := make([]int, n+1)

	for i := 1; i <= m; i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= n; j++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			best := prev[j-1] + cost
			if v := prev[j] + 1; v < best {
				best = v
			}
			if v := cur[j-1] + 1; v < best {
				best = v
			}
			cur[j] = best
			if best < rowMin {
				rowMin = best
			}
		}
		if rowMin > maxErrors {
			return maxErrors + 1
		}
		prev, cur = cur, prev
	}

	best := prev[0]
	for _, v := range prev[1:] {
		if v < best {
			best = v
		}
	}
	return best
}

// fieldScore scores pattern against text in [0,1]; 0 is a perfect match.
// Both arguments must already be normalized.
func fieldScore(pattern, text string, threshold float64) float64 {
	if pattern == "" || text == "" {
		return 1
	}
	if strings.Contains(text, pattern) {
		return 0
	}

	p := []rune(pattern)
	maxErrors := int(threshold * float64(len(p)))
	d := approxDistance(p, []rune(text), maxErrors)
	if d > len(p) {
		return 1
	}
	return float64(d) / float64(len(p))
}

// Highlight returns the byte offsets of the characters in text matched by
// query, or nil when query is not a subsequence of text. Used to emphasise
// matches in result lists.
func Highlight(query, text string) []int {
	query = strings.TrimSpace(query)
	if query == "" || text == "" {
		return nil
	}
	matches := fuzzy.Find(query, []string{text})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
