// Package fuzzy finds the declared switch closest to a mistyped one.
// Used by carp to attach a suggestion to unrecognized-switch problems.
package fuzzy

import (
	"sort"
	"strings"
)

// minLength is the shortest input, after stripping switch dashes, worth
// suggesting for. "-x" against "-s" is noise, not a typo.
const minLength = 2

// Match is one candidate within the allowed edit distance.
type Match struct {
	Value    string
	Distance int
}

// Matches returns every candidate within maxDistance edits of input,
// closest first, ties keeping candidate order. Comparison ignores case and
// leading dashes; a candidate identical to input is skipped.
func Matches(input string, candidates []string, maxDistance int) []Match {
	key := normalize(input)
	if len([]rune(key)) < minLength {
		return nil
	}

	var matches []Match
	for _, c := range candidates {
		if c == input {
			continue
		}
		if d := Distance(key, normalize(c), maxDistance); d <= maxDistance {
			matches = append(matches, Match{Value: c, Distance: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}

// Closest returns the best candidate within maxDistance, or "".
func Closest(input string, candidates []string, maxDistance int) string {
	matches := Matches(input, candidates, maxDistance)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Suggestions returns at most limit candidate values, closest first.
func Suggestions(input string, candidates []string, maxDistance, limit int) []string {
	matches := Matches(input, candidates, maxDistance)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Value
	}
	return out
}

// Distance returns the Levenshtein distance between a and b in runes. Once
// the distance is known to exceed bound it stops and returns bound+1; a
// negative bound disables the cutoff.
func Distance(a, b string, bound int) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if bound >= 0 && len(rb)-len(ra) > bound {
		return bound + 1
	}

	prev := make([]int, len(ra)+1)
	cur := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(rb); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if ra[j-1] == rb[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if bound >= 0 && rowMin > bound {
			return bound + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(ra)]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimLeft(s, "-"))
}
