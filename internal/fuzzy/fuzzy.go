// Package fuzzy finds the closest known option identifier for a mistyped
// command-line token. Used by clargs to attach "did you mean" suggestions to
// unknown-option errors.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
)

// Matcher ranks candidate identifiers by edit distance to an input token.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // "-x" style identifiers are too short to guess at
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best matching candidate, or "" if none is close
// enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within the max distance, best first.
//
// Leading dashes are compared separately from the name: "--verbos" is one
// edit away from "--verbose" but "-verbose" is not offered "--verbose" at
// distance zero, since the dash style is part of the identifier.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	inDashes, inName := splitDashes(strings.ToLower(input))
	if len(inName) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		cDashes, cName := splitDashes(strings.ToLower(candidate))
		if inDashes == cDashes && inName == cName {
			continue
		}

		distance := m.levenshteinDistance(inName, cName)
		if inDashes != cDashes {
			distance++
		}
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.calculateScore(inName, cName, distance),
		})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.Distance, b.Distance)
	})
	return matches
}

func splitDashes(s string) (int, string) {
	name := strings.TrimLeft(s, "-")
	return len(s) - len(name), name
}

// calculateScore computes a match quality score (0.0 to 1.0)
// Factors: edit distance, length difference, prefix matching, common characters
func (m *Matcher) calculateScore(input, candidate string, distance int) float64 {
	if distance > m.maxDistance {
		return 0.0
	}

	maxLen := max(len(input), len(candidate))
	if maxLen == 0 {
		return 1.0
	}

	editScore := 1.0 - (float64(distance) / float64(maxLen))

	prefixBonus := 0.0
	if prefixLen := commonPrefixLength(input, candidate); prefixLen > 0 {
		prefixBonus = float64(prefixLen) / float64(min(len(input), len(candidate))) * 0.3
	}

	lengthDiff := abs(len(input) - len(candidate))
	lengthBonus := (1.0 - float64(lengthDiff)/float64(maxLen)) * 0.2

	charBonus := float64(countCommonChars(input, candidate)) / float64(maxLen) * 0.1

	return min(editScore+prefixBonus+lengthBonus+charBonus, 1.0)
}

// levenshteinDistance calculates edit distance between two strings, giving
// up with maxDistance+1 as soon as the result is known to exceed it.
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// countCommonChars counts characters that appear in both strings, each
// occurrence matched at most once.
func countCommonChars(a, b string) int {
	counts := make(map[rune]int)
	for _, r := range a {
		counts[r]++
	}
	common := 0
	for _, r := range b {
		if counts[r] > 0 {
			common++
			counts[r]--
		}
	}
	return common
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBestIdentifier returns the registered identifier closest to token.
func FindBestIdentifier(token string, identifiers []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(token, identifiers)
}

// FindSuggestions returns up to maxSuggestions identifiers close to token.
func FindSuggestions(token string, identifiers []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(token, identifiers)
	suggestions := make([]string, 0, min(len(matches), maxSuggestions))
	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Value)
	}
	return suggestions
}
