// Package suggest ranks known command names by how closely they resemble a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// minScore is the similarity a candidate must exceed to be suggested.
const minScore = 0.5

type match struct {
	name  string
	score float64
}

// Names returns up to limit candidates similar to target, best match first. Ties are broken
// alphabetically. The result is never nil.
func Names(target string, candidates []string, limit int) []string {
	if target == "" || limit <= 0 {
		return []string{}
	}
	var matches []match
	for _, name := range candidates {
		if score := similarity(target, name); score > minScore {
			matches = append(matches, match{name: name, score: score})
		}
	}
	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		out = append(out, m.name)
	}
	return out
}

// similarity scores a against b in [0, 1]. Case is ignored and a prefix of b scores 0.9.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	return 1 - float64(distance(a, b))/float64(max(len(a), len(b)))
}

// distance is the Levenshtein edit distance, computed with two rolling rows.
func distance(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
