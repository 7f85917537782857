// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package search scores a user query against the workspace's known relative
paths for typo-tolerant navigation. Scoring is read-only and stateless; the
candidate set is supplied fresh on each call and ties are broken by candidate
insertion order, so results are deterministic.

A candidate's score is the maximum of three independent strategies:
character subsequence matching with locality bonuses, per-path-segment fuzzy
matching with a bounded edit distance, and plain substring containment.
*/
package search

import (
	"sort"
	"strings"
)

// Candidate is one known file: its identity (absolute path) and the relative
// path the query is scored against.
type Candidate struct {
	AbsPath string
	RelPath string
}

type Result struct {
	AbsPath string
	RelPath string
	Score   int
}

const (
	// exactFullMatch dominates every partial-match strategy.
	exactFullMatch = 1000

	subseqBase        = 2
	subseqConsecutive = 4
	subseqBoundary    = 8
	subseqCamel       = 6
	subseqComplete    = 15

	segmentExact      = 100
	segmentPrefix     = 80
	segmentSubstring  = 60
	segmentReverse    = 40
	segmentEditBase   = 30
	segmentEditPerHit = 5

	containsBase       = 70
	containsShortBonus = 25
)

// Search ranks candidates against query, highest score first, dropping
// zero-score candidates and truncating to maxResults (unlimited when <= 0).
func Search(query string, candidates []Candidate, maxResults int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var results []Result
	for _, candidate := range candidates {
		if score := Score(query, candidate.RelPath); score > 0 {
			results = append(results, Result{AbsPath: candidate.AbsPath, RelPath: candidate.RelPath, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// Score computes the match score of query against one relative path.
func Score(query, relPath string) int {
	if strings.EqualFold(query, relPath) {
		return exactFullMatch
	}

	score := subsequenceScore(query, relPath)
	if s := segmentScore(query, relPath); s > score {
		score = s
	}
	if s := containsScore(query, relPath); s > score {
		score = s
	}
	return score
}

func isWordBoundary(ch byte) bool {
	switch ch {
	case '/', '-', '_', '.', ' ':
		return true
	}
	return false
}

// subsequenceScore walks the query through the candidate character by
// character, rewarding consecutive runs, word-boundary hits and camel-case
// transitions. Candidates matching fewer than 60% of the query's characters
// score zero.
func subsequenceScore(query, candidate string) int {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)

	score := 0
	matched := 0
	prevMatched := false

	qi := 0
	for ci := 0; ci < len(c) && qi < len(q); ci++ {
		if c[ci] != q[qi] {
			prevMatched = false
			continue
		}

		score += subseqBase
		switch {
		case prevMatched:
			score += subseqConsecutive
		case ci == 0 || isWordBoundary(c[ci-1]):
			score += subseqBoundary
		case isCamelTransition(candidate, ci):
			score += subseqCamel
		}
		matched++
		qi++
		prevMatched = true
	}

	if matched*100 < len(q)*60 {
		return 0
	}
	if matched == len(q) {
		score += subseqComplete
	}
	return score
}

func isCamelTransition(candidate string, idx int) bool {
	if idx == 0 {
		return false
	}
	prev, curr := candidate[idx-1], candidate[idx]
	return prev >= 'a' && prev <= 'z' && curr >= 'A' && curr <= 'Z'
}

// segmentScore splits the path on separators and scores the best segment:
// exact beats prefix beats substring beats reverse-substring beats a
// bounded-edit-distance match whose allowance grows with query length.
func segmentScore(query, relPath string) int {
	q := strings.ToLower(query)

	allowance := 2
	switch {
	case len(q) <= 2:
		allowance = 0
	case len(q) <= 4:
		allowance = 1
	}

	best := 0
	for _, segment := range strings.FieldsFunc(strings.ToLower(relPath), func(r rune) bool {
		return r == '/' || r == '-' || r == '_' || r == '.'
	}) {
		score := 0
		switch {
		case segment == q:
			score = segmentExact
		case strings.HasPrefix(segment, q):
			score = segmentPrefix
		case strings.Contains(segment, q):
			score = segmentSubstring
		case strings.Contains(q, segment):
			score = segmentReverse
		default:
			if allowance > 0 {
				if dist := semiGlobalDistance(q, segment); dist <= allowance {
					score = segmentEditBase - dist*segmentEditPerHit
				}
			}
		}
		if score > best {
			best = score
		}
	}
	return best
}

// containsScore is the plain substring signal, stronger for shorter exact
// queries.
func containsScore(query, relPath string) int {
	if !strings.Contains(strings.ToLower(relPath), strings.ToLower(query)) {
		return 0
	}
	bonus := containsShortBonus - len(query)
	if bonus < 0 {
		bonus = 0
	}
	return containsBase + bonus
}

// semiGlobalDistance is an edit distance with free start and end in the
// segment, so a short query can match anywhere inside a longer segment at
// the cost of only its own edits.
func semiGlobalDistance(query, segment string) int {
	prev := make([]int, len(segment)+1) // zero row: free start

	for i := 1; i <= len(query); i++ {
		curr := make([]int, len(segment)+1)
		curr[0] = i
		for j := 1; j <= len(segment); j++ {
			cost := 1
			if query[i-1] == segment[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j-1]+cost, minInt(prev[j]+1, curr[j-1]+1))
		}
		prev = curr
	}

	best := prev[0]
	for _, v := range prev {
		if v < best {
			best = v
		}
	}
	return best
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
