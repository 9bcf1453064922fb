// Package search ranks stored questions by lexical similarity to a
// free-text query.
package search

import (
	"sort"

	"github.com/mesh-intelligence/lore/pkg/token"
	"github.com/mesh-intelligence/lore/pkg/types"
)

// scoreThreshold excludes questions sharing no tokens with the query.
// Scores are non-negative integers, so this keeps exactly the questions
// with at least one shared token.
const scoreThreshold = 0.05

// Rank scores every question in the corpus by token overlap with the
// query and returns the matches ordered most similar first.
//
// The query is tokenized with the same normalization as question token
// sets, so each distinct token counts at most once per question. Equal
// scores are broken by ascending question ID, making the order
// deterministic. A query sharing no tokens with any question yields an
// empty slice, never an error. Rank only reads the given corpus slice;
// callers pass a snapshot and need not block writers.
func Rank(query string, corpus []*types.Question) []*types.Question {
	queryTokens := token.Tokenize(query)
	querySet := make(map[string]struct{}, len(queryTokens))
	for _, tok := range queryTokens {
		querySet[tok] = struct{}{}
	}

	type scored struct {
		question *types.Question
		score    int
	}

	matches := make([]scored, 0, len(corpus))
	for _, q := range corpus {
		score := 0
		for _, tok := range q.TokenSet {
			if _, ok := querySet[tok]; ok {
				score++
			}
		}
		if float64(score) > scoreThreshold {
			matches = append(matches, scored{question: q, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].question.QuestionID < matches[j].question.QuestionID
	})

	ranked := make([]*types.Question, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, m.question)
	}
	return ranked
}
