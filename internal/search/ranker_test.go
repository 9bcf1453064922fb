package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/lore/pkg/types"
)

// question builds a corpus entry with a precomputed token set, the way
// the questions table stores them.
func question(id int64, tokens ...string) *types.Question {
	return &types.Question{QuestionID: id, Title: "q", TokenSet: tokens}
}

func ids(qs []*types.Question) []int64 {
	out := make([]int64, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.QuestionID)
	}
	return out
}

func TestRankOrdersByOverlap(t *testing.T) {
	corpus := []*types.Question{
		question(1, "a", "b", "c"),
		question(2, "a", "x", "y"),
	}

	ranked := Rank("a b c", corpus)
	assert.Equal(t, []int64{1, 2}, ids(ranked), "three shared tokens beat one")
}

func TestRankNoOverlapIsEmpty(t *testing.T) {
	corpus := []*types.Question{
		question(1, "a", "b", "c"),
		question(2, "a", "x", "y"),
	}

	ranked := Rank("z q", corpus)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked, "zero-score questions are excluded")
}

func TestRankTieBreakAscendingID(t *testing.T) {
	corpus := []*types.Question{
		question(30, "apple", "pie"),
		question(10, "apple", "cake"),
		question(20, "apple", "tart"),
	}

	ranked := Rank("apple", corpus)
	assert.Equal(t, []int64{10, 20, 30}, ids(ranked))
}

func TestRankQueryDuplicatesCountOnce(t *testing.T) {
	corpus := []*types.Question{
		question(1, "apple", "pie"),
		question(2, "apple", "cake", "pie"),
	}

	// "apple apple apple" dedups to one query token.
	ranked := Rank("apple apple apple pie", corpus)
	assert.Equal(t, []int64{1, 2}, ids(ranked), "both share apple and pie; tie broken by ID")
}

func TestRankNormalizesQueryLikeQuestions(t *testing.T) {
	corpus := []*types.Question{
		question(1, "widget", "broken"),
	}

	ranked := Rank("Widget, BROKEN!?", corpus)
	assert.Equal(t, []int64{1}, ids(ranked))
}

func TestRankEmptyInputs(t *testing.T) {
	assert.Empty(t, Rank("anything", nil))
	assert.Empty(t, Rank("", []*types.Question{question(1, "a")}))
}

func TestRankDoesNotMutateCorpus(t *testing.T) {
	corpus := []*types.Question{
		question(2, "b"),
		question(1, "a", "b"),
	}

	Rank("a b", corpus)
	assert.Equal(t, int64(2), corpus[0].QuestionID, "corpus order untouched")
	assert.Equal(t, int64(1), corpus[1].QuestionID)
}
