package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lore/pkg/types"
)

func TestTrustReviewerLifecycle(t *testing.T) {
	svc := newTestService(t)

	// No list yet.
	weights, err := svc.TrustedReviewers(1)
	require.NoError(t, err)
	assert.Empty(t, weights)

	require.NoError(t, svc.TrustReviewer(1, 2, 7))
	require.NoError(t, svc.TrustReviewer(1, 3, 4))

	weights, err = svc.TrustedReviewers(1)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{2: 7, 3: 4}, weights)

	// Re-trusting replaces the weight.
	require.NoError(t, svc.TrustReviewer(1, 2, 9))
	weights, err = svc.TrustedReviewers(1)
	require.NoError(t, err)
	assert.Equal(t, 9, weights[2])
}

func TestTrustReviewerWeightBounds(t *testing.T) {
	svc := newTestService(t)

	assert.ErrorIs(t, svc.TrustReviewer(1, 2, -1), types.ErrInvalidWeight)
	assert.ErrorIs(t, svc.TrustReviewer(1, 2, 11), types.ErrInvalidWeight)
	assert.NoError(t, svc.TrustReviewer(1, 2, types.MinTrustWeight))
	assert.NoError(t, svc.TrustReviewer(1, 3, types.MaxTrustWeight))
}

func TestUntrustReviewer(t *testing.T) {
	svc := newTestService(t)

	// No list at all.
	removed, err := svc.UntrustReviewer(1, 2)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, svc.TrustReviewer(1, 2, 5))
	require.NoError(t, svc.TrustReviewer(1, 3, 5))

	removed, err = svc.UntrustReviewer(1, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	// Not trusted any more.
	removed, err = svc.UntrustReviewer(1, 2)
	require.NoError(t, err)
	assert.False(t, removed)

	weights, err := svc.TrustedReviewers(1)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{3: 5}, weights)
}

func TestPostReviewTargets(t *testing.T) {
	svc := newTestService(t)

	q, err := svc.AskQuestion("Q", "body", 1)
	require.NoError(t, err)
	a, err := svc.AnswerQuestion("answer", 2, q.QuestionID)
	require.NoError(t, err)

	qr, err := svc.PostReview("well asked", 2, q.QuestionID, true)
	require.NoError(t, err)
	assert.NotZero(t, qr.ReviewID)
	assert.True(t, qr.ForQuestion)

	ar, err := svc.PostReview("well answered", 1, a.AnswerID, false)
	require.NoError(t, err)
	assert.False(t, ar.ForQuestion)

	_, err = svc.PostReview("nothing there", 1, 999, true)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRegisterVote(t *testing.T) {
	svc := newTestService(t)

	q, err := svc.AskQuestion("Q", "body", 1)
	require.NoError(t, err)
	r, err := svc.PostReview("review", 2, q.QuestionID, true)
	require.NoError(t, err)

	r, err = svc.RegisterVote(r.ReviewID, true)
	require.NoError(t, err)
	r, err = svc.RegisterVote(r.ReviewID, true)
	require.NoError(t, err)
	r, err = svc.RegisterVote(r.ReviewID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, r.VoteTotal)

	_, err = svc.RegisterVote(999, true)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestReviewerRating(t *testing.T) {
	svc := newTestService(t)

	// No reviews yet.
	rating, err := svc.ReviewerRating(2)
	require.NoError(t, err)
	assert.Zero(t, rating)

	q, err := svc.AskQuestion("Q", "body", 1)
	require.NoError(t, err)

	first, err := svc.PostReview("first", 2, q.QuestionID, true)
	require.NoError(t, err)
	second, err := svc.PostReview("second", 2, q.QuestionID, true)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = svc.RegisterVote(first.ReviewID, true)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err = svc.RegisterVote(second.ReviewID, true)
		require.NoError(t, err)
	}

	// (5 + 3) / 2, integer division.
	rating, err = svc.ReviewerRating(2)
	require.NoError(t, err)
	assert.Equal(t, 4, rating)

	// Another reviewer's votes do not leak in.
	rating, err = svc.ReviewerRating(1)
	require.NoError(t, err)
	assert.Zero(t, rating)
}
