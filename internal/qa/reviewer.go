package qa

import (
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/lore/pkg/types"
)

// TrustedReviewers returns the truster's reviewer weights. A user with
// no stored trust list gets an empty map, not an error.
func (s *Service) TrustedReviewers(trusterID int64) (map[int64]int, error) {
	trust, err := s.trust()
	if err != nil {
		return nil, err
	}

	entity, err := trust.Get(trusterID)
	if err != nil {
		if err == types.ErrNotFound {
			return map[int64]int{}, nil
		}
		return nil, err
	}
	tl := entity.(*types.TrustList)
	out := make(map[int64]int, len(tl.Weights))
	for reviewer, weight := range tl.Weights {
		out[reviewer] = weight
	}
	return out, nil
}

// TrustReviewer sets the truster's weight for a reviewer, creating the
// trust list if needed. Re-trusting an already trusted reviewer
// replaces the weight. Weights outside the valid range are rejected
// with ErrInvalidWeight before anything is written.
func (s *Service) TrustReviewer(trusterID, reviewerID int64, weight int) error {
	trust, err := s.trust()
	if err != nil {
		return err
	}

	unlock := s.locks.lock(lockTrust, trusterID)
	defer unlock()

	var tl *types.TrustList
	entity, err := trust.Get(trusterID)
	switch err {
	case nil:
		tl = entity.(*types.TrustList)
	case types.ErrNotFound:
		tl = types.NewTrustList(trusterID)
	default:
		return err
	}

	if err := tl.Set(reviewerID, weight); err != nil {
		return err
	}
	if _, err := trust.Set(trusterID, tl); err != nil {
		return err
	}

	s.opLogger("trust_reviewer").WithFields(logrus.Fields{
		"truster_id":  trusterID,
		"reviewer_id": reviewerID,
		"weight":      weight,
	}).Info("reviewer trusted")
	return nil
}

// UntrustReviewer removes a reviewer from the truster's trust list.
// Reports false when the reviewer was not trusted or the truster has
// no list at all.
func (s *Service) UntrustReviewer(trusterID, reviewerID int64) (bool, error) {
	trust, err := s.trust()
	if err != nil {
		return false, err
	}

	unlock := s.locks.lock(lockTrust, trusterID)
	defer unlock()

	entity, err := trust.Get(trusterID)
	if err != nil {
		if err == types.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	tl := entity.(*types.TrustList)
	if !tl.Remove(reviewerID) {
		return false, nil
	}
	if _, err := trust.Set(trusterID, tl); err != nil {
		return false, err
	}
	return true, nil
}

// PostReview attaches a review to a question or an answer. The target
// must exist; forQuestion selects which table relatedID refers to.
func (s *Service) PostReview(text string, authorID, relatedID int64, forQuestion bool) (*types.Review, error) {
	reviews, err := s.reviews()
	if err != nil {
		return nil, err
	}

	// Validate the target before writing.
	if forQuestion {
		questions, err := s.questions()
		if err != nil {
			return nil, err
		}
		if _, err := questions.Get(relatedID); err != nil {
			return nil, err
		}
	} else {
		answers, err := s.answers()
		if err != nil {
			return nil, err
		}
		if _, err := answers.Get(relatedID); err != nil {
			return nil, err
		}
	}

	r := &types.Review{
		ForQuestion: forQuestion,
		RelatedID:   relatedID,
		Text:        text,
		AuthorID:    authorID,
	}
	id, err := reviews.Set(0, r)
	if err != nil {
		return nil, err
	}

	s.opLogger("post_review").WithFields(logrus.Fields{
		"review_id":    id,
		"related_id":   relatedID,
		"for_question": forQuestion,
		"author_id":    authorID,
	}).Info("review posted")
	return r, nil
}

// RegisterVote applies an up or down vote to a review's running total.
func (s *Service) RegisterVote(reviewID int64, up bool) (*types.Review, error) {
	reviews, err := s.reviews()
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(lockReview, reviewID)
	defer unlock()

	entity, err := reviews.Get(reviewID)
	if err != nil {
		return nil, err
	}
	r := entity.(*types.Review)
	if up {
		r.Upvote()
	} else {
		r.Downvote()
	}
	if _, err := reviews.Set(reviewID, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ReviewerRating aggregates a reviewer's standing as the integer mean
// of the vote totals across all their reviews. A reviewer with no
// reviews rates zero.
func (s *Service) ReviewerRating(reviewerID int64) (int, error) {
	reviews, err := s.reviews()
	if err != nil {
		return 0, err
	}

	entities, err := reviews.Fetch(types.Filter{"author_id": reviewerID})
	if err != nil {
		return 0, err
	}
	if len(entities) == 0 {
		return 0, nil
	}

	sum := 0
	for _, e := range entities {
		sum += e.(*types.Review).VoteTotal
	}
	return sum / len(entities), nil
}
