package types

import "time"

// Review is a weighted assessment attached to a question or an answer.
// ForQuestion discriminates the target: true means RelatedID names a
// Question, false an Answer. VoteTotal starts at zero and moves with
// registered votes; it may go negative.
type Review struct {
	ReviewID    int64     `json:"review_id"`
	ForQuestion bool      `json:"for_question"`
	RelatedID   int64     `json:"related_id"`
	Text        string    `json:"text"`
	AuthorID    int64     `json:"author_id"`
	VoteTotal   int       `json:"vote_total"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Upvote registers a positive vote.
func (r *Review) Upvote() {
	r.VoteTotal++
	r.UpdatedAt = time.Now().UTC()
}

// Downvote registers a negative vote.
func (r *Review) Downvote() {
	r.VoteTotal--
	r.UpdatedAt = time.Now().UTC()
}
