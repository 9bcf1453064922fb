package types

import (
	"strings"
	"time"

	"github.com/mesh-intelligence/lore/pkg/token"
)

// Question represents a posted question. Linked answers are stored in the
// answer_links table and hydrated onto LinkedAnswerIDs in list order; the
// list never contains duplicate entries. TokenSet is the deduplicated,
// normalized word sequence derived from Title and Body, recomputed by the
// backend whenever either changes. Entity methods modify the struct in
// memory; the caller must persist via Table.Set.
type Question struct {
	QuestionID        int64     `json:"question_id"`
	Title             string    `json:"title"`
	Body              string    `json:"body"`
	AuthorID          int64     `json:"author_id"`
	PreferredAnswerID *int64    `json:"preferred_answer_id,omitempty"`
	TokenSet          []string  `json:"token_set"`
	LinkedAnswerIDs   []int64   `json:"linked_answer_ids"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Edit replaces the question's title and body and recomputes its token
// set. Returns ErrInvalidTitle if the new title is empty or whitespace.
func (q *Question) Edit(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return ErrInvalidTitle
	}
	q.Title = title
	q.Body = body
	q.Retokenize()
	q.UpdatedAt = time.Now().UTC()
	return nil
}

// Retokenize recomputes TokenSet from the current Title and Body.
func (q *Question) Retokenize() {
	q.TokenSet = token.Tokenize(q.Title + " " + q.Body)
}

// HasLinkedAnswer reports whether answerID appears in LinkedAnswerIDs.
func (q *Question) HasLinkedAnswer(answerID int64) bool {
	for _, id := range q.LinkedAnswerIDs {
		if id == answerID {
			return true
		}
	}
	return false
}

// SetPreferred marks answerID as the question's preferred answer.
// The answer must currently be linked to the question; otherwise
// ErrNotLinked is returned and the question is unchanged.
func (q *Question) SetPreferred(answerID int64) error {
	if !q.HasLinkedAnswer(answerID) {
		return ErrNotLinked
	}
	q.PreferredAnswerID = &answerID
	q.UpdatedAt = time.Now().UTC()
	return nil
}

// ClearPreferred unsets the preferred answer. Idempotent.
func (q *Question) ClearPreferred() {
	q.PreferredAnswerID = nil
	q.UpdatedAt = time.Now().UTC()
}
