package types

import "time"

// Answer represents an answer attached to exactly one Question or one
// parent Answer at creation time. LinkedAnswerIDs holds the IDs of
// follow-up answers threaded under this one, in list order, without
// duplicates. Deleting an answer does not delete its follow-ups; only
// the link rows are removed.
type Answer struct {
	AnswerID        int64     `json:"answer_id"`
	Text            string    `json:"text"`
	AuthorID        int64     `json:"author_id"`
	LinkedAnswerIDs []int64   `json:"linked_answer_ids"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Edit replaces the answer text. Returns ErrInvalidText if text is empty.
func (a *Answer) Edit(text string) error {
	if text == "" {
		return ErrInvalidText
	}
	a.Text = text
	a.UpdatedAt = time.Now().UTC()
	return nil
}
