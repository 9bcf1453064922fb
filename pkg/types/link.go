package types

import "time"

// Parent kinds for answer links. Question and answer IDs live in separate
// sequences, so the kind disambiguates the parent side of an edge.
const (
	ParentQuestion = "question"
	ParentAnswer   = "answer"
)

// AnswerLink is one edge of the adjacency relation: childID is a linked
// answer of the parent. Position fixes the child's place in the parent's
// ordered list. The backend enforces that (ParentKind, ParentID, ChildID)
// is unique, so no parent list ever contains a duplicate entry.
type AnswerLink struct {
	LinkID     int64     `json:"link_id"`
	ParentKind string    `json:"parent_kind"`
	ParentID   int64     `json:"parent_id"`
	ChildID    int64     `json:"child_id"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidParentKind reports whether kind is a recognized parent kind.
func ValidParentKind(kind string) bool {
	return kind == ParentQuestion || kind == ParentAnswer
}
