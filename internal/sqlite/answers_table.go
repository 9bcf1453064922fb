// This file implements the answers table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var _ types.Table = (*answersTable)(nil)

// answersTable implements the Table interface for the answer entity.
type answersTable struct {
	backend *Backend
}

// Get retrieves an answer by ID, including the IDs of follow-up answers
// threaded under it.
func (at *answersTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	row := at.backend.db.QueryRow(
		"SELECT answer_id, text, author_id, created_at, updated_at FROM answers WHERE answer_id = ?",
		id,
	)
	a, err := hydrateAnswer(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, types.NewStorageError(fmt.Sprintf("get answer %d", id), err)
	}
	if err := hydrateLinkedIDs(at.backend.db, types.ParentAnswer, a.AnswerID, &a.LinkedAnswerIDs); err != nil {
		return nil, err
	}
	return a, nil
}

// Set persists an answer. When id is zero a new answer is created and its
// assigned ID returned. Attachment to a parent is a separate concern
// handled through the answer_links table.
func (at *answersTable) Set(id int64, data any) (int64, error) {
	a, ok := data.(*types.Answer)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if a.Text == "" {
		return 0, types.ErrInvalidText
	}
	if a.AuthorID <= 0 {
		return 0, types.ErrInvalidAuthor
	}

	now := time.Now().UTC()
	isCreate := id == 0

	if isCreate {
		a.CreatedAt = now
		a.UpdatedAt = now
		a.LinkedAnswerIDs = nil

		res, err := at.backend.db.Exec(
			"INSERT INTO answers (text, author_id, created_at, updated_at) VALUES (?, ?, ?, ?)",
			a.Text, a.AuthorID, formatTimestamp(a.CreatedAt), formatTimestamp(a.UpdatedAt),
		)
		if err != nil {
			return 0, types.NewStorageError("insert answer", err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, types.NewStorageError("read answer id", err)
		}
		a.AnswerID = newID
		return newID, nil
	}

	if id <= 0 {
		return 0, types.ErrInvalidID
	}
	res, err := at.backend.db.Exec(
		"UPDATE answers SET text = ?, author_id = ?, updated_at = ? WHERE answer_id = ?",
		a.Text, a.AuthorID, formatTimestamp(a.UpdatedAt), id,
	)
	if err != nil {
		return 0, types.NewStorageError("update answer", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, types.NewStorageError("update answer", err)
	}
	if n == 0 {
		return 0, types.ErrNotFound
	}
	a.AnswerID = id
	return id, nil
}

// Delete removes an answer and every adjacency row touching it: rows
// where it is the child (removing it from any parent's list) and rows
// where it is the parent (orphaning, not deleting, its follow-ups).
// A question whose preferred answer is deleted has the preference
// cleared in the same transaction. Follow-up answers themselves are
// never cascaded here.
func (at *answersTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	var exists int
	err := at.backend.db.QueryRow(
		"SELECT 1 FROM answers WHERE answer_id = ?", id,
	).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return types.NewStorageError("check answer existence", err)
	}

	tx, err := at.backend.db.Begin()
	if err != nil {
		return types.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM answer_links WHERE child_id = ?", id); err != nil {
		return types.NewStorageError("unlink answer from parents", err)
	}
	if _, err := tx.Exec(
		"DELETE FROM answer_links WHERE parent_kind = ? AND parent_id = ?",
		types.ParentAnswer, id,
	); err != nil {
		return types.NewStorageError("delete answer links", err)
	}
	if _, err := tx.Exec(
		"UPDATE questions SET preferred_answer_id = NULL WHERE preferred_answer_id = ?", id,
	); err != nil {
		return types.NewStorageError("clear preferred answer", err)
	}
	if _, err := tx.Exec(
		"DELETE FROM reviews WHERE for_question = 0 AND related_id = ?", id,
	); err != nil {
		return types.NewStorageError("delete answer reviews", err)
	}
	if _, err := tx.Exec("DELETE FROM answers WHERE answer_id = ?", id); err != nil {
		return types.NewStorageError("delete answer", err)
	}

	if err := tx.Commit(); err != nil {
		return types.NewStorageError("commit answer deletion", err)
	}
	return nil
}

// Fetch queries answers matching the filter, ordered by ascending ID.
// Supported filter keys: author_id (int64), limit, offset (int).
func (at *answersTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT answer_id, text, author_id, created_at, updated_at FROM answers"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["author_id"]; ok {
			authorID, ok := filterInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "author_id = ?")
			args = append(args, authorID)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY answer_id ASC"

	query, err := applyLimitOffset(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := at.backend.db.Query(query, args...)
	if err != nil {
		return nil, types.NewStorageError("fetch answers", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		a, err := hydrateAnswer(rows.Scan)
		if err != nil {
			return nil, types.NewStorageError("hydrate answer", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStorageError("iterate answers", err)
	}

	for _, r := range results {
		a := r.(*types.Answer)
		if err := hydrateLinkedIDs(at.backend.db, types.ParentAnswer, a.AnswerID, &a.LinkedAnswerIDs); err != nil {
			return nil, err
		}
	}

	if results == nil {
		results = []any{}
	}
	return results, nil
}

// hydrateAnswer converts one SQLite row into a *types.Answer.
func hydrateAnswer(scan func(...any) error) (*types.Answer, error) {
	var a types.Answer
	var createdAt, updatedAt string
	if err := scan(&a.AnswerID, &a.Text, &a.AuthorID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if a.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
