// This file implements the questions table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/lore/pkg/types"
)

// Compile-time interface check: questionsTable must implement Table.
var _ types.Table = (*questionsTable)(nil)

// questionsTable implements the Table interface for the question entity.
// Each operation hydrates/dehydrates between SQLite rows and
// *types.Question structs. The token set is recomputed from title and
// body on every write, and linked answer IDs are hydrated from the
// answer_links table in list order.
type questionsTable struct {
	backend *Backend
}

// Get retrieves a question by ID, including its linked answer IDs.
func (qt *questionsTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	row := qt.backend.db.QueryRow(
		"SELECT question_id, title, body, author_id, preferred_answer_id, token_set, created_at, updated_at FROM questions WHERE question_id = ?",
		id,
	)
	q, err := hydrateQuestion(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, types.NewStorageError(fmt.Sprintf("get question %d", id), err)
	}
	if err := hydrateLinkedIDs(qt.backend.db, types.ParentQuestion, q.QuestionID, &q.LinkedAnswerIDs); err != nil {
		return nil, err
	}
	return q, nil
}

// Set persists a question. When id is zero a new question is created and
// its assigned ID returned. The token set is always recomputed from the
// current title and body before the row is written, so edits can never
// leave a stale token set behind.
func (qt *questionsTable) Set(id int64, data any) (int64, error) {
	q, ok := data.(*types.Question)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if strings.TrimSpace(q.Title) == "" {
		return 0, types.ErrInvalidTitle
	}
	if q.AuthorID <= 0 {
		return 0, types.ErrInvalidAuthor
	}

	now := time.Now().UTC()
	isCreate := id == 0

	if isCreate {
		q.CreatedAt = now
		q.UpdatedAt = now
		q.PreferredAnswerID = nil
		q.LinkedAnswerIDs = nil
	} else if id <= 0 {
		return 0, types.ErrInvalidID
	}

	q.Retokenize()
	tokenJSON, err := json.Marshal(q.TokenSet)
	if err != nil {
		return 0, fmt.Errorf("marshaling token set: %w", err)
	}

	var preferred sql.NullInt64
	if q.PreferredAnswerID != nil {
		preferred = sql.NullInt64{Int64: *q.PreferredAnswerID, Valid: true}
	}

	tx, err := qt.backend.db.Begin()
	if err != nil {
		return 0, types.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback()

	if isCreate {
		res, err := tx.Exec(
			"INSERT INTO questions (title, body, author_id, preferred_answer_id, token_set, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			q.Title, q.Body, q.AuthorID, preferred, string(tokenJSON),
			formatTimestamp(q.CreatedAt), formatTimestamp(q.UpdatedAt),
		)
		if err != nil {
			return 0, types.NewStorageError("insert question", err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, types.NewStorageError("read question id", err)
		}
		q.QuestionID = newID
		id = newID
	} else {
		res, err := tx.Exec(
			"UPDATE questions SET title = ?, body = ?, author_id = ?, preferred_answer_id = ?, token_set = ?, updated_at = ? WHERE question_id = ?",
			q.Title, q.Body, q.AuthorID, preferred, string(tokenJSON),
			formatTimestamp(q.UpdatedAt), id,
		)
		if err != nil {
			return 0, types.NewStorageError("update question", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, types.NewStorageError("update question", err)
		}
		if n == 0 {
			return 0, types.ErrNotFound
		}
		q.QuestionID = id
	}

	if err := tx.Commit(); err != nil {
		return 0, types.NewStorageError("commit question", err)
	}

	return id, nil
}

// Delete removes a question and its outgoing adjacency rows. Linked
// answers are separate entities and are not deleted here; the relation
// service owns the one-level cascade and calls the answers table first.
func (qt *questionsTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	var exists int
	err := qt.backend.db.QueryRow(
		"SELECT 1 FROM questions WHERE question_id = ?", id,
	).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return types.NewStorageError("check question existence", err)
	}

	tx, err := qt.backend.db.Begin()
	if err != nil {
		return types.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM answer_links WHERE parent_kind = ? AND parent_id = ?",
		types.ParentQuestion, id,
	); err != nil {
		return types.NewStorageError("delete question links", err)
	}
	if _, err := tx.Exec(
		"DELETE FROM reviews WHERE for_question = 1 AND related_id = ?", id,
	); err != nil {
		return types.NewStorageError("delete question reviews", err)
	}
	if _, err := tx.Exec("DELETE FROM questions WHERE question_id = ?", id); err != nil {
		return types.NewStorageError("delete question", err)
	}

	if err := tx.Commit(); err != nil {
		return types.NewStorageError("commit question deletion", err)
	}
	return nil
}

// Fetch queries questions matching the filter, ordered by ascending ID so
// corpus snapshots are deterministic. Supported filter keys: author_id
// (int64), limit, offset (int).
func (qt *questionsTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT question_id, title, body, author_id, preferred_answer_id, token_set, created_at, updated_at FROM questions"
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
	query += " ORDER BY question_id ASC"

	query, err := applyLimitOffset(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := qt.backend.db.Query(query, args...)
	if err != nil {
		return nil, types.NewStorageError("fetch questions", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		q, err := hydrateQuestion(rows.Scan)
		if err != nil {
			return nil, types.NewStorageError("hydrate question", err)
		}
		results = append(results, q)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStorageError("iterate questions", err)
	}

	for _, r := range results {
		q := r.(*types.Question)
		if err := hydrateLinkedIDs(qt.backend.db, types.ParentQuestion, q.QuestionID, &q.LinkedAnswerIDs); err != nil {
			return nil, err
		}
	}

	if results == nil {
		results = []any{}
	}
	return results, nil
}

// hydrateQuestion converts one SQLite row into a *types.Question.
// scan is either sql.Row.Scan or sql.Rows.Scan.
func hydrateQuestion(scan func(...any) error) (*types.Question, error) {
	var q types.Question
	var preferred sql.NullInt64
	var tokenJSON, createdAt, updatedAt string
	if err := scan(&q.QuestionID, &q.Title, &q.Body, &q.AuthorID, &preferred, &tokenJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if preferred.Valid {
		q.PreferredAnswerID = &preferred.Int64
	}
	if err := json.Unmarshal([]byte(tokenJSON), &q.TokenSet); err != nil {
		return nil, fmt.Errorf("parsing token_set: %w", err)
	}
	var err error
	if q.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if q.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}

// hydrateLinkedIDs loads the ordered child IDs for a parent into dst.
func hydrateLinkedIDs(db *sql.DB, parentKind string, parentID int64, dst *[]int64) error {
	rows, err := db.Query(
		"SELECT child_id FROM answer_links WHERE parent_kind = ? AND parent_id = ? ORDER BY position ASC, link_id ASC",
		parentKind, parentID,
	)
	if err != nil {
		return types.NewStorageError("query linked answers", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return types.NewStorageError("scan linked answer", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return types.NewStorageError("iterate linked answers", err)
	}

	*dst = ids
	return nil
}

// applyLimitOffset appends LIMIT/OFFSET clauses from the filter.
func applyLimitOffset(query string, filter types.Filter) (string, error) {
	if filter == nil {
		return query, nil
	}
	if v, ok := filter["limit"]; ok {
		limit, ok := filterInt64(v)
		if !ok {
			return "", types.ErrInvalidFilter
		}
		if limit > 0 {
			query += fmt.Sprintf(" LIMIT %d", limit)
		}
	}
	if v, ok := filter["offset"]; ok {
		offset, ok := filterInt64(v)
		if !ok {
			return "", types.ErrInvalidFilter
		}
		if offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", offset)
		}
	}
	return query, nil
}
