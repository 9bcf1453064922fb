// This file implements the reviews table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var _ types.Table = (*reviewsTable)(nil)

// reviewsTable implements the Table interface for the review entity.
type reviewsTable struct {
	backend *Backend
}

// Get retrieves a review by ID.
func (rt *reviewsTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	row := rt.backend.db.QueryRow(
		"SELECT review_id, for_question, related_id, text, author_id, vote_total, created_at, updated_at FROM reviews WHERE review_id = ?",
		id,
	)
	r, err := hydrateReview(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, types.NewStorageError(fmt.Sprintf("get review %d", id), err)
	}
	return r, nil
}

// Set persists a review. When id is zero a new review is created with a
// zero vote total unless the caller supplied one. Updates persist text
// and vote total changes.
func (rt *reviewsTable) Set(id int64, data any) (int64, error) {
	r, ok := data.(*types.Review)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if r.Text == "" {
		return 0, types.ErrInvalidText
	}
	if r.AuthorID <= 0 {
		return 0, types.ErrInvalidAuthor
	}
	if r.RelatedID <= 0 {
		return 0, types.ErrInvalidData
	}

	now := time.Now().UTC()

	if id == 0 {
		r.CreatedAt = now
		r.UpdatedAt = now

		res, err := rt.backend.db.Exec(
			"INSERT INTO reviews (for_question, related_id, text, author_id, vote_total, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			r.ForQuestion, r.RelatedID, r.Text, r.AuthorID, r.VoteTotal,
			formatTimestamp(r.CreatedAt), formatTimestamp(r.UpdatedAt),
		)
		if err != nil {
			return 0, types.NewStorageError("insert review", err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, types.NewStorageError("read review id", err)
		}
		r.ReviewID = newID
		return newID, nil
	}

	if id <= 0 {
		return 0, types.ErrInvalidID
	}
	res, err := rt.backend.db.Exec(
		"UPDATE reviews SET text = ?, vote_total = ?, updated_at = ? WHERE review_id = ?",
		r.Text, r.VoteTotal, formatTimestamp(r.UpdatedAt), id,
	)
	if err != nil {
		return 0, types.NewStorageError("update review", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, types.NewStorageError("update review", err)
	}
	if n == 0 {
		return 0, types.ErrNotFound
	}
	r.ReviewID = id
	return id, nil
}

// Delete removes a review by ID.
func (rt *reviewsTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	res, err := rt.backend.db.Exec("DELETE FROM reviews WHERE review_id = ?", id)
	if err != nil {
		return types.NewStorageError("delete review", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.NewStorageError("delete review", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries reviews matching the filter, ordered by ascending ID.
// Supported filter keys: author_id, related_id (int64), for_question
// (bool), limit, offset (int).
func (rt *reviewsTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT review_id, for_question, related_id, text, author_id, vote_total, created_at, updated_at FROM reviews"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["author_id"]; ok {
			n, ok := filterInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "author_id = ?")
			args = append(args, n)
		}
		if v, ok := filter["related_id"]; ok {
			n, ok := filterInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "related_id = ?")
			args = append(args, n)
		}
		if v, ok := filter["for_question"]; ok {
			b, ok := v.(bool)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "for_question = ?")
			args = append(args, b)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY review_id ASC"

	query, err := applyLimitOffset(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := rt.backend.db.Query(query, args...)
	if err != nil {
		return nil, types.NewStorageError("fetch reviews", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		r, err := hydrateReview(rows.Scan)
		if err != nil {
			return nil, types.NewStorageError("hydrate review", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStorageError("iterate reviews", err)
	}

	if results == nil {
		results = []any{}
	}
	return results, nil
}

// hydrateReview converts one SQLite row into a *types.Review.
func hydrateReview(scan func(...any) error) (*types.Review, error) {
	var r types.Review
	var createdAt, updatedAt string
	if err := scan(&r.ReviewID, &r.ForQuestion, &r.RelatedID, &r.Text, &r.AuthorID, &r.VoteTotal, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if r.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if r.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}
