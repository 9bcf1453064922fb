// This file implements the answer_links table accessor: the adjacency
// relation between questions/answers and their linked answers.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var _ types.Table = (*linksTable)(nil)

// linksTable implements the Table interface for adjacency edges. Set is
// append-if-absent: creating an edge that already exists returns the
// existing edge's ID without modifying the parent's list, so no list can
// ever hold a duplicate entry (backed by the unique index on
// parent_kind, parent_id, child_id).
type linksTable struct {
	backend *Backend
}

// Get retrieves a link by ID.
func (lt *linksTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	row := lt.backend.db.QueryRow(
		"SELECT link_id, parent_kind, parent_id, child_id, position, created_at FROM answer_links WHERE link_id = ?",
		id,
	)
	l, err := hydrateLink(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, types.NewStorageError(fmt.Sprintf("get link %d", id), err)
	}
	return l, nil
}

// Set creates an adjacency edge. Only creation is supported (id must be
// zero); edges are immutable and removed rather than updated. Validates
// the parent kind, verifies both the parent and the child answer exist
// (ErrNotFound otherwise), and appends the child at the end of the
// parent's list. Creating an existing edge is a no-op that returns the
// existing link ID.
func (lt *linksTable) Set(id int64, data any) (int64, error) {
	l, ok := data.(*types.AnswerLink)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if id != 0 {
		return 0, types.ErrInvalidID
	}
	if !types.ValidParentKind(l.ParentKind) {
		return 0, types.ErrInvalidData
	}
	if l.ParentID <= 0 || l.ChildID <= 0 {
		return 0, types.ErrInvalidData
	}
	if l.ParentKind == types.ParentAnswer && l.ParentID == l.ChildID {
		return 0, types.ErrInvalidData
	}

	if err := lt.checkParentExists(l.ParentKind, l.ParentID); err != nil {
		return 0, err
	}
	if err := lt.checkAnswerExists(l.ChildID); err != nil {
		return 0, err
	}

	// Append-if-absent: an existing edge wins.
	var existingID int64
	err := lt.backend.db.QueryRow(
		"SELECT link_id FROM answer_links WHERE parent_kind = ? AND parent_id = ? AND child_id = ?",
		l.ParentKind, l.ParentID, l.ChildID,
	).Scan(&existingID)
	if err == nil {
		l.LinkID = existingID
		return existingID, nil
	}
	if err != sql.ErrNoRows {
		return 0, types.NewStorageError("check link existence", err)
	}

	tx, err := lt.backend.db.Begin()
	if err != nil {
		return 0, types.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRow(
		"SELECT COALESCE(MAX(position) + 1, 0) FROM answer_links WHERE parent_kind = ? AND parent_id = ?",
		l.ParentKind, l.ParentID,
	).Scan(&position)
	if err != nil {
		return 0, types.NewStorageError("compute link position", err)
	}

	l.Position = position
	l.CreatedAt = time.Now().UTC()

	res, err := tx.Exec(
		"INSERT INTO answer_links (parent_kind, parent_id, child_id, position, created_at) VALUES (?, ?, ?, ?, ?)",
		l.ParentKind, l.ParentID, l.ChildID, l.Position, formatTimestamp(l.CreatedAt),
	)
	if err != nil {
		return 0, types.NewStorageError("insert link", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, types.NewStorageError("read link id", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, types.NewStorageError("commit link", err)
	}

	l.LinkID = newID
	return newID, nil
}

// Delete removes a link by ID. The parent's remaining entries keep their
// relative order; positions are not compacted.
func (lt *linksTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	res, err := lt.backend.db.Exec("DELETE FROM answer_links WHERE link_id = ?", id)
	if err != nil {
		return types.NewStorageError("delete link", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.NewStorageError("delete link", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries links matching the filter, ordered by parent then
// position. Supported filter keys: parent_kind (string), parent_id,
// child_id (int64), limit, offset (int).
func (lt *linksTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT link_id, parent_kind, parent_id, child_id, position, created_at FROM answer_links"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["parent_kind"]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "parent_kind = ?")
			args = append(args, s)
		}
		if v, ok := filter["parent_id"]; ok {
			n, ok := filterInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "parent_id = ?")
			args = append(args, n)
		}
		if v, ok := filter["child_id"]; ok {
			n, ok := filterInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "child_id = ?")
			args = append(args, n)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY parent_kind ASC, parent_id ASC, position ASC"

	query, err := applyLimitOffset(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := lt.backend.db.Query(query, args...)
	if err != nil {
		return nil, types.NewStorageError("fetch links", err)
	}
	defer rows.Close()

	var results []any
	for rows.Next() {
		l, err := hydrateLink(rows.Scan)
		if err != nil {
			return nil, types.NewStorageError("hydrate link", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStorageError("iterate links", err)
	}

	if results == nil {
		results = []any{}
	}
	return results, nil
}

// checkParentExists verifies the parent entity is present.
func (lt *linksTable) checkParentExists(kind string, id int64) error {
	var query string
	switch kind {
	case types.ParentQuestion:
		query = "SELECT 1 FROM questions WHERE question_id = ?"
	case types.ParentAnswer:
		query = "SELECT 1 FROM answers WHERE answer_id = ?"
	default:
		return types.ErrInvalidData
	}

	var exists int
	err := lt.backend.db.QueryRow(query, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return types.NewStorageError("check parent existence", err)
	}
	return nil
}

// checkAnswerExists verifies the child answer is present.
func (lt *linksTable) checkAnswerExists(id int64) error {
	var exists int
	err := lt.backend.db.QueryRow("SELECT 1 FROM answers WHERE answer_id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return types.NewStorageError("check child existence", err)
	}
	return nil
}

// hydrateLink converts one SQLite row into a *types.AnswerLink.
func hydrateLink(scan func(...any) error) (*types.AnswerLink, error) {
	var l types.AnswerLink
	var createdAt string
	if err := scan(&l.LinkID, &l.ParentKind, &l.ParentID, &l.ChildID, &l.Position, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if l.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	return &l, nil
}
