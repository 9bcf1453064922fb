// This file implements the trust_lists table accessor. A trust list is
// keyed by its owner's user ID (the truster), not by an assigned ID, and
// is persisted as one trust_entries row per trusted reviewer.
package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/lore/pkg/types"
)

var _ types.Table = (*trustTable)(nil)

// trustTable implements the Table interface for per-user trust lists.
// Set replaces the truster's entire entry set in a single transaction,
// so two concurrent writers to the same list can never interleave into
// a torn mapping; the later commit wins whole.
type trustTable struct {
	backend *Backend
}

// Get retrieves the trust list owned by trusterID. Returns ErrNotFound
// when the truster has no entries.
func (tt *trustTable) Get(id int64) (any, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	rows, err := tt.backend.db.Query(
		"SELECT reviewer_id, weight, updated_at FROM trust_entries WHERE truster_id = ? ORDER BY reviewer_id ASC",
		id,
	)
	if err != nil {
		return nil, types.NewStorageError(fmt.Sprintf("get trust list %d", id), err)
	}
	defer rows.Close()

	tl := types.NewTrustList(id)
	found := false
	for rows.Next() {
		var reviewerID int64
		var weight int
		var updatedAt string
		if err := rows.Scan(&reviewerID, &weight, &updatedAt); err != nil {
			return nil, types.NewStorageError("scan trust entry", err)
		}
		tl.Weights[reviewerID] = weight
		ts, err := parseTimestamp("updated_at", updatedAt)
		if err != nil {
			return nil, err
		}
		if ts.After(tl.UpdatedAt) {
			tl.UpdatedAt = ts
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStorageError("iterate trust entries", err)
	}

	if !found {
		return nil, types.ErrNotFound
	}
	return tl, nil
}

// Set persists a trust list. The ID is the truster's user ID; passing
// zero uses TrusterID from the data. All existing entries for the
// truster are replaced by the list's current weights in one transaction.
func (tt *trustTable) Set(id int64, data any) (int64, error) {
	tl, ok := data.(*types.TrustList)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if id == 0 {
		id = tl.TrusterID
	}
	if id <= 0 {
		return 0, types.ErrInvalidID
	}
	for _, w := range tl.Weights {
		if w < types.MinTrustWeight || w > types.MaxTrustWeight {
			return 0, types.ErrInvalidWeight
		}
	}

	now := time.Now().UTC()

	tx, err := tt.backend.db.Begin()
	if err != nil {
		return 0, types.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM trust_entries WHERE truster_id = ?", id); err != nil {
		return 0, types.NewStorageError("clear trust entries", err)
	}
	for reviewerID, weight := range tl.Weights {
		if _, err := tx.Exec(
			"INSERT INTO trust_entries (truster_id, reviewer_id, weight, updated_at) VALUES (?, ?, ?, ?)",
			id, reviewerID, weight, formatTimestamp(now),
		); err != nil {
			return 0, types.NewStorageError("insert trust entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, types.NewStorageError("commit trust list", err)
	}

	tl.TrusterID = id
	return id, nil
}

// Delete removes every entry owned by trusterID. Returns ErrNotFound
// when the truster had no entries.
func (tt *trustTable) Delete(id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}

	res, err := tt.backend.db.Exec("DELETE FROM trust_entries WHERE truster_id = ?", id)
	if err != nil {
		return types.NewStorageError("delete trust list", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.NewStorageError("delete trust list", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries trust lists matching the filter, one per truster,
// ordered by ascending truster ID. Supported filter keys: reviewer_id
// (int64) selecting lists that contain the reviewer.
func (tt *trustTable) Fetch(filter types.Filter) ([]any, error) {
	query := "SELECT truster_id, reviewer_id, weight, updated_at FROM trust_entries"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["reviewer_id"]; ok {
			n, ok := filterInt64(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions,
				"truster_id IN (SELECT truster_id FROM trust_entries WHERE reviewer_id = ?)")
			args = append(args, n)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY truster_id ASC, reviewer_id ASC"

	rows, err := tt.backend.db.Query(query, args...)
	if err != nil {
		return nil, types.NewStorageError("fetch trust entries", err)
	}
	defer rows.Close()

	var results []any
	var current *types.TrustList
	for rows.Next() {
		var trusterID, reviewerID int64
		var weight int
		var updatedAt string
		if err := rows.Scan(&trusterID, &reviewerID, &weight, &updatedAt); err != nil {
			return nil, types.NewStorageError("scan trust entry", err)
		}
		if current == nil || current.TrusterID != trusterID {
			current = types.NewTrustList(trusterID)
			results = append(results, current)
		}
		current.Weights[reviewerID] = weight
		ts, err := parseTimestamp("updated_at", updatedAt)
		if err != nil {
			return nil, err
		}
		if ts.After(current.UpdatedAt) {
			current.UpdatedAt = ts
		}
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStorageError("iterate trust entries", err)
	}

	if results == nil {
		results = []any{}
	}
	return results, nil
}
