// Tests for the trust_lists and reviews table accessors.
package sqlite

import (
	"testing"

	"github.com/mesh-intelligence/lore/pkg/types"
)

func trustOf(t *testing.T, b *Backend) types.Table {
	t.Helper()
	tbl, err := b.GetTable(types.TrustTable)
	if err != nil {
		t.Fatalf("GetTable(trust_lists) failed: %v", err)
	}
	return tbl
}

func reviewsOf(t *testing.T, b *Backend) types.Table {
	t.Helper()
	tbl, err := b.GetTable(types.ReviewsTable)
	if err != nil {
		t.Fatalf("GetTable(reviews) failed: %v", err)
	}
	return tbl
}

func TestTrustTable_RoundTrip(t *testing.T) {
	b := newTestBackend(t)
	trust := trustOf(t, b)

	tl := types.NewTrustList(5)
	tl.Set(10, 7)
	tl.Set(11, 3)

	id, err := trust.Set(0, tl)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if id != 5 {
		t.Errorf("trust list keyed by truster ID, got %d", id)
	}

	entity, err := trust.Get(5)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got := entity.(*types.TrustList)
	if len(got.Weights) != 2 || got.Weights[10] != 7 || got.Weights[11] != 3 {
		t.Errorf("weights = %v", got.Weights)
	}
}

func TestTrustTable_SetReplacesWholeList(t *testing.T) {
	b := newTestBackend(t)
	trust := trustOf(t, b)

	tl := types.NewTrustList(5)
	tl.Set(10, 7)
	tl.Set(11, 3)
	if _, err := trust.Set(0, tl); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	tl.Remove(11)
	tl.Set(12, 9)
	if _, err := trust.Set(0, tl); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	entity, _ := trust.Get(5)
	got := entity.(*types.TrustList)
	if _, ok := got.Weights[11]; ok {
		t.Error("removed entry survived the replace")
	}
	if got.Weights[10] != 7 || got.Weights[12] != 9 {
		t.Errorf("weights = %v", got.Weights)
	}
}

func TestTrustTable_MissingTruster(t *testing.T) {
	b := newTestBackend(t)
	trust := trustOf(t, b)

	if _, err := trust.Get(404); err != types.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := trust.Delete(404); err != types.ErrNotFound {
		t.Errorf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestTrustTable_RejectsOutOfRangeWeights(t *testing.T) {
	b := newTestBackend(t)
	trust := trustOf(t, b)

	tl := types.NewTrustList(5)
	tl.Weights[10] = 99 // bypass TrustList.Set validation

	if _, err := trust.Set(0, tl); err != types.ErrInvalidWeight {
		t.Errorf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestReviewsTable_RoundTrip(t *testing.T) {
	b := newTestBackend(t)
	reviews := reviewsOf(t, b)

	id, err := reviews.Set(0, &types.Review{
		ForQuestion: true,
		RelatedID:   1,
		Text:        "well researched",
		AuthorID:    9,
	})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entity, err := reviews.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	r := entity.(*types.Review)
	if !r.ForQuestion || r.RelatedID != 1 || r.VoteTotal != 0 {
		t.Errorf("round-trip mismatch: %+v", r)
	}

	r.Upvote()
	r.Upvote()
	if _, err := reviews.Set(id, r); err != nil {
		t.Fatalf("vote persist failed: %v", err)
	}
	entity, _ = reviews.Get(id)
	if got := entity.(*types.Review).VoteTotal; got != 2 {
		t.Errorf("vote total = %d, want 2", got)
	}
}

func TestReviewsTable_FetchByAuthor(t *testing.T) {
	b := newTestBackend(t)
	reviews := reviewsOf(t, b)

	for i, votes := range []int{5, 3} {
		r := &types.Review{ForQuestion: i == 0, RelatedID: int64(i + 1), Text: "r", AuthorID: 9, VoteTotal: votes}
		if _, err := reviews.Set(0, r); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	other := &types.Review{ForQuestion: true, RelatedID: 1, Text: "r", AuthorID: 8}
	if _, err := reviews.Set(0, other); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mine, err := reviews.Fetch(types.Filter{"author_id": int64(9)})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 reviews by author 9, got %d", len(mine))
	}
	total := 0
	for _, e := range mine {
		total += e.(*types.Review).VoteTotal
	}
	if total != 8 {
		t.Errorf("vote totals sum = %d, want 8", total)
	}
}
