// Tests for the adjacency (answer_links) table accessor.
package sqlite

import (
	"reflect"
	"testing"

	"github.com/mesh-intelligence/lore/pkg/types"
)

// seedQuestionWithAnswers creates one question and n standalone answers,
// returning their IDs. Nothing is linked.
func seedQuestionWithAnswers(t *testing.T, b *Backend, n int) (int64, []int64) {
	t.Helper()
	questions := questionsOf(t, b)
	answers := answersOf(t, b)

	qid, err := questions.Set(0, &types.Question{Title: "seed", Body: "seed body", AuthorID: 1})
	if err != nil {
		t.Fatalf("seed question failed: %v", err)
	}
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		aid, err := answers.Set(0, &types.Answer{Text: "answer", AuthorID: 2})
		if err != nil {
			t.Fatalf("seed answer failed: %v", err)
		}
		ids = append(ids, aid)
	}
	return qid, ids
}

func link(t *testing.T, b *Backend, kind string, parentID, childID int64) int64 {
	t.Helper()
	links := linksOf(t, b)
	id, err := links.Set(0, &types.AnswerLink{ParentKind: kind, ParentID: parentID, ChildID: childID})
	if err != nil {
		t.Fatalf("link %s/%d -> %d failed: %v", kind, parentID, childID, err)
	}
	return id
}

func TestLinksTable_AppendIfAbsent(t *testing.T) {
	b := newTestBackend(t)
	questions := questionsOf(t, b)
	qid, aids := seedQuestionWithAnswers(t, b, 1)

	first := link(t, b, types.ParentQuestion, qid, aids[0])
	second := link(t, b, types.ParentQuestion, qid, aids[0])
	if first != second {
		t.Errorf("duplicate add returned new link ID %d, want existing %d", second, first)
	}

	entity, _ := questions.Get(qid)
	q := entity.(*types.Question)
	if !reflect.DeepEqual(q.LinkedAnswerIDs, []int64{aids[0]}) {
		t.Errorf("linked list = %v, want exactly one entry", q.LinkedAnswerIDs)
	}
}

func TestLinksTable_OrderPreserved(t *testing.T) {
	b := newTestBackend(t)
	questions := questionsOf(t, b)
	qid, aids := seedQuestionWithAnswers(t, b, 3)

	// Link out of creation order; list order must follow link order.
	link(t, b, types.ParentQuestion, qid, aids[2])
	link(t, b, types.ParentQuestion, qid, aids[0])
	link(t, b, types.ParentQuestion, qid, aids[1])

	entity, _ := questions.Get(qid)
	q := entity.(*types.Question)
	want := []int64{aids[2], aids[0], aids[1]}
	if !reflect.DeepEqual(q.LinkedAnswerIDs, want) {
		t.Errorf("linked list = %v, want %v", q.LinkedAnswerIDs, want)
	}
}

func TestLinksTable_RemoveKeepsOrder(t *testing.T) {
	b := newTestBackend(t)
	questions := questionsOf(t, b)
	links := linksOf(t, b)
	qid, aids := seedQuestionWithAnswers(t, b, 3)

	link(t, b, types.ParentQuestion, qid, aids[0])
	mid := link(t, b, types.ParentQuestion, qid, aids[1])
	link(t, b, types.ParentQuestion, qid, aids[2])

	if err := links.Delete(mid); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	entity, _ := questions.Get(qid)
	q := entity.(*types.Question)
	want := []int64{aids[0], aids[2]}
	if !reflect.DeepEqual(q.LinkedAnswerIDs, want) {
		t.Errorf("linked list after remove = %v, want %v", q.LinkedAnswerIDs, want)
	}

	if err := links.Delete(mid); err != types.ErrNotFound {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestLinksTable_AnswerThreading(t *testing.T) {
	b := newTestBackend(t)
	answers := answersOf(t, b)
	_, aids := seedQuestionWithAnswers(t, b, 3)

	link(t, b, types.ParentAnswer, aids[0], aids[1])
	link(t, b, types.ParentAnswer, aids[0], aids[2])

	entity, _ := answers.Get(aids[0])
	a := entity.(*types.Answer)
	want := []int64{aids[1], aids[2]}
	if !reflect.DeepEqual(a.LinkedAnswerIDs, want) {
		t.Errorf("threaded list = %v, want %v", a.LinkedAnswerIDs, want)
	}
}

func TestLinksTable_Validation(t *testing.T) {
	b := newTestBackend(t)
	links := linksOf(t, b)
	qid, aids := seedQuestionWithAnswers(t, b, 1)

	cases := []struct {
		name string
		link *types.AnswerLink
		want error
	}{
		{
			name: "unknown parent kind",
			link: &types.AnswerLink{ParentKind: "review", ParentID: qid, ChildID: aids[0]},
			want: types.ErrInvalidData,
		},
		{
			name: "self link rejected",
			link: &types.AnswerLink{ParentKind: types.ParentAnswer, ParentID: aids[0], ChildID: aids[0]},
			want: types.ErrInvalidData,
		},
		{
			name: "missing parent question",
			link: &types.AnswerLink{ParentKind: types.ParentQuestion, ParentID: 9999, ChildID: aids[0]},
			want: types.ErrNotFound,
		},
		{
			name: "missing child answer",
			link: &types.AnswerLink{ParentKind: types.ParentQuestion, ParentID: qid, ChildID: 9999},
			want: types.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := links.Set(0, tc.link); err != tc.want {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLinksTable_Fetch(t *testing.T) {
	b := newTestBackend(t)
	links := linksOf(t, b)
	qid, aids := seedQuestionWithAnswers(t, b, 2)

	link(t, b, types.ParentQuestion, qid, aids[0])
	link(t, b, types.ParentQuestion, qid, aids[1])
	link(t, b, types.ParentAnswer, aids[0], aids[1])

	byParent, err := links.Fetch(types.Filter{"parent_kind": types.ParentQuestion, "parent_id": qid})
	if err != nil {
		t.Fatalf("Fetch by parent failed: %v", err)
	}
	if len(byParent) != 2 {
		t.Errorf("expected 2 links for question, got %d", len(byParent))
	}

	byChild, err := links.Fetch(types.Filter{"child_id": aids[1]})
	if err != nil {
		t.Fatalf("Fetch by child failed: %v", err)
	}
	if len(byChild) != 2 {
		t.Errorf("expected answer %d in 2 lists, got %d", aids[1], len(byChild))
	}
}
