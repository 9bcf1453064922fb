// Package qa implements the relation-store service for the Lore Q&A
// core: question and answer lifecycle, the adjacency relation between
// them, duplicate guarding, similarity search, and reviewer
// aggregation. Storage goes through the types.Store interface; the
// acting user is always an explicit parameter, never ambient state.
package qa

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/lore/internal/search"
	"github.com/mesh-intelligence/lore/pkg/types"
)

// Lock kinds for keyLock. Trust lists are locked by truster ID.
const (
	lockQuestion = "question"
	lockAnswer   = "answer"
	lockReview   = "review"
	lockTrust    = "trust"
)

// Service exposes the Q&A core operations over an attached Store.
type Service struct {
	store types.Store
	dir   types.Directory
	log   *logrus.Logger
	locks *keyLock
}

// New creates a Service over the given store and user directory.
// A nil logger gets a quiet default (warnings and up).
func New(store types.Store, dir types.Directory, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Service{
		store: store,
		dir:   dir,
		log:   log,
		locks: newKeyLock(),
	}
}

// opLogger returns a log entry carrying the operation name and a fresh
// correlation ID.
func (s *Service) opLogger(op string) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"op":         op,
		"request_id": requestID(),
	})
}

// requestID generates a UUID v7 correlation ID, falling back to v4 if
// v7 generation fails.
func requestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (s *Service) questions() (types.Table, error) {
	return s.store.GetTable(types.QuestionsTable)
}

func (s *Service) answers() (types.Table, error) {
	return s.store.GetTable(types.AnswersTable)
}

func (s *Service) links() (types.Table, error) {
	return s.store.GetTable(types.LinksTable)
}

func (s *Service) reviews() (types.Table, error) {
	return s.store.GetTable(types.ReviewsTable)
}

func (s *Service) trust() (types.Table, error) {
	return s.store.GetTable(types.TrustTable)
}

// AskQuestion creates a new question. The token set is computed from
// title and body, the linked-answer list starts empty, and no preferred
// answer is set.
func (s *Service) AskQuestion(title, body string, authorID int64) (*types.Question, error) {
	questions, err := s.questions()
	if err != nil {
		return nil, err
	}

	q := &types.Question{Title: title, Body: body, AuthorID: authorID}
	id, err := questions.Set(0, q)
	if err != nil {
		return nil, err
	}

	s.opLogger("ask_question").WithFields(logrus.Fields{
		"question_id": id,
		"author_id":   authorID,
	}).Info("question created")
	return q, nil
}

// GetQuestion retrieves a question with its linked answer IDs.
func (s *Service) GetQuestion(id int64) (*types.Question, error) {
	questions, err := s.questions()
	if err != nil {
		return nil, err
	}
	entity, err := questions.Get(id)
	if err != nil {
		return nil, err
	}
	return entity.(*types.Question), nil
}

// EditQuestion replaces a question's title and body; the stored token
// set is recomputed in the same write.
func (s *Service) EditQuestion(id int64, title, body string) (*types.Question, error) {
	questions, err := s.questions()
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(lockQuestion, id)
	defer unlock()

	entity, err := questions.Get(id)
	if err != nil {
		return nil, err
	}
	q := entity.(*types.Question)
	if err := q.Edit(title, body); err != nil {
		return nil, err
	}
	if _, err := questions.Set(id, q); err != nil {
		return nil, err
	}
	return q, nil
}

// GetAnswer retrieves an answer with its threaded follow-up IDs.
func (s *Service) GetAnswer(id int64) (*types.Answer, error) {
	answers, err := s.answers()
	if err != nil {
		return nil, err
	}
	entity, err := answers.Get(id)
	if err != nil {
		return nil, err
	}
	return entity.(*types.Answer), nil
}

// EditAnswer replaces an answer's text.
func (s *Service) EditAnswer(id int64, text string) (*types.Answer, error) {
	answers, err := s.answers()
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(lockAnswer, id)
	defer unlock()

	entity, err := answers.Get(id)
	if err != nil {
		return nil, err
	}
	a := entity.(*types.Answer)
	if err := a.Edit(text); err != nil {
		return nil, err
	}
	if _, err := answers.Set(id, a); err != nil {
		return nil, err
	}
	return a, nil
}

// AnswerQuestion creates an answer under a question. The duplicate
// guard runs first: if the question already has a linked answer with
// exactly the candidate text (candidate whitespace-trimmed), nothing is
// inserted and ErrDuplicateAnswer is returned. That outcome is a
// business result, not a storage failure. On success the new answer is
// appended to the question's linked-answer list.
func (s *Service) AnswerQuestion(text string, authorID, questionID int64) (*types.Answer, error) {
	questions, err := s.questions()
	if err != nil {
		return nil, err
	}
	answers, err := s.answers()
	if err != nil {
		return nil, err
	}
	links, err := s.links()
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(lockQuestion, questionID)
	defer unlock()

	entity, err := questions.Get(questionID)
	if err != nil {
		return nil, err
	}
	q := entity.(*types.Question)

	dup, err := s.isDuplicateOf(q, text)
	if err != nil {
		return nil, err
	}
	if dup {
		s.opLogger("answer_question").WithField("question_id", questionID).
			Info("duplicate answer text, not inserted")
		return nil, types.ErrDuplicateAnswer
	}

	a := &types.Answer{Text: text, AuthorID: authorID}
	answerID, err := answers.Set(0, a)
	if err != nil {
		return nil, err
	}

	link := &types.AnswerLink{
		ParentKind: types.ParentQuestion,
		ParentID:   questionID,
		ChildID:    answerID,
	}
	if _, err := links.Set(0, link); err != nil {
		// Leave no partial state: remove the just-created answer.
		if delErr := answers.Delete(answerID); delErr != nil {
			s.opLogger("answer_question").WithFields(logrus.Fields{
				"answer_id": answerID,
			}).WithError(delErr).Warn("could not roll back orphan answer")
		}
		return nil, err
	}

	s.opLogger("answer_question").WithFields(logrus.Fields{
		"question_id": questionID,
		"answer_id":   answerID,
		"author_id":   authorID,
	}).Info("answer created")
	return a, nil
}

// ReplyToAnswer creates an answer threaded under another answer and
// appends it to the parent's linked-answer list. Unlike
// AnswerQuestion, no duplicate guard is applied; threaded follow-ups
// accept repeated text.
func (s *Service) ReplyToAnswer(text string, authorID, parentAnswerID int64) (*types.Answer, error) {
	answers, err := s.answers()
	if err != nil {
		return nil, err
	}
	links, err := s.links()
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(lockAnswer, parentAnswerID)
	defer unlock()

	if _, err := answers.Get(parentAnswerID); err != nil {
		return nil, err
	}

	a := &types.Answer{Text: text, AuthorID: authorID}
	answerID, err := answers.Set(0, a)
	if err != nil {
		return nil, err
	}

	link := &types.AnswerLink{
		ParentKind: types.ParentAnswer,
		ParentID:   parentAnswerID,
		ChildID:    answerID,
	}
	if _, err := links.Set(0, link); err != nil {
		if delErr := answers.Delete(answerID); delErr != nil {
			s.opLogger("reply_to_answer").WithFields(logrus.Fields{
				"answer_id": answerID,
			}).WithError(delErr).Warn("could not roll back orphan answer")
		}
		return nil, err
	}

	s.opLogger("reply_to_answer").WithFields(logrus.Fields{
		"parent_answer_id": parentAnswerID,
		"answer_id":        answerID,
		"author_id":        authorID,
	}).Info("follow-up answer created")
	return a, nil
}

// AddRelation appends childID to the parent's linked-answer list.
// Idempotent: adding an existing relation changes nothing and the list
// never gains a duplicate entry. Returns ErrNotFound if either side is
// missing.
func (s *Service) AddRelation(parentKind string, parentID, childID int64) error {
	if !types.ValidParentKind(parentKind) {
		return types.ErrInvalidData
	}
	links, err := s.links()
	if err != nil {
		return err
	}

	unlock := s.locks.lock(parentKind, parentID)
	defer unlock()

	link := &types.AnswerLink{ParentKind: parentKind, ParentID: parentID, ChildID: childID}
	_, err = links.Set(0, link)
	return err
}

// RemoveRelation removes childID from the parent's linked-answer list.
// Reports false, without error, when the relation was not present; the
// list is left unchanged.
func (s *Service) RemoveRelation(parentKind string, parentID, childID int64) (bool, error) {
	if !types.ValidParentKind(parentKind) {
		return false, types.ErrInvalidData
	}
	links, err := s.links()
	if err != nil {
		return false, err
	}

	unlock := s.locks.lock(parentKind, parentID)
	defer unlock()

	matches, err := links.Fetch(types.Filter{
		"parent_kind": parentKind,
		"parent_id":   parentID,
		"child_id":    childID,
	})
	if err != nil {
		return false, err
	}
	if len(matches) == 0 {
		return false, nil
	}

	link := matches[0].(*types.AnswerLink)
	if err := links.Delete(link.LinkID); err != nil {
		return false, err
	}
	return true, nil
}

// CascadeResult reports the outcome of a question deletion: which
// linked answers were deleted, and which failed with what error. The
// cascade is best effort per child; one failing child does not stop
// the others or the question deletion itself.
type CascadeResult struct {
	DeletedAnswerIDs []int64
	Failed           map[int64]error
}

// PartialFailure reports whether any child deletion failed.
func (r *CascadeResult) PartialFailure() bool {
	return len(r.Failed) > 0
}

// DeleteQuestion removes a question and cascades one level into its
// directly linked answers. Follow-up answers threaded under those
// answers are not deleted; only their link rows disappear with their
// parent. Child failures are logged and collected, and the question
// row is removed regardless. Returns ErrNotFound if the question does
// not exist.
func (s *Service) DeleteQuestion(id int64) (*CascadeResult, error) {
	questions, err := s.questions()
	if err != nil {
		return nil, err
	}
	answers, err := s.answers()
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(lockQuestion, id)
	defer unlock()

	entity, err := questions.Get(id)
	if err != nil {
		return nil, err
	}
	q := entity.(*types.Question)

	logger := s.opLogger("delete_question").WithField("question_id", id)

	result := &CascadeResult{Failed: make(map[int64]error)}
	for _, answerID := range q.LinkedAnswerIDs {
		if err := answers.Delete(answerID); err != nil {
			if err == types.ErrNotFound {
				// Already gone; nothing to report.
				continue
			}
			logger.WithField("answer_id", answerID).WithError(err).
				Warn("cascade could not delete linked answer")
			result.Failed[answerID] = err
			continue
		}
		result.DeletedAnswerIDs = append(result.DeletedAnswerIDs, answerID)
	}

	if err := questions.Delete(id); err != nil {
		return result, err
	}

	logger.WithFields(logrus.Fields{
		"deleted_answers": len(result.DeletedAnswerIDs),
		"failed_answers":  len(result.Failed),
	}).Info("question deleted")
	return result, nil
}

// DeleteAnswer removes a single answer. The answer disappears from
// every parent list it was linked into, and link rows to its own
// follow-ups are removed, but the follow-up answers themselves are
// kept. Returns ErrNotFound if the answer does not exist.
func (s *Service) DeleteAnswer(id int64) error {
	answers, err := s.answers()
	if err != nil {
		return err
	}

	unlock := s.locks.lock(lockAnswer, id)
	defer unlock()

	if err := answers.Delete(id); err != nil {
		return err
	}
	s.opLogger("delete_answer").WithField("answer_id", id).Info("answer deleted")
	return nil
}

// SetPreferredAnswer marks answerID as the question's preferred answer.
// The answer must be linked to the question; otherwise ErrNotLinked.
func (s *Service) SetPreferredAnswer(questionID, answerID int64) error {
	questions, err := s.questions()
	if err != nil {
		return err
	}

	unlock := s.locks.lock(lockQuestion, questionID)
	defer unlock()

	entity, err := questions.Get(questionID)
	if err != nil {
		return err
	}
	q := entity.(*types.Question)
	if err := q.SetPreferred(answerID); err != nil {
		return err
	}
	_, err = questions.Set(questionID, q)
	return err
}

// ClearPreferredAnswer unsets the question's preferred answer.
func (s *Service) ClearPreferredAnswer(questionID int64) error {
	questions, err := s.questions()
	if err != nil {
		return err
	}

	unlock := s.locks.lock(lockQuestion, questionID)
	defer unlock()

	entity, err := questions.Get(questionID)
	if err != nil {
		return err
	}
	q := entity.(*types.Question)
	q.ClearPreferred()
	_, err = questions.Set(questionID, q)
	return err
}

// Search ranks all stored questions by token overlap with the query,
// most similar first. The corpus is read as a snapshot; concurrent
// writes are not blocked and a result stale by one write is acceptable.
func (s *Service) Search(query string) ([]*types.Question, error) {
	questions, err := s.questions()
	if err != nil {
		return nil, err
	}

	entities, err := questions.Fetch(nil)
	if err != nil {
		return nil, err
	}
	corpus := make([]*types.Question, 0, len(entities))
	for _, e := range entities {
		corpus = append(corpus, e.(*types.Question))
	}

	return search.Rank(query, corpus), nil
}

// AuthorName resolves a user ID to a display name. An unresolvable ID
// yields the generic label; directory failures never propagate to the
// caller.
func (s *Service) AuthorName(userID int64) string {
	if s.dir == nil {
		return types.AnonymousName
	}
	u, err := s.dir.GetUser(userID)
	if err != nil {
		return types.AnonymousName
	}
	return u.Name
}
