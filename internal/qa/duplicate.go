package qa

import (
	"strings"

	"github.com/mesh-intelligence/lore/pkg/types"
)

// IsDuplicateAnswer reports whether candidate text would duplicate an
// answer already linked to the question. The candidate is
// whitespace-trimmed before comparison; stored answer text is compared
// as-is, so an existing answer with trailing whitespace does not block
// a trimmed candidate. A missing question is not an error here: no
// question means no linked answers, hence no duplicate.
func (s *Service) IsDuplicateAnswer(questionID int64, text string) (bool, error) {
	questions, err := s.questions()
	if err != nil {
		return false, err
	}

	entity, err := questions.Get(questionID)
	if err != nil {
		if err == types.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return s.isDuplicateOf(entity.(*types.Question), text)
}

// isDuplicateOf checks candidate text against the answers linked to an
// already loaded question.
func (s *Service) isDuplicateOf(q *types.Question, text string) (bool, error) {
	if len(q.LinkedAnswerIDs) == 0 {
		return false, nil
	}
	answers, err := s.answers()
	if err != nil {
		return false, err
	}

	candidate := strings.TrimSpace(text)
	for _, answerID := range q.LinkedAnswerIDs {
		entity, err := answers.Get(answerID)
		if err != nil {
			if err == types.ErrNotFound {
				continue
			}
			return false, err
		}
		if entity.(*types.Answer).Text == candidate {
			return true, nil
		}
	}
	return false, nil
}
