package assessment

import (
	"fmt"

	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

// Session walks one test question by question. It starts at the first
// question and reaches its result once every question has an answer; only
// Reset leaves the result state.
type Session struct {
	test    *Test
	answers []Archetype
	result  *ResultDetail
}

func NewSession(t *Test) *Session {
	return &Session{test: t}
}

// Index is the position of the question awaiting an answer.
func (s *Session) Index() int {
	return len(s.answers)
}

func (s *Session) Done() bool {
	return s.result != nil
}

// Current returns the question awaiting an answer, or nil once done.
func (s *Session) Current() *Question {
	if s.Done() || s.Index() >= len(s.test.Questions) {
		return nil
	}
	return &s.test.Questions[s.Index()]
}

// Answer picks the answer at position choice of the current question.
func (s *Session) Answer(choice int) error {
	q := s.Current()
	if q == nil {
		return fmt.Errorf("%w: test already finished", ErrInvalidAnswers)
	}
	if choice < 0 || choice >= len(q.Answers) {
		return fmt.Errorf("%w: question %d has no answer %d", ErrInvalidAnswers, q.ID, choice)
	}

	s.answers = append(s.answers, q.Answers[choice].Archetype)
	if len(s.answers) == len(s.test.Questions) {
		s.resolve()
	}
	return nil
}

func (s *Session) resolve() {
	tally := util.NewTally[Archetype]()
	for _, a := range s.answers {
		tally.Add(a)
	}
	winner, _, _ := tally.MostFrequent()
	if detail, ok := s.test.Result(winner); ok {
		s.result = detail
	}
}

func (s *Session) Result() (*ResultDetail, bool) {
	return s.result, s.result != nil
}

func (s *Session) Reset() {
	s.answers = nil
	s.result = nil
}
