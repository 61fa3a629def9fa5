package collector

import (
	"strconv"
	"strings"
)

// Session is the forward-only questionnaire state machine: an index into the
// fixed question list plus the answers accumulated so far. There is no way
// to step backwards or edit a recorded answer.
type Session struct {
	Index   int
	Answers map[string]any
}

func NewSession() *Session {
	return &Session{Answers: make(map[string]any)}
}

// Restore rebuilds a session from persisted state.
func Restore(index int, answers map[string]any) *Session {
	if answers == nil {
		answers = make(map[string]any)
	}
	if index < 0 {
		index = 0
	}
	return &Session{Index: index, Answers: answers}
}

func (s *Session) Completed() bool {
	return s.Index >= len(questions)
}

// Current returns the active question, or nil once the flow is complete.
func (s *Session) Current() *Question {
	if s.Completed() {
		return nil
	}
	return &questions[s.Index]
}

// Progress is the percentage shown alongside the active question.
func (s *Session) Progress() int {
	if s.Completed() {
		return 100
	}
	return (s.Index + 1) * 100 / len(questions)
}

// Answer validates raw input against the active question. On a validation
// error the session is left untouched and the error is returned. On success
// the coerced value is recorded and the index advances; the returned
// question is the next one, or nil when the flow just completed.
func (s *Session) Answer(raw string) (*Question, error) {
	q := s.Current()
	if q == nil {
		return nil, nil
	}

	if q.Validate != nil {
		if err := q.Validate(raw); err != nil {
			return nil, err
		}
	}

	s.Answers[q.Key] = coerce(q, raw)
	s.Index++
	return s.Current(), nil
}

func coerce(q *Question, raw string) any {
	trimmed := strings.TrimSpace(raw)
	if q.Kind != KindNumber {
		return trimmed
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	return trimmed
}
