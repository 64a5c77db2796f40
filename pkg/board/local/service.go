package local

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"qboard/internal/question"
	"qboard/pkg/board"
)

// Service implements board.Service with an in-memory store.
type Service struct {
	mu        sync.Mutex
	questions []board.Question
	newID     func() string
}

// New returns an empty in-memory service.
func New() *Service {
	return &Service{newID: uuid.NewString}
}

// NewFromSeedFile loads a question seed from disk and returns a service
// preloaded with its entries.
func NewFromSeedFile(path string) (*Service, error) {
	seed, err := question.LoadSeed(path)
	if err != nil {
		return nil, err
	}
	svc := New()
	for _, entry := range seed.Questions {
		svc.questions = append(svc.questions, board.Question{
			ID:      svc.newID(),
			Prompt:  entry.Prompt,
			Answers: entry.Answers,
		})
	}
	return svc, nil
}

// ListQuestions returns all stored questions in insertion order.
func (s *Service) ListQuestions(ctx context.Context) ([]board.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	questions := make([]board.Question, len(s.questions))
	copy(questions, s.questions)
	return questions, nil
}

// CreateQuestion validates and stores a question, returning it with its id.
// The prompt and answers are trimmed; blank answers are dropped. Empty
// submissions are rejected with question.ErrEmptyPrompt or
// question.ErrNoAnswers.
func (s *Service) CreateQuestion(ctx context.Context, req board.CreateRequest) (board.Question, error) {
	prompt, answers, err := question.CleanSubmission(req.Prompt, req.Answers)
	if err != nil {
		return board.Question{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created := board.Question{ID: s.newID(), Prompt: prompt, Answers: answers}
	s.questions = append(s.questions, created)
	return created, nil
}

// Len reports the number of stored questions.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}
