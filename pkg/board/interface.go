package board

import "context"

// Service is the client-facing API for listing and creating questions.
type Service interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	CreateQuestion(ctx context.Context, req CreateRequest) (Question, error)
}
