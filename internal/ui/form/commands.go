package form

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"qboard/pkg/board"
)

// questionsLoadedMsg carries a successful list fetch.
type questionsLoadedMsg struct {
	questions []board.Question
}

// fetchFailedMsg carries a failed list fetch.
type fetchFailedMsg struct {
	err error
}

// questionCreatedMsg carries a successfully stored question.
type questionCreatedMsg struct {
	question board.Question
}

// createFailedMsg carries a failed create call.
type createFailedMsg struct {
	err error
}

// fetchQuestions lists all questions from the service. The service client
// owns the request timeout; results apply in arrival order.
func fetchQuestions(svc board.Service) tea.Cmd {
	return func() tea.Msg {
		questions, err := svc.ListQuestions(context.Background())
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return questionsLoadedMsg{questions: questions}
	}
}

// createQuestion submits a validated create request to the service.
func createQuestion(svc board.Service, req board.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		created, err := svc.CreateQuestion(context.Background(), req)
		if err != nil {
			return createFailedMsg{err: err}
		}
		return questionCreatedMsg{question: created}
	}
}
