package form

import (
	"qboard/internal/question"
	"qboard/pkg/board"
)

// focusPrompt is the focus index of the question text field; answer fields
// follow at 1..len(Draft.Answers).
const focusPrompt = 0

// State captures the form view state: the draft under edit, the fetched
// question list, and the transient loading/error/notice flags.
type State struct {
	Draft     question.Draft
	Questions []board.Question
	Focus     int

	// Loading is true while the list fetch or a create call is in flight.
	Loading bool
	// Err is the inline error banner, cleared on the next user action.
	Err string
	// Notice is the blocking validation message; while set, any key
	// dismisses it and nothing else happens.
	Notice string
}

// NewState returns the initial form state: an empty draft with one blank
// answer field, loading until the first fetch settles.
func NewState() State {
	return State{Draft: question.NewDraft(), Loading: true}
}

// fieldCount returns the number of focusable fields (prompt + answers).
func (s State) fieldCount() int {
	return 1 + len(s.Draft.Answers)
}
