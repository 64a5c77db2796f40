package form

import (
	"qboard/internal/question"
	"qboard/pkg/board"
)

// applyQuestionsLoaded replaces the question list with a fetch result.
// A nil payload becomes an empty list.
func applyQuestionsLoaded(state State, questions []board.Question) State {
	if questions == nil {
		questions = []board.Question{}
	}
	state.Questions = questions
	state.Loading = false
	return state
}

// applyFetchFailed records a failed list fetch. The list is left as it was.
func applyFetchFailed(state State, err error) State {
	state.Loading = false
	state.Err = "loading questions failed: " + err.Error()
	return state
}

// applySubmit validates the draft and prepares a create request. A draft
// with a blank question or no non-blank answers sets the blocking notice
// and reports ok=false; no request may be issued in that case.
func applySubmit(state State) (State, board.CreateRequest, bool) {
	prompt, answers, err := question.CleanSubmission(state.Draft.Prompt, state.Draft.Answers)
	if err != nil {
		state.Notice = err.Error()
		return state, board.CreateRequest{}, false
	}
	state.Loading = true
	state.Err = ""
	return state, board.CreateRequest{Prompt: prompt, Answers: answers}, true
}

// applyCreated appends the stored question and resets the draft for the
// next entry, moving focus back to the question field.
func applyCreated(state State, created board.Question) State {
	state.Questions = append(append([]board.Question(nil), state.Questions...), created)
	state.Draft = question.NewDraft()
	state.Focus = focusPrompt
	state.Loading = false
	return state
}

// applyCreateFailed records a failed create. The draft and list are left
// untouched so the user can retry.
func applyCreateFailed(state State, err error) State {
	state.Loading = false
	state.Err = "submitting question failed: " + err.Error()
	return state
}

// applyRefresh starts a new list fetch.
func applyRefresh(state State) State {
	state.Loading = true
	state.Err = ""
	return state
}

// applyAddAnswer appends a blank answer field and focuses it.
func applyAddAnswer(state State) State {
	state.Draft = state.Draft.AddAnswer()
	state.Focus = len(state.Draft.Answers)
	return state
}

// applyRemoveAnswer drops the focused answer field. The question field and
// the last remaining answer field are never removed.
func applyRemoveAnswer(state State) State {
	if state.Focus == focusPrompt {
		return state
	}
	removed := state.Draft.RemoveAnswer(state.Focus - 1)
	if len(removed.Answers) == len(state.Draft.Answers) {
		return state
	}
	state.Draft = removed
	if state.Focus > len(state.Draft.Answers) {
		state.Focus = len(state.Draft.Answers)
	}
	return state
}

// applyFocusNext moves focus to the next field, wrapping past the last.
func applyFocusNext(state State) State {
	state.Focus = (state.Focus + 1) % state.fieldCount()
	return state
}

// applyFocusPrev moves focus to the previous field, wrapping past the first.
func applyFocusPrev(state State) State {
	state.Focus = (state.Focus - 1 + state.fieldCount()) % state.fieldCount()
	return state
}

// applyEdit overwrites the focused field with the given text.
func applyEdit(state State, text string) State {
	if state.Focus == focusPrompt {
		state.Draft = state.Draft.SetPrompt(text)
		return state
	}
	state.Draft = state.Draft.SetAnswer(state.Focus-1, text)
	return state
}
