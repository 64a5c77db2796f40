package question

import (
	"errors"
	"strings"
)

// ErrEmptyPrompt indicates the question text was blank after trimming.
var ErrEmptyPrompt = errors.New("question text is required")

// ErrNoAnswers indicates every answer was blank after trimming.
var ErrNoAnswers = errors.New("at least one answer is required")

// CleanSubmission trims the prompt and drops blank answers while preserving
// their order. It fails when the trimmed prompt is empty or no answers
// survive; nothing should be sent to the service in that case.
func CleanSubmission(prompt string, answers []string) (string, []string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", nil, ErrEmptyPrompt
	}
	kept := make([]string, 0, len(answers))
	for _, answer := range answers {
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		kept = append(kept, answer)
	}
	if len(kept) == 0 {
		return "", nil, ErrNoAnswers
	}
	return prompt, kept, nil
}
