package question

// Draft is the editable question state before submission. Methods return a
// modified copy so update loops can treat drafts as values.
type Draft struct {
	Prompt  string
	Answers []string
}

// NewDraft returns an empty draft with a single blank answer field.
func NewDraft() Draft {
	return Draft{Answers: []string{""}}
}

// SetPrompt replaces the question text.
func (d Draft) SetPrompt(text string) Draft {
	d.Prompt = text
	return d
}

// SetAnswer replaces the answer at index i. Indices outside the answer list
// leave the draft unchanged; call sites pass indices read from the draft.
func (d Draft) SetAnswer(i int, text string) Draft {
	if i < 0 || i >= len(d.Answers) {
		return d
	}
	answers := append([]string(nil), d.Answers...)
	answers[i] = text
	d.Answers = answers
	return d
}

// AddAnswer appends a blank answer field.
func (d Draft) AddAnswer() Draft {
	d.Answers = append(append([]string(nil), d.Answers...), "")
	return d
}

// RemoveAnswer drops the answer at index i. The last remaining field and
// out-of-range indices are left untouched.
func (d Draft) RemoveAnswer(i int) Draft {
	if len(d.Answers) <= 1 || i < 0 || i >= len(d.Answers) {
		return d
	}
	answers := make([]string, 0, len(d.Answers)-1)
	answers = append(answers, d.Answers[:i]...)
	answers = append(answers, d.Answers[i+1:]...)
	d.Answers = answers
	return d
}
