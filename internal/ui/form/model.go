package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"qboard/pkg/board"
)

// Model renders the question form using Bubble Tea.
type Model struct {
	state   State
	service board.Service
	log     *zap.Logger
	keys    keyMap
	inputs  []textinput.Model
	spinner spinner.Model
	help    help.Model
	noColor bool
	width   int
}

// Options configures the form model.
type Options struct {
	NoColor bool
	Log     *zap.Logger
}

// New constructs a form model backed by a question service.
func New(svc board.Service, opts Options) Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m := Model{
		state:   NewState(),
		service: svc,
		log:     log,
		keys:    defaultKeyMap(),
		spinner: sp,
		help:    help.New(),
		noColor: opts.NoColor,
	}
	m.inputs = buildInputs(m.state)
	m.inputs[m.state.Focus].Focus()
	return m
}

// Init fetches the question list and starts the spinner and cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchQuestions(m.service), m.spinner.Tick, textinput.Blink)
}

// Update consumes key presses, service results, and widget ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case questionsLoadedMsg:
		m.state = applyQuestionsLoaded(m.state, typed.questions)
		return m, nil
	case fetchFailedMsg:
		m.log.Error("fetch questions", zap.Error(typed.err))
		m.state = applyFetchFailed(m.state, typed.err)
		return m, nil
	case questionCreatedMsg:
		m.state = applyCreated(m.state, typed.question)
		m.inputs = buildInputs(m.state)
		return m, m.syncFocus()
	case createFailedMsg:
		m.log.Error("create question", zap.Error(typed.err))
		m.state = applyCreateFailed(m.state, typed.err)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m.updateFocusedInput(msg)
}

// handleKey routes a key press. While the validation notice is up, any key
// dismisses it and nothing else happens.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.state.Notice != "" {
		m.state.Notice = ""
		return m, nil
	}
	m.state.Err = ""

	switch {
	case key.Matches(msg, m.keys.Submit):
		state, req, ok := applySubmit(m.state)
		m.state = state
		if !ok {
			return m, nil
		}
		return m, createQuestion(m.service, req)
	case key.Matches(msg, m.keys.Refresh):
		m.state = applyRefresh(m.state)
		return m, fetchQuestions(m.service)
	case key.Matches(msg, m.keys.AddAnswer):
		m.state = applyAddAnswer(m.state)
		m.inputs = buildInputs(m.state)
		return m, m.syncFocus()
	case key.Matches(msg, m.keys.RemoveAnswer):
		m.state = applyRemoveAnswer(m.state)
		m.inputs = buildInputs(m.state)
		return m, m.syncFocus()
	case key.Matches(msg, m.keys.Next):
		m.state = applyFocusNext(m.state)
		return m, m.syncFocus()
	case key.Matches(msg, m.keys.Prev):
		m.state = applyFocusPrev(m.state)
		return m, m.syncFocus()
	}
	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused text input and
// copies its value back into the draft.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Focus < 0 || m.state.Focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.state.Focus], cmd = m.inputs[m.state.Focus].Update(msg)
	m.state = applyEdit(m.state, m.inputs[m.state.Focus].Value())
	return m, cmd
}

// syncFocus moves widget focus to the field selected in the state.
func (m *Model) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.state.Focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// buildInputs creates one text input per draft field, seeded with the
// current values. Index 0 is the question text; answers follow.
func buildInputs(state State) []textinput.Model {
	inputs := make([]textinput.Model, state.fieldCount())
	prompt := textinput.New()
	prompt.Placeholder = "Type your question"
	prompt.Prompt = "> "
	prompt.SetValue(state.Draft.Prompt)
	inputs[focusPrompt] = prompt
	for i, answer := range state.Draft.Answers {
		field := textinput.New()
		field.Placeholder = "Answer"
		field.Prompt = "> "
		field.SetValue(answer)
		inputs[i+1] = field
	}
	return inputs
}
