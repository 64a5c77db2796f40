package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the full form screen.
func (m Model) View() string {
	if m.state.Notice != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.renderNotice(),
		)
	}
	sections := []string{
		m.renderHeader(),
		m.renderForm(),
	}
	if m.state.Err != "" {
		sections = append(sections, m.renderError())
	}
	sections = append(sections, m.renderQuestions(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with a spinner while loading.
func (m Model) renderHeader() string {
	line := "Question Board"
	if m.state.Loading {
		line += " " + m.spinner.View()
	}
	return m.stylize(line, lipgloss.Color("33"))
}

// renderForm renders the question field and the answer fields, marking the
// focused field.
func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.renderLabel("Question", m.state.Focus == focusPrompt))
	b.WriteString("\n")
	b.WriteString(m.inputs[focusPrompt].View())
	b.WriteString("\n")
	for i := range m.state.Draft.Answers {
		b.WriteString(m.renderLabel(fmt.Sprintf("Answer %d", i+1), m.state.Focus == i+1))
		b.WriteString("\n")
		b.WriteString(m.inputs[i+1].View())
		b.WriteString("\n")
	}
	return b.String()
}

// renderLabel renders a field label, highlighting the focused one.
func (m Model) renderLabel(label string, focused bool) string {
	if focused {
		return m.stylize("* "+label, lipgloss.Color("205"))
	}
	return m.stylize("  "+label, lipgloss.Color("240"))
}

// renderError renders the inline error banner.
func (m Model) renderError() string {
	return m.stylize("Error: "+m.state.Err, lipgloss.Color("196"))
}

// renderNotice renders the blocking validation message.
func (m Model) renderNotice() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if m.noColor {
		box = box.UnsetBorderForeground()
	} else {
		box = box.BorderForeground(lipgloss.Color("205"))
	}
	body := m.state.Notice + "\n\n" + m.stylize("press any key to continue", lipgloss.Color("240"))
	return box.Render(body)
}

// renderQuestions renders the submitted question list.
func (m Model) renderQuestions() string {
	var b strings.Builder
	b.WriteString(m.stylize("Submitted questions", lipgloss.Color("33")))
	b.WriteString("\n")
	if len(m.state.Questions) == 0 {
		b.WriteString(m.stylize("  none yet", lipgloss.Color("240")))
		b.WriteString("\n")
		return b.String()
	}
	for i, q := range m.state.Questions {
		line := fmt.Sprintf("%d. %s", i+1, q.Prompt)
		if q.ID != "" {
			line += m.stylize("  ["+q.ID+"]", lipgloss.Color("240"))
		}
		b.WriteString(line)
		b.WriteString("\n")
		for _, answer := range q.Answers {
			b.WriteString(m.stylize("   - "+answer, lipgloss.Color("242")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// stylize applies optional color styling.
func (m Model) stylize(text string, color lipgloss.Color) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
