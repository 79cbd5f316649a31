package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/svnrevert/internal/theme"
	"github.com/muesli/reflow/wrap"
)

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding
}

func defaultConfirmKeys() confirmKeyMap {
	return confirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "Y")),
		No:     key.NewBinding(key.WithKeys("n", "N", "q", "esc", "ctrl+c", "ctrl+d")),
		Accept: key.NewBinding(key.WithKeys("enter")),
	}
}

// confirmModel is a single keystroke y/N prompt.
type confirmModel struct {
	question  string
	thm       *theme.Theme
	keys      confirmKeyMap
	width     int
	answered  bool
	confirmed bool
}

func newConfirmModel(question string, thm *theme.Theme) confirmModel {
	if thm == nil {
		thm = theme.None()
	}
	return confirmModel{question: question, thm: thm, keys: defaultConfirmKeys()}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.answered, m.confirmed = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Accept):
			m.answered, m.confirmed = true, false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	text := fmt.Sprintf("%s [y/N]: ", m.question)
	if m.width > 0 {
		text = wrap.String(text, m.width)
	}
	style := lipgloss.NewStyle().Foreground(m.thm.Accent)
	if !m.answered {
		return style.Render(text)
	}
	answer := "n"
	if m.confirmed {
		answer = "y"
	}
	return style.Render(text) + answer + "\n"
}

// Interactive asks with a single keystroke using Bubble Tea.
type Interactive struct {
	In  io.Reader
	Out io.Writer
	Thm *theme.Theme
}

// Confirm implements Confirmer.
func (i *Interactive) Confirm(question string) (bool, error) {
	p := tea.NewProgram(newConfirmModel(question, i.Thm), tea.WithInput(i.In), tea.WithOutput(i.Out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("confirmation prompt: unexpected model %T", final)
	}
	return m.confirmed, nil
}
