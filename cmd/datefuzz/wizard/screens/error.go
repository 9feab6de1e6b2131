package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	errorMessageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	errorHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Italic(true)
)

// ErrorScreen shows a terminal error from the obfuscation pipeline
type ErrorScreen struct {
	err    error
	done   bool
	width  int
	height int
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{
		err: err,
	}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var sb strings.Builder

	errorIcon := errorTitleStyle.Render("✗")
	errorText := errorTitleStyle.Render("Obfuscation failed")
	sb.WriteString(errorIcon)
	sb.WriteString(" ")
	sb.WriteString(errorText)
	sb.WriteString("\n\n")

	sb.WriteString(errorMessageStyle.Render(s.err.Error()))
	sb.WriteString("\n\n")
	sb.WriteString(errorHintStyle.Render("Press Enter to exit"))

	return sb.String()
}

// Done returns true once the user dismissed the screen
func (s *ErrorScreen) Done() bool {
	return s.done
}

// Err returns the underlying error
func (s *ErrorScreen) Err() error {
	return s.err
}
