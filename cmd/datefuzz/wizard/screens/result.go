package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/components"
)

var (
	resultSuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	resultDateStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("42")).
		Padding(1, 3).
		Bold(true).
		Foreground(lipgloss.Color("252"))

	resultHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Italic(true)
)

// ResultScreen shows the obfuscated date once the pipeline has run
type ResultScreen struct {
	input  string
	output string
	done   bool
	width  int
	height int
}

// NewResultScreen creates a new result screen
func NewResultScreen(input, output string) *ResultScreen {
	return &ResultScreen{
		input:  input,
		output: output,
	}
}

// Init implements tea.Model
func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ResultScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *ResultScreen) View() string {
	var sb strings.Builder

	successIcon := resultSuccessStyle.Render("✓")
	successText := resultSuccessStyle.Render("Obfuscation complete!")
	sb.WriteString(successIcon)
	sb.WriteString(" ")
	sb.WriteString(successText)
	sb.WriteString("\n\n")

	sb.WriteString(components.SubtitleStyle.Render("Input: " + s.input))
	sb.WriteString("\n")
	sb.WriteString(resultDateStyle.Render(s.output))
	sb.WriteString("\n\n")
	sb.WriteString(resultHintStyle.Render("Press Enter to exit"))

	return sb.String()
}

// Done returns true once the user dismissed the screen
func (s *ResultScreen) Done() bool {
	return s.done
}

// Output returns the obfuscated date string
func (s *ResultScreen) Output() string {
	return s.output
}
