package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/components"
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/types"
	"github.com/mrsinham/datefuzz/internal/variance"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the previous screen
	SummaryActionBack SummaryAction = iota
	// SummaryActionObfuscate runs the obfuscation
	SummaryActionObfuscate
	// SummaryActionSaveConfig saves configuration to YAML file
	SummaryActionSaveConfig
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionBack       = "back"
	actionObfuscate  = "obfuscate"
	actionSaveConfig = "save_config"
	actionCancel     = "cancel"
)

var (
	summaryPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("36")).
		Padding(1, 2)

	summaryTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("36")).
		Bold(true).
		MarginBottom(1)

	summaryLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	summaryValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	intervalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("33"))

	cliCommandStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
)

// SummaryScreen displays a summary of wizard configuration before obfuscation
type SummaryScreen struct {
	form      *huh.Form
	params    *types.ParamsConfig
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen
func NewSummaryScreen(params *types.ParamsConfig) *SummaryScreen {
	s := &SummaryScreen{
		params: params,
		action: actionObfuscate, // Default action
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Obfuscate the date", actionObfuscate),
					huh.NewOption("Save configuration to YAML", actionSaveConfig),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SUMMARY - Review Parameters")

	leftPanel := s.buildParameterSummary()
	rightPanel := s.buildIntervalPreview()

	panelWidth := 45
	leftStyled := summaryPanelStyle.Width(panelWidth).Render(leftPanel)
	rightStyled := summaryPanelStyle.Width(panelWidth).Render(rightPanel)
	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftStyled, "  ", rightStyled)

	cliSection := s.buildCLICommand()

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		panels,
		"",
		cliSection,
		"",
		s.form.View(),
		"",
		"Enter: Select action | Esc: Back",
	)

	return content
}

// buildParameterSummary builds the left panel showing parameter summary
func (s *SummaryScreen) buildParameterSummary() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Parameter Summary"))
	sb.WriteString("\n\n")

	seed := "auto"
	if s.params.Seed != 0 {
		seed = fmt.Sprintf("%d", s.params.Seed)
	}

	params := []struct {
		label string
		value string
	}{
		{"Date", s.params.Date},
		{"Range", fmt.Sprintf("±%d days", absInt(s.params.RangeDays))},
		{"Max Range", fmt.Sprintf("%d days", s.params.MaxRange)},
		{"Output Format", s.params.Format},
		{"Seed", seed},
	}

	for _, p := range params {
		sb.WriteString(summaryLabelStyle.Render(p.label + ": "))
		sb.WriteString(summaryValueStyle.Render(p.value))
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildIntervalPreview builds the right panel showing the reachable date window
func (s *SummaryScreen) buildIntervalPreview() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Possible Output Window"))
	sb.WriteString("\n\n")

	date, err := variance.ParseDate(s.params.Date)
	if err != nil {
		sb.WriteString(summaryLabelStyle.Render("Enter a valid date to preview the window."))
		return sb.String()
	}

	if err := variance.ValidateRange(s.params.RangeDays, s.params.MaxRange); err != nil {
		sb.WriteString(summaryLabelStyle.Render(err.Error()))
		return sb.String()
	}

	n := absInt(s.params.RangeDays)
	earliest := date.AddDate(0, 0, -n)
	latest := date.AddDate(0, 0, n)

	sb.WriteString(intervalStyle.Render(earliest.Format(variance.DateLayout)))
	sb.WriteString(summaryLabelStyle.Render("  ≤  "))
	sb.WriteString(summaryValueStyle.Render("output"))
	sb.WriteString(summaryLabelStyle.Render("  ≤  "))
	sb.WriteString(intervalStyle.Render(latest.Format(variance.DateLayout)))
	sb.WriteString("\n\n")
	sb.WriteString(summaryLabelStyle.Render(fmt.Sprintf("%d equally likely dates", 2*n+1)))

	return sb.String()
}

// buildCLICommand builds the CLI command equivalent section
func (s *SummaryScreen) buildCLICommand() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Equivalent CLI Command"))
	sb.WriteString("\n\n")
	sb.WriteString(cliCommandStyle.Render(s.generateCLICommand()))

	return sb.String()
}

// generateCLICommand generates the equivalent CLI command from wizard state
func (s *SummaryScreen) generateCLICommand() string {
	var parts []string

	parts = append(parts, "datefuzz")

	if s.params.RangeDays != variance.DefaultRange {
		parts = append(parts, fmt.Sprintf("--range %d", s.params.RangeDays))
	}
	if s.params.MaxRange != variance.DefaultMaxRange {
		parts = append(parts, fmt.Sprintf("--max-range %d", s.params.MaxRange))
	}
	if s.params.Format != "" && s.params.Format != "%Y-%m-%d" {
		parts = append(parts, fmt.Sprintf("--format %q", s.params.Format))
	}
	if s.params.Seed != 0 {
		parts = append(parts, fmt.Sprintf("--seed %d", s.params.Seed))
	}

	parts = append(parts, s.params.Date)

	return strings.Join(parts, " ")
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Done returns true if the form was completed
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionBack:
		return SummaryActionBack
	case actionObfuscate:
		return SummaryActionObfuscate
	case actionSaveConfig:
		return SummaryActionSaveConfig
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionObfuscate
	}
}
