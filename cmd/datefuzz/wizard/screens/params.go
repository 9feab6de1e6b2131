package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/components"
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/types"
	"github.com/mrsinham/datefuzz/internal/variance"
)

// ParamsScreen is the first wizard screen for obfuscation parameters
type ParamsScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.ParamsConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding (huh binds to strings)
	rangeStr    string
	maxRangeStr string
	seedStr     string
}

// NewParamsScreen creates a new parameter configuration screen
func NewParamsScreen(config *types.ParamsConfig) *ParamsScreen {
	// Set defaults if not provided
	if config.RangeDays == 0 {
		config.RangeDays = variance.DefaultRange
	}
	if config.MaxRange == 0 {
		config.MaxRange = variance.DefaultMaxRange
	}
	if config.Format == "" {
		config.Format = "%Y-%m-%d"
	}

	s := &ParamsScreen{
		helpPanel:   components.NewHelpPanel(),
		config:      config,
		rangeStr:    strconv.Itoa(config.RangeDays),
		maxRangeStr: strconv.Itoa(config.MaxRange),
		seedStr:     strconv.FormatInt(config.Seed, 10),
	}

	// Create form fields
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD, e.g., 2023-10-26").
				Value(&config.Date).
				Validate(validateDate),

			huh.NewInput().
				Key("range").
				Title("Variance Range (days)").
				Value(&s.rangeStr).
				Validate(validateInt),

			huh.NewInput().
				Key("max_range").
				Title("Maximum Range (days)").
				Value(&s.maxRangeStr).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("format").
				Title("Output Format").
				Options(
					huh.NewOption("%Y-%m-%d - ISO date (2023-10-26)", "%Y-%m-%d"),
					huh.NewOption("%d/%m/%Y - European (26/10/2023)", "%d/%m/%Y"),
					huh.NewOption("%m/%d/%Y - US (10/26/2023)", "%m/%d/%Y"),
					huh.NewOption("%B %e, %Y - Long (October 26, 2023)", "%B %e, %Y"),
					huh.NewOption("%Y%m%d - Compact (20231026)", "%Y%m%d"),
				).
				Value(&config.Format),

			huh.NewInput().
				Key("seed").
				Title("Seed (0 = random)").
				Value(&s.seedStr).
				Validate(validateInt64),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validateDate(s string) error {
	if s == "" {
		return fmt.Errorf("date is required")
	}
	_, err := variance.ParseDate(s)
	return err
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validateInt64(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

// Init implements tea.Model
func (s *ParamsScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *ParamsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	// Update form
	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	// Update help panel based on focused field
	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	// Check if form is complete
	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncConfigFromForm()
	}

	return s, cmd
}

// syncConfigFromForm parses form values back to config
func (s *ParamsScreen) syncConfigFromForm() {
	if n, err := strconv.Atoi(s.rangeStr); err == nil {
		s.config.RangeDays = n
	}
	if n, err := strconv.Atoi(s.maxRangeStr); err == nil {
		s.config.MaxRange = n
	}
	if n, err := strconv.ParseInt(s.seedStr, 10, 64); err == nil {
		s.config.Seed = n
	}
}

// View implements tea.Model
func (s *ParamsScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("DATEFUZZ WIZARD - Obfuscation Parameters")

	formView := s.form.View()
	helpView := s.helpPanel.View()

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		formView,
		"",
		helpView,
		"",
		components.FaintStyle.Render("Tab: Next field | Enter: Submit | Esc: Cancel"),
	)

	return content
}

// Done returns true if the form was completed
func (s *ParamsScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *ParamsScreen) Cancelled() bool {
	return s.cancelled
}

// Config returns the configured parameters
func (s *ParamsScreen) Config() *types.ParamsConfig {
	return s.config
}
