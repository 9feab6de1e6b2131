package wizard

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/components"
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/screens"
	"github.com/mrsinham/datefuzz/internal/variance"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseParams Phase = iota
	PhaseSummary
	PhaseSaveConfig
	PhaseResult
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *WizardState

	// Current phase
	phase Phase

	// Screen instances
	paramsScreen  *screens.ParamsScreen
	summaryScreen *screens.SummaryScreen
	resultScreen  *screens.ResultScreen
	errorScreen   *screens.ErrorScreen

	// Save config form
	saveConfigForm *huh.Form
	configPath     string

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	output    string
	err       error
}

// NewWizard creates a new wizard with default or loaded state.
func NewWizard(state *WizardState) *Wizard {
	if state == nil {
		state = &WizardState{}
	}
	if state.Params.RangeDays == 0 {
		state.Params.RangeDays = variance.DefaultRange
	}
	if state.Params.MaxRange == 0 {
		state.Params.MaxRange = variance.DefaultMaxRange
	}
	if state.Params.Format == "" {
		state.Params.Format = "%Y-%m-%d"
	}

	w := &Wizard{
		state: state,
		phase: PhaseParams,
	}

	// Initialize the params screen
	w.paramsScreen = screens.NewParamsScreen(&w.state.Params)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.paramsScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseParams:
		return w.updateParams(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseResult:
		return w.updateResult(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseParams:
		return w.paramsScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	case PhaseResult:
		return w.resultScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// updateParams handles updates in the parameter configuration phase.
func (w *Wizard) updateParams(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.paramsScreen.Update(msg)
	if ps, ok := model.(*screens.ParamsScreen); ok {
		w.paramsScreen = ps
	}

	if w.paramsScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.paramsScreen.Done() {
		return w.transitionToSummary()
	}

	return w, cmd
}

// transitionToSummary moves the wizard to the summary phase.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(&w.state.Params)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			w.phase = PhaseParams
			w.paramsScreen = screens.NewParamsScreen(&w.state.Params)
			return w, w.paramsScreen.Init()

		case screens.SummaryActionObfuscate:
			return w.runObfuscation()

		case screens.SummaryActionSaveConfig:
			w.phase = PhaseSaveConfig
			w.configPath = "datefuzz.yaml"
			w.saveConfigForm = huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Key("config_path").
						Title("Config file path").
						Value(&w.configPath).
						Validate(func(s string) error {
							if s == "" {
								return fmt.Errorf("path is required")
							}
							return nil
						}),
				),
			).WithShowHelp(false)
			return w, w.saveConfigForm.Init()

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// runObfuscation executes the pipeline and shows the result or error screen.
func (w *Wizard) runObfuscation() (tea.Model, tea.Cmd) {
	output, err := variance.Obfuscate(ToOptions(w.state))
	if err != nil {
		w.err = err
		w.phase = PhaseError
		w.errorScreen = screens.NewErrorScreen(err)
		return w, nil
	}

	w.output = output
	w.phase = PhaseResult
	w.resultScreen = screens.NewResultScreen(w.state.Params.Date, output)
	return w, nil
}

// updateSaveConfig handles updates in the save-config phase.
func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		case "esc":
			return w.transitionToSummary()
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		// Save the config
		if err := SaveToYAML(w.state, w.configPath); err != nil {
			w.err = err
			w.phase = PhaseError
			w.errorScreen = screens.NewErrorScreen(err)
			return w, nil
		}

		// Go back to summary with the config saved
		return w.transitionToSummary()
	}

	return w, cmd
}

// viewSaveConfig renders the save-config form.
func (w *Wizard) viewSaveConfig() string {
	title := components.TitleStyle.Render("SAVE CONFIGURATION")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		w.saveConfigForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)
}

// updateResult handles updates in the result phase.
func (w *Wizard) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.resultScreen.Update(msg)
	if rs, ok := model.(*screens.ResultScreen); ok {
		w.resultScreen = rs
	}

	if w.resultScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		return w, tea.Quit
	}

	return w, cmd
}

// Run starts the interactive wizard for date obfuscation configuration.
// If fromConfig is provided, it loads the configuration from that YAML file.
func Run(fromConfig string) error {
	var state *WizardState

	// Load config if provided
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		state = loaded
	}

	// Create and run the wizard
	wizard := NewWizard(state)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.err != nil {
			return w.err
		}
		if w.finished && w.output != "" {
			// Echo the result after the alt screen is torn down
			fmt.Println(w.output)
		}
	}

	return nil
}
