package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/datefuzz/cmd/datefuzz/wizard/help"
)

const helpPanelDefaultWidth = 52

var (
	helpPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("36")).
		PaddingLeft(2)

	helpTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("36")).
		Bold(true)

	helpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	helpDetailStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)

// HelpPanel displays contextual help for the focused wizard field as a
// left-ruled sidebar.
type HelpPanel struct {
	currentField string
	width        int
	height       int
}

// NewHelpPanel creates a new help panel
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{
		width:  helpPanelDefaultWidth,
		height: 8,
	}
}

// SetField updates which field's help to display
func (h *HelpPanel) SetField(field string) {
	h.currentField = field
}

// SetSize updates panel dimensions
func (h *HelpPanel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help panel
func (h *HelpPanel) View() string {
	width := h.width
	if width < 20 {
		width = helpPanelDefaultWidth
	}
	style := helpPanelStyle.Width(width) // copy, the package-level style stays untouched

	text, ok := help.Texts[h.currentField]
	if !ok {
		return style.Render(helpDetailStyle.Render("Select a field to see help"))
	}

	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render(text.Title))
	sb.WriteString("  ")
	sb.WriteString(helpDescStyle.Render(text.Description))
	sb.WriteString("\n")
	sb.WriteString(helpDetailStyle.Render(text.Details))

	return style.Render(sb.String())
}
