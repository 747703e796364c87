package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/ghprofile/pkg/lookup"
	"github.com/matzehuels/ghprofile/pkg/profile"
)

var (
	searchHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	searchErrorStyle = StyleError.
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorRed).
				PaddingLeft(1)
)

// =============================================================================
// SearchModel - Interactive profile search
// =============================================================================

// searchResultMsg reports that a search finished. Superseded searches report
// applied == false.
type searchResultMsg struct {
	token   string
	applied bool
}

// SearchModel is the bubbletea model for the interactive search box. Enter
// triggers a search; results of superseded searches are ignored.
type SearchModel struct {
	ctx   context.Context
	ctrl  *lookup.Controller
	input textinput.Model
	state profile.ViewState
	width int
}

// NewSearchModel creates a search model driving ctrl.
func NewSearchModel(ctx context.Context, ctrl *lookup.Controller) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a GitHub username..."
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Focus()

	return SearchModel{
		ctx:   ctx,
		ctrl:  ctrl,
		input: ti,
		state: ctrl.State(),
	}
}

func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			s := m.ctrl.Begin(m.ctx, m.input.Value())
			m.state = m.ctrl.State()
			return m, runSearch(m.ctrl, s)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case searchResultMsg:
		// The controller is the source of truth; a late message from an
		// older search must not replace a newer state.
		m.state = m.ctrl.State()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("GitHub Profile Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(searchHelpStyle.Render("enter: search  esc: quit"))
	b.WriteString("\n\n")

	if m.state.ErrorVisible {
		b.WriteString(searchErrorStyle.Render(m.state.ErrorMessage))
		b.WriteString("\n\n")
	}
	if m.state.ProfileVisible {
		b.WriteString(renderProfile(m.state.Profile))
		b.WriteString("\n")
	}
	return b.String()
}

// State returns the view state currently displayed.
func (m SearchModel) State() profile.ViewState { return m.state }

// runSearch runs s off the UI goroutine and reports its outcome.
func runSearch(ctrl *lookup.Controller, s *lookup.Search) tea.Cmd {
	return func() tea.Msg {
		_, applied := ctrl.Run(s)
		return searchResultMsg{token: s.Token, applied: applied}
	}
}
