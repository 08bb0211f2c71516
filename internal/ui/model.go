package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/config"
	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/session"
	"docsearch/internal/ui/coordinator"
	"docsearch/internal/ui/input"
	inputtypes "docsearch/internal/ui/input/types"
	"docsearch/internal/ui/logic"
	"docsearch/internal/ui/services/navigation"
	"docsearch/internal/ui/services/outside"
	"docsearch/internal/ui/state"
	"docsearch/internal/ui/viewmodels"
	"docsearch/internal/ui/views"
)

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.UIState

	spinner  spinner.Model
	viewport viewport.Model
	layout   views.Layout // positions from the last render

	lastView    navigation.View
	contentKey  string // document and width the viewport was filled for
	inPagerMode bool   // tracks if we're currently in pager mode
	startTeam   domain.Team

	// Handlers
	coordinator  *coordinator.Coordinator
	inputHandler *input.Handler
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, docs domain.DocumentService) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	uiState := state.NewUIState()
	keys := inputtypes.DefaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        uiState,
		spinner:      sp,
		viewport:     viewport.New(views.ContentWidth(0), views.ContentHeight(24)),
		lastView:     navigation.ViewSearch,
		coordinator:  coordinator.NewCoordinator(bus, docs, cfg.Debounce()),
		inputHandler: input.New(keys),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(uiState, cfg, keys),
		pager:        NewPager(),
	}
	m.coordinator.SetContext(context.Background())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// StartInTeam opens the team's document listing when the program starts
func (m *Model) StartInTeam(team domain.Team) {
	m.startTeam = team
}

// SetContext sets the context backend requests run under
func (m *Model) SetContext(ctx context.Context) {
	m.coordinator.SetContext(ctx)
}

// SetSession sets the session whose user is greeted in the header
func (m *Model) SetSession(p session.Provider) {
	m.viewModel.SetSession(p)
}

// Coordinator returns the view controllers
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.startTeam != "" {
		cmds = append(cmds, m.browseTeam(m.startTeam), m.syncView())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.resize()

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		if m.inPagerMode || !m.config.UI.Mouse {
			return m, nil
		}
		cmds = append(cmds, m.handleMouse(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerExitMsg:
		if msg.err != nil {
			cmds = append(cmds, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), true))
		}

	case pauseRenderingMsg:
		m.inPagerMode = true
		m.state.PagerActive = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.state.PagerActive = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		m.state.StatusIsError = false
		return m, nil

	default:
		cmd, handled := m.coordinator.Update(msg)
		if !handled {
			return m, m.inputHandler.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.syncView())
	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	vs := m.viewModel.BuildViewState(m.coordinator.Snapshot(), m.coordinator.SearchSnapshot(), viewmodels.Components{
		Input:    *m.inputHandler.TextInput(),
		Spinner:  m.spinner,
		Viewport: m.viewport,
		Mode:     m.inputHandler.CurrentMode(),
	})
	out, layout := m.renderer.Render(vs)
	m.layout = layout
	return out
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{State: m.state, Coordinator: m.coordinator}
}

func (m *Model) resize() {
	width := views.ContentWidth(m.state.Width)
	// Leave room for the box border, padding and the spinner
	m.inputHandler.TextInput().Width = width - 8
	m.viewport.Width = width
	m.viewport.Height = views.ContentHeight(m.state.Height)
	m.contentKey = ""
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)
	case inputtypes.SubmitAction:
		return m.submit()
	case inputtypes.BackAction:
		return m.back()
	case inputtypes.UpdateTextAction:
		m.state.DropdownCursor = -1
		m.state.DropdownOffset = 0
		return m.coordinator.SetQuery(a.Text)
	case inputtypes.ClearQueryAction:
		m.state.ResetSearch()
		m.coordinator.ClearQuery()
	case inputtypes.DismissAction:
		m.coordinator.Dismiss()
	case inputtypes.OpenPagerAction:
		return m.openPager()
	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearchInput:
		st := m.coordinator.Navigation.Search()
		if st == nil || !st.DropdownOpen {
			return
		}
		cur := logic.Cursor{Index: m.state.DropdownCursor, Offset: m.state.DropdownOffset}
		cur = moveCursor(cur, direction, len(st.Results), m.config.UI.MaxDropdownRows)
		m.state.DropdownCursor, m.state.DropdownOffset = cur.Index, cur.Offset

	case inputtypes.ModeTeamTiles:
		n := len(domain.AllTeams())
		switch direction {
		case "left", "up":
			m.state.TileCursor = (m.state.TileCursor + n - 1) % n
		case "right", "down":
			m.state.TileCursor = (m.state.TileCursor + 1) % n
		case "home":
			m.state.TileCursor = 0
		case "end":
			m.state.TileCursor = n - 1
		}

	case inputtypes.ModeTeamBrowse:
		st := m.coordinator.Navigation.TeamBrowse()
		if st == nil {
			return
		}
		cur := logic.Cursor{Index: m.state.ListCursor, Offset: m.state.ListOffset}
		cur = moveCursor(cur, direction, len(st.Documents), views.ListHeight(m.state.Height))
		if cur.Index < 0 {
			cur.Index = 0
		}
		m.state.ListCursor, m.state.ListOffset = cur.Index, cur.Offset

	case inputtypes.ModeDocument:
		switch direction {
		case "up":
			m.viewport.LineUp(1)
		case "down":
			m.viewport.LineDown(1)
		case "pageup", "left":
			m.viewport.ViewUp()
		case "pagedown", "right":
			m.viewport.ViewDown()
		case "home":
			m.viewport.GotoTop()
		case "end":
			m.viewport.GotoBottom()
		}
	}
}

func moveCursor(cur logic.Cursor, direction string, total, height int) logic.Cursor {
	switch direction {
	case "up", "left":
		return cur.Move(-1, total, height)
	case "down", "right":
		return cur.Move(1, total, height)
	case "pageup":
		return cur.Move(-height, total, height)
	case "pagedown":
		return cur.Move(height, total, height)
	case "home":
		return cur.Home(total, height)
	case "end":
		return cur.End(total, height)
	}
	return cur
}

func (m *Model) submit() tea.Cmd {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearchInput:
		st := m.coordinator.Navigation.Search()
		if st == nil || m.state.DropdownCursor < 0 || m.state.DropdownCursor >= len(st.Results) {
			return nil
		}
		return m.openDocument(st.Results[m.state.DropdownCursor])

	case inputtypes.ModeTeamTiles:
		teams := domain.AllTeams()
		if m.state.TileCursor < 0 || m.state.TileCursor >= len(teams) {
			return nil
		}
		return m.browseTeam(teams[m.state.TileCursor])

	case inputtypes.ModeTeamBrowse:
		st := m.coordinator.Navigation.TeamBrowse()
		if st == nil || m.state.ListCursor < 0 || m.state.ListCursor >= len(st.Documents) {
			return nil
		}
		return m.openDocument(st.Documents[m.state.ListCursor])
	}
	return nil
}

func (m *Model) openDocument(result domain.SearchResult) tea.Cmd {
	m.contentKey = ""
	return m.coordinator.OpenDocument(result)
}

func (m *Model) browseTeam(team domain.Team) tea.Cmd {
	m.state.ResetList()
	return m.coordinator.BrowseTeam(team)
}

func (m *Model) back() tea.Cmd {
	if err := m.coordinator.Back(); err != nil {
		return m.setStatus(err.Error(), true)
	}
	return nil
}

func (m *Model) openPager() tea.Cmd {
	st := m.coordinator.Navigation.DocumentView()
	if st == nil || st.LoadingContent {
		return nil
	}
	if !m.pager.Available() {
		return m.setStatus("Pager unavailable", true)
	}
	content := st.Document.Name + "\n\n" + st.Content
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerExitMsg{err: err}
	}
}

// handleMouse dispatches a click to the element drawn under the pointer
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.navigate("up")
			return nil
		case tea.MouseButtonWheelDown:
			m.navigate("down")
			return nil
		}
	}

	in, ok := outside.FromMouse(msg)
	if !ok {
		return nil
	}

	switch m.coordinator.View() {
	case navigation.ViewSearch:
		m.coordinator.SetSearchRegion(m.layout.SearchRegion)
		if m.coordinator.Interact(in) {
			m.state.DropdownCursor = -1
			m.state.DropdownOffset = 0
		}
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if idx, ok := m.layout.DropdownRowAt(in.X, in.Y); ok {
			if st := m.coordinator.Navigation.Search(); st != nil && idx < len(st.Results) {
				return m.openDocument(st.Results[idx])
			}
		}
		if team, ok := m.layout.TileAt(in.X, in.Y); ok {
			return m.browseTeam(team)
		}
		if m.layout.SearchRegion.Contains(in.X, in.Y) {
			m.inputHandler.SetMode(inputtypes.ModeSearchInput, m.inputContext())
			return textinput.Blink
		}

	case navigation.ViewTeamBrowse:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if m.layout.OnBackLink(in.X, in.Y) {
			return m.back()
		}
		if idx, ok := m.layout.ListRowAt(in.X, in.Y); ok {
			if st := m.coordinator.Navigation.TeamBrowse(); st != nil && idx < len(st.Documents) {
				m.state.ListCursor = idx
				return m.openDocument(st.Documents[idx])
			}
		}

	case navigation.ViewDocument:
		if msg.Button == tea.MouseButtonLeft && m.layout.OnBackLink(in.X, in.Y) {
			return m.back()
		}
	}
	return nil
}

// syncView aligns the input mode, cursors and viewport with the active view
func (m *Model) syncView() tea.Cmd {
	var cmd tea.Cmd
	view := m.coordinator.View()
	ctx := m.inputContext()

	if view != m.lastView {
		switch view {
		case navigation.ViewSearch:
			m.inputHandler.Reset()
			m.state.ResetSearch()
			cmd = textinput.Blink
		case navigation.ViewTeamBrowse:
			m.inputHandler.SetMode(inputtypes.ModeTeamBrowse, ctx)
		case navigation.ViewDocument:
			m.inputHandler.SetMode(inputtypes.ModeDocument, ctx)
			m.contentKey = ""
		}
		m.lastView = view
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeTeamTiles:
		m.state.Focus = state.FocusTiles
	default:
		m.state.Focus = state.FocusInput
	}

	// Keep cursors inside the current data
	if st := m.coordinator.Navigation.Search(); st != nil {
		if !st.DropdownOpen {
			m.state.DropdownCursor = -1
			m.state.DropdownOffset = 0
		} else {
			cur := logic.Cursor{Index: m.state.DropdownCursor, Offset: m.state.DropdownOffset}.
				Clamp(len(st.Results), m.config.UI.MaxDropdownRows)
			m.state.DropdownCursor, m.state.DropdownOffset = cur.Index, cur.Offset
		}
	}
	if st := m.coordinator.Navigation.TeamBrowse(); st != nil {
		cur := logic.Cursor{Index: m.state.ListCursor, Offset: m.state.ListOffset}.
			Clamp(len(st.Documents), views.ListHeight(m.state.Height))
		if cur.Index < 0 {
			cur.Index = 0
		}
		m.state.ListCursor, m.state.ListOffset = cur.Index, cur.Offset
	}
	if st := m.coordinator.Navigation.DocumentView(); st != nil && !st.LoadingContent {
		width := views.ContentWidth(m.state.Width)
		key := fmt.Sprintf("%s/%d", st.Document.ID, width)
		if key != m.contentKey {
			m.viewport.SetContent(m.renderer.FormatContent(st.Content, width))
			m.viewport.GotoTop()
			m.contentKey = key
		}
	}

	return cmd
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.state.StatusMessage = message
	m.state.StatusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
