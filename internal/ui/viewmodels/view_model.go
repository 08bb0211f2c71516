package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"docsearch/internal/config"
	"docsearch/internal/session"
	"docsearch/internal/ui/input/types"
	"docsearch/internal/ui/services/navigation"
	"docsearch/internal/ui/services/search"
	"docsearch/internal/ui/state"
	"docsearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state   *state.UIState
	config  *config.Config
	session session.Provider
	help    help.Model
	keys    types.KeyMap
}

// NewViewModel creates a new view model
func NewViewModel(uiState *state.UIState, cfg *config.Config, keys types.KeyMap) *ViewModel {
	return &ViewModel{
		state:  uiState,
		config: cfg,
		help:   help.New(),
		keys:   keys,
	}
}

// SetSession sets the provider of the signed-in user shown in the header
func (vm *ViewModel) SetSession(p session.Provider) {
	vm.session = p
}

func (vm *ViewModel) greeting() string {
	if vm.session == nil {
		return ""
	}
	if s, ok := vm.session.Current(); ok {
		return s.Greeting()
	}
	return ""
}

// Components bundles the Bubbles models the view is drawn from
type Components struct {
	Input    textinput.Model
	Spinner  spinner.Model
	Viewport viewport.Model
	Mode     types.Mode
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(screen navigation.State, results search.Snapshot, c Components) views.ViewState {
	vm.help.ShowAll = vm.state.ShowHelp
	vm.help.Width = views.ContentWidth(vm.state.Width)

	vs := views.ViewState{
		Width:           vm.state.Width,
		Height:          vm.state.Height,
		Greeting:        vm.greeting(),
		Screen:          screen,
		Search:          results,
		InputView:       c.Input.View(),
		InputFocused:    c.Mode == types.ModeSearchInput,
		SpinnerView:     c.Spinner.View(),
		DropdownCursor:  vm.state.DropdownCursor,
		DropdownOffset:  vm.state.DropdownOffset,
		MaxDropdownRows: vm.config.UI.MaxDropdownRows,
		TilesFocused:    c.Mode == types.ModeTeamTiles,
		TileCursor:      vm.state.TileCursor,
		ListCursor:      vm.state.ListCursor,
		ListOffset:      vm.state.ListOffset,
		StatusMessage:   vm.state.StatusMessage,
		StatusIsError:   vm.state.StatusIsError,
		HelpView:        vm.help.View(vm.keys.HelpFor(c.Mode)),
	}
	if screen.View() == navigation.ViewDocument {
		vs.ContentView = c.Viewport.View()
	}
	return vs
}
