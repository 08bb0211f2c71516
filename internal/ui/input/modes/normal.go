package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/types"
)

// NormalMode handles the keys shared by every non-text mode
type NormalMode struct {
	name string
	keys types.KeyMap
}

func NewNormalMode(name string, keys types.KeyMap) NormalMode {
	return NormalMode{name: name, keys: keys}
}

func (m NormalMode) Name() string {
	return m.name
}

func (m NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}
	return nil, false
}

// TilesMode moves between the team tiles of the Search view
type TilesMode struct {
	NormalMode
}

func NewTilesMode(keys types.KeyMap) *TilesMode {
	return &TilesMode{NormalMode: NewNormalMode("teams", keys)}
}

func (m *TilesMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Select):
		return []types.Action{types.SubmitAction{}}, true
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.Back), msg.String() == "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearchInput}}, true
	}
	return m.NormalMode.HandleKey(msg, ctx)
}

// TeamMode moves through a team's document listing
type TeamMode struct {
	NormalMode
}

func NewTeamMode(keys types.KeyMap) *TeamMode {
	return &TeamMode{NormalMode: NewNormalMode("team", keys)}
}

func (m *TeamMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Select):
		return []types.Action{types.SubmitAction{}}, true
	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.BackAction{}}, true
	}
	return m.NormalMode.HandleKey(msg, ctx)
}

// DocumentMode scrolls an open document
type DocumentMode struct {
	NormalMode
}

func NewDocumentMode(keys types.KeyMap) *DocumentMode {
	return &DocumentMode{NormalMode: NewNormalMode("document", keys)}
}

func (m *DocumentMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.BackAction{}}, true
	}
	return m.NormalMode.HandleKey(msg, ctx)
}
