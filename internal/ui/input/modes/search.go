package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/types"
)

// SearchMode edits the query and moves through the dropdown
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(keys types.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearchInput, "search", keys, ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Letters are query text here, so only arrow keys move the highlight.
	switch msg.Type {
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Select):
		if ctx.DropdownOpen() && ctx.HasHighlight() {
			return []types.Action{types.SubmitAction{}}, true
		}
		return nil, true
	case key.Matches(msg, m.keys.Dismiss):
		if ctx.DropdownOpen() {
			return []types.Action{types.DismissAction{}}, true
		}
		return nil, true
	case key.Matches(msg, m.keys.NextFocus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeTeamTiles}}, true
	}

	return m.TextInputMode.HandleKey(msg, ctx)
}
