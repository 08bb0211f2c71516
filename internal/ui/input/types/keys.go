package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	Back      key.Binding
	Dismiss   key.Binding
	Clear     key.Binding
	NextFocus key.Binding
	Pager     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close results")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		NextFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "teams/search")),
		Pager:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pager")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ModeHelp implements help.KeyMap for one input mode
type ModeHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h ModeHelp) ShortHelp() []key.Binding  { return h.short }
func (h ModeHelp) FullHelp() [][]key.Binding { return h.full }

// HelpFor returns the bindings shown for mode
func (k KeyMap) HelpFor(mode Mode) ModeHelp {
	arrowUp := key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "results"))
	switch mode {
	case ModeSearchInput:
		return ModeHelp{
			short: []key.Binding{arrowUp, k.Select, k.NextFocus, k.Clear, k.Dismiss, k.ForceQuit},
			full: [][]key.Binding{
				{arrowUp, k.Select},
				{k.NextFocus, k.Clear, k.Dismiss},
				{k.ForceQuit},
			},
		}
	case ModeTeamTiles:
		return ModeHelp{
			short: []key.Binding{k.Left, k.Right, k.Select, k.NextFocus, k.Help, k.Quit},
			full: [][]key.Binding{
				{k.Left, k.Right, k.Select},
				{k.NextFocus, k.Help, k.Quit},
			},
		}
	case ModeTeamBrowse:
		return ModeHelp{
			short: []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Help, k.Quit},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Home, k.End},
				{k.Select, k.Back},
				{k.Help, k.Quit},
			},
		}
	default:
		return ModeHelp{
			short: []key.Binding{k.Up, k.Down, k.Pager, k.Back, k.Help, k.Quit},
			full: [][]key.Binding{
				{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
				{k.Pager, k.Back},
				{k.Help, k.Quit},
			},
		}
	}
}
