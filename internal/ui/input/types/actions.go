package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SubmitAction activates the highlighted item: a result, tile or document
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// BackAction leaves the current view
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// DismissAction closes the dropdown without selecting
type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }

// OpenPagerAction shows the open document in the pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
