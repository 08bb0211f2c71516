package input

import (
	"docsearch/internal/ui/coordinator"
	"docsearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State       *state.UIState
	Coordinator *coordinator.Coordinator
}

// DropdownOpen reports whether the search dropdown is shown
func (c *ModelContext) DropdownOpen() bool {
	return c.Coordinator.Search.DropdownOpen()
}

// HasHighlight reports whether a dropdown row is highlighted
func (c *ModelContext) HasHighlight() bool {
	st := c.Coordinator.Navigation.Search()
	return st != nil && c.State.DropdownCursor >= 0 && c.State.DropdownCursor < len(st.Results)
}
