package state

// Focus is the part of the Search view receiving keys
type Focus int

const (
	FocusInput Focus = iota
	FocusTiles
)

// UIState contains the presentation state that is not owned by the
// navigation controllers: sizes, cursors and transient messages.
type UIState struct {
	Width  int
	Height int

	// Search view
	Focus          Focus
	DropdownCursor int // highlighted dropdown row, -1 for none
	DropdownOffset int // first visible dropdown row
	TileCursor     int

	// Team browse view
	ListCursor int
	ListOffset int

	ShowHelp      bool
	StatusMessage string // status bar message
	StatusIsError bool
	PagerActive   bool // rendering paused while the pager owns the terminal
}

// NewUIState creates the initial UI state
func NewUIState() *UIState {
	return &UIState{
		DropdownCursor: -1,
	}
}

// ResetSearch clears cursors that belong to the Search view
func (s *UIState) ResetSearch() {
	s.Focus = FocusInput
	s.DropdownCursor = -1
	s.DropdownOffset = 0
}

// ResetList clears the team listing cursor
func (s *UIState) ResetList() {
	s.ListCursor = 0
	s.ListOffset = 0
}
