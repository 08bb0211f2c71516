package outside

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a cell region on screen
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Interaction is the position at which a user interaction began
type Interaction struct {
	X, Y int
}

// FromMouse converts a mouse message into an interaction. Only button
// presses begin an interaction; motion, release and wheel do not.
func FromMouse(msg tea.MouseMsg) (Interaction, bool) {
	if msg.Action != tea.MouseActionPress {
		return Interaction{}, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft, tea.MouseButtonMiddle, tea.MouseButtonRight:
		return Interaction{X: msg.X, Y: msg.Y}, true
	}
	return Interaction{}, false
}

// Detector calls a close callback when an interaction begins outside its
// region while attached and active.
type Detector struct {
	region    Rect
	attached  bool
	onOutside func()
	active    func() bool
}

// New creates a detached detector. active may be nil, meaning always active.
func New(onOutside func(), active func() bool) *Detector {
	return &Detector{onOutside: onOutside, active: active}
}

// Attach registers the detector for region
func (d *Detector) Attach(region Rect) {
	d.region = region
	d.attached = true
}

// SetRegion updates the region without changing registration
func (d *Detector) SetRegion(region Rect) {
	d.region = region
}

// Detach unregisters the detector
func (d *Detector) Detach() {
	d.attached = false
}

// Observe handles one interaction and reports whether the callback fired
func (d *Detector) Observe(in Interaction) bool {
	if !d.attached || d.onOutside == nil {
		return false
	}
	if d.active != nil && !d.active() {
		return false
	}
	if d.region.Contains(in.X, in.Y) {
		return false
	}
	d.onOutside()
	return true
}
