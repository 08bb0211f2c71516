package views

import (
	"docsearch/internal/domain"
	"docsearch/internal/ui/services/outside"
)

// Screen offsets of the main container's padding
const (
	originX = 2
	originY = 1
)

// Lines taken by everything but the list or document body
const (
	teamChromeLines     = 11
	documentChromeLines = 10
)

// ContentWidth returns the usable width inside the main container
func ContentWidth(width int) int {
	if width <= 0 {
		width = 80
	}
	if w := width - 2*originX; w > 20 {
		return w
	}
	return 20
}

// ListHeight returns the number of rows of a team listing that fit
func ListHeight(height int) int {
	if h := height - teamChromeLines; h > 1 {
		return h
	}
	return 1
}

// ContentHeight returns the height of the document viewport
func ContentHeight(height int) int {
	if h := height - documentChromeLines; h > 1 {
		return h
	}
	return 1
}

// RowHit is a clickable list row
type RowHit struct {
	Index int
	Rect  outside.Rect
}

// TileHit is a clickable team tile
type TileHit struct {
	Team domain.Team
	Rect outside.Rect
}

// Layout records where interactive elements were drawn
type Layout struct {
	SearchRegion outside.Rect
	DropdownRows []RowHit
	Tiles        []TileHit
	ListRows     []RowHit
	BackLink     outside.Rect
}

// DropdownRowAt returns the result index drawn at (x, y)
func (l Layout) DropdownRowAt(x, y int) (int, bool) {
	return rowAt(l.DropdownRows, x, y)
}

// ListRowAt returns the document index drawn at (x, y)
func (l Layout) ListRowAt(x, y int) (int, bool) {
	return rowAt(l.ListRows, x, y)
}

// TileAt returns the team whose tile covers (x, y)
func (l Layout) TileAt(x, y int) (domain.Team, bool) {
	for _, t := range l.Tiles {
		if t.Rect.Contains(x, y) {
			return t.Team, true
		}
	}
	return "", false
}

// OnBackLink reports whether (x, y) is on the back link
func (l Layout) OnBackLink(x, y int) bool {
	return !l.BackLink.Empty() && l.BackLink.Contains(x, y)
}

func rowAt(rows []RowHit, x, y int) (int, bool) {
	for _, r := range rows {
		if r.Rect.Contains(x, y) {
			return r.Index, true
		}
	}
	return -1, false
}
