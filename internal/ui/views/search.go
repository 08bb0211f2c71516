package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
	"docsearch/internal/ui/logic"
	"docsearch/internal/ui/services/outside"
	"docsearch/internal/ui/services/search"
)

func (r *Renderer) renderSearch(f *frame, layout *Layout, state ViewState, st search.Snapshot, width int) {
	f.add(r.styles.Dim.Render("Search documents or browse by team"))
	f.add("")

	// Search box
	boxStyle := r.styles.InputBox
	if state.InputFocused {
		boxStyle = r.styles.InputFocused
	}
	inner := width - 4 // border and padding
	input := state.InputView
	if st.Searching {
		gap := inner - lipgloss.Width(input) - lipgloss.Width(state.SpinnerView)
		if gap < 1 {
			gap = 1
		}
		input += strings.Repeat(" ", gap) + state.SpinnerView
	}
	box := boxStyle.Width(width - 2).Render(input)
	y := f.add(box)
	regionHeight := lipgloss.Height(box)

	// Dropdown
	if st.DropdownOpen {
		dropdown, rows := r.renderDropdown(state, st, width-2)
		dy := f.add(dropdown)
		regionHeight += lipgloss.Height(dropdown)
		for i, idx := range rows {
			if idx < 0 {
				continue
			}
			layout.DropdownRows = append(layout.DropdownRows, RowHit{
				Index: idx,
				Rect:  outside.Rect{X: originX + 1, Y: originY + dy + 1 + i, Width: width - 2, Height: 1},
			})
		}
	}
	layout.SearchRegion = outside.Rect{X: originX, Y: originY + y, Width: width, Height: regionHeight}

	// Team tiles
	f.add("")
	f.add(r.styles.Dim.Render("Browse by team"))
	var tiles []string
	x := originX
	teams := domain.AllTeams()
	tileWidth := (width-2*(len(teams)-1))/len(teams) - 2
	if tileWidth < 12 {
		tileWidth = 12
	}
	for i, team := range teams {
		tile := r.renderTile(team, tileWidth, state.TilesFocused && i == state.TileCursor)
		tiles = append(tiles, tile)
		layout.Tiles = append(layout.Tiles, TileHit{
			Team: team,
			Rect: outside.Rect{X: x, Y: 0, Width: lipgloss.Width(tile), Height: lipgloss.Height(tile)},
		})
		x += lipgloss.Width(tile) + 2
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(tiles, "  ")...)
	ty := f.add(row)
	for i := range layout.Tiles {
		layout.Tiles[i].Rect.Y = originY + ty
	}
}

// renderDropdown returns the dropdown box and, per inner row, the result
// index shown on it (-1 for message rows).
func (r *Renderer) renderDropdown(state ViewState, st search.Snapshot, inner int) (string, []int) {
	var lines []string
	var rows []int

	switch {
	case len(st.Results) == 0 && st.Searching:
		lines = append(lines, state.SpinnerView+" Searching...")
		rows = append(rows, -1)
	case st.NoResults:
		lines = append(lines, r.styles.Empty.Render("No documents found"))
		rows = append(rows, -1)
	default:
		maxRows := state.MaxDropdownRows
		if maxRows < 1 {
			maxRows = len(st.Results)
		}
		window := logic.Cursor{Index: state.DropdownCursor, Offset: state.DropdownOffset}
		start, end := window.Visible(len(st.Results), maxRows)
		overflow := len(st.Results) > maxRows
		textWidth := inner
		if overflow {
			textWidth-- // scrollbar column
		}
		for i := start; i < end; i++ {
			line := r.resultLine(st.Results[i], textWidth)
			style := lipgloss.NewStyle().Width(textWidth)
			if i == state.DropdownCursor {
				style = r.styles.SelectionBg.Width(textWidth)
			}
			line = style.Render(line)
			if overflow {
				line += r.scrollbar(i-start, maxRows, start, len(st.Results))
			}
			lines = append(lines, line)
			rows = append(rows, i)
		}
	}

	return r.styles.Dropdown.Width(inner).Render(strings.Join(lines, "\n")), rows
}

// scrollbar returns the scrollbar cell for a visible row
func (r *Renderer) scrollbar(row, visible, offset, total int) string {
	thumb := visible * visible / total
	if thumb < 1 {
		thumb = 1
	}
	top := offset * visible / total
	if top+thumb > visible {
		top = visible - thumb
	}
	if row >= top && row < top+thumb {
		return r.styles.Scroll.Render("┃")
	}
	return r.styles.Scroll.Render("│")
}

func (r *Renderer) renderTile(team domain.Team, width int, selected bool) string {
	style := r.styles.Tile
	if selected {
		style = r.styles.TileSelected
	}
	accent := AccentColor(team)
	name := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(team.String())
	label := r.styles.Dim.Render(fmt.Sprintf("View %s documents", team))
	return style.BorderForeground(accent).Width(width).Render(name + "\n" + label)
}

func joinWithGap(blocks []string, gap string) []string {
	out := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, b)
	}
	return out
}
