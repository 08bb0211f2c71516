package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
	"docsearch/internal/ui/logic"
	"docsearch/internal/ui/services/navigation"
	"docsearch/internal/ui/services/outside"
	"docsearch/internal/ui/services/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Greeting        string
	Screen          navigation.State
	Search          search.Snapshot
	InputView       string // rendered search box
	InputFocused    bool
	SpinnerView     string
	DropdownCursor  int
	DropdownOffset  int
	MaxDropdownRows int
	TilesFocused    bool
	TileCursor      int
	ListCursor      int
	ListOffset      int
	ContentView     string // rendered document viewport
	StatusMessage   string
	StatusIsError   bool
	HelpView        string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// frame accumulates lines and tracks the row each block starts on
type frame struct {
	blocks []string
	y      int
}

func (f *frame) add(block string) int {
	start := f.y
	f.blocks = append(f.blocks, block)
	f.y += lipgloss.Height(block)
	return start
}

// Render produces the complete view and the positions of its
// interactive elements.
func (r *Renderer) Render(state ViewState) (string, Layout) {
	var layout Layout
	f := &frame{}
	width := ContentWidth(state.Width)

	f.add(r.renderTitleLine(state, width))

	switch st := state.Screen.(type) {
	case *navigation.SearchState:
		r.renderSearch(f, &layout, state, state.Search, width)
	case *navigation.TeamBrowseState:
		r.renderTeam(f, &layout, state, st, width)
	case *navigation.DocumentViewState:
		r.renderDocument(f, &layout, state, st)
	}

	// Footer
	f.add("")
	f.add(r.renderStatus(state))
	if state.HelpView != "" {
		f.add(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(strings.Join(f.blocks, "\n")), layout
}

func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render("docsearch")
	if state.Greeting == "" {
		return logo
	}
	greeting := r.styles.Greeting.Render(state.Greeting)
	padding := width - lipgloss.Width(logo) - lipgloss.Width(greeting)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + greeting
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render(state.StatusMessage)
	}
	return r.styles.Dim.Render(state.StatusMessage)
}

func (r *Renderer) renderBackLink(f *frame, layout *Layout, label string) {
	link := r.styles.BackLink.Render("← " + label)
	y := f.add(link)
	layout.BackLink = outside.Rect{X: originX, Y: originY + y, Width: lipgloss.Width(link), Height: 1}
}

func (r *Renderer) renderTeam(f *frame, layout *Layout, state ViewState, st *navigation.TeamBrowseState, width int) {
	r.renderBackLink(f, layout, "Back to search")
	f.add("")

	accent := lipgloss.NewStyle().Bold(true).Foreground(AccentColor(st.Team))
	f.add(accent.Render(st.Team.String()))
	f.add(r.styles.Dim.Render(fmt.Sprintf("Browse all %s documents", st.Team)))
	f.add("")

	switch {
	case st.LoadingTeam:
		f.add(state.SpinnerView + " Loading documents...")
	case len(st.Documents) == 0:
		f.add(r.styles.Empty.Render(fmt.Sprintf("No %s documents found", st.Team)))
	default:
		list := logic.Cursor{Index: state.ListCursor, Offset: state.ListOffset}
		start, end := list.Visible(len(st.Documents), ListHeight(state.Height))
		for i := start; i < end; i++ {
			line := r.resultLine(st.Documents[i], width)
			if i == state.ListCursor {
				line = r.styles.SelectionBg.Width(width).Render(line)
			}
			y := f.add(line)
			layout.ListRows = append(layout.ListRows, RowHit{
				Index: i,
				Rect:  outside.Rect{X: originX, Y: originY + y, Width: width, Height: 1},
			})
		}
	}
}

func (r *Renderer) renderDocument(f *frame, layout *Layout, state ViewState, st *navigation.DocumentViewState) {
	r.renderBackLink(f, layout, st.Origin.BackLabel())
	f.add("")
	f.add(r.styles.DocTitle.Render(st.Document.Name))
	f.add("")

	if st.LoadingContent {
		f.add(state.SpinnerView + " Loading content...")
		return
	}
	f.add(state.ContentView)
}

// resultLine renders a name with its preview, cut to width
func (r *Renderer) resultLine(res domain.SearchResult, width int) string {
	name := truncate(res.Name, width)
	rest := width - lipgloss.Width(name) - 2
	if res.Preview == "" || rest < 4 {
		return name
	}
	return name + "  " + r.styles.Preview.Render(truncate(res.Preview, rest))
}

// truncate shortens plain text to width cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
