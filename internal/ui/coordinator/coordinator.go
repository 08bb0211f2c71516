package coordinator

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/ui/services/debounce"
	"docsearch/internal/ui/services/document"
	"docsearch/internal/ui/services/navigation"
	"docsearch/internal/ui/services/outside"
	"docsearch/internal/ui/services/search"
	"docsearch/internal/ui/services/sequencer"
	"docsearch/internal/ui/services/teams"
)

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Search     *search.Service
	Documents  *document.Service
	Teams      *teams.Service
	Outside    *outside.Detector

	// Dependencies
	bus    eventbus.EventBus
	region outside.Rect
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus eventbus.EventBus, docs domain.DocumentService, debounceDelay time.Duration) *Coordinator {
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	nav := navigation.NewService(bus)
	seq := sequencer.New()
	deb := debounce.NewScheduler(debounceDelay)

	c := &Coordinator{
		Navigation: nav,
		Search:     search.NewService(bus, nav, seq, deb),
		Documents:  document.NewService(bus, nav, seq),
		Teams:      teams.NewService(bus, nav, seq),
		bus:        bus,
	}

	// Wire up service dependencies
	c.wireServices(docs)

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices(docs domain.DocumentService) {
	c.Search.SetDocumentService(docs)
	c.Documents.SetDocumentService(docs)
	c.Teams.SetDocumentService(docs)

	// Selecting a result leaves the Search view for the document
	c.Search.SetOpenFunction(c.openFromSearch)

	// Clicks outside the search box dismiss the open dropdown
	c.Outside = outside.New(c.Search.Dismiss, c.Search.DropdownOpen)
	c.Outside.Attach(c.region)
}

// SetContext sets the context used for backend requests
func (c *Coordinator) SetContext(ctx context.Context) {
	c.Search.SetContext(ctx)
	c.Documents.SetContext(ctx)
	c.Teams.SetContext(ctx)
}

// SearchSnapshot returns the search view as the renderer draws it
func (c *Coordinator) SearchSnapshot() search.Snapshot {
	return c.Search.Snapshot()
}

// View returns the active view
func (c *Coordinator) View() navigation.View {
	return c.Navigation.Current()
}

// Snapshot returns a read-only copy of the active state
func (c *Coordinator) Snapshot() navigation.State {
	return c.Navigation.Snapshot()
}

// SetSearchRegion updates the search box and dropdown region
func (c *Coordinator) SetSearchRegion(r outside.Rect) {
	c.region = r
	c.Outside.SetRegion(r)
}

// SetQuery forwards typed text to the search controller
func (c *Coordinator) SetQuery(text string) tea.Cmd {
	return c.Search.SetQuery(text)
}

// ClearQuery empties the search box
func (c *Coordinator) ClearQuery() {
	c.Search.ClearQuery()
}

// Dismiss closes the dropdown
func (c *Coordinator) Dismiss() {
	c.Search.Dismiss()
}

// Interact reports a pointer interaction to the outside detector
func (c *Coordinator) Interact(in outside.Interaction) bool {
	return c.Outside.Observe(in)
}

// OpenDocument opens result from the Search or TeamBrowse view
func (c *Coordinator) OpenDocument(result domain.SearchResult) tea.Cmd {
	switch c.View() {
	case navigation.ViewSearch:
		return c.Search.SelectResult(result)
	case navigation.ViewTeamBrowse:
		if _, err := c.Navigation.OpenDocument(result); err != nil {
			return nil
		}
		return c.Documents.Load()
	}
	return nil
}

// BrowseTeam opens the listing for team from the Search view
func (c *Coordinator) BrowseTeam(team domain.Team) tea.Cmd {
	if c.View() != navigation.ViewSearch {
		return nil
	}
	c.leaveSearch()
	if _, err := c.Navigation.BrowseTeam(team); err != nil {
		return nil
	}
	return c.Teams.Load()
}

// Back returns to the previous view. In-flight work for the view being
// left is superseded.
func (c *Coordinator) Back() error {
	switch c.View() {
	case navigation.ViewDocument:
		c.Documents.Cancel()
	case navigation.ViewTeamBrowse:
		c.Teams.Cancel()
	}

	view, err := c.Navigation.Back()
	if err != nil {
		return err
	}
	if view == navigation.ViewSearch {
		c.Outside.Attach(c.region)
	}
	return nil
}

// Update routes response and timer messages to their controllers. The
// second return value reports whether msg was handled.
func (c *Coordinator) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case debounce.ExpiredMsg:
		return c.Search.HandleDebounce(msg), true
	case search.ResultsMsg:
		c.Search.HandleResponse(msg)
		return nil, true
	case document.ContentMsg:
		c.Documents.HandleResponse(msg)
		return nil, true
	case teams.DocumentsMsg:
		c.Teams.HandleResponse(msg)
		return nil, true
	}
	return nil, false
}

func (c *Coordinator) openFromSearch(result domain.SearchResult) tea.Cmd {
	c.leaveSearch()
	if _, err := c.Navigation.OpenDocument(result); err != nil {
		return nil
	}
	return c.Documents.Load()
}

func (c *Coordinator) leaveSearch() {
	c.Search.Leave()
	c.Outside.Detach()
}
