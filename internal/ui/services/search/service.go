package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/ui/services/debounce"
	"docsearch/internal/ui/services/navigation"
	"docsearch/internal/ui/services/sequencer"
)

// Service drives the Search view: query text, results, dropdown and loading flag
type Service struct {
	nav       *navigation.Service
	seq       *sequencer.Sequencer
	debouncer *debounce.Scheduler
	bus       eventbus.EventBus
	docs      domain.DocumentService
	ctx       context.Context
	openFn    func(domain.SearchResult) tea.Cmd // Function to open a selected result
	inflight  string                            // Term of the newest search request
	dismissed bool
}

// NewService creates a search controller over the shared navigation state
func NewService(bus eventbus.EventBus, nav *navigation.Service, seq *sequencer.Sequencer, debouncer *debounce.Scheduler) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		nav:       nav,
		seq:       seq,
		debouncer: debouncer,
		bus:       bus,
		ctx:       context.Background(),
	}
}

// SetDocumentService sets the backend used for search requests
func (s *Service) SetDocumentService(docs domain.DocumentService) {
	s.docs = docs
}

// SetContext sets the context passed to search requests
func (s *Service) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// SetOpenFunction sets the function that opens a selected result
func (s *Service) SetOpenFunction(fn func(domain.SearchResult) tea.Cmd) {
	s.openFn = fn
}

// SetQuery updates the query immediately and restarts the debounce window.
// A blank query clears results and closes the dropdown synchronously.
func (s *Service) SetQuery(text string) tea.Cmd {
	st := s.nav.Search()
	if st == nil {
		return nil
	}

	st.Query = text
	if strings.TrimSpace(text) == "" {
		s.debouncer.Cancel()
		s.clearResults(st)
		return nil
	}
	return s.debouncer.Input(text)
}

// ClearQuery empties the query and clears results without a request
func (s *Service) ClearQuery() {
	st := s.nav.Search()
	if st == nil {
		return
	}
	st.Query = ""
	s.debouncer.Cancel()
	s.clearResults(st)
}

// HandleDebounce issues a search if msg is the pending debounce expiry
func (s *Service) HandleDebounce(msg debounce.ExpiredMsg) tea.Cmd {
	text, ok := s.debouncer.Fire(msg)
	if !ok {
		return nil
	}
	st := s.nav.Search()
	if st == nil {
		return nil
	}

	term := strings.TrimSpace(text)
	if term == "" {
		s.clearResults(st)
		return nil
	}
	if s.docs == nil {
		return nil
	}

	st.Searching = true
	st.DropdownOpen = true
	s.dismissed = false
	s.inflight = term

	docs := s.docs
	ticket, cmd := sequencer.Issue(s.seq, s.ctx, sequencer.KindSearch, func(ctx context.Context) ([]domain.SearchResult, error) {
		return docs.Search(ctx, term)
	})
	s.bus.Publish(eventbus.SearchIssuedEvent{Term: term, Seq: ticket.Seq})
	return cmd
}

// HandleResponse applies a search response if it is still current and
// reports whether it did. Failures degrade to zero results.
func (s *Service) HandleResponse(msg ResultsMsg) bool {
	if !s.seq.Accept(msg.Ticket) {
		s.bus.Publish(eventbus.StaleResponseDroppedEvent{Kind: string(msg.Ticket.Kind), Seq: msg.Ticket.Seq})
		return false
	}
	st := s.nav.Search()
	if st == nil {
		return false
	}

	results := msg.Value
	if msg.Err != nil {
		s.bus.Publish(eventbus.RequestFailedEvent{
			Kind:   string(sequencer.KindSearch),
			Target: s.inflight,
			Err:    msg.Err,
		})
		results = nil
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	st.Results = results
	st.Searching = false
	st.DropdownOpen = !s.dismissed

	s.bus.Publish(eventbus.SearchCompletedEvent{Term: s.inflight, Results: len(results)})
	return true
}

// SelectResult opens result in the document view
func (s *Service) SelectResult(result domain.SearchResult) tea.Cmd {
	st := s.nav.Search()
	if st == nil {
		return nil
	}
	st.DropdownOpen = false
	if s.openFn == nil {
		return nil
	}
	return s.openFn(result)
}

// Dismiss closes the dropdown without clearing results
func (s *Service) Dismiss() {
	st := s.nav.Search()
	if st == nil || !st.DropdownOpen {
		return
	}
	st.DropdownOpen = false
	s.dismissed = true
	s.bus.Publish(eventbus.DropdownDismissedEvent{})
}

// Leave stops pending work when the Search view is no longer shown
func (s *Service) Leave() {
	s.debouncer.Cancel()
	s.seq.Supersede(sequencer.KindSearch)
	s.dismissed = false
	s.inflight = ""
}

// DropdownOpen reports whether the dropdown is shown
func (s *Service) DropdownOpen() bool {
	st := s.nav.Search()
	return st != nil && st.DropdownOpen
}

// Snapshot returns the search view for rendering
func (s *Service) Snapshot() Snapshot {
	st := s.nav.Search()
	if st == nil {
		return Snapshot{}
	}
	results := make([]domain.SearchResult, len(st.Results))
	copy(results, st.Results)
	return Snapshot{
		Query:        st.Query,
		Results:      results,
		DropdownOpen: st.DropdownOpen,
		Searching:    st.Searching,
		NoResults:    st.DropdownOpen && !st.Searching && len(st.Results) == 0 && strings.TrimSpace(st.Query) != "",
	}
}

func (s *Service) clearResults(st *navigation.SearchState) {
	// In-flight responses must not repopulate a cleared query.
	s.seq.Supersede(sequencer.KindSearch)
	st.Results = nil
	st.Searching = false
	st.DropdownOpen = false
	s.dismissed = false
}
