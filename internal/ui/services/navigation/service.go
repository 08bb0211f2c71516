package navigation

import (
	"fmt"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
)

// Service owns the active navigation state. Exactly one variant is
// current; a team listing left for a document is kept for "back".
type Service struct {
	current State
	saved   *TeamBrowseState
	bus     eventbus.EventBus
}

// NewService creates a navigation service in an empty Search state
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		current: &SearchState{},
		bus:     bus,
	}
}

// Current returns the active view
func (s *Service) Current() View {
	return s.current.View()
}

// Snapshot returns a deep copy of the active state for rendering
func (s *Service) Snapshot() State {
	return s.current.clone()
}

// Search returns the active search state, or nil in another view
func (s *Service) Search() *SearchState {
	st, _ := s.current.(*SearchState)
	return st
}

// TeamBrowse returns the active team state, or nil in another view
func (s *Service) TeamBrowse() *TeamBrowseState {
	st, _ := s.current.(*TeamBrowseState)
	return st
}

// DocumentView returns the active document state, or nil in another view
func (s *Service) DocumentView() *DocumentViewState {
	st, _ := s.current.(*DocumentViewState)
	return st
}

// TeamListing returns the listing for team whether it is shown or kept
// behind a document view, or nil if there is none.
func (s *Service) TeamListing(team domain.Team) *TeamBrowseState {
	if st := s.TeamBrowse(); st != nil && st.Team == team {
		return st
	}
	if s.saved != nil && s.saved.Team == team {
		return s.saved
	}
	return nil
}

// OpenDocument moves to DocumentView for result, fixing its origin
func (s *Service) OpenDocument(result domain.SearchResult) (*DocumentViewState, error) {
	var origin Origin
	switch st := s.current.(type) {
	case *SearchState:
		origin = OriginSearch()
		s.saved = nil
	case *TeamBrowseState:
		origin = OriginTeam(st.Team)
		s.saved = st
	default:
		return nil, fmt.Errorf("open document from %s: %w", s.Current(), ErrInvalidTransition)
	}

	doc := &DocumentViewState{
		Document: domain.DocumentFromResult(result),
		Origin:   origin,
	}
	s.current = doc
	s.bus.Publish(eventbus.DocumentOpenedEvent{ID: result.ID, Origin: origin.String()})
	return doc, nil
}

// BrowseTeam moves from Search to TeamBrowse for team
func (s *Service) BrowseTeam(team domain.Team) (*TeamBrowseState, error) {
	if s.Current() != ViewSearch {
		return nil, fmt.Errorf("browse team from %s: %w", s.Current(), ErrInvalidTransition)
	}

	st := &TeamBrowseState{Team: team}
	s.current = st
	s.saved = nil
	s.bus.Publish(eventbus.TeamOpenedEvent{Team: team})
	return st, nil
}

// Back leaves the active view and returns the view entered
func (s *Service) Back() (View, error) {
	from := s.Current()
	switch st := s.current.(type) {
	case *TeamBrowseState:
		s.ResetToSearch()
	case *DocumentViewState:
		if st.Origin.Kind == OriginKindTeam {
			listing := s.saved
			if listing == nil || listing.Team != st.Origin.Team {
				listing = &TeamBrowseState{Team: st.Origin.Team}
			}
			s.current = listing
			s.saved = nil
		} else {
			s.ResetToSearch()
		}
	default:
		return from, fmt.Errorf("back from %s: %w", from, ErrInvalidTransition)
	}

	to := s.Current()
	s.bus.Publish(eventbus.NavigatedBackEvent{From: from.String(), To: to.String()})
	return to, nil
}

// ResetToSearch enters a fresh, empty Search state
func (s *Service) ResetToSearch() {
	s.current = &SearchState{}
	s.saved = nil
}
