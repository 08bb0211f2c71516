package teams

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/ui/services/navigation"
	"docsearch/internal/ui/services/sequencer"
)

// DocumentsMsg is the sequenced outcome of a team listing request
type DocumentsMsg struct {
	Team     domain.Team
	Response sequencer.Response[[]domain.SearchResult]
}

// Service lists the documents of a team. The backend has no category
// endpoint; the team's display name is sent as a search term.
type Service struct {
	nav  *navigation.Service
	seq  *sequencer.Sequencer
	bus  eventbus.EventBus
	docs domain.DocumentService
	ctx  context.Context
}

// NewService creates a team browse controller
func NewService(bus eventbus.EventBus, nav *navigation.Service, seq *sequencer.Sequencer) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		nav: nav,
		seq: seq,
		bus: bus,
		ctx: context.Background(),
	}
}

// SetDocumentService sets the backend used for listing requests
func (s *Service) SetDocumentService(docs domain.DocumentService) {
	s.docs = docs
}

// SetContext sets the context passed to listing requests
func (s *Service) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// Load starts fetching the documents of the team being browsed
func (s *Service) Load() tea.Cmd {
	st := s.nav.TeamBrowse()
	if st == nil || s.docs == nil {
		return nil
	}

	st.Documents = nil
	st.LoadingTeam = true

	docs, team := s.docs, st.Team
	_, cmd := sequencer.Issue(s.seq, s.ctx, sequencer.KindTeamFetch, func(ctx context.Context) ([]domain.SearchResult, error) {
		return docs.Search(ctx, team.String())
	})
	return func() tea.Msg {
		return DocumentsMsg{Team: team, Response: cmd().(sequencer.Response[[]domain.SearchResult])}
	}
}

// HandleResponse applies a listing if it is still current. The listing
// may be kept behind an open document, in which case it is updated there.
func (s *Service) HandleResponse(msg DocumentsMsg) bool {
	resp := msg.Response
	if !s.seq.Accept(resp.Ticket) {
		s.bus.Publish(eventbus.StaleResponseDroppedEvent{Kind: string(resp.Ticket.Kind), Seq: resp.Ticket.Seq})
		return false
	}
	st := s.nav.TeamListing(msg.Team)
	if st == nil {
		return false
	}

	documents := resp.Value
	if resp.Err != nil {
		s.bus.Publish(eventbus.RequestFailedEvent{
			Kind:   string(sequencer.KindTeamFetch),
			Target: msg.Team.String(),
			Err:    resp.Err,
		})
		documents = nil
	}
	if documents == nil {
		documents = []domain.SearchResult{}
	}

	st.Documents = documents
	st.LoadingTeam = false
	s.bus.Publish(eventbus.TeamLoadedEvent{Team: msg.Team, Documents: len(documents)})
	return true
}

// Cancel drops any listing request in flight
func (s *Service) Cancel() {
	s.seq.Supersede(sequencer.KindTeamFetch)
}
