package document

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/ui/services/navigation"
	"docsearch/internal/ui/services/sequencer"
)

// Placeholder replaces the content of a document that could not be fetched
const Placeholder = "Error loading document content. Please check if the backend is running and the document exists."

// ContentMsg is the sequenced outcome of a document fetch
type ContentMsg = sequencer.Response[string]

// Service fetches the content of the document being viewed
type Service struct {
	nav  *navigation.Service
	seq  *sequencer.Sequencer
	bus  eventbus.EventBus
	docs domain.DocumentService
	ctx  context.Context
}

// NewService creates a document controller
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

// SetDocumentService sets the backend used for content requests
func (s *Service) SetDocumentService(docs domain.DocumentService) {
	s.docs = docs
}

// SetContext sets the context passed to content requests
func (s *Service) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// Load starts fetching the content of the document being viewed
func (s *Service) Load() tea.Cmd {
	st := s.nav.DocumentView()
	if st == nil || s.docs == nil {
		return nil
	}

	st.Content = ""
	st.LoadingContent = true

	docs, id := s.docs, st.Document.ID
	_, cmd := sequencer.Issue(s.seq, s.ctx, sequencer.KindDocumentFetch, func(ctx context.Context) (string, error) {
		return docs.Content(ctx, id)
	})
	return cmd
}

// HandleResponse applies fetched content if the fetch is still current.
// A failed fetch shows Placeholder.
func (s *Service) HandleResponse(msg ContentMsg) bool {
	if !s.seq.Accept(msg.Ticket) {
		s.bus.Publish(eventbus.StaleResponseDroppedEvent{Kind: string(msg.Ticket.Kind), Seq: msg.Ticket.Seq})
		return false
	}
	st := s.nav.DocumentView()
	if st == nil {
		return false
	}

	st.LoadingContent = false
	if msg.Err != nil {
		st.Content = Placeholder
		s.bus.Publish(eventbus.RequestFailedEvent{
			Kind:   string(sequencer.KindDocumentFetch),
			Target: st.Document.ID,
			Err:    msg.Err,
		})
		return true
	}

	st.Content = msg.Value
	s.bus.Publish(eventbus.DocumentLoadedEvent{ID: st.Document.ID, Bytes: len(msg.Value)})
	return true
}

// Cancel drops any fetch in flight
func (s *Service) Cancel() {
	s.seq.Supersede(sequencer.KindDocumentFetch)
}
