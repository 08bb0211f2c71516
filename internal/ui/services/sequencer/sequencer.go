package sequencer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies an independent stream of requests
type Kind string

const (
	KindSearch        Kind = "search"
	KindDocumentFetch Kind = "documentFetch"
	KindTeamFetch     Kind = "teamFetch"
)

// Ticket identifies one issued request
type Ticket struct {
	Kind Kind
	Seq  uint64
}

// Response carries the outcome of an issued request back to the update loop
type Response[T any] struct {
	Ticket Ticket
	Value  T
	Err    error
}

// Sequencer numbers requests per kind so that only the response to the
// most recently issued request of a kind is applied.
type Sequencer struct {
	issued map[Kind]uint64
}

// New creates an empty sequencer
func New() *Sequencer {
	return &Sequencer{issued: make(map[Kind]uint64)}
}

// Next reserves the next ticket for kind
func (s *Sequencer) Next(kind Kind) Ticket {
	s.issued[kind]++
	return Ticket{Kind: kind, Seq: s.issued[kind]}
}

// Accept reports whether ticket is still the newest of its kind
func (s *Sequencer) Accept(ticket Ticket) bool {
	return ticket.Seq != 0 && ticket.Seq == s.issued[ticket.Kind]
}

// Supersede invalidates anything in flight for kind without issuing a request
func (s *Sequencer) Supersede(kind Kind) {
	s.issued[kind]++
}

// Issue reserves a ticket and returns a command that runs request and
// reports the outcome as a Response. The request runs off the update
// loop; the caller decides with Accept whether the result still applies.
func Issue[T any](s *Sequencer, ctx context.Context, kind Kind, request func(context.Context) (T, error)) (Ticket, tea.Cmd) {
	ticket := s.Next(kind)
	return ticket, func() tea.Msg {
		value, err := request(ctx)
		return Response[T]{Ticket: ticket, Value: value, Err: err}
	}
}
