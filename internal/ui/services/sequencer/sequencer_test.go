package sequencer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencer_OnlyLatestTicketAccepted(t *testing.T) {
	t.Parallel()

	s := New()
	_, cmdA := Issue(s, context.Background(), KindSearch, func(context.Context) (string, error) {
		return "a", nil
	})
	_, cmdB := Issue(s, context.Background(), KindSearch, func(context.Context) (string, error) {
		return "b", nil
	})

	// B resolves first, then A.
	respB := cmdB().(Response[string])
	respA := cmdA().(Response[string])

	assert.True(t, s.Accept(respB.Ticket))
	assert.False(t, s.Accept(respA.Ticket))
	assert.Equal(t, "b", respB.Value)
}

func TestSequencer_KindsAreIndependent(t *testing.T) {
	t.Parallel()

	s := New()
	doc := s.Next(KindDocumentFetch)
	s.Next(KindSearch)
	s.Next(KindSearch)

	assert.True(t, s.Accept(doc))
	assert.Equal(t, uint64(2), s.issued[KindSearch])
	assert.Zero(t, s.issued[KindTeamFetch])
}

func TestSequencer_StaleErrorsAreDropped(t *testing.T) {
	t.Parallel()

	s := New()
	boom := errors.New("boom")
	_, cmd := Issue(s, context.Background(), KindDocumentFetch, func(context.Context) (int, error) {
		return 0, boom
	})
	s.Next(KindDocumentFetch)

	resp := cmd().(Response[int])
	require.ErrorIs(t, resp.Err, boom)
	assert.False(t, s.Accept(resp.Ticket))
}

func TestSequencer_Supersede(t *testing.T) {
	t.Parallel()

	s := New()
	ticket := s.Next(KindTeamFetch)
	s.Supersede(KindTeamFetch)

	assert.False(t, s.Accept(ticket))
	assert.False(t, s.Accept(Ticket{Kind: KindTeamFetch}))
}
