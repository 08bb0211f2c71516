package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
)

var specSheet = domain.SearchResult{ID: "42", Name: "Spec Sheet"}

func TestService_InitialStateIsEmptySearch(t *testing.T) {
	t.Parallel()

	s := NewService(nil)
	require.Equal(t, ViewSearch, s.Current())
	assert.Equal(t, &SearchState{}, s.Snapshot())
}

func TestService_OpenFromSearchThenBackResets(t *testing.T) {
	t.Parallel()

	rec := eventbus.NewRecorder()
	s := NewService(rec)
	search := s.Search()
	search.Query = "spec"
	search.Results = []domain.SearchResult{specSheet}
	search.DropdownOpen = true

	doc, err := s.OpenDocument(specSheet)
	require.NoError(t, err)
	assert.Equal(t, OriginSearch(), doc.Origin)
	assert.Equal(t, "Spec Sheet", doc.Document.Name)
	assert.Nil(t, s.Search())

	view, err := s.Back()
	require.NoError(t, err)
	assert.Equal(t, ViewSearch, view)
	assert.Equal(t, &SearchState{}, s.Snapshot())
	assert.Len(t, rec.OfType(eventbus.EventNavigatedBack), 1)
}

func TestService_BackToTeamReusesDocuments(t *testing.T) {
	t.Parallel()

	s := NewService(nil)
	team, err := s.BrowseTeam(domain.TeamMercedes)
	require.NoError(t, err)
	team.Documents = []domain.SearchResult{specSheet, {ID: "7", Name: "Aero"}}

	doc, err := s.OpenDocument(team.Documents[1])
	require.NoError(t, err)
	assert.Equal(t, OriginTeam(domain.TeamMercedes), doc.Origin)
	assert.Equal(t, "Back to Mercedes documents", doc.Origin.BackLabel())

	view, err := s.Back()
	require.NoError(t, err)
	assert.Equal(t, ViewTeamBrowse, view)

	restored := s.TeamBrowse()
	require.NotNil(t, restored)
	assert.Equal(t, domain.TeamMercedes, restored.Team)
	assert.Len(t, restored.Documents, 2)
}

func TestService_TeamBackGoesToEmptySearch(t *testing.T) {
	t.Parallel()

	s := NewService(nil)
	_, err := s.BrowseTeam(domain.TeamFerrari)
	require.NoError(t, err)

	view, err := s.Back()
	require.NoError(t, err)
	assert.Equal(t, ViewSearch, view)
	assert.Nil(t, s.TeamListing(domain.TeamFerrari))
}

func TestService_InvalidTransitions(t *testing.T) {
	t.Parallel()

	s := NewService(nil)
	_, err := s.Back()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.OpenDocument(specSheet)
	require.NoError(t, err)

	_, err = s.BrowseTeam(domain.TeamMcLaren)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.OpenDocument(specSheet)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, ViewDocument, s.Current())
}

func TestService_SnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	s := NewService(nil)
	s.Search().Results = []domain.SearchResult{specSheet}

	snap := s.Snapshot().(*SearchState)
	snap.Results[0].Name = "changed"

	assert.Equal(t, "Spec Sheet", s.Search().Results[0].Name)
}
