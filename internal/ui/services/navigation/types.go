package navigation

import (
	"errors"
	"fmt"

	"docsearch/internal/domain"
)

// ErrInvalidTransition is returned when a trigger does not apply to the current view
var ErrInvalidTransition = errors.New("invalid navigation transition")

// View names the active navigation state
type View int

const (
	ViewSearch View = iota
	ViewTeamBrowse
	ViewDocument
)

func (v View) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewTeamBrowse:
		return "teamBrowse"
	case ViewDocument:
		return "documentView"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// State is one of SearchState, TeamBrowseState or DocumentViewState
type State interface {
	View() View
	clone() State
}

// SearchState is the free-text search view
type SearchState struct {
	Query        string
	Results      []domain.SearchResult
	DropdownOpen bool
	Searching    bool
}

func (*SearchState) View() View { return ViewSearch }

func (s *SearchState) clone() State {
	c := *s
	c.Results = cloneResults(s.Results)
	return &c
}

// TeamBrowseState lists the documents of one team
type TeamBrowseState struct {
	Team        domain.Team
	Documents   []domain.SearchResult
	LoadingTeam bool
}

func (*TeamBrowseState) View() View { return ViewTeamBrowse }

func (s *TeamBrowseState) clone() State {
	c := *s
	c.Documents = cloneResults(s.Documents)
	return &c
}

// DocumentViewState shows a single document
type DocumentViewState struct {
	Document       domain.Document
	Content        string
	LoadingContent bool
	Origin         Origin
}

func (*DocumentViewState) View() View { return ViewDocument }

func (s *DocumentViewState) clone() State {
	c := *s
	return &c
}

// OriginKind is the view a document was opened from
type OriginKind int

const (
	OriginKindSearch OriginKind = iota
	OriginKindTeam
)

// Origin is the back target of a document view
type Origin struct {
	Kind OriginKind
	Team domain.Team
}

// OriginSearch returns the origin for documents opened from search
func OriginSearch() Origin {
	return Origin{Kind: OriginKindSearch}
}

// OriginTeam returns the origin for documents opened from a team listing
func OriginTeam(team domain.Team) Origin {
	return Origin{Kind: OriginKindTeam, Team: team}
}

func (o Origin) String() string {
	if o.Kind == OriginKindTeam {
		return "team:" + o.Team.String()
	}
	return "search"
}

// BackLabel is the text of the back link in a document view
func (o Origin) BackLabel() string {
	if o.Kind == OriginKindTeam {
		return fmt.Sprintf("Back to %s documents", o.Team)
	}
	return "Back to search"
}

func cloneResults(in []domain.SearchResult) []domain.SearchResult {
	if in == nil {
		return nil
	}
	out := make([]domain.SearchResult, len(in))
	copy(out, in)
	return out
}
