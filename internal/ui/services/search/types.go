package search

import (
	"docsearch/internal/domain"
	"docsearch/internal/ui/services/sequencer"
)

// ResultsMsg is the sequenced outcome of a search request
type ResultsMsg = sequencer.Response[[]domain.SearchResult]

// Snapshot is the search view as seen by the rendering layer
type Snapshot struct {
	Query        string
	Results      []domain.SearchResult
	DropdownOpen bool
	Searching    bool
	NoResults    bool
}
