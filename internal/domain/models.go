package domain

import "context"

// SearchResult is a single document hit returned by the backend.
// Results are kept in the order the backend returned them.
type SearchResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Preview string `json:"preview,omitempty"`
}

// Document is an opened document. Content is fetched lazily when the
// document is opened and never prefetched.
type Document struct {
	ID      string
	Name    string
	Content string
}

// DocumentFromResult returns the document header for a search result
func DocumentFromResult(r SearchResult) Document {
	return Document{ID: r.ID, Name: r.Name}
}

// DocumentService is the backend contract consumed by the controllers.
type DocumentService interface {
	// Search returns documents matching term, in relevance order.
	Search(ctx context.Context, term string) ([]SearchResult, error)

	// Content returns the full text of the document with the given id.
	Content(ctx context.Context, id string) (string, error)
}
