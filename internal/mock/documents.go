package mock

import (
	"context"

	"docsearch/internal/domain"
)

var _ domain.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of domain.DocumentService.
type DocumentService struct {
	SearchFn  func(ctx context.Context, term string) ([]domain.SearchResult, error)
	ContentFn func(ctx context.Context, id string) (string, error)
}

func (s *DocumentService) Search(ctx context.Context, term string) ([]domain.SearchResult, error) {
	return s.SearchFn(ctx, term)
}

func (s *DocumentService) Content(ctx context.Context, id string) (string, error) {
	return s.ContentFn(ctx, id)
}
