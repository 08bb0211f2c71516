package backend

import (
	"context"
	"log/slog"
	"time"

	"docsearch/internal/domain"
)

var _ domain.DocumentService = (*LoggingService)(nil)

// LoggingService wraps a DocumentService with request logging.
type LoggingService struct {
	next   domain.DocumentService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next domain.DocumentService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Search logs the term, result count and duration.
func (s *LoggingService) Search(ctx context.Context, term string) (results []domain.SearchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"term", term,
			"results", len(results),
			"duration", time.Since(begin),
		}
		if err != nil {
			s.logger.Warn("search", append(attrs, "err", err)...)
			return
		}
		s.logger.Info("search", attrs...)
	}(time.Now())

	return s.next.Search(ctx, term)
}

// Content logs the document id, size and duration.
func (s *LoggingService) Content(ctx context.Context, id string) (content string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"id", id,
			"bytes", len(content),
			"duration", time.Since(begin),
		}
		if err != nil {
			s.logger.Warn("document", append(attrs, "err", err)...)
			return
		}
		s.logger.Info("document", attrs...)
	}(time.Now())

	return s.next.Content(ctx, id)
}
