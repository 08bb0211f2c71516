package backend_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/backend"
	"docsearch/internal/domain"
	"docsearch/internal/mock"
)

func TestLoggingService_Search(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.DocumentService{
		SearchFn: func(ctx context.Context, term string) ([]domain.SearchResult, error) {
			return []domain.SearchResult{{ID: "42", Name: "Spec Sheet"}}, nil
		},
	}

	results, err := backend.NewLoggingService(inner, logger).Search(context.Background(), "spec")

	require.NoError(t, err)
	assert.Len(t, results, 1)
	output := buf.String()
	assert.Contains(t, output, "term=spec")
	assert.Contains(t, output, "results=1")
	assert.Contains(t, output, "duration=")
}

func TestLoggingService_ContentError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.DocumentService{
		ContentFn: func(ctx context.Context, id string) (string, error) {
			return "", errors.New("network error")
		},
	}

	_, err := backend.NewLoggingService(inner, logger).Content(context.Background(), "42")

	require.Error(t, err)
	output := buf.String()
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "id=42")
	assert.Contains(t, output, "err=\"network error\"")
}
