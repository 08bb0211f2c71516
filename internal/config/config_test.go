package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/eventbus"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	rec := eventbus.NewRecorder()
	svc := NewConfigServiceWithBus(filepath.Join(t.TempDir(), "config.toml"), rec)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Len(t, rec.OfType(eventbus.EventConfigLoaded), 1)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
base_url = "http://docs.internal:9000"

[ui]
max_dropdown_rows = 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://docs.internal:9000", cfg.BaseURL)
	assert.Equal(t, 5, cfg.UI.MaxDropdownRows)
	assert.Equal(t, DefaultDebounceMS, cfg.DebounceMS)
	assert.Equal(t, DefaultServerPattern, cfg.Server.Pattern)
}

func TestLoadFromPath_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"malformed toml", `base_url = `},
		{"bad scheme", `base_url = "ftp://example.com"`},
		{"zero debounce", `debounce_ms = 0`},
		{"negative timeout", `request_timeout_ms = -1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := NewConfigService(path).LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	rec := eventbus.NewRecorder()
	svc := NewConfigServiceWithBus(path, rec)

	cfg := DefaultConfig()
	cfg.BaseURL = "https://search.example.com"
	cfg.UI.Mouse = false
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Len(t, rec.OfType(eventbus.EventConfigSaved), 1)
}
