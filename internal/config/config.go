package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"docsearch/internal/eventbus"
)

// Defaults
const (
	DefaultBaseURL          = "http://localhost:8000"
	DefaultDebounceMS       = 300
	DefaultRequestTimeoutMS = 10000
	DefaultLogFile          = "docsearch.log"
	DefaultMaxDropdownRows  = 8
	DefaultServerAddr       = ":8000"
	DefaultServerPattern    = "**/*.{txt,md}"
)

// Config represents the application configuration
type Config struct {
	BaseURL          string         `toml:"base_url"`
	DebounceMS       int            `toml:"debounce_ms"`
	RequestTimeoutMS int            `toml:"request_timeout_ms"`
	LogFile          string         `toml:"log_file"`
	UI               UISettings     `toml:"ui"`
	Server           ServerSettings `toml:"server"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse           bool `toml:"mouse"`
	MaxDropdownRows int  `toml:"max_dropdown_rows"`
}

// ServerSettings configures the development backend
type ServerSettings struct {
	Addr    string `toml:"addr"`
	DocsDir string `toml:"docs_dir"`
	Pattern string `toml:"pattern"`
}

// Debounce returns the quiet window before a query is sent
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// RequestTimeout returns the transport timeout for backend requests
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", c.BaseURL)
	}
	if c.DebounceMS <= 0 {
		return fmt.Errorf("debounce_ms must be positive, got %d", c.DebounceMS)
	}
	if c.RequestTimeoutMS <= 0 {
		return fmt.Errorf("request_timeout_ms must be positive, got %d", c.RequestTimeoutMS)
	}
	if c.UI.MaxDropdownRows <= 0 {
		return fmt.Errorf("ui.max_dropdown_rows must be positive, got %d", c.UI.MaxDropdownRows)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns ~/.config/docsearch/config.toml (or the platform equivalent)
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Dir returns the docsearch configuration directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "docsearch")
}

// NewConfigService creates a config service for the given file; an empty
// path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			BaseURL: cfg.BaseURL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		DebounceMS:       DefaultDebounceMS,
		RequestTimeoutMS: DefaultRequestTimeoutMS,
		LogFile:          DefaultLogFile,
		UI: UISettings{
			Mouse:           true,
			MaxDropdownRows: DefaultMaxDropdownRows,
		},
		Server: ServerSettings{
			Addr:    DefaultServerAddr,
			DocsDir: ".",
			Pattern: DefaultServerPattern,
		},
	}
}
