package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"docsearch/internal/config"
	"docsearch/internal/eventbus"
	"docsearch/internal/session"
)

func main() {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config and session file locations. Set before calling Run().
	ConfigPath  string
	SessionPath string

	logFile io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath:  config.DefaultPath(),
		SessionPath: filepath.Join(config.Dir(), "session.toml"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.logFile != nil {
		return m.logFile.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Description("Search documents or browse them by team."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}

	// The TUI owns the terminal, so it logs to a file
	command := kongCtx.Command()
	interactive := strings.HasPrefix(command, "browse")

	// Runs after bus.Close, whose handlers write to the log file
	defer m.Close()
	bus := eventbus.New(nil)
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Hint: fix or remove %s to use the defaults\n", configPath)
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := m.openLogger(cfg, interactive, stderr)
	if err != nil {
		return err
	}
	logger.Info("starting", "command", command, "config", configPath, "base_url", cfg.BaseURL)

	deps.Logger = logger
	deps.Bus = bus
	deps.Config = cfg
	deps.Configs = configSvc
	deps.ConfigPath = configPath
	deps.Sessions = session.NewFileProvider(m.SessionPath)

	return kongCtx.Run(deps)
}

// openLogger sets up structured logging. Interactive commands append to the
// configured log file; the others write to stderr.
func (m *Main) openLogger(cfg *config.Config, interactive bool, stderr io.Writer) (*slog.Logger, error) {
	if !interactive {
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo})), nil
	}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	path := cfg.LogFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(config.Dir(), path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	m.logFile = logFile

	// Libraries using the standard logger must not write over the TUI
	log.SetOutput(logFile)

	return slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})), nil
}
