package main_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "docsearch/cmd/docsearch"
	"docsearch/internal/config"
	"docsearch/internal/session"
)

func newMain(t *testing.T) *main.Main {
	t.Helper()
	dir := t.TempDir()

	configPath := filepath.Join(dir, "config.toml")
	data := fmt.Sprintf("log_file = %q\n", filepath.Join(dir, "docsearch.log"))
	require.NoError(t, os.WriteFile(configPath, []byte(data), 0644))

	m := main.NewMain()
	m.ConfigPath = configPath
	m.SessionPath = filepath.Join(dir, "session.toml")
	return m
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range []string{"browse", "serve", "login", "logout", "init"} {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := newMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "serve")
}

func TestMain_Run_LoginLogout(t *testing.T) {
	t.Parallel()

	m := newMain(t)
	ctx := context.Background()

	stdout := &bytes.Buffer{}
	require.NoError(t, m.Run(ctx, []string{"login", "--email", "jane@example.com"}, stdout, &bytes.Buffer{}))
	assert.Equal(t, "Welcome, jane!\n", stdout.String())

	sess, ok := session.NewFileProvider(m.SessionPath).Current()
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", sess.Email)

	stdout.Reset()
	require.NoError(t, m.Run(ctx, []string{"logout"}, stdout, &bytes.Buffer{}))
	assert.Equal(t, "Signed out.\n", stdout.String())

	stdout.Reset()
	require.NoError(t, m.Run(ctx, []string{"logout"}, stdout, &bytes.Buffer{}))
	assert.Equal(t, "Not signed in.\n", stdout.String())
}

func TestMain_Run_LoginRejectsInvalidEmail(t *testing.T) {
	t.Parallel()

	err := newMain(t).Run(context.Background(), []string{"login", "--email", "not an email"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestMain_Run_BrowseRequiresSession(t *testing.T) {
	t.Parallel()

	stderr := &bytes.Buffer{}
	err := newMain(t).Run(context.Background(), nil, &bytes.Buffer{}, stderr)
	require.ErrorIs(t, err, session.ErrNoSession)
	assert.Contains(t, stderr.String(), "docsearch login")
}

func TestMain_Run_BrowseReportsCorruptSession(t *testing.T) {
	t.Parallel()

	m := newMain(t)
	require.NoError(t, os.WriteFile(m.SessionPath, []byte("email = "), 0600))

	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"browse"}, &bytes.Buffer{}, stderr)
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNoSession)
	assert.Contains(t, err.Error(), "parse session")
	assert.Contains(t, stderr.String(), m.SessionPath)
}

func TestMain_Run_BrowseRejectsUnknownTeam(t *testing.T) {
	t.Parallel()

	err := newMain(t).Run(context.Background(), []string{"browse", "--team", "Williams"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown team "Williams"`)
}

func TestMain_Run_InitWritesConfig(t *testing.T) {
	t.Parallel()

	m := newMain(t)
	ctx := context.Background()

	err := m.Run(ctx, []string{"init", "--url", "https://search.example.com"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err = m.Run(ctx, []string{"init", "--force", "--url", "https://search.example.com"}, stdout, stderr)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Wrote %s\n", m.ConfigPath), stdout.String())
	assert.Contains(t, stderr.String(), "config saved")

	cfg, err := config.NewConfigService(m.ConfigPath).Load()
	require.NoError(t, err)
	assert.Equal(t, "https://search.example.com", cfg.BaseURL)
	assert.Equal(t, filepath.Join(filepath.Dir(m.ConfigPath), "docsearch.log"), cfg.LogFile)
}

func TestMain_Run_InvalidConfig(t *testing.T) {
	t.Parallel()

	m := newMain(t)
	require.NoError(t, os.WriteFile(m.ConfigPath, []byte(`base_url = "ftp://nope"`), 0644))

	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"logout"}, &bytes.Buffer{}, stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Hint")
}

func TestMain_Run_ServeStopsWithContext(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docs, "spec_sheet.txt"), []byte("Line one"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stderr := &bytes.Buffer{}
	err := newMain(t).Run(ctx, []string{"serve", docs, "--addr", "127.0.0.1:0"}, &bytes.Buffer{}, stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "documents loaded")
	assert.Contains(t, stderr.String(), "count=1")
}
