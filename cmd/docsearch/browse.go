package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/backend"
	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/session"
	"docsearch/internal/ui"
)

// Run starts the interactive document browser.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	var team domain.Team
	if c.Team != "" {
		var ok bool
		if team, ok = domain.ParseTeam(c.Team); !ok {
			return fmt.Errorf("unknown team %q: want one of %v", c.Team, domain.AllTeams())
		}
	}

	sess, err := deps.Sessions.Load()
	if errors.Is(err, session.ErrNoSession) {
		fmt.Fprintln(deps.Stderr, "Not signed in. Run 'docsearch login --email <address>' first.")
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: remove %s and sign in again\n", deps.Sessions.Path())
		return err
	}

	baseURL := deps.Config.BaseURL
	if c.URL != "" {
		baseURL = c.URL
	}
	client, err := backend.NewClient(baseURL, backend.WithTimeout(deps.Config.RequestTimeout()))
	if err != nil {
		return err
	}
	docs := backend.NewLoggingService(client, deps.Logger)

	logEvents(deps)

	model := ui.NewModel(deps.Bus, deps.Config, docs)
	model.SetContext(deps.Ctx)
	model.SetSession(deps.Sessions)
	if team != "" {
		model.StartInTeam(team)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(deps.Ctx)}
	if deps.Config.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	deps.Logger.Info("browsing", "user", sess.Email, "base_url", baseURL)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && deps.Ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// logEvents records request diagnostics, which the UI never shows.
func logEvents(deps *Dependencies) {
	deps.Bus.Subscribe(eventbus.EventRequestFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RequestFailedEvent); ok {
			deps.Logger.Warn("request failed", "kind", event.Kind, "target", event.Target, "error", event.Err)
		}
	})
	deps.Bus.Subscribe(eventbus.EventStaleResponseDropped, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.StaleResponseDroppedEvent); ok {
			deps.Logger.Debug("stale response dropped", "kind", event.Kind, "seq", event.Seq)
		}
	})
	deps.Bus.Subscribe(eventbus.EventDocumentOpened, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DocumentOpenedEvent); ok {
			deps.Logger.Debug("document opened", "id", event.ID, "origin", event.Origin)
		}
	})
}
