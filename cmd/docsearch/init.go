package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"docsearch/internal/eventbus"
)

// Run writes the loaded configuration, with any overrides, to the config file.
func (c *InitCmd) Run(deps *Dependencies) error {
	if _, err := os.Stat(deps.ConfigPath); err == nil && !c.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", deps.ConfigPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check config file: %w", err)
	}

	cfg := *deps.Config
	if c.URL != "" {
		cfg.BaseURL = c.URL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	deps.Bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			deps.Logger.Info("config saved", "path", event.Path)
		}
	})
	if err := deps.Configs.Save(&cfg); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", deps.ConfigPath)
	return nil
}
