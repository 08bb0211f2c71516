package main

import (
	"context"
	"io"
	"log/slog"

	"docsearch/internal/config"
	"docsearch/internal/eventbus"
	"docsearch/internal/session"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Bus        eventbus.EventBus
	Config     *config.Config
	Configs    config.ConfigService
	ConfigPath string
	Sessions   *session.FileProvider
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" type:"path" env:"DOCSEARCH_CONFIG" help:"Path to the config file"`

	Browse BrowseCmd `cmd:"" default:"withargs" help:"Search documents or browse them by team (default)"`
	Serve  ServeCmd  `cmd:"" help:"Serve a directory of documents over the search API"`
	Login  LoginCmd  `cmd:"" help:"Sign in with an email address"`
	Logout LogoutCmd `cmd:"" help:"Sign out"`
	Init   InitCmd   `cmd:"" help:"Write the configuration file"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	URL  string `name:"url" short:"u" help:"Backend base URL, overriding the config file"`
	Team string `short:"t" help:"Open the document listing of a team (Ferrari, Mercedes or McLaren)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Dir     string `arg:"" optional:"" type:"existingdir" help:"Directory of documents (default: server.docs_dir)"`
	Addr    string `short:"a" help:"Listen address (default: server.addr)"`
	Pattern string `short:"p" help:"Glob selecting document files (default: server.pattern)"`
	CORS    bool   `name:"cors" help:"Allow cross-origin requests from any origin"`
}

// LoginCmd is the "login" subcommand.
type LoginCmd struct {
	Email string `required:"" short:"e" help:"Email address to sign in with"`
}

// LogoutCmd is the "logout" subcommand.
type LogoutCmd struct{}

// InitCmd is the "init" subcommand.
type InitCmd struct {
	URL   string `name:"url" short:"u" help:"Backend base URL to store"`
	Force bool   `short:"f" help:"Overwrite an existing config file"`
}
