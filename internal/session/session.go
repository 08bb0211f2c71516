// Package session gates the TUI on a locally stored sign-in.
package session

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrNoSession is returned when nobody is signed in.
var ErrNoSession = errors.New("no active session")

// Session is the signed-in identity
type Session struct {
	User      string    `toml:"user"`
	Email     string    `toml:"email"`
	CreatedAt time.Time `toml:"created_at"`
}

// Greeting is the header line shown to a signed-in user
func (s Session) Greeting() string {
	name := s.User
	if name == "" {
		name = s.Email
	}
	return fmt.Sprintf("Welcome, %s!", name)
}

// Provider exposes the current session, if any
type Provider interface {
	Current() (Session, bool)
}

// FileProvider keeps the session in a TOML file
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by path
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Path returns the session file location
func (p *FileProvider) Path() string {
	return p.path
}

// Current returns the stored session, or false when there is none or it is unreadable
func (p *FileProvider) Current() (Session, bool) {
	s, err := p.Load()
	if err != nil {
		return Session{}, false
	}
	return s, true
}

// Load reads the stored session
func (p *FileProvider) Load() (Session, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := toml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parse session: %w", err)
	}
	if s.Email == "" {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// Login stores a session for email. The user name is the address's local part.
func (p *FileProvider) Login(email string, now time.Time) (Session, error) {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return Session{}, fmt.Errorf("invalid email %q: %w", email, err)
	}

	user := addr.Name
	if user == "" {
		user, _, _ = strings.Cut(addr.Address, "@")
	}
	s := Session{User: user, Email: addr.Address, CreatedAt: now.UTC()}

	data, err := toml.Marshal(s)
	if err != nil {
		return Session{}, fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return Session{}, fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0600); err != nil {
		return Session{}, fmt.Errorf("write session: %w", err)
	}
	return s, nil
}

// Logout removes the stored session
func (p *FileProvider) Logout() error {
	err := os.Remove(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNoSession
	}
	if err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
