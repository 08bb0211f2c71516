//go:build e2e && unix

package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// CreateHome creates the isolated $HOME with an empty docs directory
func (term *Terminal) CreateHome() error {
	dir, err := os.MkdirTemp("", "docsearch-e2e-*")
	if err != nil {
		return err
	}
	term.home = dir
	return os.MkdirAll(term.docsDir(), 0755)
}

func (term *Terminal) docsDir() string {
	return filepath.Join(term.home, "docs")
}

// env returns the environment shared by every docsearch process of a test
func (term *Terminal) env() []string {
	return append(os.Environ(),
		"HOME="+term.home,
		"XDG_CONFIG_HOME="+filepath.Join(term.home, ".config"),
	)
}

// run executes a non-interactive docsearch command
func (term *Terminal) run(args ...string) error {
	cmd := exec.Command(binPath, args...)
	cmd.Env = term.env()
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("docsearch %v: %w: %s", args, err, out)
	}
	return nil
}

// Serve runs `docsearch serve` over the docs directory on a free port and
// waits for it to report healthy.
func (term *Terminal) Serve() error {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	addr := l.Addr().String()
	_ = l.Close()

	term.backend = exec.Command(binPath, "serve", term.docsDir(), "--addr", addr)
	term.backend.Env = term.env()
	if err := term.backend.Start(); err != nil {
		return fmt.Errorf("start backend: %w", err)
	}
	term.baseURL = "http://" + addr

	for deadline := time.Now().Add(5 * time.Second); time.Now().Before(deadline); time.Sleep(50 * time.Millisecond) {
		resp, err := http.Get(term.baseURL + "/healthz")
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return nil
		}
	}
	return fmt.Errorf("backend at %s never became healthy", term.baseURL)
}

// Browse opens the TUI against the running backend
func (term *Terminal) Browse(args ...string) error {
	return term.Start(append([]string{"browse", "--url", term.baseURL}, args...)...)
}

// signedIn prepares a home holding docs, a running backend and a session
func (term *Terminal) signedIn(docs map[string]string) error {
	if err := term.CreateHome(); err != nil {
		return err
	}
	for name, content := range docs {
		if err := os.WriteFile(filepath.Join(term.docsDir(), name), []byte(content), 0644); err != nil {
			return err
		}
	}
	if err := term.Serve(); err != nil {
		return err
	}
	return term.run("login", "--email", "jane@example.com")
}
