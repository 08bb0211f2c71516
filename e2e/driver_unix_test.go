//go:build e2e && unix

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "docsearch_e2e"

// Keys as the terminal sends them
const (
	KeyEnter = "\r"
	KeyCtrlC = "\x03"
	KeyEsc   = "\x1b"
	KeyTab   = "\t"
	KeyDown  = "\x1b[B"
	KeyRight = "\x1b[C"
	KeyQuit  = "q"
)

const (
	scrollback    = 1 << 20
	expectTimeout = 3 * time.Second
	pollInterval  = 25 * time.Millisecond
)

// escapes matches CSI, OSC, charset and keypad sequences plus carriage returns
var escapes = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// screen keeps the most recent terminal output
type screen struct {
	mu  sync.Mutex
	buf []byte
}

func (s *screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf = append(s.buf, p...)
	if over := len(s.buf) - scrollback; over > 0 {
		s.buf = s.buf[over:]
	}
	return len(p), nil
}

// plain returns the output with escape sequences removed
func (s *screen) plain() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return escapes.ReplaceAllString(string(s.buf), "")
}

// Terminal runs docsearch processes for one test in an isolated $HOME
type Terminal struct {
	t       *testing.T
	home    string
	baseURL string

	ptmx    *os.File
	cmd     *exec.Cmd
	exited  chan struct{} // closed once the process has been reaped
	waitErr error
	out     *screen
	backend *exec.Cmd
}

// NewTerminal creates a terminal that is torn down with the test
func NewTerminal(t *testing.T) *Terminal {
	term := &Terminal{t: t, out: &screen{}}
	t.Cleanup(term.Close)
	return term
}

// Start launches docsearch with args on a 120x40 pseudo-terminal
func (term *Terminal) Start(args ...string) error {
	term.cmd = exec.Command(binPath, args...)
	term.cmd.Env = append(term.env(), "TERM=xterm-256color", "LC_ALL=C", "LANG=C")
	term.cmd.Dir = term.home

	ptmx, err := pty.StartWithSize(term.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("start %v: %w", args, err)
	}
	term.ptmx = ptmx
	term.exited = make(chan struct{})

	go func() { _, _ = io.Copy(term.out, ptmx) }()
	go func() {
		term.waitErr = term.cmd.Wait()
		close(term.exited)
	}()
	return nil
}

// Press writes each key sequence to the terminal
func (term *Terminal) Press(keys ...string) error {
	for _, k := range keys {
		if _, err := term.ptmx.Write([]byte(k)); err != nil {
			return err
		}
	}
	return nil
}

// Type sends text one keystroke at a time
func (term *Terminal) Type(text string) error {
	for _, r := range text {
		if err := term.Press(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// Ready waits for the first frame of the search view
func (term *Terminal) Ready() error {
	return term.ExpectWithin("Browse by team", 5*time.Second)
}

// Expect waits for text to appear on screen
func (term *Terminal) Expect(text string) error {
	return term.ExpectWithin(text, expectTimeout)
}

// ExpectWithin waits up to timeout for text to appear on screen. The error
// carries the tail of the output.
func (term *Terminal) ExpectWithin(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		out := term.out.plain()
		if strings.Contains(out, text) {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%q not shown within %s\n--- tail ---\n%s", text, timeout, tail(out, 4096))
		}
		time.Sleep(pollInterval)
	}
}

// Exit waits for the process to end and returns its exit error
func (term *Terminal) Exit(timeout time.Duration) error {
	select {
	case <-term.exited:
		return term.waitErr
	case <-time.After(timeout):
		path := filepath.Join(term.t.TempDir(), "screen.txt")
		_ = os.WriteFile(path, []byte(term.out.plain()), 0644)
		return fmt.Errorf("still running after %s, screen saved to %s", timeout, path)
	}
}

// Close stops every process the terminal started and removes its $HOME
func (term *Terminal) Close() {
	if term.ptmx != nil {
		// Closing the PTY hangs up the child
		_ = term.ptmx.Close()
	}
	if term.cmd != nil && term.cmd.Process != nil {
		_ = term.cmd.Process.Kill()
		<-term.exited
	}
	if term.backend != nil && term.backend.Process != nil {
		_ = term.backend.Process.Signal(os.Interrupt)
		_ = term.backend.Wait()
	}
	if term.home != "" {
		_ = os.RemoveAll(term.home)
	}
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
