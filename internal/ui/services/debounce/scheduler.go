package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet window before the latest input fires
const DefaultDelay = 300 * time.Millisecond

// ExpiredMsg is delivered when a debounce window elapses
type ExpiredMsg struct {
	Tag  uint64
	Text string
}

// Scheduler coalesces bursts of input into a single trigger. Every input
// starts a new window tagged with a fresh generation; only the expiry of
// the latest, still pending window fires.
type Scheduler struct {
	delay   time.Duration
	tag     uint64
	pending bool
	text    string
}

// NewScheduler creates a scheduler with the given delay
func NewScheduler(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler{delay: delay}
}

// Input restarts the window with text and returns the timer command
func (s *Scheduler) Input(text string) tea.Cmd {
	s.tag++
	s.pending = true
	s.text = text

	tag := s.tag
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return ExpiredMsg{Tag: tag, Text: text}
	})
}

// Fire reports whether msg is the expiry of the pending window and
// returns its text. A window fires at most once.
func (s *Scheduler) Fire(msg ExpiredMsg) (string, bool) {
	if !s.pending || msg.Tag != s.tag {
		return "", false
	}
	s.pending = false
	return s.text, true
}

// Cancel drops the pending invocation, if any
func (s *Scheduler) Cancel() {
	s.pending = false
	s.text = ""
}
