package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_BurstFiresOnceWithLatestText(t *testing.T) {
	t.Parallel()

	s := NewScheduler(DefaultDelay)
	var expired []ExpiredMsg
	for i, text := range []string{"f", "fe", "fer"} {
		require.NotNil(t, s.Input(text))
		expired = append(expired, ExpiredMsg{Tag: uint64(i + 1), Text: text})
	}

	var fired []string
	for _, msg := range expired {
		if text, ok := s.Fire(msg); ok {
			fired = append(fired, text)
		}
	}

	assert.Equal(t, []string{"fer"}, fired)
	assert.False(t, s.pending)
}

func TestScheduler_FiresAtMostOnce(t *testing.T) {
	t.Parallel()

	s := NewScheduler(DefaultDelay)
	s.Input("spec")
	msg := ExpiredMsg{Tag: 1, Text: "spec"}

	text, ok := s.Fire(msg)
	require.True(t, ok)
	assert.Equal(t, "spec", text)

	_, ok = s.Fire(msg)
	assert.False(t, ok)
}

func TestScheduler_CancelSuppressesPendingWindow(t *testing.T) {
	t.Parallel()

	s := NewScheduler(DefaultDelay)
	s.Input("spec")
	s.Cancel()

	_, ok := s.Fire(ExpiredMsg{Tag: 1, Text: "spec"})
	assert.False(t, ok)
}

func TestScheduler_TickDeliversTaggedMessage(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.Millisecond)
	s.Input("a")
	cmd := s.Input("ab")

	msg, ok := cmd().(ExpiredMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(2), msg.Tag)

	text, fired := s.Fire(msg)
	assert.True(t, fired)
	assert.Equal(t, "ab", text)
}

func TestNewScheduler_DefaultsNonPositiveDelay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultDelay, NewScheduler(0).delay)
}
