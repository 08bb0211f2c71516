package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_Move(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		start  Cursor
		delta  int
		total  int
		height int
		want   Cursor
	}{
		{"down from none", Cursor{Index: -1}, 1, 5, 3, Cursor{Index: 0}},
		{"up from none stays", Cursor{Index: -1}, -1, 5, 3, Cursor{Index: -1}},
		{"scrolls down", Cursor{Index: 2}, 1, 5, 3, Cursor{Index: 3, Offset: 1}},
		{"clamps at end", Cursor{Index: 4, Offset: 2}, 5, 5, 3, Cursor{Index: 4, Offset: 2}},
		{"scrolls up", Cursor{Index: 2, Offset: 2}, -1, 5, 3, Cursor{Index: 1, Offset: 1}},
		{"up to none", Cursor{Index: 0}, -1, 5, 3, Cursor{Index: -1}},
		{"empty list", Cursor{Index: 3}, 1, 0, 3, Cursor{Index: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.start.Move(tt.delta, tt.total, tt.height))
		})
	}
}

func TestCursor_ClampShrinkingList(t *testing.T) {
	t.Parallel()

	c := Cursor{Index: 7, Offset: 5}.Clamp(3, 8)
	assert.Equal(t, Cursor{Index: 2, Offset: 0}, c)
}

func TestCursor_Visible(t *testing.T) {
	t.Parallel()

	start, end := Cursor{Index: 4, Offset: 3}.Visible(10, 4)
	assert.Equal(t, 3, start)
	assert.Equal(t, 7, end)

	start, end = Cursor{Offset: 0}.Visible(2, 4)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}
