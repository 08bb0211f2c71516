package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTeam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Team
		ok    bool
	}{
		{"Mercedes", TeamMercedes, true},
		{"mclaren", TeamMcLaren, true},
		{" FERRARI ", TeamFerrari, true},
		{"Williams", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseTeam(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTeam_Accent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AccentRed, TeamFerrari.Accent())
	assert.Equal(t, AccentTeal, TeamMercedes.Accent())
	assert.Equal(t, AccentOrange, TeamMcLaren.Accent())
	assert.Equal(t, AccentGray, Team("Williams").Accent())
}
