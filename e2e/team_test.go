//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrowseTeam(t *testing.T) {
	t.Parallel()
	term := NewTerminal(t)

	require.NoError(t, term.signedIn(fixtureDocs))
	require.NoError(t, term.Browse())
	require.NoError(t, term.Ready())

	// Tab to the tiles, then move from Ferrari to Mercedes
	require.NoError(t, term.Press(KeyTab, KeyRight, KeyEnter))
	require.NoError(t, term.Expect("Browse all Mercedes documents"))
	require.NoError(t, term.Expect("mercedes w15 notes"))

	require.NoError(t, term.Press(KeyEnter))
	require.NoError(t, term.Expect("Back to Mercedes documents"))

	require.NoError(t, term.Press(KeyEsc))
	require.NoError(t, term.Expect("Back to search"))
}

func TestBrowseTeamWithoutDocuments(t *testing.T) {
	t.Parallel()
	term := NewTerminal(t)

	require.NoError(t, term.signedIn(fixtureDocs))
	require.NoError(t, term.Browse())
	require.NoError(t, term.Ready())

	require.NoError(t, term.Press(KeyTab, KeyEnter))
	require.NoError(t, term.Expect("No Ferrari documents found"))
}

func TestBrowseStartsInTeam(t *testing.T) {
	t.Parallel()
	term := NewTerminal(t)

	require.NoError(t, term.signedIn(fixtureDocs))
	require.NoError(t, term.Browse("--team", "mercedes"))
	require.NoError(t, term.Expect("Browse all Mercedes documents"))
	require.NoError(t, term.Expect("mercedes w15 notes"))
}
