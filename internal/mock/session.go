package mock

import "docsearch/internal/session"

var _ session.Provider = (*SessionProvider)(nil)

// SessionProvider is a mock implementation of session.Provider.
type SessionProvider struct {
	CurrentFn func() (session.Session, bool)
}

func (p *SessionProvider) Current() (session.Session, bool) {
	return p.CurrentFn()
}
