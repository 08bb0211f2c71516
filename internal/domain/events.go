package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchIssued         EventType = "SearchIssued"
	EventSearchCompleted      EventType = "SearchCompleted"
	EventRequestFailed        EventType = "RequestFailed"
	EventStaleResponseDropped EventType = "StaleResponseDropped"
	EventDocumentOpened       EventType = "DocumentOpened"
	EventDocumentLoaded       EventType = "DocumentLoaded"
	EventTeamOpened           EventType = "TeamOpened"
	EventTeamLoaded           EventType = "TeamLoaded"
	EventNavigatedBack        EventType = "NavigatedBack"
	EventDropdownDismissed    EventType = "DropdownDismissed"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchIssuedEvent is emitted when a debounced query is sent to the backend
type SearchIssuedEvent struct {
	Term string
	Seq  uint64
}

func (e SearchIssuedEvent) Type() EventType { return EventSearchIssued }

// SearchCompletedEvent is emitted when the latest search response is applied
type SearchCompletedEvent struct {
	Term    string
	Results int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// RequestFailedEvent carries diagnostic detail for a failed request.
// Failures are never shown to the user.
type RequestFailedEvent struct {
	Kind   string // search, documentFetch or teamFetch
	Target string // query term, document id or team name
	Err    error
}

func (e RequestFailedEvent) Type() EventType { return EventRequestFailed }

// StaleResponseDroppedEvent is emitted when a superseded response arrives
type StaleResponseDroppedEvent struct {
	Kind string
	Seq  uint64
}

func (e StaleResponseDroppedEvent) Type() EventType { return EventStaleResponseDropped }

// DocumentOpenedEvent is emitted on transition into the document view
type DocumentOpenedEvent struct {
	ID     string
	Origin string
}

func (e DocumentOpenedEvent) Type() EventType { return EventDocumentOpened }

// DocumentLoadedEvent is emitted when document content has been applied
type DocumentLoadedEvent struct {
	ID    string
	Bytes int
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// TeamOpenedEvent is emitted on transition into the team browse view
type TeamOpenedEvent struct {
	Team Team
}

func (e TeamOpenedEvent) Type() EventType { return EventTeamOpened }

// TeamLoadedEvent is emitted when a team's documents have been applied
type TeamLoadedEvent struct {
	Team      Team
	Documents int
}

func (e TeamLoadedEvent) Type() EventType { return EventTeamLoaded }

// NavigatedBackEvent is emitted on every "back" transition
type NavigatedBackEvent struct {
	From string
	To   string
}

func (e NavigatedBackEvent) Type() EventType { return EventNavigatedBack }

// DropdownDismissedEvent is emitted when the dropdown is closed without a selection
type DropdownDismissedEvent struct{}

func (e DropdownDismissedEvent) Type() EventType { return EventDropdownDismissed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
