package events

// EventType identifies the type of event
type EventType string

const (
	// File events
	FilesChangedEvent EventType = "files.changed"
	WatchErrorEvent   EventType = "files.error"

	// UI events
	StatusMessageEvent EventType = "ui.status"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload any
}

// Event payload types

// FilesChangedPayload carries one debounced batch of changed paths.
type FilesChangedPayload struct {
	Paths []string
}

type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}

type ErrorPayload struct {
	Err error
}
