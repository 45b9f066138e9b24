package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSessionStarted      EventType = "SessionStarted"
	EventDirectoryLoaded     EventType = "DirectoryLoaded"
	EventSelectionSaved      EventType = "SelectionSaved"
	EventSelectionCancelled  EventType = "SelectionCancelled"
	EventAssignmentCompleted EventType = "AssignmentCompleted"
	EventProgressLoaded      EventType = "ProgressLoaded"
	EventConfigChanged       EventType = "ConfigChanged"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SessionStartedEvent is emitted after a successful login
type SessionStartedEvent struct {
	Username string
	IsStaff  bool
}

func (e SessionStartedEvent) Type() EventType { return EventSessionStarted }

// DirectoryLoadedEvent is emitted when users and courses have been fetched
type DirectoryLoadedEvent struct {
	Profiles int
	Courses  int
}

func (e DirectoryLoadedEvent) Type() EventType { return EventDirectoryLoaded }

// SelectionSavedEvent is emitted when a transfer dialog is committed
type SelectionSavedEvent struct {
	DialogID string
	Kind     string
	Count    int
}

func (e SelectionSavedEvent) Type() EventType { return EventSelectionSaved }

// SelectionCancelledEvent is emitted when a transfer dialog is closed without saving
type SelectionCancelledEvent struct {
	DialogID string
	Kind     string
}

func (e SelectionCancelledEvent) Type() EventType { return EventSelectionCancelled }

// AssignmentCompletedEvent is emitted after a bulk assignment run
type AssignmentCompletedEvent struct {
	Successful      int
	AlreadyAssigned int
	Failed          int
	Summary         string
}

func (e AssignmentCompletedEvent) Type() EventType { return EventAssignmentCompleted }

// ProgressLoadedEvent is emitted when the admin progress report arrives
type ProgressLoadedEvent struct {
	Count int
}

func (e ProgressLoadedEvent) Type() EventType { return EventProgressLoaded }

// ConfigChangedEvent is emitted when a UI preference that lives in the config changes
type ConfigChangedEvent struct {
	RowsPerPage int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
