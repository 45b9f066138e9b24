package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal  Mode = iota // admin panel
	ModeDialog              // transfer dialog
	ModeSearch              // live search inside the transfer dialog
	ModeConfirm             // yes/no before a bulk assignment
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	ActiveTab() int
	DialogKind() string // "" when no dialog is open
	DraftReady() bool
	CanMoveRight() bool
	CanMoveLeft() bool
	SearchTerm() string // term of the focused dialog list
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
