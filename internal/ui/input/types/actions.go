package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SwitchSideAction moves focus between the two dialog lists
type SwitchSideAction struct {
	Side string // "left", "right" or "" to flip
}

func (a SwitchSideAction) Type() string { return "switch_side" }

// Selection actions
type ToggleAction struct{}

func (a ToggleAction) Type() string { return "toggle" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type MoveRightAction struct{}

func (a MoveRightAction) Type() string { return "move_right" }

type MoveLeftAction struct{}

func (a MoveLeftAction) Type() string { return "move_left" }

// Dialog lifecycle actions
type OpenDialogAction struct {
	Kind string // catalog kind
}

func (a OpenDialogAction) Type() string { return "open_dialog" }

type SaveDialogAction struct{}

func (a SaveDialogAction) Type() string { return "save_dialog" }

type CancelDialogAction struct{}

func (a CancelDialogAction) Type() string { return "cancel_dialog" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Panel actions
type SwitchTabAction struct {
	Tab int
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

type RemoveItemAction struct{}

func (a RemoveItemAction) Type() string { return "remove_item" }

type AssignAction struct{}

func (a AssignAction) Type() string { return "assign" }

type ClearDraftAction struct{}

func (a ClearDraftAction) Type() string { return "clear_draft" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// Progress report actions
type PageAction struct {
	Delta int
}

func (a PageAction) Type() string { return "page" }

type CycleRowsAction struct{}

func (a CycleRowsAction) Type() string { return "cycle_rows" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type OpenReportAction struct{}

func (a OpenReportAction) Type() string { return "open_report" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
