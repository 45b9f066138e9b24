package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"eduadmin/internal/catalog"
	"eduadmin/internal/ui/input/types"
)

// Panel tabs
const (
	TabAssign = iota
	TabProgress
)

// NormalMode handles the admin panel outside of dialogs
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode() *NormalMode {
	return &NormalMode{keys: types.Keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.AssignTab):
		return []types.Action{types.SwitchTabAction{Tab: TabAssign}}, true
	case key.Matches(msg, k.ProgressTab):
		return []types.Action{types.SwitchTabAction{Tab: TabProgress}}, true
	}

	if ctx.ActiveTab() == TabProgress {
		return m.handleProgressKey(msg)
	}
	return m.handleAssignKey(msg, ctx)
}

func (m *NormalMode) handleAssignKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, k.Left):
		return []types.Action{types.SwitchSideAction{Side: "left"}}, true
	case key.Matches(msg, k.Right):
		return []types.Action{types.SwitchSideAction{Side: "right"}}, true
	case key.Matches(msg, k.SwitchSide):
		return []types.Action{types.SwitchSideAction{}}, true
	case key.Matches(msg, k.EditUsers):
		return []types.Action{types.OpenDialogAction{Kind: string(catalog.KindProfile)}}, true
	case key.Matches(msg, k.EditCourses):
		return []types.Action{types.OpenDialogAction{Kind: string(catalog.KindCourse)}}, true
	case key.Matches(msg, k.Remove):
		return []types.Action{types.RemoveItemAction{}}, true
	case key.Matches(msg, k.ClearDraft):
		return []types.Action{types.ClearDraftAction{}}, true
	case key.Matches(msg, k.Refresh):
		return []types.Action{types.RefreshAction{}}, true
	case key.Matches(msg, k.Assign):
		if !ctx.DraftReady() {
			// Let the model report what is missing
			return []types.Action{types.AssignAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirm}}, true
	}
	return nil, false
}

func (m *NormalMode) handleProgressKey(msg tea.KeyMsg) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.NextPage), key.Matches(msg, k.Right):
		return []types.Action{types.PageAction{Delta: 1}}, true
	case key.Matches(msg, k.PrevPage), key.Matches(msg, k.Left):
		return []types.Action{types.PageAction{Delta: -1}}, true
	case key.Matches(msg, k.Rows):
		return []types.Action{types.CycleRowsAction{}}, true
	case key.Matches(msg, k.Sort):
		return []types.Action{types.CycleSortAction{}}, true
	case key.Matches(msg, k.Report):
		return []types.Action{types.OpenReportAction{}}, true
	case key.Matches(msg, k.Refresh):
		return []types.Action{types.RefreshAction{}}, true
	}
	return nil, false
}
