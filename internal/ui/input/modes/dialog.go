package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"eduadmin/internal/catalog"
	"eduadmin/internal/ui/input/types"
)

// DialogMode handles the keys of an open transfer dialog
type DialogMode struct {
	keys types.KeyMap
}

func NewDialogMode() *DialogMode {
	return &DialogMode{keys: types.Keys}
}

func (m *DialogMode) Name() string {
	return "dialog"
}

func (m *DialogMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DialogMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DialogMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Cancel):
		return []types.Action{types.CancelDialogAction{}}, true
	case key.Matches(msg, k.Save):
		return []types.Action{types.SaveDialogAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
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

	case key.Matches(msg, k.Toggle):
		return []types.Action{types.ToggleAction{}}, true
	case key.Matches(msg, k.ToggleAll):
		return []types.Action{types.ToggleAllAction{}}, true
	case key.Matches(msg, k.MoveRight):
		if !ctx.CanMoveRight() {
			return nil, true
		}
		return []types.Action{types.MoveRightAction{}}, true
	case key.Matches(msg, k.MoveLeft):
		if !ctx.CanMoveLeft() {
			return nil, true
		}
		return []types.Action{types.MoveLeftAction{}}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchTerm()}}, true
	case key.Matches(msg, k.Branches):
		if ctx.DialogKind() != string(catalog.KindProfile) {
			return nil, false
		}
		return []types.Action{types.OpenDialogAction{Kind: string(catalog.KindBranch)}}, true
	}
	return nil, false
}
