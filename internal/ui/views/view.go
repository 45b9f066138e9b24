package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Screens
const (
	ScreenLogin = "login"
	ScreenPanel = "panel"
)

// StatusKind colors the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
	StatusLoading
)

// AssignView is the assignment tab: the drafted users and courses
type AssignView struct {
	Users   ListView
	Courses ListView
	Pairs   int
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Screen        string
	Login         LoginView
	User          string
	Tab           int
	Tabs          []string
	Assign        AssignView
	Progress      ProgressView
	Dialog        *TransferView
	Confirm       string // yes/no question, "" for none
	StatusMessage string
	StatusKind    StatusKind
	Loading       string // right aligned indicator in the title line
	HelpLine      string // rendered short help
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	lists       *ListRenderer
	transfer    *TransferRenderer
	progress    *ProgressRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	lists := NewListRenderer(styles)
	return &Renderer{
		styles:      styles,
		lists:       lists,
		transfer:    NewTransferRenderer(styles, lists),
		progress:    NewProgressRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Progress exposes the progress renderer for the full report pager
func (r *Renderer) Progress() *ProgressRenderer {
	return r.progress
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Screen == ScreenLogin {
		return r.popupRender.RenderPopup(r.RenderLogin(state.Login), state.Height, state.Width, lipgloss.NewStyle())
	}

	if state.Dialog != nil {
		dialog := r.transfer.Render(*state.Dialog, state.Width-4)
		return r.popupRender.RenderPopup(dialog, state.Height, state.Width, lipgloss.NewStyle())
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")
	content.WriteString(r.renderTabs(state))
	content.WriteString("\n\n")

	innerWidth := state.Width - 4 // Main padding
	if innerWidth <= 0 {
		innerWidth = 76
	}

	switch state.Tab {
	case 1:
		content.WriteString(r.progress.Render(state.Progress, innerWidth))
	default:
		content.WriteString(r.renderAssign(state.Assign, innerWidth))
	}

	if state.Confirm != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Confirm.Render(state.Confirm + " (y/n)"))
	}

	// Push status and help to the bottom
	body := content.String()
	footer := r.renderStatus(state) + "\n" + state.HelpLine
	available := state.Height - 2 // Main padding top and bottom
	if available <= 0 {
		available = 22
	}
	if gap := available - lipgloss.Height(body) - lipgloss.Height(footer); gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	body += "\n" + footer

	return r.styles.Main.MaxHeight(state.Height).Render(body)
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("eduadmin")
	right := ""
	if state.Loading != "" {
		right = r.styles.StatusLoading.Render(state.Loading)
	}
	if state.User != "" {
		user := r.styles.Dim.Render(state.User)
		if right != "" {
			right = right + "  " + user
		} else {
			right = user
		}
	}
	if right == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderTabs(state ViewState) string {
	tabs := make([]string, len(state.Tabs))
	for i, t := range state.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if i == state.Tab {
			tabs[i] = r.styles.TabActive.Render(label)
		} else {
			tabs[i] = r.styles.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (r *Renderer) renderAssign(v AssignView, width int) string {
	cardWidth := (width - 2) / 2
	users := r.lists.RenderList(v.Users, cardWidth)
	courses := r.lists.RenderList(v.Courses, cardWidth)
	cards := lipgloss.JoinHorizontal(lipgloss.Top, users, "  ", courses)

	summary := r.styles.Dim.Render("Select users and courses to assign")
	if v.Pairs > 0 {
		summary = r.styles.Badge.Render(fmt.Sprintf("%d assignments", v.Pairs)) + " " +
			r.styles.Dim.Render("press A to assign")
	}
	return cards + "\n" + summary
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	switch state.StatusKind {
	case StatusSuccess:
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	case StatusError:
		return r.styles.StatusError.Render(state.StatusMessage)
	case StatusLoading:
		return r.styles.StatusLoading.Render(state.StatusMessage)
	default:
		return r.styles.Status.Render(state.StatusMessage)
	}
}

// RenderTransfer renders a transfer dialog on its own
func (r *Renderer) RenderTransfer(v TransferView, width int) string {
	return r.transfer.Render(v, width)
}
