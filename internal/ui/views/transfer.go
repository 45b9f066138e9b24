package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eduadmin/internal/transfer"
)

// TransferView is everything the transfer dialog shows
type TransferView struct {
	Title        string
	Left         ListView
	Right        ListView
	LeftHeader   transfer.Header
	RightHeader  transfer.Header
	CanMoveRight bool
	CanMoveLeft  bool
	Filter       string // active category filter, "" for none
	SearchPrompt string // non-empty while the search field is focused
	SearchInput  string // rendered text input
	Help         string
}

// TransferRenderer renders the transfer dialog
type TransferRenderer struct {
	styles *Styles
	lists  *ListRenderer
}

// NewTransferRenderer creates a new transfer renderer
func NewTransferRenderer(styles *Styles, lists *ListRenderer) *TransferRenderer {
	return &TransferRenderer{styles: styles, lists: lists}
}

// HeaderBox renders the check-all box of one side:
// [x] all visible checked, [-] some, [ ] none, dimmed when the side shows nothing
func (tr *TransferRenderer) HeaderBox(h transfer.Header) string {
	label := fmt.Sprintf("%d/%d checked", h.Checked, h.Visible)
	switch {
	case h.Disabled:
		return tr.styles.Disabled.Render("[ ] " + label)
	case h.AllChecked:
		return tr.styles.Checked.Render("[x]") + " " + label
	case h.Indeterminate:
		return tr.styles.Filter.Render("[-]") + " " + label
	default:
		return "[ ] " + label
	}
}

// Render draws the dialog at most width cells wide
func (tr *TransferRenderer) Render(v TransferView, width int) string {
	if width > 124 {
		width = 124
	}
	if width < 40 {
		width = 40
	}
	listWidth := (width - 4 - 7) / 2 // dialog frame and the arrow column

	left := v.Left
	left.Header = tr.HeaderBox(v.LeftHeader)
	right := v.Right
	right.Header = tr.HeaderBox(v.RightHeader)

	leftBox := tr.lists.RenderList(left, listWidth)
	rightBox := tr.lists.RenderList(right, listWidth)

	arrows := tr.renderArrows(v, lipgloss.Height(leftBox))
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, arrows, rightBox)

	var b strings.Builder
	b.WriteString(tr.styles.DialogTitle.Render(v.Title))
	if v.Filter != "" {
		b.WriteString("  ")
		b.WriteString(tr.styles.Filter.Render("[Filter: " + v.Filter + "]"))
	}
	b.WriteString("\n")
	if v.SearchPrompt != "" {
		b.WriteString(v.SearchPrompt)
		b.WriteString(v.SearchInput)
	}
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(v.Help)

	return tr.styles.Dialog.Render(b.String())
}

func (tr *TransferRenderer) renderArrows(v TransferView, height int) string {
	moveRight := tr.styles.Disabled.Render(" > ")
	if v.CanMoveRight {
		moveRight = tr.styles.Highlight.Render(" > ")
	}
	moveLeft := tr.styles.Disabled.Render(" < ")
	if v.CanMoveLeft {
		moveLeft = tr.styles.Highlight.Render(" < ")
	}
	col := lipgloss.JoinVertical(lipgloss.Center, moveRight, "", moveLeft)
	return lipgloss.Place(7, height, lipgloss.Center, lipgloss.Center, col)
}
