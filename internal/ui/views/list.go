package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one list entry
type Row struct {
	Primary   string
	Secondary string
	Checkbox  bool // render a check box in front of the row
	Checked   bool
}

// ListView is a scrollable list window
type ListView struct {
	Title    string
	Subtitle string
	Header   string // optional line under the title, e.g. a check-all box
	Rows     []Row  // only the visible window
	Cursor   int    // index into Rows, -1 for none
	Focused  bool
	Empty    string
	Query    string // highlighted in the primary text
	Above    int    // rows hidden above the window
	Below    int    // rows hidden below the window
	Height   int    // rows in the window, used to pad short lists
}

// ListRenderer renders ListViews
type ListRenderer struct {
	styles *Styles
}

// NewListRenderer creates a new list renderer
func NewListRenderer(styles *Styles) *ListRenderer {
	return &ListRenderer{styles: styles}
}

// RenderList renders a list inside a card of the given outer width
func (lr *ListRenderer) RenderList(v ListView, width int) string {
	inner := width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(lr.styles.CardTitle.Render(truncate(v.Title, inner)))
	if v.Subtitle != "" {
		b.WriteString("\n")
		b.WriteString(lr.styles.Dim.Render(truncate(v.Subtitle, inner)))
	}
	if v.Header != "" {
		b.WriteString("\n")
		b.WriteString(v.Header)
	}
	b.WriteString("\n")

	scroll := ""
	if v.Above > 0 {
		scroll = fmt.Sprintf("↑ %d more", v.Above)
	}
	b.WriteString(lr.styles.Scroll.Render(scroll))
	b.WriteString("\n")

	lines := 0
	if len(v.Rows) == 0 {
		b.WriteString(lr.styles.Dim.Render(truncate(v.Empty, inner)))
		b.WriteString("\n")
		lines++
	}
	for i, row := range v.Rows {
		b.WriteString(lr.renderRow(row, i == v.Cursor, v.Focused, v.Query, inner))
		b.WriteString("\n")
		lines++
	}
	for ; lines < v.Height; lines++ {
		b.WriteString("\n")
	}

	scroll = ""
	if v.Below > 0 {
		scroll = fmt.Sprintf("↓ %d more", v.Below)
	}
	b.WriteString(lr.styles.Scroll.Render(scroll))

	style := lr.styles.Card
	if v.Focused {
		style = lr.styles.CardFocused
	}
	return style.Width(width - 2).Render(b.String())
}

func (lr *ListRenderer) renderRow(row Row, isCursor, focused bool, query string, width int) string {
	prefix := ""
	if row.Checkbox {
		if row.Checked {
			prefix = lr.styles.Checked.Render("[x]") + " "
		} else {
			prefix = "[ ] "
		}
	}

	primaryWidth := width - lipgloss.Width(prefix)
	primary := truncate(row.Primary, primaryWidth)
	if query != "" {
		primary = highlightMatch(primary, query, lr.styles.Highlight, lipgloss.NewStyle())
	}
	line := prefix + primary

	if row.Secondary != "" {
		room := width - lipgloss.Width(line) - 2
		if room > 3 {
			line += "  " + lr.styles.Dim.Render(truncate(row.Secondary, room))
		}
	}

	if isCursor {
		// Pad the line to full width
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		if focused {
			return lr.styles.Cursor.Render(line)
		}
		return lr.styles.CursorBlur.Render(line)
	}
	return line
}

// highlightMatch highlights matching text within a string
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	// Byte offsets are only valid when lowering kept the length
	if lowerQuery == "" || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// truncate shortens s to width cells, ending with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
