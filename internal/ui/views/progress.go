package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"eduadmin/internal/domain"
)

// ProgressView is the state of the progress tab
type ProgressView struct {
	Loading bool
	Err     string
	Rows    []domain.Progress // current page only
	Total   int
	Pager   string
	Sort    string
}

// ProgressRenderer renders the progress report
type ProgressRenderer struct {
	styles *Styles
}

// NewProgressRenderer creates a new progress renderer
func NewProgressRenderer(styles *Styles) *ProgressRenderer {
	return &ProgressRenderer{styles: styles}
}

type column struct {
	title string
	width int
}

var progressColumns = []column{
	{"User", 24},
	{"Course", 30},
	{"Status", 12},
	{"Progress", 9},
	{"Started", 11},
	{"Completed", 11},
}

// Render draws the current page of the report
func (pr *ProgressRenderer) Render(v ProgressView, width int) string {
	switch {
	case v.Loading:
		return pr.styles.StatusLoading.Render("Loading progress…")
	case v.Err != "":
		return pr.styles.StatusError.Render("Failed to load progress: " + v.Err)
	case v.Total == 0:
		return pr.styles.Dim.Render("No progress data yet")
	}

	var b strings.Builder
	b.WriteString(pr.renderHeader())
	b.WriteString("\n")
	for _, p := range v.Rows {
		b.WriteString(pr.renderRow(p))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(pr.styles.Status.Render(fmt.Sprintf("%s • sorted by %s", v.Pager, v.Sort)))

	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

// RenderPlain renders every row for the pager
func (pr *ProgressRenderer) RenderPlain(rows []domain.Progress) string {
	var b strings.Builder
	b.WriteString(pr.styles.Title.Render("Course progress"))
	b.WriteString(fmt.Sprintf("  %d records\n\n", len(rows)))
	b.WriteString(pr.renderHeader())
	b.WriteString("\n")
	for _, p := range rows {
		b.WriteString(pr.renderRow(p))
		b.WriteString("\n")
	}
	return b.String()
}

func (pr *ProgressRenderer) renderHeader() string {
	cells := make([]string, len(progressColumns))
	for i, c := range progressColumns {
		cells[i] = pad(c.title, c.width)
	}
	return pr.styles.TableHeader.Render(strings.Join(cells, " "))
}

func (pr *ProgressRenderer) renderRow(p domain.Progress) string {
	values := []string{
		p.User.Name(),
		p.Course.Title,
		p.StatusText(),
		fmt.Sprintf("%d%%", p.ProgressPercent),
		formatDate(p.StartedAt),
		formatDate(p.CompletedAt),
	}
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = pad(truncate(v, progressColumns[i].width), progressColumns[i].width)
	}
	cells[2] = lipgloss.NewStyle().Foreground(lipgloss.Color(GetStatusColor(p.Status))).Render(cells[2])
	return strings.Join(cells, " ")
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}
