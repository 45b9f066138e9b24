package logic

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/paginator"

	"eduadmin/internal/config"
)

// Pager pages a table of rows; the page math is the bubbles paginator's
type Pager struct {
	model paginator.Model
	total int
}

// NewPager creates a pager with perPage rows per page
func NewPager(perPage int) *Pager {
	model := paginator.New()
	model.Type = paginator.Arabic
	p := &Pager{model: model}
	p.SetRowsPerPage(perPage)
	return p
}

// SetTotal sets the number of rows and keeps the current page in range
func (p *Pager) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	p.model.TotalPages = max(1, (n+p.model.PerPage-1)/p.model.PerPage)
	if p.model.Page >= p.model.TotalPages {
		p.model.Page = p.model.TotalPages - 1
	}
}

// Total is the number of rows
func (p *Pager) Total() int { return p.total }

// Page is the zero based current page
func (p *Pager) Page() int { return p.model.Page }

// Pages is ceil(total / rows per page), zero for an empty table
func (p *Pager) Pages() int {
	return (p.total + p.model.PerPage - 1) / p.model.PerPage
}

func (p *Pager) PerPage() int { return p.model.PerPage }

// SetRowsPerPage changes the page size and goes back to the first page.
// Sizes outside config.RowsPerPageOptions fall back to the first option.
func (p *Pager) SetRowsPerPage(n int) {
	if !slices.Contains(config.RowsPerPageOptions, n) {
		n = config.RowsPerPageOptions[0]
	}
	p.model.PerPage = n
	p.model.Page = 0
	p.SetTotal(p.total)
}

// CycleRowsPerPage switches to the next page size option and returns it
func (p *Pager) CycleRowsPerPage() int {
	i := slices.Index(config.RowsPerPageOptions, p.model.PerPage)
	next := config.RowsPerPageOptions[(i+1)%len(config.RowsPerPageOptions)]
	p.SetRowsPerPage(next)
	return next
}

func (p *Pager) NextPage() { p.model.NextPage() }

func (p *Pager) PrevPage() { p.model.PrevPage() }

// Bounds returns the half-open row range of the current page
func (p *Pager) Bounds() (int, int) {
	return p.model.GetSliceBounds(p.total)
}

// View renders "1-10 of 42 • page 1/5 • 10 rows"
func (p *Pager) View() string {
	if p.total == 0 {
		return fmt.Sprintf("0 of 0 • %d rows", p.model.PerPage)
	}
	start, end := p.Bounds()
	return fmt.Sprintf("%d-%d of %d • page %s • %d rows", start+1, end, p.total, p.model.View(), p.model.PerPage)
}
