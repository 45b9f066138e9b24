package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"eduadmin/internal/catalog"
	"eduadmin/internal/transfer"
	inputtypes "eduadmin/internal/ui/input/types"
	"eduadmin/internal/ui/logic"
	"eduadmin/internal/ui/views"
)

// transferDialog is an open transfer dialog independent of its item type
type transferDialog interface {
	ID() string
	Kind() catalog.Kind
	Closed() bool
	Apply(action inputtypes.Action)
	Search(term string)
	SearchTerm() string
	CanMoveRight() bool
	CanMoveLeft() bool
	SetCategoryFilter(codes []string) bool
	Categories() []string
	Save()
	Cancel()
	SetListHeight(height int)
	View() views.TransferView
}

// Dialog drives a transfer engine from keyboard actions: it owns the
// focused side and one cursor per side
type Dialog[K comparable, T transfer.Keyed[K]] struct {
	id       string
	kind     catalog.Kind
	title    string
	engine   *transfer.Engine[K, T]
	describe func(T) catalog.Display
	choices  []transfer.Choice
	side     transfer.Side
	nav      [2]*logic.Navigator
}

// DialogOptions configures NewDialog
type DialogOptions[T any] struct {
	Kind       catalog.Kind
	Title      string
	Schema     transfer.Schema[T]
	Describe   func(T) catalog.Display
	Strict     bool
	ListHeight int
	OnSave     func(id string, items []T)
	OnClose    func(id string)
}

// NewDialog opens a dialog over all with selected already on the right
func NewDialog[K comparable, T transfer.Keyed[K]](opts DialogOptions[T], all, selected []T) (*Dialog[K, T], error) {
	d := &Dialog[K, T]{
		id:       uuid.NewString(),
		kind:     opts.Kind,
		title:    opts.Title,
		describe: opts.Describe,
		choices:  opts.Schema.Choices,
		side:     transfer.Left,
	}
	d.engine = transfer.New[K](opts.Schema, transfer.Config[T]{
		Strict: opts.Strict,
		OnSave: func(items []T) {
			if opts.OnSave != nil {
				opts.OnSave(d.id, items)
			}
		},
		OnClose: func() {
			if opts.OnClose != nil {
				opts.OnClose(d.id)
			}
		},
	})
	if err := d.engine.SetItems(all, selected); err != nil {
		return nil, fmt.Errorf("failed to open %s dialog: %w", opts.Kind, err)
	}

	height := opts.ListHeight
	if height < 3 {
		height = 10
	}
	d.nav = [2]*logic.Navigator{logic.NewNavigator(height), logic.NewNavigator(height)}
	d.sync()

	log.Printf("Dialog %s: opened %s with %d available, %d selected", d.id, d.kind, len(d.engine.Available()), len(d.engine.Selected()))
	return d, nil
}

func (d *Dialog[K, T]) ID() string { return d.id }
func (d *Dialog[K, T]) Kind() catalog.Kind { return d.kind }
func (d *Dialog[K, T]) Closed() bool { return d.engine.Closed() }
func (d *Dialog[K, T]) CanMoveRight() bool { return d.engine.CanMoveRight() }
func (d *Dialog[K, T]) CanMoveLeft() bool { return d.engine.CanMoveLeft() }
func (d *Dialog[K, T]) Categories() []string { return d.engine.Categories() }
func (d *Dialog[K, T]) SearchTerm() string { return d.engine.Term(d.side) }
func (d *Dialog[K, T]) Side() transfer.Side { return d.side }
func (d *Dialog[K, T]) Engine() *transfer.Engine[K, T] {
	return d.engine
}

// Current returns the item under the cursor of the focused side
func (d *Dialog[K, T]) Current() (T, bool) {
	var zero T
	items := d.engine.Visible(d.side)
	i := d.nav[d.side].GetSelectedIndex()
	if i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

// Apply performs one dialog action
func (d *Dialog[K, T]) Apply(action inputtypes.Action) {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		d.nav[d.side].Navigate(a.Direction)
	case inputtypes.SwitchSideAction:
		switch a.Side {
		case "left":
			d.side = transfer.Left
		case "right":
			d.side = transfer.Right
		default:
			d.side = d.side.Other()
		}
	case inputtypes.ToggleAction:
		if item, ok := d.Current(); ok {
			d.engine.Toggle(item)
		}
	case inputtypes.ToggleAllAction:
		d.engine.ToggleAll(d.side)
	case inputtypes.MoveRightAction:
		n := d.engine.MoveRight()
		log.Printf("Dialog %s: moved %d to selected", d.id, n)
	case inputtypes.MoveLeftAction:
		n := d.engine.MoveLeft()
		log.Printf("Dialog %s: moved %d to available", d.id, n)
	}
	d.sync()
}

// Search applies term to the focused side
func (d *Dialog[K, T]) Search(term string) {
	d.engine.Search(d.side, term)
	d.sync()
}

func (d *Dialog[K, T]) SetCategoryFilter(codes []string) bool {
	ok := d.engine.SetCategoryFilter(codes)
	d.sync()
	return ok
}

// Save commits the selection
func (d *Dialog[K, T]) Save() {
	d.engine.Commit()
}

// Cancel closes without saving
func (d *Dialog[K, T]) Cancel() {
	d.engine.Cancel()
}

func (d *Dialog[K, T]) SetListHeight(height int) {
	for _, n := range d.nav {
		n.SetViewportHeight(height)
	}
}

func (d *Dialog[K, T]) sync() {
	for _, side := range []transfer.Side{transfer.Left, transfer.Right} {
		d.nav[side].SetTotal(len(d.engine.Visible(side)))
	}
}

// View builds the render state of the dialog
func (d *Dialog[K, T]) View() views.TransferView {
	v := views.TransferView{
		Title:        d.title,
		Left:         d.list(transfer.Left),
		Right:        d.list(transfer.Right),
		LeftHeader:   d.engine.Header(transfer.Left),
		RightHeader:  d.engine.Header(transfer.Right),
		CanMoveRight: d.engine.CanMoveRight(),
		CanMoveLeft:  d.engine.CanMoveLeft(),
	}
	if cats := d.engine.Categories(); len(cats) > 0 {
		labels := make([]string, len(cats))
		for i, c := range cats {
			labels[i] = c
			for _, ch := range d.choices {
				if ch.Code == c {
					labels[i] = ch.Label
				}
			}
		}
		v.Filter = strings.Join(labels, ", ")
	}
	return v
}

func (d *Dialog[K, T]) list(side transfer.Side) views.ListView {
	visible := d.engine.Visible(side)
	nav := d.nav[side]
	start, end := nav.Window()

	title := "Available"
	if side == transfer.Right {
		title = "Selected"
	}
	total := len(d.engine.Items(side))
	if len(visible) != total {
		title = fmt.Sprintf("%s (%d of %d)", title, len(visible), total)
	} else {
		title = fmt.Sprintf("%s (%d)", title, total)
	}

	empty := "Nothing here"
	if d.engine.Term(side) != "" {
		empty = "No matches for \"" + d.engine.Term(side) + "\""
	}

	rows := make([]views.Row, 0, end-start)
	for _, item := range visible[start:end] {
		disp := d.describe(item)
		rows = append(rows, views.Row{
			Primary:   disp.Primary,
			Secondary: disp.Secondary,
			Checkbox:  true,
			Checked:   d.engine.IsChecked(item),
		})
	}

	cursor := -1
	if len(rows) > 0 {
		cursor = nav.GetSelectedIndex() - start
	}

	subtitle := ""
	if term := d.engine.Term(side); term != "" {
		subtitle = "search: " + term
	}

	return views.ListView{
		Title:    title,
		Subtitle: subtitle,
		Rows:     rows,
		Cursor:   cursor,
		Focused:  side == d.side,
		Empty:    empty,
		Query:    d.engine.Term(side),
		Above:    start,
		Below:    len(visible) - end,
		Height:   nav.Height(),
	}
}
