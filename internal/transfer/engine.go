package transfer

import (
	"fmt"
	"log"
	"slices"

	"golang.org/x/text/cases"
)

// Engine keeps a candidate set partitioned into available and selected
// items, plus the transient checked set, per-side search terms and the
// category filter applied to the available side.
//
// Engine is not safe for concurrent use. Every method runs to completion
// and leaves all derived state up to date.
type Engine[K comparable, T Keyed[K]] struct {
	schema  Schema[T]
	strict  bool
	onSave  func([]T)
	onClose func()

	all        []T // host-supplied candidates, cleaned
	candidates []T // all plus selected items the host did not list in all
	known      map[K]struct{}
	selected   []T
	available  []T
	onRight    map[K]struct{}
	checked    map[K]struct{}

	categories map[string]struct{}
	terms      [2]string
	visible    [2][]T
	shown      [2]map[K]struct{}

	folder cases.Caser
	closed bool
}

// New creates an engine with no items
func New[K comparable, T Keyed[K]](schema Schema[T], cfg Config[T]) *Engine[K, T] {
	e := &Engine[K, T]{
		schema:  schema,
		strict:  cfg.Strict,
		onSave:  cfg.OnSave,
		onClose: cfg.OnClose,
		known:   make(map[K]struct{}),
		onRight: make(map[K]struct{}),
		checked: make(map[K]struct{}),
		folder:  cases.Fold(),
	}
	e.refresh()
	return e
}

// SetItems replaces both inputs and re-derives the available side
func (e *Engine[K, T]) SetItems(all, selected []T) error {
	if e.closed {
		return nil
	}
	cleanAll, err := e.clean(all, "candidate")
	if err != nil {
		return err
	}
	cleanSelected, err := e.clean(selected, "selected")
	if err != nil {
		return err
	}
	e.all = cleanAll
	e.install(cleanSelected)
	return nil
}

// SetCandidates replaces the candidate set and keeps the current selection
func (e *Engine[K, T]) SetCandidates(all []T) error {
	return e.SetItems(all, e.selected)
}

// SetSelected replaces the selection and keeps the candidate set
func (e *Engine[K, T]) SetSelected(selected []T) error {
	return e.SetItems(e.all, selected)
}

// clean drops (or rejects in strict mode) items without a key and repeated keys
func (e *Engine[K, T]) clean(items []T, what string) ([]T, error) {
	var zero K
	out := make([]T, 0, len(items))
	seen := make(map[K]struct{}, len(items))
	for i, item := range items {
		k := item.Key()
		if k == zero {
			if e.strict {
				return nil, fmt.Errorf("%s item at position %d: %w", what, i, ErrMissingKey)
			}
			log.Printf("Transfer: dropping %s item at position %d: no key", what, i)
			continue
		}
		if _, dup := seen[k]; dup {
			if e.strict {
				return nil, fmt.Errorf("%s item %v: %w", what, k, ErrDuplicateKey)
			}
			log.Printf("Transfer: dropping repeated %s item %v", what, k)
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}

// install builds the candidate set from e.all and the given selection
func (e *Engine[K, T]) install(selected []T) {
	e.candidates = slices.Clone(e.all)
	e.known = make(map[K]struct{}, len(e.all)+len(selected))
	for _, item := range e.all {
		e.known[item.Key()] = struct{}{}
	}
	for _, item := range selected {
		if _, ok := e.known[item.Key()]; !ok {
			e.known[item.Key()] = struct{}{}
			e.candidates = append(e.candidates, item)
		}
	}
	e.selected = selected
	e.rebuild()
}

// rebuild re-derives the available side from candidates minus selected
func (e *Engine[K, T]) rebuild() {
	e.onRight = make(map[K]struct{}, len(e.selected))
	for _, item := range e.selected {
		e.onRight[item.Key()] = struct{}{}
	}
	e.available = make([]T, 0, len(e.candidates)-len(e.selected))
	for _, item := range e.candidates {
		if _, ok := e.onRight[item.Key()]; !ok {
			e.available = append(e.available, item)
		}
	}
	for k := range e.checked {
		if _, ok := e.known[k]; !ok {
			delete(e.checked, k)
		}
	}
	e.refresh()
}

// refresh recomputes what each side shows after category and search filtering
func (e *Engine[K, T]) refresh() {
	left := e.available
	if len(e.categories) > 0 && e.schema.Category != nil {
		left = slices.DeleteFunc(slices.Clone(left), func(item T) bool {
			return !e.inCategory(item)
		})
	}
	e.visible[Left] = e.search(left, e.terms[Left])
	e.visible[Right] = e.search(e.selected, e.terms[Right])
	for _, s := range []Side{Left, Right} {
		e.shown[s] = make(map[K]struct{}, len(e.visible[s]))
		for _, item := range e.visible[s] {
			e.shown[s][item.Key()] = struct{}{}
		}
	}
}

// sideOf reports which side currently holds key k
func (e *Engine[K, T]) sideOf(k K) (Side, bool) {
	if _, ok := e.onRight[k]; ok {
		return Right, true
	}
	if _, ok := e.known[k]; ok {
		return Left, true
	}
	return Left, false
}

// Toggle flips the checked state of an item shown on either side.
// It reports whether anything changed.
func (e *Engine[K, T]) Toggle(item T) bool {
	if e.closed {
		return false
	}
	k := item.Key()
	side, ok := e.sideOf(k)
	if !ok {
		return false
	}
	if _, shown := e.shown[side][k]; !shown {
		return false
	}
	if _, on := e.checked[k]; on {
		delete(e.checked, k)
	} else {
		e.checked[k] = struct{}{}
	}
	return true
}

// ToggleAll checks every visible item of a side, or unchecks them all
// when they are already all checked
func (e *Engine[K, T]) ToggleAll(side Side) {
	if e.closed {
		return
	}
	items := e.visible[side]
	if len(items) == 0 {
		return
	}
	if e.countChecked(items) == len(items) {
		for _, item := range items {
			delete(e.checked, item.Key())
		}
		return
	}
	for _, item := range items {
		e.checked[item.Key()] = struct{}{}
	}
}

func (e *Engine[K, T]) countChecked(items []T) int {
	n := 0
	for _, item := range items {
		if _, ok := e.checked[item.Key()]; ok {
			n++
		}
	}
	return n
}

// Header returns the select-all state of a side, computed over visible items
func (e *Engine[K, T]) Header(side Side) Header {
	visible := len(e.visible[side])
	checked := e.countChecked(e.visible[side])
	return Header{
		Checked:       checked,
		Visible:       visible,
		AllChecked:    visible > 0 && checked == visible,
		Indeterminate: checked > 0 && checked < visible,
		Disabled:      visible == 0,
	}
}

// CanMoveRight reports whether any checked item sits on the available side
func (e *Engine[K, T]) CanMoveRight() bool {
	return e.countChecked(e.available) > 0
}

// CanMoveLeft reports whether any checked item sits on the selected side
func (e *Engine[K, T]) CanMoveLeft() bool {
	return e.countChecked(e.selected) > 0
}

// MoveRight appends every checked available item to the selection, in
// available order, hidden ones included. It returns how many moved.
func (e *Engine[K, T]) MoveRight() int {
	if e.closed {
		return 0
	}
	var moved []T
	for _, item := range e.available {
		if _, ok := e.checked[item.Key()]; ok {
			moved = append(moved, item)
			delete(e.checked, item.Key())
		}
	}
	if len(moved) == 0 {
		return 0
	}
	e.selected = append(slices.Clone(e.selected), moved...)
	e.rebuild()
	return len(moved)
}

// MoveLeft removes every checked item from the selection. The items return
// to the available side at their candidate position.
func (e *Engine[K, T]) MoveLeft() int {
	if e.closed {
		return 0
	}
	keep := make([]T, 0, len(e.selected))
	moved := 0
	for _, item := range e.selected {
		if _, ok := e.checked[item.Key()]; ok {
			delete(e.checked, item.Key())
			moved++
			continue
		}
		keep = append(keep, item)
	}
	if moved == 0 {
		return 0
	}
	e.selected = keep
	e.rebuild()
	return moved
}

// Commit hands the selection to OnSave and closes the engine
func (e *Engine[K, T]) Commit() []T {
	if e.closed {
		return nil
	}
	out := slices.Clone(e.selected)
	if out == nil {
		out = []T{}
	}
	e.discard()
	if e.onSave != nil {
		e.onSave(out)
	}
	return out
}

// Cancel discards all local state and calls OnClose
func (e *Engine[K, T]) Cancel() {
	if e.closed {
		return
	}
	e.discard()
	if e.onClose != nil {
		e.onClose()
	}
}

func (e *Engine[K, T]) discard() {
	e.closed = true
	e.all, e.candidates, e.selected, e.available = nil, nil, nil, nil
	e.known = map[K]struct{}{}
	e.onRight = map[K]struct{}{}
	e.checked = map[K]struct{}{}
	e.categories = nil
	e.terms = [2]string{}
	e.refresh()
}

// Closed reports whether Commit or Cancel has run
func (e *Engine[K, T]) Closed() bool {
	return e.closed
}

// Available returns the full available side, ignoring filters
func (e *Engine[K, T]) Available() []T {
	return slices.Clone(e.available)
}

// Selected returns the full selected side, ignoring filters
func (e *Engine[K, T]) Selected() []T {
	return slices.Clone(e.selected)
}

// Items returns the full membership of a side
func (e *Engine[K, T]) Items(side Side) []T {
	if side == Right {
		return e.Selected()
	}
	return e.Available()
}

// Visible returns what a side currently shows, after category and search filtering
func (e *Engine[K, T]) Visible(side Side) []T {
	return slices.Clone(e.visible[side])
}

// IsChecked reports whether an item is in the checked set
func (e *Engine[K, T]) IsChecked(item T) bool {
	_, ok := e.checked[item.Key()]
	return ok
}

// CheckedCount returns the size of the checked set across both sides
func (e *Engine[K, T]) CheckedCount() int {
	return len(e.checked)
}
