// Package table implements the presentation adapter between application
// services and a row renderer. The Director owns the rows of one screen,
// turns row gestures into identifier-based callbacks and tells the renderer
// when to redraw.
package table

import (
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time check that Director implements ports.RowTable.
var _ ports.RowTable = (*Director)(nil)

// Director maps row indices to items. Callbacks are invoked without holding
// the Director's lock, so they may call back into it.
type Director struct {
	renderer ports.RowRenderer

	mu        sync.Mutex
	items     []ports.Row
	callbacks ports.RowCallbacks
}

// NewDirector returns a Director with no rows drawing through renderer.
func NewDirector(renderer ports.RowRenderer) *Director {
	return &Director{renderer: renderer}
}

// SetCallbacks replaces every callback.
func (d *Director) SetCallbacks(cb ports.RowCallbacks) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callbacks = cb
}

// SetItems replaces the rows and reloads the renderer.
func (d *Director) SetItems(rows []ports.Row) {
	items := slices.Clone(rows)
	if items == nil {
		items = []ports.Row{}
	}

	d.mu.Lock()
	d.items = items
	d.mu.Unlock()

	d.renderer.Reload(slices.Clone(items))
}

// Items returns a copy of the current rows.
func (d *Director) Items() []ports.Row {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.items)
}

// NumberOfRows returns the number of rows.
func (d *Director) NumberOfRows() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// Row returns the row at index i.
func (d *Director) Row(i int) (ports.Row, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.items) {
		return ports.Row{}, false
	}
	return d.items[i], true
}

// CanEditRow reports whether row i accepts text edits and deletion. Every
// row does.
func (d *Director) CanEditRow(int) bool {
	return true
}

// FocusOnItem focuses the row showing id. Unknown ids are ignored.
func (d *Director) FocusOnItem(id domain.Identifier) {
	d.mu.Lock()
	index := d.indexOf(id)
	d.mu.Unlock()

	if index < 0 {
		return
	}
	d.renderer.Focus(index)
}

// SelectRow handles a tap on row i. The selection highlight is cleared for
// every tap, even one on a row that is no longer there, and before OnItemTap
// fires.
func (d *Director) SelectRow(i int) {
	d.renderer.Deselect(i)
	row, cb, ok := d.lookup(i)
	if !ok {
		return
	}
	if cb.OnItemTap != nil {
		cb.OnItemTap(row.ID)
	}
}

// EndEditing reports the text left in row i when editing ends.
func (d *Director) EndEditing(i int, text string) {
	row, cb, ok := d.lookup(i)
	if ok && cb.OnCellTextCommitted != nil {
		cb.OnCellTextCommitted(row.ID, text)
	}
}

// CommitDelete reports a confirmed delete gesture on row i.
func (d *Director) CommitDelete(i int) {
	row, cb, ok := d.lookup(i)
	if ok && cb.OnDeleteTap != nil {
		cb.OnDeleteTap(row.ID)
	}
}

// ToggleDone reports a flip of the done switch on row i. Rows that are not
// checkable have no switch and are ignored.
func (d *Director) ToggleDone(i int, done bool) {
	row, cb, ok := d.lookup(i)
	if ok && row.Checkable && cb.OnDoneToggled != nil {
		cb.OnDoneToggled(row.ID, done)
	}
}

func (d *Director) lookup(i int) (ports.Row, ports.RowCallbacks, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.items) {
		return ports.Row{}, ports.RowCallbacks{}, false
	}
	return d.items[i], d.callbacks, true
}

func (d *Director) indexOf(id domain.Identifier) int {
	return slices.IndexFunc(d.items, func(r ports.Row) bool { return r.ID == id })
}
