package ports

import "github.com/jsamuelsen11/go-todo-lists/internal/domain"

// Row is the view model of one on-screen row. Checkable rows (tasks) show a
// done switch; list rows do not.
type Row struct {
	ID        domain.Identifier
	Text      string
	Checkable bool
	Done      bool
}

// RowRenderer draws rows. It is the view side of the table director.
type RowRenderer interface {
	// Reload redraws every row.
	Reload(rows []Row)

	// Focus puts the row at index into edit/highlight state.
	Focus(index int)

	// Deselect clears the selection highlight on the row at index.
	Deselect(index int)
}

// RowPresenter owns the rows backing a screen. Application services publish
// fresh rows after every fetch and ask for focus after creating an item.
type RowPresenter interface {
	SetItems(rows []Row)
	Items() []Row
	FocusOnItem(id domain.Identifier)
}

// RowCallbacks are the user intents a table reports. Any of them may be nil.
// OnDoneToggled only fires for checkable rows.
type RowCallbacks struct {
	OnItemTap           func(id domain.Identifier)
	OnCellTextCommitted func(id domain.Identifier, text string)
	OnDeleteTap         func(id domain.Identifier)
	OnDoneToggled       func(id domain.Identifier, done bool)
}

// RowTable is a RowPresenter that also reports gestures. Services bind their
// handlers to it.
type RowTable interface {
	RowPresenter
	SetCallbacks(cb RowCallbacks)
}

// ErrorPresenter surfaces storage failures to the user.
type ErrorPresenter interface {
	ShowError(err error)
}
