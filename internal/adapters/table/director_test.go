package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/table"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
	"github.com/jsamuelsen11/go-todo-lists/mocks"
)

func sampleRows() []ports.Row {
	return []ports.Row{
		{ID: "list-1", Text: "Groceries"},
		{ID: "list-2", Text: "Work"},
		{ID: "task-1", Text: "Call mom", Checkable: true},
	}
}

func newDirector(t *testing.T) (*table.Director, *mocks.MockRowRenderer) {
	t.Helper()

	renderer := mocks.NewMockRowRenderer(t)
	renderer.EXPECT().Reload(mock.Anything).Return().Once()
	d := table.NewDirector(renderer)
	d.SetItems(sampleRows())
	return d, renderer
}

func TestDirector_SetItemsReloads(t *testing.T) {
	t.Parallel()

	renderer := mocks.NewMockRowRenderer(t)
	d := table.NewDirector(renderer)

	rows := sampleRows()
	renderer.EXPECT().Reload(rows).Return().Once()
	d.SetItems(rows)

	rows[0].Text = "mutated"
	assert.Equal(t, "Groceries", d.Items()[0].Text, "SetItems must copy its input")
	assert.Equal(t, 3, d.NumberOfRows())

	renderer.EXPECT().Reload([]ports.Row{}).Return().Once()
	d.SetItems([]ports.Row{})
	assert.Equal(t, 0, d.NumberOfRows())
}

func TestDirector_Row(t *testing.T) {
	t.Parallel()

	d, _ := newDirector(t)

	tests := []struct {
		name   string
		index  int
		wantOK bool
		wantID domain.Identifier
	}{
		{name: "first", index: 0, wantOK: true, wantID: "list-1"},
		{name: "last", index: 2, wantOK: true, wantID: "task-1"},
		{name: "negative", index: -1},
		{name: "past end", index: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := d.Row(tt.index)
			if ok != tt.wantOK {
				t.Fatalf("Row(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if row.ID != tt.wantID {
				t.Errorf("Row(%d).ID = %q, want %q", tt.index, row.ID, tt.wantID)
			}
		})
	}
}

func TestDirector_SelectRowDeselectsThenTaps(t *testing.T) {
	t.Parallel()

	d, renderer := newDirector(t)

	var events []string
	renderer.EXPECT().Deselect(1).Run(func(int) { events = append(events, "deselect") }).Return().Once()
	d.SetCallbacks(ports.RowCallbacks{
		OnItemTap: func(id domain.Identifier) { events = append(events, "tap:"+id.String()) },
	})

	d.SelectRow(1)

	assert.Equal(t, []string{"deselect", "tap:list-2"}, events)
}

func TestDirector_SelectRowWithoutCallbackStillDeselects(t *testing.T) {
	t.Parallel()

	d, renderer := newDirector(t)
	renderer.EXPECT().Deselect(0).Return().Once()

	d.SelectRow(0)
}

func TestDirector_SelectRowOutOfRangeStillDeselects(t *testing.T) {
	t.Parallel()

	d, renderer := newDirector(t)
	renderer.EXPECT().Deselect(7).Return().Once()
	d.SetCallbacks(ports.RowCallbacks{
		OnItemTap: func(domain.Identifier) { t.Error("OnItemTap fired") },
	})

	d.SelectRow(7)
}

func TestDirector_GesturesOutOfRangeAreIgnored(t *testing.T) {
	t.Parallel()

	d, renderer := newDirector(t)
	renderer.EXPECT().Deselect(mock.Anything).Return().Times(3)
	d.SetCallbacks(ports.RowCallbacks{
		OnItemTap:           func(domain.Identifier) { t.Error("OnItemTap fired") },
		OnCellTextCommitted: func(domain.Identifier, string) { t.Error("OnCellTextCommitted fired") },
		OnDeleteTap:         func(domain.Identifier) { t.Error("OnDeleteTap fired") },
		OnDoneToggled:       func(domain.Identifier, bool) { t.Error("OnDoneToggled fired") },
	})

	for _, i := range []int{-1, 3, 99} {
		d.SelectRow(i)
		d.EndEditing(i, "text")
		d.CommitDelete(i)
		d.ToggleDone(i, true)
	}
}

func TestDirector_Callbacks(t *testing.T) {
	t.Parallel()

	d, _ := newDirector(t)

	var (
		committedID   domain.Identifier
		committedText string
		deletedID     domain.Identifier
		toggledID     domain.Identifier
		toggledDone   bool
	)
	d.SetCallbacks(ports.RowCallbacks{
		OnCellTextCommitted: func(id domain.Identifier, text string) { committedID, committedText = id, text },
		OnDeleteTap:         func(id domain.Identifier) { deletedID = id },
		OnDoneToggled:       func(id domain.Identifier, done bool) { toggledID, toggledDone = id, done },
	})

	d.EndEditing(0, "Food")
	d.CommitDelete(1)
	d.ToggleDone(2, true)

	assert.Equal(t, domain.Identifier("list-1"), committedID)
	assert.Equal(t, "Food", committedText)
	assert.Equal(t, domain.Identifier("list-2"), deletedID)
	assert.Equal(t, domain.Identifier("task-1"), toggledID)
	assert.True(t, toggledDone)
}

func TestDirector_ToggleDoneIgnoresRowsWithoutSwitch(t *testing.T) {
	t.Parallel()

	d, _ := newDirector(t)
	d.SetCallbacks(ports.RowCallbacks{
		OnDoneToggled: func(domain.Identifier, bool) { t.Error("OnDoneToggled fired for a list row") },
	})

	d.ToggleDone(0, true)
}

func TestDirector_CallbackMayReenter(t *testing.T) {
	t.Parallel()

	d, renderer := newDirector(t)
	renderer.EXPECT().Reload(mock.Anything).Return().Once()
	d.SetCallbacks(ports.RowCallbacks{
		OnDeleteTap: func(id domain.Identifier) {
			rows := d.Items()
			d.SetItems(rows[1:])
		},
	})

	d.CommitDelete(0)

	assert.Equal(t, 2, d.NumberOfRows())
}

func TestDirector_FocusOnItem(t *testing.T) {
	t.Parallel()

	t.Run("focuses the row index", func(t *testing.T) {
		t.Parallel()

		d, renderer := newDirector(t)
		renderer.EXPECT().Focus(2).Return().Once()

		d.FocusOnItem("task-1")
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		t.Parallel()

		d, _ := newDirector(t)

		d.FocusOnItem("missing")
	})
}

func TestDirector_CanEditRow(t *testing.T) {
	t.Parallel()

	d, _ := newDirector(t)
	for i := range 3 {
		assert.True(t, d.CanEditRow(i), "CanEditRow(%d)", i)
	}
}
