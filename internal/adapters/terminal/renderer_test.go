package terminal_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/terminal"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

func taskRows() []ports.Row {
	return []ports.Row{
		{ID: "aaaaaaaa-1111", Text: "Buy milk", Checkable: true, Done: true},
		{ID: "bbbbbbbb-2222", Text: "Call mom", Checkable: true},
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRenderer_View(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []terminal.Option
		rows  []ports.Row
		focus int
		want  []string
	}{
		{
			name:  "task rows with switches",
			rows:  taskRows(),
			focus: -1,
			want: []string{
				"  1. [x] Buy milk  aaaaaaaa",
				"  2. [ ] Call mom  bbbbbbbb",
			},
		},
		{
			name:  "list rows have no switch",
			rows:  []ports.Row{{ID: "cccccccc-3333", Text: "Groceries"}},
			focus: -1,
			want:  []string{"  1. Groceries  cccccccc"},
		},
		{
			name:  "focused row is marked",
			rows:  taskRows(),
			focus: 1,
			want: []string{
				"  1. [x] Buy milk  aaaaaaaa",
				"> 2. [ ] Call mom  bbbbbbbb",
			},
		},
		{
			name:  "title and hidden ids",
			opts:  []terminal.Option{terminal.WithTitle("Inbox"), terminal.WithShowIDs(false)},
			rows:  []ports.Row{{ID: "x", Text: "Groceries"}},
			focus: -1,
			want:  []string{"Inbox", "  1. Groceries"},
		},
		{
			name:  "empty",
			focus: -1,
			want:  []string{"  (empty)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			r := terminal.New(&out, &out, tt.opts...)
			r.Reload(tt.rows)
			r.Focus(tt.focus)

			assert.Equal(t, tt.want, lines(r.View()))
		})
	}
}

func TestRenderer_SetTitle(t *testing.T) {
	t.Parallel()

	r := terminal.New(&bytes.Buffer{}, &bytes.Buffer{}, terminal.WithTitle("Lists"))
	r.SetTitle("Groceries")

	assert.Equal(t, "Groceries", lines(r.View())[0])
}

func TestRenderer_ReloadClearsFocus(t *testing.T) {
	t.Parallel()

	r := terminal.New(&bytes.Buffer{}, &bytes.Buffer{})
	r.Reload(taskRows())
	r.Focus(0)
	r.Reload(taskRows())

	assert.NotContains(t, r.View(), "> ")
}

func TestRenderer_FocusOutOfRangeIgnored(t *testing.T) {
	t.Parallel()

	r := terminal.New(&bytes.Buffer{}, &bytes.Buffer{})
	r.Reload(taskRows())
	r.Focus(5)

	assert.NotContains(t, r.View(), "> ")
}

func TestRenderer_Deselect(t *testing.T) {
	t.Parallel()

	r := terminal.New(&bytes.Buffer{}, &bytes.Buffer{})
	r.Reload(taskRows())
	r.Focus(1)

	r.Deselect(0)
	assert.Contains(t, r.View(), "> 2.")

	r.Deselect(1)
	assert.NotContains(t, r.View(), "> ")
}

func TestRenderer_ReloadCopiesRows(t *testing.T) {
	t.Parallel()

	r := terminal.New(&bytes.Buffer{}, &bytes.Buffer{})
	rows := taskRows()
	r.Reload(rows)
	rows[0].Text = "mutated"

	assert.Contains(t, r.View(), "Buy milk")
}

func TestRenderer_Flush(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := terminal.New(&out, &bytes.Buffer{})
	r.Reload(taskRows())

	require.NoError(t, r.Flush())
	assert.Equal(t, r.View(), out.String())
}

func TestRenderer_ShowError(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	r := terminal.New(&out, &errOut)

	r.ShowError(errors.New("DeleteList: cannot delete: not found"))
	r.ShowError(nil)

	assert.Equal(t, "error: DeleteList: cannot delete: not found\n", errOut.String())
	assert.Empty(t, out.String())
}
