// Package terminal renders table rows and storage errors to a terminal.
//
// Renderer keeps the frame in memory: Reload, Focus and Deselect only update
// state, and Flush writes the current frame. Errors are written as they
// arrive.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time checks.
var (
	_ ports.RowRenderer    = (*Renderer)(nil)
	_ ports.ErrorPresenter = (*Renderer)(nil)
)

const (
	focusMarker = "> "
	boxDone     = "[x]"
	boxUndone   = "[ ]"
)

type styles struct {
	title lipgloss.Style
	text  lipgloss.Style
	done  lipgloss.Style
	focus lipgloss.Style
	id    lipgloss.Style
	empty lipgloss.Style
	err   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Underline(true),
		text:  r.NewStyle(),
		done:  r.NewStyle().Strikethrough(true).Faint(true),
		focus: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		id:    r.NewStyle().Foreground(lipgloss.Color("243")),
		empty: r.NewStyle().Faint(true).Italic(true),
		err:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle sets the heading drawn above the rows.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// WithShowIDs toggles the short identifier printed after each row.
func WithShowIDs(show bool) Option {
	return func(r *Renderer) {
		r.showIDs = show
	}
}

// Renderer draws rows to out and errors to errOut.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	styles  styles
	title   string
	showIDs bool

	mu      sync.Mutex
	rows    []ports.Row
	focused int
}

// New returns a Renderer. Styles degrade to plain text when out is not a
// terminal.
func New(out, errOut io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:     out,
		errOut:  errOut,
		styles:  newStyles(lipgloss.NewRenderer(out)),
		showIDs: true,
		focused: -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetTitle changes the heading drawn above the rows.
func (r *Renderer) SetTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.title = title
}

// Reload replaces the rows and clears the focus.
func (r *Renderer) Reload(rows []ports.Row) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows[:0], rows...)
	r.focused = -1
}

// Focus highlights row index.
func (r *Renderer) Focus(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index >= 0 && index < len(r.rows) {
		r.focused = index
	}
}

// Deselect removes the highlight from row index.
func (r *Renderer) Deselect(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.focused == index {
		r.focused = -1
	}
}

// ShowError writes err to the error stream immediately.
func (r *Renderer) ShowError(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.errOut, r.styles.err.Render("error:")+" "+err.Error())
}

// View returns the current frame.
func (r *Renderer) View() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	if r.title != "" {
		b.WriteString(r.styles.title.Render(r.title))
		b.WriteByte('\n')
	}
	if len(r.rows) == 0 {
		b.WriteString("  " + r.styles.empty.Render("(empty)"))
		b.WriteByte('\n')
		return b.String()
	}
	for i := range r.rows {
		b.WriteString(r.line(i))
		b.WriteByte('\n')
	}
	return b.String()
}

// Flush writes the current frame to the output stream.
func (r *Renderer) Flush() error {
	if _, err := io.WriteString(r.out, r.View()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func (r *Renderer) line(i int) string {
	row := r.rows[i]

	prefix := "  "
	if i == r.focused {
		prefix = focusMarker
	}

	var b strings.Builder
	b.WriteString(prefix)
	fmt.Fprintf(&b, "%d. ", i+1)
	if row.Checkable {
		if row.Done {
			b.WriteString(boxDone + " ")
		} else {
			b.WriteString(boxUndone + " ")
		}
	}

	switch {
	case i == r.focused:
		b.WriteString(r.styles.focus.Render(row.Text))
	case row.Checkable && row.Done:
		b.WriteString(r.styles.done.Render(row.Text))
	default:
		b.WriteString(r.styles.text.Render(row.Text))
	}

	if r.showIDs {
		b.WriteString("  " + r.styles.id.Render(row.ID.Short()))
	}
	return b.String()
}
