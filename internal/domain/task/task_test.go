package task

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{
			name:   "undone is valid",
			status: StatusUndone,
			want:   true,
		},
		{
			name:   "done is valid",
			status: StatusDone,
			want:   true,
		},
		{
			name:   "empty string is invalid",
			status: "",
			want:   false,
		},
		{
			name:   "unknown value is invalid",
			status: "pending",
			want:   false,
		},
		{
			name:   "case sensitive",
			status: "Done",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatusFromDone(t *testing.T) {
	t.Parallel()

	if got := StatusFromDone(true); got != StatusDone {
		t.Errorf("StatusFromDone(true) = %q, want %q", got, StatusDone)
	}
	if got := StatusFromDone(false); got != StatusUndone {
		t.Errorf("StatusFromDone(false) = %q, want %q", got, StatusUndone)
	}
}

func validTask() Task {
	return Task{
		Identifier:   "task-1",
		Name:         "Milk",
		Status:       StatusUndone,
		CreationDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	got := New("Milk", now)

	if got.Identifier.IsZero() {
		t.Error("New().Identifier is zero, want generated identifier")
	}
	if got.Status != StatusUndone {
		t.Errorf("New().Status = %q, want %q", got.Status, StatusUndone)
	}
	if !got.CreationDate.Equal(now) {
		t.Errorf("New().CreationDate = %v, want %v", got.CreationDate, now)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("New().Validate() = %v, want nil", err)
	}
}

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Task)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid task passes",
			modify:  func(_ *Task) {},
			wantErr: false,
		},
		{
			name:      "empty name fails",
			modify:    func(tk *Task) { tk.Name = "" },
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "whitespace-only name fails",
			modify:    func(tk *Task) { tk.Name = " \t" },
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "empty identifier fails",
			modify:    func(tk *Task) { tk.Identifier = "" },
			wantErr:   true,
			wantField: "identifier",
		},
		{
			name:      "invalid status fails",
			modify:    func(tk *Task) { tk.Status = "completed" },
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "zero creation date fails",
			modify:    func(tk *Task) { tk.CreationDate = time.Time{} },
			wantErr:   true,
			wantField: "creation_date",
		},
		{
			name:    "done status passes",
			modify:  func(tk *Task) { tk.Status = StatusDone },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tk := validTask()
			tt.modify(&tk)
			err := tk.Validate()

			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks := []Task{
		{Identifier: "a", CreationDate: base},
		{Identifier: "b", CreationDate: base.Add(2 * time.Minute)},
		{Identifier: "c", CreationDate: base.Add(time.Minute)},
		{Identifier: "d", CreationDate: base.Add(2 * time.Minute)},
		{Identifier: "e", CreationDate: base},
	}

	SortNewestFirst(tasks)

	want := []domain.Identifier{"b", "d", "c", "a", "e"}
	for i, id := range want {
		if tasks[i].Identifier != id {
			t.Errorf("tasks[%d].Identifier = %q, want %q", i, tasks[i].Identifier, id)
		}
	}
}

func TestSortNewestFirst_Empty(t *testing.T) {
	t.Parallel()

	var tasks []Task
	SortNewestFirst(tasks)
	if len(tasks) != 0 {
		t.Errorf("len(tasks) = %d, want 0", len(tasks))
	}
}
