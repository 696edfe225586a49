package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}

	if !errors.Is(verr, domain.ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("operation failed: %w", verr)
	if !errors.Is(wrapped, domain.ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	original := &domain.ValidationError{Fields: map[string]string{
		"name":       domain.MsgRequired,
		"identifier": domain.MsgRequired,
	}}

	wrapped := fmt.Errorf("operation failed: %w", original)

	var verr *domain.ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("ValidationError.Fields has %d entries, want 2", len(verr.Fields))
	}
	if verr.Fields["name"] != domain.MsgRequired {
		t.Errorf("Fields[\"name\"] = %q, want %q", verr.Fields["name"], domain.MsgRequired)
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       *domain.StorageError
		wantIs    []error
		wantNotIs []error
	}{
		{
			name:      "kind and cause both reachable",
			err:       &domain.StorageError{Op: "DeleteTask", Kind: domain.ErrCannotDelete, Err: domain.ErrNotFound},
			wantIs:    []error{domain.ErrCannotDelete, domain.ErrNotFound},
			wantNotIs: []error{domain.ErrInternal, domain.ErrCannotUpdate},
		},
		{
			name:      "nil cause",
			err:       &domain.StorageError{Op: "FetchLists", Kind: domain.ErrCannotFetch},
			wantIs:    []error{domain.ErrCannotFetch},
			wantNotIs: []error{domain.ErrNotFound},
		},
		{
			name:   "validation cause",
			err:    &domain.StorageError{Op: "SaveList", Kind: domain.ErrCannotCreate, Err: &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}},
			wantIs: []error{domain.ErrCannotCreate, domain.ErrValidation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("outer: %w", tt.err)
			for _, target := range tt.wantIs {
				if !errors.Is(wrapped, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, target)
				}
			}
			for _, target := range tt.wantNotIs {
				if errors.Is(wrapped, target) {
					t.Errorf("errors.Is(%v, %v) = true, want false", wrapped, target)
				}
			}
		})
	}
}

func TestStorageError_Error(t *testing.T) {
	t.Parallel()

	withCause := &domain.StorageError{Op: "UpdateTask", Kind: domain.ErrCannotUpdate, Err: domain.ErrNotFound}
	if got, want := withCause.Error(), "UpdateTask: cannot update: not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &domain.StorageError{Op: "FetchLists", Kind: domain.ErrCannotFetch}
	if got, want := bare.Error(), "FetchLists: cannot fetch"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	serr := &domain.StorageError{Op: "CreateTask", Kind: domain.ErrCannotCreate, Err: domain.ErrNotFound}

	if got := domain.KindOf(fmt.Errorf("wrapped: %w", serr)); got != domain.ErrCannotCreate {
		t.Errorf("KindOf(wrapped) = %v, want ErrCannotCreate", got)
	}
	if got := domain.KindOf(domain.ErrNotFound); got != nil {
		t.Errorf("KindOf(bare sentinel) = %v, want nil", got)
	}
	if got := domain.KindOf(nil); got != nil {
		t.Errorf("KindOf(nil) = %v, want nil", got)
	}
}

func TestKindName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind error
		want string
	}{
		{nil, "success"},
		{domain.ErrCannotFetch, "cannot_fetch"},
		{domain.ErrCannotCreate, "cannot_create"},
		{domain.ErrCannotUpdate, "cannot_update"},
		{domain.ErrCannotDelete, "cannot_delete"},
		{domain.ErrInternal, "internal_error"},
		{errors.New("something else"), "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := domain.KindName(tt.kind); got != tt.want {
				t.Errorf("KindName(%v) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", domain.ErrNotFound},
		{"ErrValidation", domain.ErrValidation},
		{"ErrConflict", domain.ErrConflict},
		{"ErrUnavailable", domain.ErrUnavailable},
		{"ErrCannotFetch", domain.ErrCannotFetch},
		{"ErrCannotCreate", domain.ErrCannotCreate},
		{"ErrCannotUpdate", domain.ErrCannotUpdate},
		{"ErrCannotDelete", domain.ErrCannotDelete},
		{"ErrInternal", domain.ErrInternal},
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("errors.Is(%s, %s) = true, want distinct sentinels", a.name, b.name)
			}
		}
	}
}
