package errors

import (
	"errors"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrClosed", ErrClosed, "resource is closed"},
		{"ErrTimeout", ErrTimeout, "operation timed out"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "workerpool",
				Field:  "size",
				Value:  -1,
				Reason: "must be positive",
			},
			want: "workerpool: invalid size=-1 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "await",
				Field:  "delay",
				Value:  0,
				Reason: "must be positive",
				Hint:   "use a value greater than 0",
			},
			want: "await: invalid delay=0 (must be positive) - use a value greater than 0",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "await",
				Field:  "room",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "await: invalid room= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("config", "pool_size", 0, "must be positive").
		WithHint("value must be greater than 0")

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should unwrap to ErrInvalidConfiguration")
	}
	if verr.Hint != "value must be greater than 0" {
		t.Errorf("WithHint did not set hint, got %q", verr.Hint)
	}
}
