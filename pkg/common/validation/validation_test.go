package validation

import (
	"errors"
	"testing"
	"time"

	aperrors "github.com/vnykmshr/awaitpool/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"positive", 10, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("test", "size", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, aperrors.ErrInvalidConfiguration) {
				t.Error("validation error should match ErrInvalidConfiguration")
			}
		})
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   time.Duration
		wantErr bool
	}{
		{"millisecond", time.Millisecond, false},
		{"second", time.Second, false},
		{"zero", 0, true},
		{"negative", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositiveDuration("test", "delay", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositiveDuration(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	if err := ValidateNotNil("test", "fn", nil); err == nil {
		t.Error("expected error for nil value")
	}
	if err := ValidateNotNil("test", "fn", struct{}{}); err != nil {
		t.Errorf("unexpected error for non-nil value: %v", err)
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("test", "room", ""); err == nil {
		t.Error("expected error for empty string")
	}
	if err := ValidateNotEmpty("test", "room", "base"); err != nil {
		t.Errorf("unexpected error for non-empty string: %v", err)
	}
}
