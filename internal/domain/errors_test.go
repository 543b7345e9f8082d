package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorConstants(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrInvalidArgument", ErrInvalidArgument, "invalid argument"},
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrConflict", ErrConflict, "conflict"},
		{"ErrUnauthorized", ErrUnauthorized, "unauthorized"},
		{"ErrForbidden", ErrForbidden, "forbidden"},
		{"ErrRateLimited", ErrRateLimited, "rate limited"},
		{"ErrInternal", ErrInternal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected %s to be %q, got %q", tt.name, tt.expected, tt.err.Error())
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{"ErrInvalidArgument is ErrInvalidArgument", ErrInvalidArgument, ErrInvalidArgument, true},
		{"ErrNotFound is ErrNotFound", ErrNotFound, ErrNotFound, true},
		{"ErrUnauthorized is ErrUnauthorized", ErrUnauthorized, ErrUnauthorized, true},
		{"ErrRateLimited is ErrRateLimited", ErrRateLimited, ErrRateLimited, true},
		{"ErrInvalidArgument is not ErrNotFound", ErrInvalidArgument, ErrNotFound, false},
		{"ErrUnauthorized is not ErrForbidden", ErrUnauthorized, ErrForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errors.Is(tt.err, tt.target) != tt.expected {
				t.Errorf("Expected errors.Is(%v, %v) to be %v, got %v", tt.err, tt.target, tt.expected, !tt.expected)
			}
		})
	}
}

func TestErrorWrapSurvivesOpPrefix(t *testing.T) {
	wrapped := fmt.Errorf("op=job.create: %w", ErrConflict)
	if !errors.Is(wrapped, ErrConflict) {
		t.Errorf("Expected wrapped error to match ErrConflict")
	}
	if errors.Is(wrapped, ErrNotFound) {
		t.Errorf("Expected wrapped error not to match ErrNotFound")
	}
}
