package domain

import (
	"testing"
	"time"
)

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()
	if p.RetryCountOnStall != 1 {
		t.Errorf("Expected default RetryCountOnStall to be 1, got %d", p.RetryCountOnStall)
	}
	if p.TimeoutIntervalSeconds != 30 {
		t.Errorf("Expected default TimeoutIntervalSeconds to be 30, got %d", p.TimeoutIntervalSeconds)
	}
}

func TestRetryPolicyAttempts(t *testing.T) {
	tests := []struct {
		name     string
		retries  int
		expected int
	}{
		{"default grants two attempts", 1, 2},
		{"zero retries still grants one attempt", 0, 1},
		{"negative retries clamp to one attempt", -3, 1},
		{"five retries grant six attempts", 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RetryPolicy{RetryCountOnStall: tt.retries}
			if got := p.Attempts(); got != tt.expected {
				t.Errorf("Expected Attempts() to be %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestRetryPolicyTimeout(t *testing.T) {
	p := RetryPolicy{TimeoutIntervalSeconds: 45}
	if p.Timeout() != 45*time.Second {
		t.Errorf("Expected Timeout() to be 45s, got %v", p.Timeout())
	}
}
