// Retry semantics for stalled and rejected jobs.
package domain

import "time"

const (
	// DefaultRetryCountOnStall grants one re-claim after a stall unless the
	// caller asked otherwise at admission.
	DefaultRetryCountOnStall = 1
	// DefaultTimeoutIntervalSeconds is applied when admission receives no
	// per-job timeout.
	DefaultTimeoutIntervalSeconds = 30
)

// RetryPolicy captures the stall knobs resolved at admission time. The
// stored job carries the resolved values; nothing re-reads the policy later.
type RetryPolicy struct {
	RetryCountOnStall      int
	TimeoutIntervalSeconds int
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		RetryCountOnStall:      DefaultRetryCountOnStall,
		TimeoutIntervalSeconds: DefaultTimeoutIntervalSeconds,
	}
}

// Attempts returns the total executions the policy grants: the first run
// plus one per allowed stall retry. Never less than one.
func (p RetryPolicy) Attempts() int {
	if p.RetryCountOnStall < 0 {
		return 1
	}
	return p.RetryCountOnStall + 1
}

// Timeout returns the stall threshold as a duration.
func (p RetryPolicy) Timeout() time.Duration {
	return time.Duration(p.TimeoutIntervalSeconds) * time.Second
}

// RetryPredictor decides whether a rejected result looks transient enough to
// retry. Consulted only when the cluster enables predictive retries and the
// job opted in. No built-in policy ships with the engine.
type RetryPredictor interface {
	PredictRetryable(ctx Context, j Job) (bool, error)
}
