// ABOUTME: Retry delay helpers for API calls
// ABOUTME: Shared by the LLM client for operation-specific pacing schedules
package util

import "time"

// DelayForAttempt returns the pause before retry number `attempt` (1-based)
// from a fixed schedule. Schedules shorter than the attempt count reuse their
// last entry; an empty schedule means no delay.
func DelayForAttempt(delays []time.Duration, attempt int) time.Duration {
	if len(delays) == 0 || attempt <= 0 {
		return 0
	}
	if attempt > len(delays) {
		return delays[len(delays)-1]
	}
	return delays[attempt-1]
}

// Sleep waits for d, returning early if done is closed. A nil done channel
// makes it an unconditional sleep. Returns false if interrupted.
func Sleep(d time.Duration, done <-chan struct{}) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-done:
		return false
	}
}
