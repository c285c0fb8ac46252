package dispatch

import (
	"math/rand/v2"
	"time"

	"outreach-server/internal/store"
)

// InWindow reports whether hour lies in [start, end). The window wraps past
// midnight when end < start, and start == end covers the whole day.
func InWindow(hour, start, end int) bool {
	switch {
	case start == end:
		return true
	case start < end:
		return hour >= start && hour < end
	default:
		return hour >= start || hour < end
	}
}

// Allowed reports whether sending is allowed at now. A disabled config imposes no window.
func Allowed(cfg store.GlobalSendConfig, now time.Time) bool {
	if !cfg.Enabled {
		return true
	}
	return InWindow(now.Hour(), cfg.StartHour, cfg.EndHour)
}

// Delay returns a uniformly distributed pause in [minDelay, maxDelay] minutes.
// A disabled config sends without pauses.
func Delay(cfg store.GlobalSendConfig, rnd *rand.Rand) time.Duration {
	if !cfg.Enabled {
		return 0
	}
	lo := time.Duration(max(cfg.MinDelayMinutes, 0)) * time.Minute
	hi := time.Duration(max(cfg.MaxDelayMinutes, 0)) * time.Minute
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rnd.Int64N(int64(hi-lo)+1))
}
