package photos

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// dayKeyFormat is the calendar-date key used for daily quota accounting.
const dayKeyFormat = "2006-01-02"

// QuotaLimiter gates Photos API requests behind three budgets: a hard
// daily quota, a burst-token reserve that absorbs short spikes, and a
// one-second sliding window that caps the sustained rate once the
// reserve is drained.
//
// The daily quota is checked first so that exhaustion is reported
// immediately, without any artificial delay. Acquire is the only
// blocking operation and it respects context cancellation; a cancelled
// wait consumes no token and increments no counter.
type QuotaLimiter struct {
	mu     sync.Mutex
	cfg    RateLimitConfig
	burst  *rate.Limiter
	recent []time.Time    // steady-state window, most recent last
	daily  map[string]int // day key -> acquisitions

	now func() time.Time // swappable for tests
}

// NewQuotaLimiter creates a limiter for one client session.
func NewQuotaLimiter(cfg RateLimitConfig) *QuotaLimiter {
	if cfg.ResetTimezone == nil {
		cfg.ResetTimezone = time.UTC
	}
	return &QuotaLimiter{
		cfg: cfg,
		// One token regenerates per second, capped at the allowance.
		// The bucket starts full, so a fresh session can absorb a
		// spike of BurstAllowance requests with no delay.
		burst: rate.NewLimiter(rate.Every(time.Second), cfg.BurstAllowance),
		daily: make(map[string]int),
		now:   time.Now,
	}
}

// Acquire blocks until a request may proceed, or fails immediately
// with *QuotaExceededError once the daily quota is spent. Callers must
// not retry a quota failure the same day.
func (l *QuotaLimiter) Acquire(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := l.now()
		day := now.In(l.cfg.ResetTimezone).Format(dayKeyFormat)

		// Hard stop: the daily quota is enforced before increment,
		// and before any per-second logic, so exhaustion surfaces
		// without waiting.
		if l.daily[day] >= l.cfg.RequestsPerDay {
			l.mu.Unlock()
			return &QuotaExceededError{Day: day, Limit: l.cfg.RequestsPerDay}
		}

		// Fast path: spend a burst token. Allow never blocks, so a
		// cancelled caller can never have consumed one.
		if l.burst.Allow() {
			l.daily[day]++
			l.mu.Unlock()
			return nil
		}

		// Steady state: admit up to RequestsPerSecond per sliding
		// one-second window.
		l.prune(now)
		if len(l.recent) < l.cfg.RequestsPerSecond {
			l.recent = append(l.recent, now)
			l.daily[day]++
			l.mu.Unlock()
			return nil
		}
		wait := time.Second - now.Sub(l.recent[0])
		l.mu.Unlock()

		if wait <= 0 {
			continue
		}

		// The wait happens outside the lock so unrelated callers
		// (and cache reads above us) are not stalled.
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// prune drops window timestamps older than one second. Caller holds the lock.
func (l *QuotaLimiter) prune(now time.Time) {
	cutoff := now.Add(-time.Second)
	i := 0
	for i < len(l.recent) && !l.recent[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.recent = append(l.recent[:0], l.recent[i:]...)
	}
}

// LimiterSnapshot is a point-in-time view of quota consumption.
type LimiterSnapshot struct {
	// DailyCounts maps day keys to the number of acquisitions.
	DailyCounts map[string]int
	// BurstTokens is the number of burst tokens currently available.
	BurstTokens int
}

// Snapshot reports current quota state for observability.
func (l *QuotaLimiter) Snapshot() LimiterSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := make(map[string]int, len(l.daily))
	for day, n := range l.daily {
		counts[day] = n
	}
	return LimiterSnapshot{
		DailyCounts: counts,
		BurstTokens: int(l.burst.Tokens()),
	}
}
