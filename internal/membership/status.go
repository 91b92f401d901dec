package membership

import (
	"math"
	"time"
)

// ExpiringSoonDays is the window used by IsExpiringSoon.
const ExpiringSoonDays = 7

// ComputeStatus derives the lifecycle state of m at now. An explicit
// cancellation wins; otherwise the membership is active through its end
// instant inclusive.
func ComputeStatus(m *Membership, now time.Time) Status {
	if m.CancelledAt != nil {
		return StatusCancelled
	}
	if !m.EndDate.Before(now) {
		return StatusActive
	}
	return StatusExpired
}

// DaysRemaining is ceil((end - now) / 24h). Negative once expired.
func DaysRemaining(m *Membership, now time.Time) int {
	days := math.Ceil(m.EndDate.Sub(now).Hours() / 24)
	return int(days)
}

func IsExpiringSoon(daysRemaining int) bool {
	return daysRemaining > 0 && daysRemaining <= ExpiringSoonDays
}

func ExpiredToday(daysRemaining int) bool {
	return daysRemaining == 0
}

// SplitEqual divides total into n shares of total/n, adding the remainder to
// the share at primary (the first share when primary is out of range).
// Shares always sum to total.
func SplitEqual(total int64, n, primary int) []int64 {
	if n <= 0 {
		return nil
	}
	base := total / int64(n)
	shares := make([]int64, n)
	for i := range shares {
		shares[i] = base
	}
	if primary < 0 || primary >= n {
		primary = 0
	}
	shares[primary] += total - base*int64(n)
	return shares
}
