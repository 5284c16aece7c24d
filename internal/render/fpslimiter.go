package render

import (
	"time"

	"github.com/cgerikj/binary-greedy-meshing/internal/config"
)

// FPSLimiter paces the frame loop to config.GetFPSLimit(), sleeping for
// most of the remaining budget and busy-waiting the last fraction for
// precision, ported from the teacher's internal/game.FPSLimiter.
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter returns a limiter ready for its first Wait call.
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due. A limit of 0 (uncapped)
// disables pacing entirely.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
