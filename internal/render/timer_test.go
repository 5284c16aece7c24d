package render

import (
	"testing"
	"time"
)

func TestTimerMeasuresElapsed(t *testing.T) {
	tm := NewTimer("test")
	tm.Start()
	time.Sleep(2 * time.Millisecond)
	d := tm.Stop()
	if d <= 0 {
		t.Fatalf("Stop() = %v, want positive duration", d)
	}
}

func TestTimerStopWithoutStartIsZero(t *testing.T) {
	tm := NewTimer("unstarted")
	if d := tm.Stop(); d != 0 {
		t.Fatalf("Stop() without Start = %v, want 0", d)
	}
}

func TestTimerStopTwiceReturnsZeroSecondTime(t *testing.T) {
	tm := NewTimer("twice")
	tm.Start()
	_ = tm.Stop()
	if d := tm.Stop(); d != 0 {
		t.Fatalf("second Stop() = %v, want 0", d)
	}
}

func TestTimerDescription(t *testing.T) {
	tm := NewTimer("label")
	if tm.Description() != "label" {
		t.Fatalf("Description() = %q, want %q", tm.Description(), "label")
	}
}
