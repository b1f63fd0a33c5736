package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestInterval_FiresRepeatedly(t *testing.T) {
	iv := NewInterval()
	defer iv.Stop()

	var fires atomic.Int64
	iv.Start(5*time.Millisecond, func() {
		fires.Add(1)
	})

	deadline := time.After(time.Second)
	for fires.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("fires = %d, want >= 3", fires.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestInterval_StopCancels(t *testing.T) {
	iv := NewInterval()

	var fires atomic.Int64
	iv.Start(5*time.Millisecond, func() {
		fires.Add(1)
	})

	time.Sleep(20 * time.Millisecond)
	iv.Stop()
	after := fires.Load()

	time.Sleep(30 * time.Millisecond)
	if got := fires.Load(); got > after+1 {
		t.Errorf("fires kept arriving after Stop: %d -> %d", after, got)
	}
}

func TestInterval_RestartReplacesStream(t *testing.T) {
	iv := NewInterval()
	defer iv.Stop()

	var first, second atomic.Int64
	iv.Start(5*time.Millisecond, func() { first.Add(1) })
	iv.Start(5*time.Millisecond, func() { second.Add(1) })

	time.Sleep(30 * time.Millisecond)
	iv.Stop()

	if first.Load() > 1 {
		t.Errorf("replaced stream still firing: %d", first.Load())
	}
	if second.Load() == 0 {
		t.Error("new stream never fired")
	}
}

func TestInterval_StopIdempotent(t *testing.T) {
	iv := NewInterval()
	iv.Stop()
	iv.Stop()

	iv.Start(5*time.Millisecond, func() {})
	iv.Stop()
	iv.Stop()
}
