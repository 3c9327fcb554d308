package clock

import (
	"testing"
	"time"
)

func TestManual_FiresInDueOrder(t *testing.T) {
	m := NewManual(0)
	var order []string
	m.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	m.AfterFunc(1*time.Second, func() { order = append(order, "a") })
	m.AfterFunc(2*time.Second, func() { order = append(order, "b") })

	m.Advance(5 * time.Second)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestManual_StopPreventsFiring(t *testing.T) {
	m := NewManual(0)
	fired := false
	timer := m.AfterFunc(1*time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("expected Stop to succeed before firing")
	}
	m.Advance(2 * time.Second)
	if fired {
		t.Fatal("stopped timer must not fire")
	}
	if timer.Stop() {
		t.Fatal("Stop on an already-stopped timer must report false")
	}
}

func TestManual_DoesNotFireFutureTimers(t *testing.T) {
	m := NewManual(0)
	fired := false
	m.AfterFunc(10*time.Second, func() { fired = true })
	m.Advance(1 * time.Second)
	if fired {
		t.Fatal("timer due in the future must not fire early")
	}
	if m.Now() != 1 {
		t.Fatalf("expected now=1, got %v", m.Now())
	}
}
