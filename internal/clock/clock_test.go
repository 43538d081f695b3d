package clock

import (
	"testing"
	"time"
)

func TestRealClock(t *testing.T) {
	c := NewReal()

	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v, t2=%v", t1, t2)
	}
	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms difference, got %v", d)
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)

	if now := m.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	m.Advance(5 * time.Second)
	m.Advance(250 * time.Millisecond)
	if want := start.Add(5250 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, m.Now())
	}

	later := start.Add(time.Hour)
	m.Set(later)
	if !m.Now().Equal(later) {
		t.Errorf("Expected %v after Set, got %v", later, m.Now())
	}
}
