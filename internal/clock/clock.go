// Package clock provides the monotonic time source used by round timers.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time. Timers in the game only ever compare
// readings taken from the same Clock.
type Clock interface {
	Now() time.Time
}

// Real provides the system time with monotonic clock readings.
type Real struct{}

// NewReal creates a monotonic time provider.
func NewReal() Real {
	return Real{}
}

// Now returns the current time with monotonic clock reading.
func (Real) Now() time.Time {
	return time.Now()
}

// Mock provides a controllable time source for tests.
type Mock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMock creates a mock clock starting at startTime.
func NewMock(startTime time.Time) *Mock {
	return &Mock{currentTime: startTime}
}

// Now returns the current mocked time.
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set sets the current time.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the current time forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

var (
	_ Clock = Real{}
	_ Clock = (*Mock)(nil)
)
