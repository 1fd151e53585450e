// Package focus implements the countdown used for focus sessions.
package focus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const DefaultMinutes = 25

var ErrInvalidMinutes = errors.New("focus: minutes must be between 1 and 999")

type Preset struct {
	Label   string
	Minutes int
	Color   string
}

var Presets = []Preset{
	{Label: "Focus", Minutes: 25, Color: "#8B5CF6"},
	{Label: "Short Break", Minutes: 5, Color: "#10B981"},
	{Label: "Long Break", Minutes: 15, Color: "#22D3EE"},
}

// Timer counts down whole seconds. It is safe for concurrent use.
type Timer struct {
	mu        sync.Mutex
	total     int
	remaining int
	running   bool
}

func New(minutes int) *Timer {
	if minutes <= 0 || minutes >= 1000 {
		minutes = DefaultMinutes
	}
	return &Timer{total: minutes * 60, remaining: minutes * 60}
}

// Toggle starts or pauses the countdown and reports whether it is now running.
// Starting a finished timer restarts it from the full duration.
func (t *Timer) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running && t.remaining == 0 {
		t.remaining = t.total
	}
	t.running = !t.running
	return t.running
}

// Reset stops the timer and restores the full duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.remaining = t.total
}

// SetMinutes changes the duration. The timer is stopped and reset.
func (t *Timer) SetMinutes(m int) error {
	if m <= 0 || m >= 1000 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinutes, m)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.total = m * 60
	t.remaining = t.total
	return nil
}

// Tick advances a running timer by one second. It returns true exactly once,
// on the tick that reaches zero; the timer is stopped at that point.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.running = false
		return true
	}
	return false
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Duration(t.remaining) * time.Second
}

func (t *Timer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Duration(t.total) * time.Second
}

// Format renders the remaining time as MM:SS. Minutes are not wrapped at 60.
func (t *Timer) Format() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60)
}

// Progress returns the elapsed share of the duration in [0, 100].
func (t *Timer) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(t.total-t.remaining) / float64(t.total) * 100
}

// Run starts the timer if needed and ticks it once per second, calling onTick
// after every tick. It returns nil when the countdown completes or is paused,
// and ctx.Err() when ctx is cancelled first.
func (t *Timer) Run(ctx context.Context, onTick func(*Timer)) error {
	if !t.Running() {
		t.Toggle()
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.mu.Lock()
			t.running = false
			t.mu.Unlock()
			return ctx.Err()
		case <-ticker.C:
			done := t.Tick()
			if onTick != nil {
				onTick(t)
			}
			// Also stops when paused from elsewhere.
			if done || !t.Running() {
				return nil
			}
		}
	}
}
