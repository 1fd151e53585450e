package focus

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	for _, m := range []int{0, -5, 1000} {
		tm := New(m)
		if tm.Total() != DefaultMinutes*time.Minute {
			t.Errorf("New(%d): expected default duration, got %s", m, tm.Total())
		}
	}
	if got := New(25).Format(); got != "25:00" {
		t.Errorf("expected 25:00, got %s", got)
	}
}

func TestToggle(t *testing.T) {
	tm := New(1)
	if !tm.Toggle() {
		t.Error("expected running after first toggle")
	}
	if tm.Toggle() {
		t.Error("expected paused after second toggle")
	}
}

func TestTick_OnlyWhileRunning(t *testing.T) {
	tm := New(1)
	tm.Tick()
	if tm.Remaining() != time.Minute {
		t.Errorf("expected paused timer not to move, got %s", tm.Remaining())
	}
	tm.Toggle()
	tm.Tick()
	if got := tm.Format(); got != "00:59" {
		t.Errorf("expected 00:59, got %s", got)
	}
}

func TestTick_CompletesOnce(t *testing.T) {
	tm := New(1)
	tm.Toggle()
	completions := 0
	for range 70 {
		if tm.Tick() {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("expected 1 completion, got %d", completions)
	}
	if tm.Running() {
		t.Error("expected timer to stop at zero")
	}
	if tm.Progress() != 100 {
		t.Errorf("expected 100%% progress, got %f", tm.Progress())
	}
	if tm.Toggle(); tm.Remaining() != time.Minute {
		t.Errorf("expected restart from full duration, got %s", tm.Remaining())
	}
}

func TestReset(t *testing.T) {
	tm := New(2)
	tm.Toggle()
	tm.Tick()
	tm.Tick()
	tm.Reset()
	if tm.Running() || tm.Format() != "02:00" {
		t.Errorf("expected stopped at 02:00, got running=%v %s", tm.Running(), tm.Format())
	}
}

func TestSetMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		wantErr bool
	}{
		{1, false},
		{999, false},
		{0, true},
		{-1, true},
		{1000, true},
	}
	for _, tt := range tests {
		tm := New(25)
		tm.Toggle()
		err := tm.SetMinutes(tt.minutes)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidMinutes) {
				t.Errorf("SetMinutes(%d): expected ErrInvalidMinutes, got %v", tt.minutes, err)
			}
			if tm.Total() != 25*time.Minute || !tm.Running() {
				t.Errorf("SetMinutes(%d): expected timer untouched", tt.minutes)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetMinutes(%d): unexpected error %v", tt.minutes, err)
		}
		if tm.Running() || tm.Remaining() != time.Duration(tt.minutes)*time.Minute {
			t.Errorf("SetMinutes(%d): expected stopped and reset, got running=%v %s", tt.minutes, tm.Running(), tm.Remaining())
		}
	}
}

func TestFormat(t *testing.T) {
	tm := New(999)
	if got := tm.Format(); got != "999:00" {
		t.Errorf("expected 999:00, got %s", got)
	}
	tm = New(1)
	tm.Toggle()
	for range 55 {
		tm.Tick()
	}
	if got := tm.Format(); got != "00:05" {
		t.Errorf("expected 00:05, got %s", got)
	}
}

func TestProgress(t *testing.T) {
	tm := New(1)
	if tm.Progress() != 0 {
		t.Errorf("expected 0, got %f", tm.Progress())
	}
	tm.Toggle()
	for range 30 {
		tm.Tick()
	}
	if tm.Progress() != 50 {
		t.Errorf("expected 50, got %f", tm.Progress())
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	tm := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tm.Run(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if tm.Running() {
		t.Error("expected timer stopped after cancel")
	}
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	tm := New(1)
	ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
	defer cancel()

	ticks := 0
	err := tm.Run(ctx, func(*Timer) { ticks++ })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if ticks != 2 {
		t.Errorf("expected 2 ticks, got %d", ticks)
	}
	if tm.Format() != "00:58" {
		t.Errorf("expected 00:58, got %s", tm.Format())
	}
}
