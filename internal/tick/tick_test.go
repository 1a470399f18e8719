package tick

import (
	"context"
	"testing"
	"time"
)

var (
	_ Source = (*Manual)(nil)
	_ Source = (*Frames)(nil)
	_ Source = (*Ticker)(nil)
	_ Source = Observed{}
)

func TestManualLifecycle(t *testing.T) {
	m := NewManual()
	var got []time.Duration
	if m.Advance(time.Millisecond) {
		t.Fatalf("frame delivered before Start")
	}

	m.Start(func(now time.Duration) { got = append(got, now) })
	m.Advance(16 * time.Millisecond)
	m.Pause()
	if m.Advance(16 * time.Millisecond) {
		t.Fatalf("frame delivered while paused")
	}
	m.Resume()
	m.Advance(16 * time.Millisecond)
	m.Stop()
	m.Advance(16 * time.Millisecond)

	want := []time.Duration{17 * time.Millisecond, 49 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame %d at %v, want %v", i, got[i], want[i])
		}
	}
	if m.Now() != 65*time.Millisecond {
		t.Fatalf("clock = %v", m.Now())
	}
}

func TestFramesPulse(t *testing.T) {
	var clock time.Duration
	f := NewFrames(func() time.Duration { return clock })
	calls := 0
	f.Start(func(now time.Duration) {
		calls++
		if now != clock {
			t.Fatalf("handler saw %v, clock is %v", now, clock)
		}
	})
	for i := 0; i < 3; i++ {
		clock += 10 * time.Millisecond
		f.Pulse()
	}
	f.Pause()
	f.Pulse()
	if calls != 3 {
		t.Fatalf("expected 3 frames, got %d", calls)
	}
}

func TestTickerRunsHandlerAndPosts(t *testing.T) {
	tk := NewTicker(200)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := make(chan time.Duration, 16)
	tk.Start(func(now time.Duration) {
		select {
		case frames <- now:
		default:
		}
	})

	done := make(chan error, 1)
	go func() { done <- tk.Run(ctx) }()

	for i := 0; i < 3; i++ {
		select {
		case <-frames:
		case <-time.After(2 * time.Second):
			t.Fatalf("no frame delivered")
		}
	}

	ran := make(chan struct{})
	if err := tk.Post(ctx, func() { tk.Pause(); close(ran) }); err != nil {
		t.Fatalf("post: %v", err)
	}
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatalf("posted function never ran")
	}
	if tk.Running() {
		t.Fatalf("ticker should be paused")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop on cancel")
	}
}

func TestTickerPostGivesUpOnCancel(t *testing.T) {
	tk := NewTicker(60)
	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < postQueue; i++ {
		if err := tk.Post(ctx, func() {}); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}
	cancel()
	if err := tk.Post(ctx, func() {}); err == nil {
		t.Fatalf("expected context error on a full queue")
	}
}

func TestObservedRunsAfterEachFrame(t *testing.T) {
	m := NewManual()
	var order []string
	src := Observed{Source: m, After: func(time.Duration) { order = append(order, "draw") }}
	src.Start(func(time.Duration) { order = append(order, "step") })

	m.Advance(time.Millisecond)
	src.Pause()
	m.Advance(time.Millisecond)
	src.Resume()
	m.Advance(time.Millisecond)

	want := []string{"step", "draw", "step", "draw"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}
