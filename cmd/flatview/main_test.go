package main

import (
	"math"
	"testing"
	"time"
)

func TestRevealReachesTotal(t *testing.T) {
	r := NewReveal(60, 1000)

	prev := 0
	for range 60 * 30 {
		from, to := r.Update()
		if from != prev {
			t.Fatalf("range starts at %d, want %d", from, prev)
		}
		if to < from {
			t.Fatalf("range went backwards: [%d, %d)", from, to)
		}
		prev = to
		if r.Done() {
			break
		}
	}
	if !r.Done() {
		t.Fatalf("reveal stuck at %d of 1000 faces", prev)
	}
	if prev != 1000 {
		t.Errorf("revealed %d faces, want 1000", prev)
	}
}

func TestRevealReset(t *testing.T) {
	r := NewReveal(60, 10)
	for range 600 {
		r.Update()
	}
	r.Reset()
	if r.Done() {
		t.Error("Done after Reset")
	}
	if from, _ := r.Update(); from != 0 {
		t.Errorf("first range after Reset starts at %d, want 0", from)
	}
}

func TestRevealZeroFPS(t *testing.T) {
	r := NewReveal(0, 10)
	for range 100 {
		if from, to := r.Update(); to < from {
			t.Fatalf("range went backwards: [%d, %d)", from, to)
		}
	}
	if math.IsNaN(r.Position) || math.IsInf(r.Position, 0) {
		t.Fatalf("Position = %v", r.Position)
	}
	if !r.Done() {
		t.Errorf("reveal stuck at %v of 10 faces", r.Position)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{1, time.Second},
		{0, time.Second},
		{-5, time.Second},
	}
	for _, tc := range tests {
		if got := frameInterval(tc.fps); got != tc.want {
			t.Errorf("frameInterval(%d) = %v, want %v", tc.fps, got, tc.want)
		}
	}
}
