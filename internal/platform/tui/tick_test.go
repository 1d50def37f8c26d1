package tui

import (
	"testing"
	"time"
)

func TestFrameDelta(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first tick", time.Time{}, base, 0},
		{"regular frame", base, base.Add(16 * time.Millisecond), 0.016},
		{"stall is capped", base, base.Add(3 * time.Second), MaxFrameDelta.Seconds()},
		{"clock went backwards", base, base.Add(-time.Second), 0},
		{"same instant", base, base, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.prev, tc.now); got != tc.want {
				t.Errorf("frameDelta() = %v, expected %v", got, tc.want)
			}
		})
	}
}
