package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2026-01-15", true},
		{"1999-12-31", true},
		{"2026-02-30", false},
		{"2026-1-5", false},
		{"15/01/2026", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDate(tt.in), "IsDate(%q)", tt.in)
	}
}

func TestIsClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"09:60", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsClockTime(tt.in), "IsClockTime(%q)", tt.in)
	}
}

func TestClockTimeBefore(t *testing.T) {
	assert.True(t, ClockTimeBefore("09:00", "10:30"))
	assert.False(t, ClockTimeBefore("10:30", "09:00"))
	assert.False(t, ClockTimeBefore("09:00", "09:00"))
	assert.False(t, ClockTimeBefore("garbage", "10:00"))
}
