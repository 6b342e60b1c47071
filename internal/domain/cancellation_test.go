package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanCancelFree(t *testing.T) {
	now := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{
			name:  "ровно 2 часа до начала - можно",
			start: now.Add(120 * time.Minute),
			want:  true,
		},
		{
			name:  "119 минут до начала - нельзя",
			start: now.Add(119 * time.Minute),
			want:  false,
		},
		{
			name:  "больше 2 часов до начала - можно",
			start: now.Add(48 * time.Hour),
			want:  true,
		},
		{
			name:  "бронирование уже началось - нельзя",
			start: now.Add(-30 * time.Minute),
			want:  false,
		},
		{
			name:  "начало прямо сейчас - нельзя",
			start: now,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCancelFree(tt.start, now))
		})
	}
}

func TestBookingCanCancelFree(t *testing.T) {
	now := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)

	b := &Booking{StartsAt: now.Add(3 * time.Hour)}
	assert.True(t, b.CanCancelFree(now))

	b = &Booking{StartsAt: now.Add(time.Hour)}
	assert.False(t, b.CanCancelFree(now))
}
