package dates

import (
	"testing"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  domain.Date
		checkOut domain.Date
		want     int
	}{
		{"three nights", domain.NewDate(2024, time.June, 1), domain.NewDate(2024, time.June, 4), 3},
		{"one night", domain.NewDate(2024, time.June, 1), domain.NewDate(2024, time.June, 2), 1},
		{"same day", domain.NewDate(2024, time.June, 1), domain.NewDate(2024, time.June, 1), 0},
		{"reversed range", domain.NewDate(2024, time.June, 4), domain.NewDate(2024, time.June, 1), -3},
		{"across month boundary", domain.NewDate(2024, time.June, 28), domain.NewDate(2024, time.July, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTodayTomorrow(t *testing.T) {
	assert.Equal(t, 1, Nights(Today(), Tomorrow()))
}

func TestFormat(t *testing.T) {
	d := domain.NewDate(2024, time.June, 1)
	assert.Equal(t, "Saturday, June 1, 2024", Format(d))
}
