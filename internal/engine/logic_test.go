package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestCongratulationDate covers every weekday of one week so the weekend rule
// cannot drift to a +1/+2 shift.
func TestCongratulationDate(t *testing.T) {
	// Monday, January 1st, 2024
	monday := dateOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{"Monday", 0, "01.01.2024"},
		{"Tuesday", 1, "02.01.2024"},
		{"Wednesday", 2, "03.01.2024"},
		{"Thursday", 3, "04.01.2024"},
		{"Friday", 4, "05.01.2024"},
		{"Saturday", 5, "08.01.2024"},
		{"Sunday", 6, "08.01.2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := congratulationDate(monday.AddDays(tt.offset))
			assert.Equal(t, tt.want, got.String())
			assert.False(t, isWeekend(got.Weekday()))
		})
	}
}

func TestNextWeekday_StrictlyAfter(t *testing.T) {
	monday := dateOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "08.01.2024", nextWeekday(monday, time.Monday).String(), "Same weekday jumps a full week")
}

func TestDateOf_KeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	d := dateOf(time.Date(2024, 3, 10, 22, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), d.Time())
}
