package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDayPrecedence(t *testing.T) {
	shubh := NewDateSet("2026-05-10", "2026-05-12")
	booked := NewDateSet("2026-05-10", "2026-05-11")
	today := "2026-05-12"

	tests := []struct {
		name      string
		date      string
		markToday bool
		want      DayStatus
	}{
		{"booked wins over shubh on the same day", "2026-05-10", true, DayBooked},
		{"booked only", "2026-05-11", true, DayBooked},
		{"shubh wins over today", "2026-05-12", true, DayShubh},
		{"plain day is available", "2026-05-13", true, DayAvailable},
		{"today marked on admin view", "2026-05-12", true, DayShubh},
		{"today unmarked on public view", "2026-05-12", false, DayShubh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDay(tt.date, shubh, booked, today, tt.markToday))
		})
	}
}

func TestClassifyDayToday(t *testing.T) {
	empty := NewDateSet()
	assert.Equal(t, DayToday, ClassifyDay("2026-05-12", empty, empty, "2026-05-12", true))
	assert.Equal(t, DayAvailable, ClassifyDay("2026-05-12", empty, empty, "2026-05-12", false))
}

func TestClassifyDayDeterministic(t *testing.T) {
	shubh := NewDateSet("2026-05-10")
	booked := NewDateSet("2026-05-10")
	first := ClassifyDay("2026-05-10", shubh, booked, "2026-05-10", true)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ClassifyDay("2026-05-10", shubh, booked, "2026-05-10", true))
	}
}

func TestClassifyMonth(t *testing.T) {
	shubh := NewDateSet("2026-02-14")
	booked := NewDateSet("2026-02-01", "2026-02-28")

	days := ClassifyMonth(2026, time.February, shubh, booked, "2026-02-10", true)

	assert.Len(t, days, 28)
	assert.Equal(t, "2026-02-01", days[0].Date)
	assert.Equal(t, DayBooked, days[0].Status)
	assert.Equal(t, DayShubh, days[13].Status)
	assert.Equal(t, DayToday, days[9].Status)
	assert.Equal(t, DayBooked, days[27].Status)
	assert.Equal(t, DayAvailable, days[1].Status)
}

func TestClassifyMonthLeapFebruary(t *testing.T) {
	empty := NewDateSet()
	days := ClassifyMonth(2028, time.February, empty, empty, "2028-01-01", false)
	assert.Len(t, days, 29)
	assert.Equal(t, "2028-02-29", days[28].Date)
}
