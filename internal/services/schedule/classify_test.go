package schedule

import (
	"testing"
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		now  time.Time
		want models.EventState
	}{
		{"before start", time.Date(2024, 3, 1, 9, 59, 0, 0, time.UTC), models.EventStateUpcoming},
		{"at start", start, models.EventStateLive},
		{"midway", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), models.EventStateLive},
		{"just before end", end.Add(-time.Nanosecond), models.EventStateLive},
		{"at end", end, models.EventStateExpired},
		{"next day", start.AddDate(0, 0, 1), models.EventStateExpired},
		{"previous day", start.AddDate(0, 0, -1), models.EventStateUpcoming},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(start, end, tc.now))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	for offset := -90; offset <= 90; offset++ {
		state := Classify(start, end, start.Add(time.Duration(offset)*time.Minute))
		assert.True(t, ValidState(state))
	}
}
