//go:build unit

package rental_test

import (
	"testing"
	"time"

	"equipment-rental/internal/domain/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	tests := []struct {
		name         string
		sd, ed       string
		st, et       string
		requireTimes bool
		errIs        error
		days         int
	}{
		{name: "multi-day without times", sd: "2025-03-01", ed: "2025-03-03", days: 3},
		{name: "same day with times", sd: "2025-03-01", ed: "2025-03-01", st: "09:00", et: "17:30", days: 1},
		{name: "overnight with times", sd: "2025-03-01", ed: "2025-03-02", st: "18:00", et: "08:00", days: 2},
		{name: "same day without times", sd: "2025-03-01", ed: "2025-03-01", errIs: rental.ErrEndNotAfterStart},
		{name: "end before start", sd: "2025-03-05", ed: "2025-03-01", errIs: rental.ErrEndNotAfterStart},
		{name: "same instant", sd: "2025-03-01", ed: "2025-03-01", st: "10:00", et: "10:00", errIs: rental.ErrEndNotAfterStart},
		{name: "end time before start time", sd: "2025-03-01", ed: "2025-03-01", st: "12:00", et: "09:00", errIs: rental.ErrEndNotAfterStart},
		{name: "missing start date", sd: "", ed: "2025-03-01", errIs: rental.ErrMissingDates},
		{name: "missing end date", sd: "2025-03-01", ed: " ", errIs: rental.ErrMissingDates},
		{name: "malformed date", sd: "03/01/2025", ed: "2025-03-02", errIs: rental.ErrInvalidDate},
		{name: "impossible date", sd: "2025-02-30", ed: "2025-03-02", errIs: rental.ErrInvalidDate},
		{name: "only start time", sd: "2025-03-01", ed: "2025-03-02", st: "09:00", errIs: rental.ErrIncompleteTimes},
		{name: "only end time", sd: "2025-03-01", ed: "2025-03-02", et: "09:00", errIs: rental.ErrIncompleteTimes},
		{name: "malformed time", sd: "2025-03-01", ed: "2025-03-02", st: "9am", et: "10:00", errIs: rental.ErrInvalidTime},
		{name: "times required", sd: "2025-03-01", ed: "2025-03-02", requireTimes: true, errIs: rental.ErrMissingTimes},
		{name: "times required and given", sd: "2025-03-01", ed: "2025-03-02", st: "08:00", et: "08:00", requireTimes: true, days: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := rental.NewPeriod(tt.sd, tt.ed, tt.st, tt.et, tt.requireTimes)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sd, p.StartDate())
			assert.Equal(t, tt.ed, p.EndDate())
			assert.Equal(t, tt.st, p.StartTime())
			assert.Equal(t, tt.et, p.EndTime())
			assert.Equal(t, tt.st != "", p.HasTimes())
			assert.Equal(t, tt.days, p.Days())
		})
	}
}

func TestReconstructPeriod_MatchesNewPeriod(t *testing.T) {
	tests := []struct {
		name      string
		sd, ed    string
		st, et    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name: "with times", sd: "2025-03-01", ed: "2025-03-01", st: "09:00", et: "17:30",
			wantStart: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 1, 17, 30, 0, 0, time.UTC),
		},
		{
			name: "dates only", sd: "2025-03-01", ed: "2025-03-03",
			wantStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := rental.NewPeriod(tt.sd, tt.ed, tt.st, tt.et, false)
			require.NoError(t, err)

			reloaded := rental.ReconstructPeriod(tt.sd, tt.ed, tt.st, tt.et)

			assert.Equal(t, created, reloaded)
			assert.Equal(t, tt.wantStart, reloaded.Start())
			assert.Equal(t, tt.wantEnd, reloaded.End())
		})
	}
}

func TestNote(t *testing.T) {
	assert.True(t, rental.NewNote("   ").IsEmpty())
	assert.Equal(t, "bring ID", rental.NewNote(" bring ID ").String())
}
