package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestCalculateWorkingHours(t *testing.T) {
	t.Run("full day with break", func(t *testing.T) {
		out := ts(17, 30)
		a := &Attendance{CheckIn: ts(9, 0), CheckOut: &out, BreakTime: 30}
		a.CalculateWorkingHours()
		assert.Equal(t, 8.0, a.WorkingHours)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		out := ts(17, 10)
		a := &Attendance{CheckIn: ts(9, 0), CheckOut: &out}
		a.CalculateWorkingHours()
		assert.Equal(t, 8.17, a.WorkingHours)
	})

	t.Run("break exceeding presence clamps to zero", func(t *testing.T) {
		out := ts(9, 30)
		a := &Attendance{CheckIn: ts(9, 0), CheckOut: &out, BreakTime: 60}
		a.CalculateWorkingHours()
		assert.Equal(t, 0.0, a.WorkingHours)
	})

	t.Run("missing check-out yields zero", func(t *testing.T) {
		a := &Attendance{CheckIn: ts(9, 0), BreakTime: 15}
		a.CalculateWorkingHours()
		assert.Equal(t, 0.0, a.WorkingHours)
	})

	t.Run("recompute overwrites stale value", func(t *testing.T) {
		out := ts(13, 0)
		a := &Attendance{CheckIn: ts(9, 0), CheckOut: &out, WorkingHours: 99}
		a.CalculateWorkingHours()
		assert.Equal(t, 4.0, a.WorkingHours)
	})
}

func TestTotalWorkMinutes(t *testing.T) {
	out := ts(12, 45)
	a := &Attendance{CheckIn: ts(9, 0), CheckOut: &out}
	assert.Equal(t, int64(225), a.TotalWorkMinutes())

	assert.Equal(t, int64(0), (&Attendance{CheckIn: ts(9, 0)}).TotalWorkMinutes())
	assert.Equal(t, int64(0), (&Attendance{CheckOut: &out}).TotalWorkMinutes())
}

func TestLeaveOverlaps(t *testing.T) {
	l := &Leave{StartDate: "2025-03-10", EndDate: "2025-03-14"}

	assert.True(t, l.Overlaps("2025-03-14", "2025-03-20"), "shared boundary day counts")
	assert.True(t, l.Overlaps("2025-03-01", "2025-03-10"))
	assert.True(t, l.Overlaps("2025-03-11", "2025-03-12"), "contained interval")
	assert.True(t, l.Overlaps("2025-03-01", "2025-03-31"), "containing interval")
	assert.False(t, l.Overlaps("2025-03-15", "2025-03-20"))
	assert.False(t, l.Overlaps("2025-03-01", "2025-03-09"))
}
