package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCountWorkingDaysFullWeeks(t *testing.T) {
	// Mon 2024-01-01 .. Sun 2024-01-14 spans two full working weeks.
	require.Equal(t, 10, CountWorkingDays(date(2024, 1, 1), date(2024, 1, 14)))
	// Mon .. Fri of the same week.
	require.Equal(t, 5, CountWorkingDays(date(2024, 1, 1), date(2024, 1, 5)))
}

func TestCountWorkingDaysSingleDay(t *testing.T) {
	require.Equal(t, 1, CountWorkingDays(date(2024, 1, 3), date(2024, 1, 3))) // Wednesday
	require.Equal(t, 0, CountWorkingDays(date(2024, 1, 6), date(2024, 1, 6))) // Saturday
	require.Equal(t, 0, CountWorkingDays(date(2024, 1, 7), date(2024, 1, 7))) // Sunday
}

func TestCountWorkingDaysReversedRange(t *testing.T) {
	// A reversed range yields 0, never a negative count.
	require.Equal(t, 0, CountWorkingDays(date(2024, 1, 14), date(2024, 1, 1)))
}

func TestCountWorkingDaysWeekendOnlyRange(t *testing.T) {
	require.Equal(t, 0, CountWorkingDays(date(2024, 1, 6), date(2024, 1, 7)))
}

func TestCountWorkingDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	require.Equal(t, 5, CountWorkingDays(start, end))
}

func TestCountWorkingDaysCrossesMonthBoundary(t *testing.T) {
	// Wed 2024-01-31 .. Fri 2024-02-02
	require.Equal(t, 3, CountWorkingDays(date(2024, 1, 31), date(2024, 2, 2)))
}
