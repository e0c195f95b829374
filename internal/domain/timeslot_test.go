package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical windows", 600, 660, 600, 660, true},
		{"partial overlap", 600, 660, 630, 690, true},
		{"containment", 600, 720, 630, 660, true},
		{"abutting windows do not overlap", 600, 660, 660, 720, false},
		{"abutting the other way", 660, 720, 600, 660, false},
		{"disjoint", 600, 660, 700, 760, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestParseClock(t *testing.T) {
	min, err := ParseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, min)

	min, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	_, err = ParseClock("25:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseClock("noon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "10:00", FormatClock(600))
	assert.Equal(t, "15:30", FormatClock(930))
	assert.Equal(t, "09:05", FormatClock(545))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2026-09-01")
	require.NoError(t, err)

	_, err = ParseDate("01.09.2026")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidDuration(t *testing.T) {
	for _, d := range []int{30, 60, 90, 120} {
		assert.True(t, ValidDuration(d), "duration %d", d)
	}
	for _, d := range []int{0, 15, 45, 150, -30} {
		assert.False(t, ValidDuration(d), "duration %d", d)
	}
}

func TestOperatingHours_Contains(t *testing.T) {
	hours := OperatingHours{OpenMin: 600, CloseMin: 1320} // 10:00-22:00

	assert.True(t, hours.Contains(600, 660))
	assert.True(t, hours.Contains(1260, 1320)) // last slot touches closing
	assert.False(t, hours.Contains(570, 630))  // starts before opening
	assert.False(t, hours.Contains(1290, 1350)) // runs past closing
	assert.False(t, hours.Contains(660, 660))  // empty window
}
