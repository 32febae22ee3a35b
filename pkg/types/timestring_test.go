package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"", "9:30:00", "25:00", "09:60", "abc"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "value %q", bad)
	}
}

func TestTimeStringComparison(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("18:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("10:45")

	shifted, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), shifted)
}

func TestTimeStringAtDate(t *testing.T) {
	date := time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC)

	moment, err := TimeString("09:30").AtDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC), moment)

	_, err = TimeString("bad").AtDate(date)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("09:30"), NewTimeString(moment))
}
