package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestIsSet(t *testing.T) {
	assert.False(t, IsSet(nil))
	assert.False(t, IsSet(&time.Time{}))
	assert.True(t, IsSet(date(2024, time.January, 10)))
}

func TestIsSetString(t *testing.T) {
	assert.False(t, IsSetString(""))
	assert.False(t, IsSetString("   "))
	assert.True(t, IsSetString("100"))
}

func TestDaysBetween(t *testing.T) {
	a := date(2024, time.January, 10)
	b := date(2024, time.January, 15)

	d := DaysBetween(a, b)
	require.NotNil(t, d)
	assert.Equal(t, 5, *d)

	// Antisymmetry.
	r := DaysBetween(b, a)
	require.NotNil(t, r)
	assert.Equal(t, -5, *r)

	same := DaysBetween(a, a)
	require.NotNil(t, same)
	assert.Equal(t, 0, *same)

	assert.Nil(t, DaysBetween(nil, b))
	assert.Nil(t, DaysBetween(a, nil))
}

func TestDaysBetweenRoundsHalfAwayFromZero(t *testing.T) {
	a := date(2024, time.January, 10)
	half := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

	d := DaysBetween(a, &half)
	require.NotNil(t, d)
	assert.Equal(t, 1, *d)

	back := DaysBetween(&half, a)
	require.NotNil(t, back)
	assert.Equal(t, -1, *back)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, DatePlaceholder, FormatDate(nil))
	assert.Equal(t, DatePlaceholder, FormatDate(&time.Time{}))
	assert.Equal(t, "15/01/2024", FormatDate(date(2024, time.January, 15)))
}

func TestFromExcelSerial(t *testing.T) {
	assert.Equal(t, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), FromExcelSerial(25569))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), FromExcelSerial(45292))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *time.Time
	}{
		{"iso", "2024-01-15", date(2024, time.January, 15)},
		{"iso datetime", "2024-01-15 00:00:00", date(2024, time.January, 15)},
		{"dmy", "15/1/2024", date(2024, time.January, 15)},
		{"dmy padded", "15/01/2024", date(2024, time.January, 15)},
		{"excel serial", "45292", date(2024, time.January, 1)},
		{"empty", "", nil},
		{"garbage", "not a date", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v, want %v", got, tt.want)
		})
	}
}
