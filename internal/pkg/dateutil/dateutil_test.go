package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthNumber(t *testing.T) {
	t.Parallel()

	month, ok := MonthNumber("January")
	require.True(t, ok)
	assert.Equal(t, time.January, month)

	month, ok = MonthNumber("December")
	require.True(t, ok)
	assert.Equal(t, time.December, month)

	_, ok = MonthNumber("Januar")
	assert.False(t, ok)

	_, ok = MonthNumber("")
	assert.False(t, ok)
}

func TestMonthDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 31, MonthDays(2024, time.January))
	assert.Equal(t, 30, MonthDays(2024, time.April))
	assert.Equal(t, 29, MonthDays(2024, time.February))
	assert.Equal(t, 28, MonthDays(2023, time.February))
	assert.Equal(t, 31, MonthDays(2024, time.December))
}

func TestParseAndFormatDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, "2024-03-05", FormatDate(d))

	_, err = ParseDate("05.03.2024")
	assert.Error(t, err)
}
