package params

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", " 1 ", "yes", "On", "active"} {
		v, ok := ParseBool(s)
		assert.True(t, ok, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"false", "False", "0", "no", "off", "INACTIVE"} {
		v, ok := ParseBool(s)
		assert.True(t, ok, s)
		assert.False(t, v, s)
	}
	for _, s := range []string{"", "maybe", "2"} {
		_, ok := ParseBool(s)
		assert.False(t, ok, s)
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, s := range []string{"", "0", "-1", "abc", "1.5"} {
		_, ok := ParseID(s)
		assert.False(t, ok, s)
	}
}

func TestParseDate(t *testing.T) {
	from, ok := ParseDate("2024-03-01", false)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), from)

	to, ok := ParseDate("2024-03-01", true)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC), to)

	exact, ok := ParseDate("2024-03-01T10:00:00-05:00", true)
	assert.True(t, ok)
	assert.True(t, exact.Equal(time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)))

	_, ok = ParseDate("01/03/2024", false)
	assert.False(t, ok)
}
