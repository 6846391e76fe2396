package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	tests := []struct {
		period Period
		key    string
	}{
		{Year(2025), "2025"},
		{Quarter(2025, 3), "2025-Q3"},
		{Month(2025, 11), "2025-11"},
		{Month(2025, 2), "2025-02"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.period.Key())
			parsed, err := Parse(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.period, parsed)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, key := range []string{"", "abcd", "2025-Q5", "2025-13", "2025-Q0", "2025-00", "2025-xy"} {
		_, err := Parse(key)
		assert.Error(t, err, "key %q should not parse", key)
	}
}

func TestContains(t *testing.T) {
	d := func(y, m, day int) time.Time {
		return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
	}

	assert.True(t, Year(2025).Contains(d(2025, 7, 1)))
	assert.False(t, Year(2025).Contains(d(2024, 12, 31)))

	q3 := Quarter(2025, 3)
	assert.True(t, q3.Contains(d(2025, 7, 1)))
	assert.True(t, q3.Contains(d(2025, 9, 30)))
	assert.False(t, q3.Contains(d(2025, 6, 30)))
	assert.False(t, q3.Contains(d(2025, 10, 1)))

	nov := Month(2025, 11)
	assert.True(t, nov.Contains(d(2025, 11, 15)))
	assert.False(t, nov.Contains(d(2025, 10, 31)))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Quarter(2025, 4).Validate())
	assert.Error(t, Period{Year: 2025, Quarter: 1, Month: 1}.Validate())
	assert.Error(t, Period{Year: 0}.Validate())
	assert.Error(t, Period{Year: 2025, Quarter: 5}.Validate())
}
