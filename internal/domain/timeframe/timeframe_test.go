package timeframe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMapTotal(t *testing.T) {
	m := ConfigMap()
	require.Len(t, m, len(Keys()))
	for _, k := range Keys() {
		c, ok := m[k]
		require.True(t, ok, "missing entry for %s", k)
		assert.Greater(t, c.IntervalMinutes, 0)
		assert.NotEmpty(t, c.DisplayLabel)
	}
}

func TestConfigMapValues(t *testing.T) {
	want := map[Key]Config{
		TF1m:  {1, "1m"},
		TF5m:  {5, "5m"},
		TF15m: {15, "15m"},
		TF1H:  {60, "1H"},
		TF4H:  {240, "4H"},
		TF1D:  {1440, "1D"},
		TF1W:  {10080, "1W"},
	}
	assert.Equal(t, want, ConfigMap())
}

func TestConfigMapIntervalsDistinct(t *testing.T) {
	seen := make(map[int]Key)
	for k, c := range ConfigMap() {
		prev, dup := seen[c.IntervalMinutes]
		require.False(t, dup, "%s and %s share interval %d", prev, k, c.IntervalMinutes)
		seen[c.IntervalMinutes] = k
	}
}

func TestConfigMapIdempotent(t *testing.T) {
	a := ConfigMap()
	b := ConfigMap()
	assert.Equal(t, a, b)

	// Mutating one copy must not leak into the next call.
	a[TF1m] = Config{IntervalMinutes: 999, DisplayLabel: "bogus"}
	assert.Equal(t, b, ConfigMap())
}

func TestDataPointCount(t *testing.T) {
	cases := []struct {
		key  Key
		want int
	}{
		{TF1m, 100},
		{TF5m, 20},
		{TF15m, 6},
		{TF1H, 1},
		{TF4H, 1}, // floor(100/240)=0, clamped
		{TF1D, 1},
		{TF1W, 1},
	}
	for _, tc := range cases {
		t.Run(string(tc.key), func(t *testing.T) {
			got, err := DataPointCount(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDataPointCountMinimum(t *testing.T) {
	for _, k := range Keys() {
		n, err := DataPointCount(k)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1, "key %s", k)
	}
}

func TestDataPointCountUnsupported(t *testing.T) {
	_, err := DataPointCount(Key("3m"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = Lookup(Key(""))
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, TF5m, Normalize("5m"))
	assert.Equal(t, Default(), Normalize(""))
	assert.Equal(t, Default(), Normalize("2h"))
}

func TestDuration(t *testing.T) {
	c, err := Lookup(TF4H)
	require.NoError(t, err)
	assert.Equal(t, "4h0m0s", c.Duration().String())
}
