package timeframe

import (
	"errors"
	"fmt"
	"time"
)

// Key identifies a chart timeframe (candle resolution).
type Key string

const (
	TF1m  Key = "1m"
	TF5m  Key = "5m"
	TF15m Key = "15m"
	TF1H  Key = "1H"
	TF4H  Key = "4H"
	TF1D  Key = "1D"
	TF1W  Key = "1W"
)

// DefaultTimeRangeMinutes is the visible time range a chart should cover,
// regardless of the selected granularity.
const DefaultTimeRangeMinutes = 100

// ErrUnsupported is returned when a key is not present in the config map.
var ErrUnsupported = errors.New("unsupported timeframe")

// Config holds static metadata for one timeframe.
type Config struct {
	IntervalMinutes int    `json:"interval_minutes"`
	DisplayLabel    string `json:"display_label"`
}

// Duration returns the candle interval as a time.Duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// configs is the process-wide constant table. Every declared Key has an
// entry, including 1W.
var configs = map[Key]Config{
	TF1m:  {IntervalMinutes: 1, DisplayLabel: "1m"},
	TF5m:  {IntervalMinutes: 5, DisplayLabel: "5m"},
	TF15m: {IntervalMinutes: 15, DisplayLabel: "15m"},
	TF1H:  {IntervalMinutes: 60, DisplayLabel: "1H"},
	TF4H:  {IntervalMinutes: 240, DisplayLabel: "4H"},
	TF1D:  {IntervalMinutes: 1440, DisplayLabel: "1D"},
	TF1W:  {IntervalMinutes: 10080, DisplayLabel: "1W"},
}

// keys in ascending interval order, for stable API listings.
var keys = []Key{TF1m, TF5m, TF15m, TF1H, TF4H, TF1D, TF1W}

// ConfigMap returns the full timeframe table. The result is a copy, so
// callers may not mutate the shared state.
func ConfigMap() map[Key]Config {
	m := make(map[Key]Config, len(configs))
	for k, v := range configs {
		m[k] = v
	}
	return m
}

// Keys returns all supported keys in ascending interval order.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// Lookup returns the config for k, or ErrUnsupported.
func Lookup(k Key) (Config, error) {
	c, ok := configs[k]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupported, string(k))
	}
	return c, nil
}

// DataPointCount returns how many historical samples to request so the
// chart spans DefaultTimeRangeMinutes at granularity k. Integer floor
// division, clamped to a minimum of one sample.
func DataPointCount(k Key) (int, error) {
	c, err := Lookup(k)
	if err != nil {
		return 0, err
	}
	n := DefaultTimeRangeMinutes / c.IntervalMinutes
	if n < 1 {
		n = 1
	}
	return n, nil
}

// IsValid returns true if k is a supported timeframe.
func IsValid(k Key) bool {
	_, ok := configs[k]
	return ok
}

// Default returns the default timeframe.
func Default() Key { return TF1D }

// Normalize converts a raw string to a valid timeframe (or default).
func Normalize(s string) Key {
	if s == "" {
		return Default()
	}
	k := Key(s)
	if IsValid(k) {
		return k
	}
	return Default()
}
