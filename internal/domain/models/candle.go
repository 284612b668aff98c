package models

import "time"

// Candle represents one OHLCV sample in a chart series.
type Candle struct {
	Bucket time.Time `json:"bucket"`
	Symbol string    `json:"symbol"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// TimeframeInfo is one entry of the timeframe listing served to the UI:
// static config plus the derived sample count for the default visible range.
type TimeframeInfo struct {
	Key             string `json:"key"`
	IntervalMinutes int    `json:"interval_minutes"`
	DisplayLabel    string `json:"display_label"`
	DataPointCount  int    `json:"data_point_count"`
}

// ChartSeries is the one-round-trip payload for a chart panel: the resolved
// timeframe config echoed back plus the most recent candles.
type ChartSeries struct {
	Symbol          string   `json:"symbol"`
	Timeframe       string   `json:"timeframe"`
	IntervalMinutes int      `json:"interval_minutes"`
	DisplayLabel    string   `json:"display_label"`
	DataPointCount  int      `json:"data_point_count"`
	Candles         []Candle `json:"candles"`
}
