package repository

import (
	"context"

	"PortView/internal/domain/models"
	"PortView/internal/domain/timeframe"
)

// SampleStore provides read-only access to historical candles for charting.
type SampleStore interface {
	GetLatestNCandles(ctx context.Context, symbol string, n int, tf timeframe.Key) ([]models.Candle, error)
	Health(ctx context.Context) error
}

type Metrics interface {
	RecordTimeframeRequest(tf string)
	RecordUnsupportedTimeframe(tf string)
	RecordDataPointCount(tf string, count int)
	RecordLatency(op string, seconds float64)
}
