package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"PortView/internal/domain/models"
	"PortView/internal/domain/timeframe"
	pkgch "PortView/pkg/clickhouse"
	applogger "PortView/pkg/logger"
	"PortView/pkg/util"
)

// CHSampleStore implements SampleStore backed by ClickHouse.
type CHSampleStore struct {
	ch       *pkgch.Client
	database string
	l        *applogger.Logger
}

func NewCHSampleStore(ch *pkgch.Client, database string) *CHSampleStore {
	return &CHSampleStore{ch: ch, database: database}
}

// SetLogger injects a structured logger.
func (s *CHSampleStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHSampleStore) GetLatestNCandles(ctx context.Context, symbol string, n int, tf timeframe.Key) ([]models.Candle, error) {
	start := time.Now()
	table, err := tableForTF(tf)
	if err != nil {
		return nil, err
	}
	cfg, err := timeframe.Lookup(tf)
	if err != nil {
		return nil, err
	}

	// Only completed buckets are served, bounded to the requested window.
	from, cutoff := util.BucketRange(time.Now().UTC(), cfg.Duration(), n)

	const qtpl = `
        SELECT bucket, symbol, open, high, low, close, vol
        FROM %s
        WHERE symbol = ? AND bucket >= ? AND bucket < ?
        ORDER BY bucket DESC
        LIMIT ?
    `
	q := fmt.Sprintf(qtpl, s.database+"."+table)
	rows, err := s.ch.DB().QueryContext(ctx, q, symbol, from, cutoff, n)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse latest_candles query error",
				applogger.String("table", table),
				applogger.String("symbol", symbol),
				applogger.String("tf", string(tf)),
				applogger.Int("limit", n),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("get latest candles: %w", err)
	}
	defer rows.Close()

	out, err := scanCandles(rows, n)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse latest_candles scan error",
				applogger.String("table", table),
				applogger.String("symbol", symbol),
				applogger.String("tf", string(tf)),
				applogger.Error(err),
			)
		}
		return nil, err
	}

	// Oldest first for rendering.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	if s.l != nil {
		s.l.Debug("clickhouse latest_candles ok",
			applogger.String("table", table),
			applogger.String("symbol", symbol),
			applogger.String("tf", string(tf)),
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

func (s *CHSampleStore) Health(ctx context.Context) error {
	return s.ch.Health(ctx)
}

func scanCandles(rows *sql.Rows, capHint int) ([]models.Candle, error) {
	out := make([]models.Candle, 0, capHint)
	for rows.Next() {
		var c models.Candle
		if err := rows.Scan(&c.Bucket, &c.Symbol, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, fmt.Errorf("scan candle: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// tableForTF maps a timeframe key to its candle table.
func tableForTF(tf timeframe.Key) (string, error) {
	switch tf {
	case timeframe.TF1m:
		return "candles_1m", nil
	case timeframe.TF5m:
		return "candles_5m", nil
	case timeframe.TF15m:
		return "candles_15m", nil
	case timeframe.TF1H:
		return "candles_1h", nil
	case timeframe.TF4H:
		return "candles_4h", nil
	case timeframe.TF1D:
		return "candles_1d", nil
	case timeframe.TF1W:
		return "candles_1w", nil
	default:
		return "", fmt.Errorf("%w: %q", timeframe.ErrUnsupported, string(tf))
	}
}

// SchemaStatements returns idempotent DDL for every candle table.
func SchemaStatements(database string) []string {
	stmts := []string{fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database)}
	for _, tf := range timeframe.Keys() {
		table, _ := tableForTF(tf)
		stmts = append(stmts, fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s.%s (symbol String, bucket DateTime, open Float64, high Float64, low Float64, close Float64, vol Float64) ENGINE=MergeTree ORDER BY (symbol, bucket)",
			database, table,
		))
	}
	return stmts
}
