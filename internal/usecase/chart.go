package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"PortView/internal/domain/models"
	domrepo "PortView/internal/domain/repository"
	"PortView/internal/domain/timeframe"
	"PortView/pkg/cache"
)

// ChartUseCase provides business logic for the portfolio chart view:
// timeframe listings and candle series sized by the derived data point count.
type ChartUseCase struct {
	store    domrepo.SampleStore
	cache    cache.Service
	metrics  domrepo.Metrics
	cacheTTL time.Duration
}

func NewChartUseCase(store domrepo.SampleStore, c cache.Service, m domrepo.Metrics, cacheTTL time.Duration) *ChartUseCase {
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Second
	}
	return &ChartUseCase{store: store, cache: c, metrics: m, cacheTTL: cacheTTL}
}

// ListTimeframes returns every supported timeframe with its static config
// and the derived sample count. Drives the UI's timeframe selector.
func (uc *ChartUseCase) ListTimeframes(ctx context.Context) ([]models.TimeframeInfo, error) {
	out := make([]models.TimeframeInfo, 0, len(timeframe.Keys()))
	for _, k := range timeframe.Keys() {
		info, err := uc.DescribeTimeframe(ctx, k)
		if err != nil {
			return nil, err
		}
		out = append(out, *info)
	}
	return out, nil
}

// DescribeTimeframe returns config plus data point count for one key.
func (uc *ChartUseCase) DescribeTimeframe(_ context.Context, k timeframe.Key) (*models.TimeframeInfo, error) {
	cfg, err := timeframe.Lookup(k)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordUnsupportedTimeframe(string(k))
		}
		return nil, err
	}
	n, err := timeframe.DataPointCount(k)
	if err != nil {
		return nil, err
	}
	return &models.TimeframeInfo{
		Key:             string(k),
		IntervalMinutes: cfg.IntervalMinutes,
		DisplayLabel:    cfg.DisplayLabel,
		DataPointCount:  n,
	}, nil
}

// GetSeries loads the most recent candles for symbol at granularity k,
// sized so the chart spans the default visible range.
func (uc *ChartUseCase) GetSeries(ctx context.Context, symbol string, k timeframe.Key) (*models.ChartSeries, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}

	start := time.Now()
	info, err := uc.DescribeTimeframe(ctx, k)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordTimeframeRequest(info.Key)
		uc.metrics.RecordDataPointCount(info.Key, info.DataPointCount)
	}

	key := cache.GenerateKeyWithParams("chart", symbol, info.Key)
	if uc.cache != nil {
		if hit, err := cache.GetTyped[models.ChartSeries](ctx, uc.cache, key); err == nil {
			return hit, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) && uc.metrics != nil {
			uc.metrics.RecordLatency("chart_cache_error", time.Since(start).Seconds())
		}
	}

	candles, err := uc.store.GetLatestNCandles(ctx, symbol, info.DataPointCount, k)
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}

	res := &models.ChartSeries{
		Symbol:          symbol,
		Timeframe:       info.Key,
		IntervalMinutes: info.IntervalMinutes,
		DisplayLabel:    info.DisplayLabel,
		DataPointCount:  info.DataPointCount,
		Candles:         candles,
	}

	if uc.cache != nil {
		_ = cache.SetTyped(ctx, uc.cache, key, res, uc.cacheTTL)
	}
	if uc.metrics != nil {
		uc.metrics.RecordLatency("chart_get_series", time.Since(start).Seconds())
	}
	return res, nil
}

// Health reports storage availability.
func (uc *ChartUseCase) Health(ctx context.Context) error {
	return uc.store.Health(ctx)
}
