package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortView/internal/domain/models"
	"PortView/internal/domain/timeframe"
	"PortView/pkg/cache"
)

type fakeStore struct {
	lastSymbol string
	lastN      int
	lastTF     timeframe.Key
	calls      int
	candles    []models.Candle
	err        error
}

func (f *fakeStore) GetLatestNCandles(_ context.Context, symbol string, n int, tf timeframe.Key) ([]models.Candle, error) {
	f.calls++
	f.lastSymbol, f.lastN, f.lastTF = symbol, n, tf
	return f.candles, f.err
}

func (f *fakeStore) Health(context.Context) error { return nil }

func TestListTimeframes(t *testing.T) {
	uc := NewChartUseCase(&fakeStore{}, nil, nil, 0)

	infos, err := uc.ListTimeframes(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 7)

	byKey := make(map[string]models.TimeframeInfo, len(infos))
	for _, i := range infos {
		byKey[i.Key] = i
	}
	assert.Equal(t, 100, byKey["1m"].DataPointCount)
	assert.Equal(t, 20, byKey["5m"].DataPointCount)
	assert.Equal(t, 6, byKey["15m"].DataPointCount)
	assert.Equal(t, 1, byKey["1H"].DataPointCount)
	assert.Equal(t, 1, byKey["4H"].DataPointCount)
	assert.Equal(t, 1, byKey["1D"].DataPointCount)
	assert.Equal(t, 1, byKey["1W"].DataPointCount)
	assert.Equal(t, 10080, byKey["1W"].IntervalMinutes)
}

func TestGetSeriesRequestsDerivedCount(t *testing.T) {
	store := &fakeStore{candles: []models.Candle{{Symbol: "AAPL", Close: 1}}}
	uc := NewChartUseCase(store, nil, nil, 0)

	res, err := uc.GetSeries(context.Background(), "AAPL", timeframe.TF5m)
	require.NoError(t, err)

	assert.Equal(t, 20, store.lastN)
	assert.Equal(t, timeframe.TF5m, store.lastTF)
	assert.Equal(t, "AAPL", store.lastSymbol)
	assert.Equal(t, "5m", res.Timeframe)
	assert.Equal(t, 5, res.IntervalMinutes)
	assert.Equal(t, 20, res.DataPointCount)
	assert.Len(t, res.Candles, 1)
}

func TestGetSeriesCoarseTimeframeClampedToOne(t *testing.T) {
	store := &fakeStore{}
	uc := NewChartUseCase(store, nil, nil, 0)

	_, err := uc.GetSeries(context.Background(), "AAPL", timeframe.TF4H)
	require.NoError(t, err)
	assert.Equal(t, 1, store.lastN)
}

func TestGetSeriesUnsupportedTimeframe(t *testing.T) {
	uc := NewChartUseCase(&fakeStore{}, nil, nil, 0)

	_, err := uc.GetSeries(context.Background(), "AAPL", timeframe.Key("3m"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, timeframe.ErrUnsupported))
}

func TestGetSeriesRequiresSymbol(t *testing.T) {
	uc := NewChartUseCase(&fakeStore{}, nil, nil, 0)

	_, err := uc.GetSeries(context.Background(), "", timeframe.TF1m)
	assert.Error(t, err)
}

func TestGetSeriesStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("boom")}
	uc := NewChartUseCase(store, nil, nil, 0)

	_, err := uc.GetSeries(context.Background(), "AAPL", timeframe.TF1m)
	assert.Error(t, err)
}

func TestGetSeriesCached(t *testing.T) {
	store := &fakeStore{candles: []models.Candle{{Symbol: "AAPL", Close: 2}}}
	mc := cache.NewMemoryCache()
	defer mc.Close()
	uc := NewChartUseCase(store, mc, nil, time.Minute)

	first, err := uc.GetSeries(context.Background(), "AAPL", timeframe.TF15m)
	require.NoError(t, err)

	second, err := uc.GetSeries(context.Background(), "AAPL", timeframe.TF15m)
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls, "second call should hit cache")
	assert.Equal(t, first, second)
}
