package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortView/internal/domain/models"
	"PortView/internal/domain/timeframe"
	"PortView/internal/usecase"
	xlogger "PortView/pkg/logger"
)

type stubStore struct {
	lastN  int
	lastTF timeframe.Key
}

func (s *stubStore) GetLatestNCandles(_ context.Context, symbol string, n int, tf timeframe.Key) ([]models.Candle, error) {
	s.lastN, s.lastTF = n, tf
	return []models.Candle{{Symbol: symbol}}, nil
}

func (s *stubStore) Health(context.Context) error { return nil }

func newTestHandler(t *testing.T) (*ChartEchoHandler, *stubStore, *echo.Echo) {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	store := &stubStore{}
	h := NewChartEchoHandler(l, usecase.NewChartUseCase(store, nil, nil, 0), "1D")

	e := echo.New()
	h.RegisterRoutes(e)
	return h, store, e
}

func doRequest(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListTimeframes(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, "/api/timeframes")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status int `json:"status"`
		Data   struct {
			Rows  []models.TimeframeInfo `json:"rows"`
			Total int64                  `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, body.Status)
	assert.Equal(t, int64(7), body.Data.Total)
	require.Len(t, body.Data.Rows, 7)
	assert.Equal(t, "1m", body.Data.Rows[0].Key)
	assert.Equal(t, 100, body.Data.Rows[0].DataPointCount)
}

func TestGetTimeframe(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, "/api/timeframes/4H")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status int                  `json:"status"`
		Data   models.TimeframeInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 240, body.Data.IntervalMinutes)
	assert.Equal(t, 1, body.Data.DataPointCount)
}

func TestGetTimeframeUnsupported(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, "/api/timeframes/3m")

	var body struct {
		Status int `json:"status"`
		Data   []struct {
			Code string `json:"code"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "ERR_UNSUPPORTED_TIMEFRAME", body.Data[0].Code)
}

func TestGetChart(t *testing.T) {
	_, store, e := newTestHandler(t)

	rec := doRequest(e, "/api/chart?symbol=AAPL&tf=5m")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 20, store.lastN)
	assert.Equal(t, timeframe.TF5m, store.lastTF)

	var body struct {
		Status int                `json:"status"`
		Data   models.ChartSeries `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "AAPL", body.Data.Symbol)
	assert.Equal(t, "5m", body.Data.Timeframe)
	assert.Equal(t, 20, body.Data.DataPointCount)
}

func TestGetChartDefaultsTimeframe(t *testing.T) {
	_, store, e := newTestHandler(t)

	rec := doRequest(e, "/api/chart?symbol=AAPL&tf=2h")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, timeframe.Default(), store.lastTF)
}

func TestGetChartMissingSymbol(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, "/api/chart")

	var body struct {
		Status int `json:"status"`
		Data   []struct {
			Code  string `json:"code"`
			Field string `json:"field"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	require.NotEmpty(t, body.Data)
	assert.Equal(t, "ERR_REQUIRED", body.Data[0].Code)
	assert.Equal(t, "Symbol", body.Data[0].Field)
}

func TestHealth(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}
