package api

import (
	"errors"

	models "PortView/internal/domain/models"
	"PortView/internal/domain/timeframe"
	"PortView/internal/usecase"
	xhttp "PortView/pkg/http"
	xlogger "PortView/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartEchoHandler implements Echo-based HTTP handlers for the portfolio
// chart view.
type ChartEchoHandler struct {
	logger    *xlogger.Logger
	chart     *usecase.ChartUseCase
	defaultTF timeframe.Key
}

func NewChartEchoHandler(logger *xlogger.Logger, chart *usecase.ChartUseCase, defaultTF string) *ChartEchoHandler {
	return &ChartEchoHandler{
		logger:    logger,
		chart:     chart,
		defaultTF: timeframe.Normalize(defaultTF),
	}
}

func (h *ChartEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/timeframes", h.ListTimeframes)
	g.GET("/timeframes/:key", h.GetTimeframe)
	g.GET("/chart", h.GetChart)
	e.GET("/healthz", h.Health)
}

// ListTimeframes serves the full timeframe table with derived sample counts.
func (h *ChartEchoHandler) ListTimeframes(c echo.Context) error {
	infos, err := h.chart.ListTimeframes(c.Request().Context())
	if err != nil {
		h.logger.Error("list timeframes error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, infos, int64(len(infos)))
}

// GetTimeframe serves one timeframe config, 404 on unknown keys.
func (h *ChartEchoHandler) GetTimeframe(c echo.Context) error {
	req := &models.TimeframeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	info, err := h.chart.DescribeTimeframe(c.Request().Context(), timeframe.Key(req.Key))
	if err != nil {
		if errors.Is(err, timeframe.ErrUnsupported) {
			return xhttp.AppErrorResponse(c, xhttp.UnsupportedTimeframeError(req.Key).WithError(err))
		}
		h.logger.Error("describe timeframe error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, info)
}

// GetChart serves a candle series sized by the derived data point count.
// An invalid tf falls back to the default timeframe, matching the UI's
// forgiving selector behavior; a missing symbol is a validation error.
func (h *ChartEchoHandler) GetChart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	tf := timeframe.Key(req.TF)
	if !timeframe.IsValid(tf) {
		tf = h.defaultTF
	}

	res, err := h.chart.GetSeries(c.Request().Context(), req.Symbol, tf)
	if err != nil {
		h.logger.Error("chart usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, res)
}

// Health reports storage availability.
func (h *ChartEchoHandler) Health(c echo.Context) error {
	if err := h.chart.Health(c.Request().Context()); err != nil {
		return xhttp.AppErrorResponse(c, xhttp.InternalError("storage unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
