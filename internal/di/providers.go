package di

import (
	"context"
	"fmt"
	"time"

	"PortView/internal/domain/repository"
	"PortView/internal/handler/api"
	internalrepo "PortView/internal/repository"
	"PortView/internal/usecase"
	"PortView/pkg/cache"
	pkgch "PortView/pkg/clickhouse"
	"PortView/pkg/config"
	xhttp "PortView/pkg/http"
	applogger "PortView/pkg/logger"
	"PortView/pkg/metrics"
	"PortView/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return applogger.New(lc)
}

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, internalrepo.SchemaStatements(cfg.ClickHouse.Database)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideCache creates the response cache: layered (memory + Redis) when Redis
// is enabled, memory-only otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	prefix := cfg.Cache.Redis.Prefix
	if prefix == "" {
		prefix = "portview"
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSampleStore creates the ClickHouse candle store.
func ProvideSampleStore(chClient *pkgch.Client, cfg *config.Config, l *applogger.Logger) repository.SampleStore {
	store := internalrepo.NewCHSampleStore(chClient, cfg.ClickHouse.Database)
	store.SetLogger(l)
	return store
}

// ProvideChartUseCase creates the chart use case.
func ProvideChartUseCase(store repository.SampleStore, c cache.Service, m repository.Metrics, cfg *config.Config) *usecase.ChartUseCase {
	return usecase.NewChartUseCase(store, c, m, cfg.Cache.TTL)
}

// ProvideChartHandler creates the Echo HTTP handler.
func ProvideChartHandler(l *applogger.Logger, chart *usecase.ChartUseCase, cfg *config.Config) xhttp.Handler {
	return api.NewChartEchoHandler(l, chart, cfg.Chart.DefaultTimeframe)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, chClient *pkgch.Client, c cache.Service, h xhttp.Handler) *server.App {
	return server.New(cfg, l, chClient, c, h)
}
