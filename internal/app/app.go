package app

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-warehouse/external/opendata"
	"github.com/riskibarqy/football-warehouse/internal/config"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/export"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/football-warehouse/internal/metrics"
	idgen "github.com/riskibarqy/football-warehouse/internal/platform/id"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/riskibarqy/football-warehouse/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 10 * time.Second

// OpenDB opens the configured warehouse database with query tracing.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, sqlstore.Dialect, error) {
	dialect, err := sqlstore.DialectFor(cfg.DBDriver)
	if err != nil {
		return nil, sqlstore.Dialect{}, err
	}

	db, err := otelsqlx.Open(
		cfg.DBDriver,
		dataSourceName(cfg.DBDriver, cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem(cfg.DBDriver),
		otelsql.WithDBName(dbName(cfg.DBDriver, cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, sqlstore.Dialect{}, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	// DuckDB connections have no Ping, which otelsql reports as driver.ErrSkip.
	if err := db.PingContext(pingCtx); err != nil && !errors.Is(err, driver.ErrSkip) {
		_ = db.Close()
		return nil, sqlstore.Dialect{}, fmt.Errorf("ping %s database: %w", cfg.DBDriver, err)
	}

	return db, dialect, nil
}

// App holds the wiring shared by the build, audit and export commands.
type App struct {
	cfg     config.Config
	logger  *logging.Logger
	db      *sqlx.DB
	store   *sqlstore.Store
	source  *opendata.Source
	names   reference.NameOverrides
	metrics *metrics.BuildMetrics
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	names, err := config.LoadNameOverrides(cfg.CanonicalNamesFile)
	if err != nil {
		return nil, err
	}

	db, dialect, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := sqlstore.NewStore(db, sqlstore.StoreConfig{
		Dialect:   dialect,
		BatchSize: cfg.InsertBatchSize,
		Logger:    logger,
	})
	source := opendata.NewSource(opendata.SourceConfig{
		Root:            cfg.DataDir,
		ValidateWorkers: cfg.ValidateWorkers,
		Logger:          logger,
	})

	logger.Debug("warehouse wired",
		"driver", cfg.DBDriver,
		"data_dir", cfg.DataDir,
		"canonical_names", len(names),
	)

	return &App{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		store:   store,
		source:  source,
		names:   names,
		metrics: metrics.NewBuildMetrics(),
	}, nil
}

func (a *App) Store() *sqlstore.Store {
	return a.store
}

func (a *App) Metrics() *metrics.BuildMetrics {
	return a.metrics
}

func (a *App) BuildService() *usecase.BuildService {
	return usecase.NewBuildService(a.source, a.store, a.names, idgen.NewRunIDGenerator(), a.metrics, a.logger)
}

func (a *App) AuditService() *usecase.AuditService {
	return usecase.NewAuditService(a.store, a.store.Registry(), a.names, a.cfg.AuditMismatchTolerance, a.logger)
}

func (a *App) ExportService() (*usecase.ExportService, error) {
	writer, err := export.NewParquetWriter(export.ParquetConfig{Dir: a.cfg.ExportDir, Logger: a.logger})
	if err != nil {
		return nil, err
	}
	return usecase.NewExportService(a.store, writer, a.logger), nil
}

// PushMetrics sends build metrics to the configured Pushgateway, if any.
func (a *App) PushMetrics(ctx context.Context) error {
	return a.metrics.Push(ctx, a.cfg.MetricsPushgatewayURL, a.cfg.MetricsJob)
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
