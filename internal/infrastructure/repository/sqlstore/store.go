package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

const defaultBatchSize = 500

var (
	_ warehouse.Repository      = (*Store)(nil)
	_ warehouse.AuditRepository = (*Store)(nil)
	_ warehouse.ViewRepository  = (*Store)(nil)
)

type StoreConfig struct {
	Dialect   Dialect
	Registry  *schema.Registry
	BatchSize int
	Logger    *logging.Logger
}

// Store is the SQL warehouse shared by the build, audit and export commands.
type Store struct {
	db        *sqlx.DB
	dialect   Dialect
	registry  *schema.Registry
	batchSize int
	logger    *logging.Logger
}

func NewStore(db *sqlx.DB, cfg StoreConfig) *Store {
	registry := cfg.Registry
	if registry == nil {
		registry = schema.Default()
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	dialect := cfg.Dialect
	if dialect.Name == "" {
		dialect = DuckDB
	}
	return &Store{
		db:        db,
		dialect:   dialect,
		registry:  registry,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (s *Store) Registry() *schema.Registry {
	return s.registry
}

// Begin opens the single transaction a rebuild runs in.
func (s *Store) Begin(ctx context.Context) (warehouse.Session, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin build transaction: %w", err)
	}
	return &Session{
		tx:        tx,
		dialect:   s.dialect,
		registry:  s.registry,
		batchSize: s.batchSize,
		logger:    s.logger,
	}, nil
}
