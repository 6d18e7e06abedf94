// Package database owns the PostgreSQL connection pool and schema bootstrap.
//
// The pool is built from config.DatabaseConfig, instrumented with the New
// Relic pgx tracer when the agent is running, and, in the "local"
// environment, with a tracelog tracer that prints every statement.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/records-api/internal/config"
	loggerConfig "github.com/deppfellow/records-api/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database wraps the shared pool.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// multiTracer fans pgx query tracing out to several tracers, since
// ConnConfig only has room for one.
type multiTracer struct {
	tracers []pgx.QueryTracer
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		ctx = tracer.TraceQueryStart(ctx, conn, data)
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		tracer.TraceQueryEnd(ctx, conn, data)
	}
}

type slowQueryKey struct{}

type slowQueryStart struct {
	sql string
	at  time.Time
}

// slowQueryTracer warns about statements that take at least threshold.
type slowQueryTracer struct {
	logger    *zerolog.Logger
	threshold time.Duration
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryKey{}, slowQueryStart{sql: data.SQL, at: time.Now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryKey{}).(slowQueryStart)
	if !ok {
		return
	}

	elapsed := time.Since(start.at)
	if elapsed < t.threshold {
		return
	}

	t.logger.Warn().
		Dur("duration", elapsed).
		Dur("threshold", t.threshold).
		Str("sql", start.sql).
		Err(data.Err).
		Msg("slow query")
}

// DatabasePingTimeout is how long start-up waits for the first ping.
const DatabasePingTimeout = 10 * time.Second

// New creates the pool and pings it.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := poolConfig(cfg.Database)
	if err != nil {
		return nil, err
	}

	var tracers []pgx.QueryTracer
	if loggerService != nil && loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	// Statement logging is noisy; local only.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		})
	}

	if cfg.Observability != nil && cfg.Observability.Logging.SlowQueryThreshold > 0 {
		threshold := cfg.Observability.Logging.SlowQueryThreshold
		tracers = append(tracers, &slowQueryTracer{logger: logger, threshold: threshold})
	}

	switch len(tracers) {
	case 0:
	case 1:
		pgxPoolConfig.ConnConfig.Tracer = tracers[0]
	default:
		pgxPoolConfig.ConnConfig.Tracer = &multiTracer{tracers: tracers}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Int32("max_conns", pgxPoolConfig.MaxConns).
		Msg("connected to the database")

	return database, nil
}

// poolConfig parses the DSN and applies the pool limits from config.
func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		pgxPoolConfig.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		pgxPoolConfig.MinConns = int32(min(cfg.MaxIdleConns, int(pgxPoolConfig.MaxConns)))
	}
	if cfg.ConnMaxLifetime > 0 {
		pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.ConnMaxLifetime) * time.Second
	}
	if cfg.ConnMaxIdleTime > 0 {
		pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleTime) * time.Second
	}

	return pgxPoolConfig, nil
}

// Ping checks connectivity; used by the health endpoint.
func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close closes the pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
