package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pilotosfah/pilotos-api/pkg/config"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// slowQuery umbral a partir del cual una consulta se registra en warn.
const slowQuery = 500 * time.Millisecond

// NewPool abre el pool contra DATABASE_URL (Supabase) o el DSN armado con DB_HOST, DB_PORT...
// Todas las conexiones registran el codec NUMERIC -> decimal.Decimal.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	if log != nil {
		poolConfig.ConnConfig.Tracer = &queryTracer{log: log, threshold: slowQuery}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

type traceKey struct{}

type traceStart struct {
	sql   string
	start time.Time
}

// queryTracer registra consultas lentas y fallidas. No registra argumentos.
type queryTracer struct {
	log       *logger.Logger
	threshold time.Duration
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: data.SQL, start: time.Now()})
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := time.Since(st.start)
	switch {
	case data.Err != nil && !isNoRows(data.Err):
		t.log.Debug().Err(data.Err).Str("sql", compactSQL(st.sql)).Dur("elapsed", elapsed).Msg("consulta fallida")
	case elapsed >= t.threshold:
		t.log.Warn().Str("sql", compactSQL(st.sql)).Dur("elapsed", elapsed).Msg("consulta lenta")
	}
}
