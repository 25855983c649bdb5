package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"recyclemart/config"
	"recyclemart/internal/domain/lifecycle"
	"recyclemart/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Client bundles the GORM handle backing the key-value store with its pool monitor.
type Client struct {
	DB *gorm.DB

	sqlDB         *sql.DB
	logger        *slog.Logger
	cancelMonitor context.CancelFunc
}

// Open connects to PostgreSQL with the slog-backed GORM logger.
func Open(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres section missing from config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Batches are wrapped explicitly by the key-value store's Apply.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return &Client{DB: db, sqlDB: sqlDB, logger: logger}, nil
}

// Start pings the database, creates the kv_entries table and starts the pool monitor.
func (c *Client) Start(startCtx context.Context) error {
	ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := c.sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if err := Migrate(ctx, c.DB); err != nil {
		return err
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	c.cancelMonitor = cancelMonitor
	go monitorDBPool(monitorCtx, c.logger, c.sqlDB, dbPoolMonitorInterval)

	return nil
}

// Close stops the monitor and closes the pool.
func (c *Client) Close() error {
	if c.cancelMonitor != nil {
		c.cancelMonitor()
	}

	return c.sqlDB.Close()
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
