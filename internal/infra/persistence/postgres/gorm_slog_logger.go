package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recyclemart/config"
	"recyclemart/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Statements slower than this log at warn level.
const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes gorm's statement log into the store logger, tagged with the backend name.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	var tagged *slog.Logger
	if baseLogger != nil {
		tagged = baseLogger.With(slog.String("backend", "postgres"), slog.String("table", model.KVEntryModel{}.TableName()))
	}

	return &gormSlogLogger{
		logger:        tagged,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "KV store driver message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements at warn, and every statement at info level.
// A missing key is the normal outcome of Get and is never logged as a failure.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "KV statement failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "KV statement slow", slog.Duration("slow_threshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "KV statement"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
