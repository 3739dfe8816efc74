//go:build go1.21

package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/upyorm/upy/utils"
)

type slogLogger struct {
	Logger        *slog.Logger
	LogLevel      LogLevel
	Parameterized bool
}

// NewSlogLogger creates a new logger using log/slog
func NewSlogLogger(logger *slog.Logger, config Config) Interface {
	return &slogLogger{
		Logger:        logger,
		LogLevel:      config.LogLevel,
		Parameterized: config.ParameterizedQueries,
	}
}

func (l *slogLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *slogLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.log(ctx, slog.LevelInfo, msg, slog.Any("data", data))
	}
}

func (l *slogLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.log(ctx, slog.LevelWarn, msg, slog.Any("data", data))
	}
}

func (l *slogLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.log(ctx, slog.LevelError, msg, slog.Any("data", data))
	}
}

func (l *slogLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, vars []interface{}), err error) {
	if l.LogLevel <= Silent {
		return
	}

	level := slog.LevelInfo
	switch {
	case err != nil && l.LogLevel >= Error:
		level = slog.LevelError
	case err != nil || l.LogLevel < Info:
		return
	}

	sql, vars := fc()
	fields := []slog.Attr{
		slog.String("duration", duration(time.Since(begin))),
		slog.String("sql", explain(sql, vars, l.Parameterized)),
		slog.Int("params", len(vars)),
	}
	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	l.log(ctx, level, "SQL built", slog.Attr{
		Key:   "trace",
		Value: slog.GroupValue(fields...),
	})
}

func (l *slogLogger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}

	if !l.Logger.Enabled(ctx, level) {
		return
	}

	r := slog.NewRecord(time.Now(), level, msg, utils.CallerFrame().PC)
	r.Add(args...)
	_ = l.Logger.Handler().Handle(ctx, r)
}

// ParamsFilter filter params
func (l *slogLogger) ParamsFilter(ctx context.Context, sql string, params ...interface{}) (string, []interface{}) {
	if l.Parameterized {
		return sql, nil
	}
	return sql, params
}
