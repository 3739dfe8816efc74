package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/upyorm/upy/utils"
)

// ZapLogger implements Interface using zap
type ZapLogger struct {
	Logger        *zap.Logger
	LogLevel      LogLevel
	Parameterized bool
}

// NewZapLogger creates a new logger using zap
func NewZapLogger(logger *zap.Logger, config Config) Interface {
	return &ZapLogger{
		Logger:        logger,
		LogLevel:      config.LogLevel,
		Parameterized: config.ParameterizedQueries,
	}
}

// NewZapLoggerWithConfig creates a new zap logger from a zap config, production config by default
func NewZapLoggerWithConfig(config Config, zapConfig ...zap.Config) (Interface, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(ZapLevel(config.LogLevel))
	if len(zapConfig) > 0 {
		zapCfg = zapConfig[0]
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(logger, config), nil
}

// LogMode sets the log level
func (l *ZapLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Info logs info messages
func (l *ZapLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.Logger.Info(msg, l.fields(data)...)
	}
}

// Warn logs warning messages
func (l *ZapLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.Logger.Warn(msg, l.fields(data)...)
	}
}

// Error logs error messages
func (l *ZapLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.Logger.Error(msg, l.fields(data)...)
	}
}

func (l *ZapLogger) fields(data []interface{}) []zap.Field {
	return []zap.Field{
		zap.String("file", utils.FileWithLineNum()),
		zap.Any("data", data),
	}
}

// Trace logs built statements
func (l *ZapLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, vars []interface{}), err error) {
	if l.LogLevel <= Silent {
		return
	}

	if err == nil && l.LogLevel < Info {
		return
	}

	sql, vars := fc()
	fields := []zap.Field{
		zap.String("file", utils.FileWithLineNum()),
		zap.String("duration", duration(time.Since(begin))),
		zap.String("sql", explain(sql, vars, l.Parameterized)),
		zap.Int("params", len(vars)),
	}

	if err != nil {
		if l.LogLevel >= Error {
			l.Logger.Error("SQL built", append(fields, zap.Error(err))...)
		}
		return
	}
	l.Logger.Info("SQL built", fields...)
}

// ParamsFilter filters SQL parameters
func (l *ZapLogger) ParamsFilter(ctx context.Context, sql string, params ...interface{}) (string, []interface{}) {
	if l.Parameterized {
		return sql, nil
	}
	return sql, params
}

// WithFields adds multiple fields to the logger
func (l *ZapLogger) WithFields(fields ...zap.Field) *ZapLogger {
	newLogger := *l
	newLogger.Logger = l.Logger.With(fields...)
	return &newLogger
}

// ZapLevel converts LogLevel to zapcore.Level
func ZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case Silent:
		return zapcore.FatalLevel
	case Error:
		return zapcore.ErrorLevel
	case Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
