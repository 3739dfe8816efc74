package logger

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(config Config) (Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(log.New(&buf, "", 0), config), &buf
}

func traceUpdate() (string, []interface{}) {
	return "UPDATE users SET users.name = ? WHERE users.id = ?", []interface{}{"jinzhu", 1}
}

func TestParseLevel(t *testing.T) {
	levels := map[string]LogLevel{
		"silent":  Silent,
		"error":   Error,
		"warn":    Warn,
		"info":    Info,
		" INFO ":  Info,
		"":        Warn,
		"verbose": Warn,
	}

	for name, level := range levels {
		assert.Equal(t, level, ParseLevel(name), "ParseLevel(%q)", name)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("UPY_LOG_LEVEL", "info")
	t.Setenv("UPY_LOG_PARAMETERIZED", "true")

	config := ConfigFromEnv()
	assert.Equal(t, Info, config.LogLevel)
	assert.True(t, config.ParameterizedQueries)

	t.Setenv("UPY_LOG_LEVEL", "")
	t.Setenv("UPY_LOG_PARAMETERIZED", "false")

	config = ConfigFromEnv()
	assert.Equal(t, Warn, config.LogLevel)
	assert.False(t, config.ParameterizedQueries)
}

func TestLoggerTrace(t *testing.T) {
	ctx := context.Background()

	t.Run("info explains vars", func(t *testing.T) {
		l, buf := newBufferLogger(Config{LogLevel: Info})
		l.Trace(ctx, time.Now(), traceUpdate, nil)

		assert.Contains(t, buf.String(), "[params:2] UPDATE users SET users.name = 'jinzhu' WHERE users.id = 1")
		assert.Contains(t, buf.String(), "logger_test.go")
	})

	t.Run("parameterized", func(t *testing.T) {
		l, buf := newBufferLogger(Config{LogLevel: Info, ParameterizedQueries: true})
		l.Trace(ctx, time.Now(), traceUpdate, nil)

		assert.Contains(t, buf.String(), "[params:2] UPDATE users SET users.name = ? WHERE users.id = ?")
	})

	t.Run("error", func(t *testing.T) {
		l, buf := newBufferLogger(Config{LogLevel: Error})
		l.Trace(ctx, time.Now(), traceUpdate, errors.New("invalid update argument"))

		assert.Contains(t, buf.String(), "invalid update argument")
		assert.Contains(t, buf.String(), "UPDATE users SET")
	})

	t.Run("warn skips statements", func(t *testing.T) {
		l, buf := newBufferLogger(Config{LogLevel: Warn})
		l.Trace(ctx, time.Now(), func() (string, []interface{}) {
			t.Fatal("statement should not be rendered")
			return "", nil
		}, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newBufferLogger(Config{LogLevel: Silent})
		l.Trace(ctx, time.Now(), traceUpdate, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufferLogger(Config{LogLevel: Warn})

	l.Info(ctx, "registered table %s", "users")
	assert.Empty(t, buf.String())

	l.Warn(ctx, "delete without conditions on %s", "users")
	assert.Contains(t, buf.String(), "[warn] delete without conditions on users")

	l.Error(ctx, "failed: %v", "boom")
	assert.Contains(t, buf.String(), "[error] failed: boom")

	buf.Reset()
	l.LogMode(Info).Info(ctx, "registered table %s", "users")
	assert.Contains(t, buf.String(), "[info] registered table users")

	buf.Reset()
	l.LogMode(Silent).Error(ctx, "failed")
	assert.Empty(t, buf.String())
}

func TestLoggerColorful(t *testing.T) {
	l, buf := newBufferLogger(Config{LogLevel: Info, Colorful: true})
	l.Trace(context.Background(), time.Now(), traceUpdate, nil)

	assert.Contains(t, buf.String(), Yellow)
	assert.Contains(t, buf.String(), "[params:2]")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Error(context.Background(), "failed")
		Discard.Trace(context.Background(), time.Now(), traceUpdate, nil)
	})
}
