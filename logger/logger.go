package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/upyorm/upy/utils"
)

// Colors
const (
	Reset       = "\033[0m"
	Red         = "\033[31m"
	Green       = "\033[32m"
	Yellow      = "\033[33m"
	Blue        = "\033[34m"
	Magenta     = "\033[35m"
	Cyan        = "\033[36m"
	White       = "\033[37m"
	BlueBold    = "\033[34;1m"
	MagentaBold = "\033[35;1m"
	RedBold     = "\033[31;1m"
	YellowBold  = "\033[33;1m"
)

// LogLevel log level
type LogLevel int

const (
	// Silent silent log level
	Silent LogLevel = iota + 1
	// Error error log level
	Error
	// Warn warn log level
	Warn
	// Info info log level
	Info
)

// ParseLevel log level by name, unknown names fall back to Warn
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		return Silent
	case "error":
		return Error
	case "info":
		return Info
	default:
		return Warn
	}
}

// Writer log writer interface
type Writer interface {
	Printf(string, ...interface{})
}

// Config logger config
type Config struct {
	LogLevel             LogLevel
	ParameterizedQueries bool
	Colorful             bool
}

// Interface logger interface
type Interface interface {
	LogMode(LogLevel) Interface
	Info(context.Context, string, ...interface{})
	Warn(context.Context, string, ...interface{})
	Error(context.Context, string, ...interface{})
	Trace(ctx context.Context, begin time.Time, fc func() (sql string, vars []interface{}), err error)
}

var (
	// Discard logger will print nothing
	Discard = New(log.New(io.Discard, "", log.LstdFlags), Config{LogLevel: Silent})
	// Default default logger, configured by UPY_LOG_LEVEL and UPY_LOG_PARAMETERIZED
	Default = New(log.New(os.Stdout, "\r\n", log.LstdFlags), ConfigFromEnv())
)

// ConfigFromEnv logger config read from the environment
func ConfigFromEnv() Config {
	return Config{
		LogLevel:             ParseLevel(os.Getenv("UPY_LOG_LEVEL")),
		ParameterizedQueries: utils.CheckTruth(os.Getenv("UPY_LOG_PARAMETERIZED")),
		Colorful:             true,
	}
}

// New initialize logger
func New(writer Writer, config Config) Interface {
	var (
		infoStr     = "%s\n[info] "
		warnStr     = "%s\n[warn] "
		errStr      = "%s\n[error] "
		traceStr    = "%s\n[%.3fms] [params:%d] %s"
		traceErrStr = "%s %s\n[%.3fms] [params:%d] %s"
	)

	if config.Colorful {
		infoStr = Green + "%s\n" + Reset + Green + "[info] " + Reset
		warnStr = BlueBold + "%s\n" + Reset + Magenta + "[warn] " + Reset
		errStr = Magenta + "%s\n" + Reset + Red + "[error] " + Reset
		traceStr = Green + "%s\n" + Reset + Yellow + "[%.3fms] " + BlueBold + "[params:%d]" + Reset + " %s"
		traceErrStr = RedBold + "%s " + MagentaBold + "%s\n" + Reset + Yellow + "[%.3fms] " + BlueBold + "[params:%d]" + Reset + " %s"
	}

	return &logger{
		Writer:      writer,
		Config:      config,
		infoStr:     infoStr,
		warnStr:     warnStr,
		errStr:      errStr,
		traceStr:    traceStr,
		traceErrStr: traceErrStr,
	}
}

type logger struct {
	Writer
	Config
	infoStr, warnStr, errStr string
	traceStr, traceErrStr    string
}

// LogMode log mode
func (l *logger) LogMode(level LogLevel) Interface {
	newlogger := *l
	newlogger.LogLevel = level
	return &newlogger
}

// Info print info
func (l *logger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.Printf(l.infoStr+msg, append([]interface{}{utils.FileWithLineNum()}, data...)...)
	}
}

// Warn print warn messages
func (l *logger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.Printf(l.warnStr+msg, append([]interface{}{utils.FileWithLineNum()}, data...)...)
	}
}

// Error print error messages
func (l *logger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.Printf(l.errStr+msg, append([]interface{}{utils.FileWithLineNum()}, data...)...)
	}
}

// Trace print built sql
func (l *logger) Trace(ctx context.Context, begin time.Time, fc func() (string, []interface{}), err error) {
	if l.LogLevel <= Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.LogLevel >= Error:
		sql, vars := fc()
		l.Printf(l.traceErrStr, utils.FileWithLineNum(), err, milliseconds(elapsed), len(vars), explain(sql, vars, l.ParameterizedQueries))
	case l.LogLevel >= Info:
		sql, vars := fc()
		l.Printf(l.traceStr, utils.FileWithLineNum(), milliseconds(elapsed), len(vars), explain(sql, vars, l.ParameterizedQueries))
	}
}

func milliseconds(elapsed time.Duration) float64 {
	return float64(elapsed.Nanoseconds()) / 1e6
}

// explain inline vars into sql unless the logger is parameterized
func explain(sql string, vars []interface{}, parameterized bool) string {
	if parameterized || len(vars) == 0 {
		return sql
	}
	return ExplainSQL(sql, nil, "'", vars...)
}

func duration(elapsed time.Duration) string {
	return fmt.Sprintf("%.3fms", milliseconds(elapsed))
}
