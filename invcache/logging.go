// SPDX-License-Identifier: MIT
// Package invcache: pluggable logging.
// The cache announces its one interesting event, a solve served from the
// cached inverse, through this interface. Any structured logger adapts in a
// few lines; ConsoleLogger below is the batteries-included default and
// NoOpLogger silences the package entirely.

package invcache

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug logs everything, including per-call cache decisions.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo logs notable cache events (the cache-hit notice lives here).
	LogLevelInfo
	// LogLevelWarn logs conditions worth attention that leave the cache usable.
	LogLevelWarn
	// LogLevelError logs failures only.
	LogLevelError
	// LogLevelOff silences the logger entirely.
	LogLevelOff
)

// levelNames indexes the LogLevel values above; order must match the iota
// block.
var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "OFF"}

// String returns the canonical upper-case name of the level, or UNKNOWN for
// values outside the declared range.
func (l LogLevel) String() string {
	if l < LogLevelDebug || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}

	return levelNames[l]
}

// levelByName resolves upper-cased level names, including the WARNING and
// NONE spellings.
var levelByName = map[string]LogLevel{
	"DEBUG":   LogLevelDebug,
	"INFO":    LogLevelInfo,
	"WARN":    LogLevelWarn,
	"WARNING": LogLevelWarn,
	"ERROR":   LogLevelError,
	"OFF":     LogLevelOff,
	"NONE":    LogLevelOff,
}

// ParseLogLevel maps a name to its LogLevel, ignoring case. Unrecognized
// names resolve to LogLevelInfo, the package default.
func ParseLogLevel(level string) LogLevel {
	if lv, ok := levelByName[strings.ToUpper(level)]; ok {
		return lv
	}

	return LogLevelInfo
}

// Logger is the pluggable logging seam of the cache. Key-value pairs follow
// the alternating key, value convention; a trailing key without a value is
// dropped by the bundled implementations.
type Logger interface {
	// Debug reports per-call cache decisions.
	Debug(msg string, keysAndValues ...interface{})
	// Info reports notable cache events, including the cache-hit notice.
	Info(msg string, keysAndValues ...interface{})
	// Warn reports recoverable conditions.
	Warn(msg string, keysAndValues ...interface{})
	// Error reports failures.
	Error(msg string, keysAndValues ...interface{})
	// IsDebugEnabled lets callers skip building expensive debug arguments.
	IsDebugEnabled() bool
	// IsInfoEnabled reports whether Info messages are emitted.
	IsInfoEnabled() bool
}

// NoOpLogger discards every message and reports both levels disabled.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...interface{}) {}
func (NoOpLogger) Info(string, ...interface{})  {}
func (NoOpLogger) Warn(string, ...interface{})  {}
func (NoOpLogger) Error(string, ...interface{}) {}
func (NoOpLogger) IsDebugEnabled() bool         { return false }
func (NoOpLogger) IsInfoEnabled() bool          { return false }

// logTimeFormat is the timestamp layout of ConsoleLogger messages.
const logTimeFormat = "2006-01-02 15:04:05.000"

// logTag identifies this library inside ConsoleLogger output.
const logTag = "matcache"

// ConsoleLogger writes level-gated lines of the form
//
//	[timestamp] LEVEL [matcache] msg | key=value ...
//
// Debug and Info lines go to the stdout sink, Warn and Error lines to the
// stderr sink. The level and the timestamp layout are adjustable after
// construction; the setters and the emit path share one RWMutex.
type ConsoleLogger struct {
	mu         sync.RWMutex
	level      LogLevel
	timeFormat string
	outLog     *log.Logger // Debug and Info lines
	errLog     *log.Logger // Warn and Error lines
}

// NewConsoleLogger builds a console logger on os.Stdout/os.Stderr gated at
// level.
func NewConsoleLogger(level LogLevel) *ConsoleLogger {
	return NewConsoleLoggerWithOutput(level, os.Stdout, os.Stderr)
}

// NewConsoleLoggerWithOutput is NewConsoleLogger with caller-chosen sinks;
// tests pass buffers here to capture emitted lines.
func NewConsoleLoggerWithOutput(level LogLevel, stdout, stderr io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		level:      level,
		timeFormat: logTimeFormat,
		outLog:     log.New(stdout, "", 0),
		errLog:     log.New(stderr, "", 0),
	}
}

// SetLevel updates the minimum emitted level.
func (c *ConsoleLogger) SetLevel(level LogLevel) {
	c.mu.Lock()
	c.level = level
	c.mu.Unlock()
}

// SetTimeFormat sets the timestamp layout for subsequent messages.
func (c *ConsoleLogger) SetTimeFormat(format string) {
	c.mu.Lock()
	c.timeFormat = format
	c.mu.Unlock()
}

// enabled reports whether messages at level l pass the current gate.
func (c *ConsoleLogger) enabled(l LogLevel) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.level <= l
}

// emit renders and writes one line, routing by severity.
func (c *ConsoleLogger) emit(level LogLevel, msg string, kv []interface{}) {
	if !c.enabled(level) {
		return
	}

	sink := c.outLog
	if level >= LogLevelWarn {
		sink = c.errLog
	}
	sink.Println(c.formatMessage(level, msg, kv...))
}

// formatMessage renders "[timestamp] LEVEL [matcache] msg | k=v k=v".
func (c *ConsoleLogger) formatMessage(level LogLevel, msg string, keysAndValues ...interface{}) string {
	c.mu.RLock()
	layout := c.timeFormat
	c.mu.RUnlock()

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(time.Now().Format(layout))
	b.WriteString("] ")
	b.WriteString(level.String())
	b.WriteString(" [")
	b.WriteString(logTag)
	b.WriteString("] ")
	b.WriteString(msg)

	// Pairs render as " | k=v k=v"; a trailing key without a value is dropped.
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if i == 0 {
			b.WriteString(" | ")
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=%v", keysAndValues[i], keysAndValues[i+1])
	}

	return b.String()
}

func (c *ConsoleLogger) Debug(msg string, keysAndValues ...interface{}) {
	c.emit(LogLevelDebug, msg, keysAndValues)
}

func (c *ConsoleLogger) Info(msg string, keysAndValues ...interface{}) {
	c.emit(LogLevelInfo, msg, keysAndValues)
}

func (c *ConsoleLogger) Warn(msg string, keysAndValues ...interface{}) {
	c.emit(LogLevelWarn, msg, keysAndValues)
}

func (c *ConsoleLogger) Error(msg string, keysAndValues ...interface{}) {
	c.emit(LogLevelError, msg, keysAndValues)
}

func (c *ConsoleLogger) IsDebugEnabled() bool { return c.enabled(LogLevelDebug) }
func (c *ConsoleLogger) IsInfoEnabled() bool  { return c.enabled(LogLevelInfo) }
