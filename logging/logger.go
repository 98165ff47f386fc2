package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the leveled, structured logger used throughout the planner. A Logger is cheap to
// derive from via With, which is how a per-request correlation ID (see motionplan/gridplanning)
// is threaded through every log line of a single planning call without any package-level state.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})

	// With returns a Logger that annotates every subsequent entry with the given key/value pairs.
	With(args ...interface{}) Logger
	// Sync flushes any buffered log entries. Call once at the end of a CLI invocation.
	Sync() error
}

type impl struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a Logger named `name` writing to the given appenders at the given level.
func NewLogger(name string, level zapcore.Level, appenders ...Appender) Logger {
	if len(appenders) == 0 {
		appenders = []Appender{NewStdoutAppender()}
	}
	cores := make([]zapcore.Core, 0, len(appenders))
	for _, a := range appenders {
		cores = append(cores, &appenderCore{appender: a, level: level})
	}
	core := zapcore.NewTee(cores...)
	zl := zap.New(core, zap.AddCaller()).Named(name)
	return &impl{sugar: zl.Sugar()}
}

// NewTestLogger creates a Logger that writes through `t.Log`, so failures attribute output to
// the right test and `go test -v` shows planner logs inline with the test they belong to.
func NewTestLogger(t testing.TB) Logger {
	core := &appenderCore{appender: NewWriterAppender(testWriter{t}), level: zapcore.DebugLevel}
	zl := zap.New(core, zap.AddCaller()).Named(t.Name())
	return &impl{sugar: zl.Sugar()}
}

// NewNopLogger creates a Logger that discards everything written to it, for callers (such as a
// default Options value) that have not been given a real logger.
func NewNopLogger() Logger {
	return &impl{sugar: zap.NewNop().Sugar()}
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func (l *impl) Debug(args ...interface{})                 { l.sugar.Debug(args...) }
func (l *impl) Debugf(template string, args ...interface{}) { l.sugar.Debugf(template, args...) }
func (l *impl) Info(args ...interface{})                  { l.sugar.Info(args...) }
func (l *impl) Infof(template string, args ...interface{}) { l.sugar.Infof(template, args...) }
func (l *impl) Warn(args ...interface{})                  { l.sugar.Warn(args...) }
func (l *impl) Warnf(template string, args ...interface{}) { l.sugar.Warnf(template, args...) }
func (l *impl) Error(args ...interface{})                 { l.sugar.Error(args...) }
func (l *impl) Errorf(template string, args ...interface{}) { l.sugar.Errorf(template, args...) }

func (l *impl) With(args ...interface{}) Logger {
	return &impl{sugar: l.sugar.With(args...)}
}

func (l *impl) Sync() error {
	return l.sugar.Sync()
}

// appenderCore adapts an Appender to zapcore.Core. It accumulates fields added via With (e.g.
// a request_id attached by motionplan/gridplanning) so every subsequent Write on the derived
// core includes them, without any package-level or shared mutable state.
type appenderCore struct {
	appender Appender
	level    zapcore.Level
	context  []zapcore.Field
}

func (c *appenderCore) Enabled(lvl zapcore.Level) bool { return lvl >= c.level }

func (c *appenderCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.context)+len(fields))
	merged = append(merged, c.context...)
	merged = append(merged, fields...)
	return &appenderCore{appender: c.appender, level: c.level, context: merged}
}

func (c *appenderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *appenderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	all := make([]zapcore.Field, 0, len(c.context)+len(fields))
	all = append(all, c.context...)
	all = append(all, fields...)
	return c.appender.Write(entry, all)
}

func (c *appenderCore) Sync() error {
	return c.appender.Sync()
}
