package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultTimeFormatStr is the timestamp format written by ConsoleAppender.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Appender is an output sink for log entries — a narrow subset of zapcore.Core that appenderCore
// (logger.go) adapts into a full zap core.
type Appender interface {
	// Write submits a structured log entry to the appender for logging.
	Write(zapcore.Entry, []zapcore.Field) error
	// Sync flushes any buffered log entries, e.g. at CLI shutdown.
	Sync() error
}

// ConsoleAppender renders log entries as tab-separated, human-readable lines: timestamp, level,
// logger name, caller, message, and a trailing JSON blob of structured fields if any were given.
type ConsoleAppender struct {
	io.Writer
}

// NewStdoutAppender creates an appender that prints to stdout.
func NewStdoutAppender() ConsoleAppender {
	return ConsoleAppender{os.Stdout}
}

// NewWriterAppender creates an appender that prints to the given writer.
func NewWriterAppender(writer io.Writer) ConsoleAppender {
	return ConsoleAppender{writer}
}

// NewFileAppender creates an Appender that writes to a log file. Log rotation is enabled so
// repeated `gridplanner` invocations against the same filename roll the previous run's log out of
// the way instead of clobbering or unboundedly growing it. The returned io.Closer releases the
// opened file once the CLI command finishes.
func NewFileAppender(filename string) (Appender, io.Closer, error) {
	logger := &lumberjack.Logger{
		Filename: filename,
		// 1 Terabyte -- basically infinite. Don't rollover on size, only on the explicit Rotate below.
		MaxSize: 1024 * 1024,
	}

	// Rotate on open, not on size, so every run against a given --log-file starts a fresh segment.
	if err := logger.Rotate(); err != nil {
		return nil, nil, fmt.Errorf("creating log file %q: %w", filename, err)
	}

	// Only NewFileAppender hands back a Closer: NewWriterAppender is also used to wrap stdout
	// (NewStdoutAppender), which must never be closed.
	return NewWriterAppender(logger), logger, nil
}

// ZapcoreFieldsToJSON serializes fields into a single-line JSON object, preserving field order
// (unlike iterating a map). It is called with an empty zapcore.Entry so only the fields themselves
// are encoded.
func ZapcoreFieldsToJSON(fields []zapcore.Field) (result string, err error) {
	// A malformed zapcore.Field (mismatched Type vs. the value it carries) can panic the encoder.
	// Recovering here keeps one bad log call from taking down the process that logged it.
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(error); ok {
				err = fmt.Errorf("panic serializing log fields: %w", perr)
				return
			}
			err = fmt.Errorf("panic serializing log fields: %v", r)
		}
	}()
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := enc.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return "", err
	}
	return string(buf.Bytes()), nil
}

// Write renders one log entry as a tab-separated line.
func (appender ConsoleAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	const columnCount = 10
	cols := make([]string, 0, columnCount)
	// UTC so log lines from a run on one machine and a run on another line up without the reader
	// having to know either machine's local timezone.
	cols = append(cols, entry.Time.UTC().Format(DefaultTimeFormatStr))
	cols = append(cols, strings.ToUpper(entry.Level.String()))
	cols = append(cols, entry.LoggerName)
	if entry.Caller.Defined {
		cols = append(cols, callerToString(&entry.Caller))
	}
	cols = append(cols, entry.Message)
	if len(fields) > 0 {
		cols = append(cols, fieldsColumn(fields))
	}
	fmt.Fprintln(appender.Writer, strings.Join(cols, "\t")) //nolint:errcheck
	return nil
}

// fieldsColumn renders the trailing structured-fields column of a log line, falling back to a
// small JSON error marker if the fields themselves fail to serialize.
func fieldsColumn(fields []zapcore.Field) string {
	fieldsJSON, err := ZapcoreFieldsToJSON(fields)
	if err == nil {
		return fieldsJSON
	}
	errJSON, marshalErr := json.Marshal(map[string]string{"logging_err": err.Error()})
	if marshalErr != nil {
		// Should never happen, but fall back to the raw error text rather than dropping the line.
		return err.Error()
	}
	return string(errJSON)
}

// Sync is a no-op: ConsoleAppender writes are unbuffered.
func (appender ConsoleAppender) Sync() error {
	return nil
}

// callerToString formats a caller as `<package>/<file>:<line>`, trimming the path down to its
// last two path segments. caller.Defined must be true.
func callerToString(caller *zapcore.EntryCaller) string {
	cnt := 0
	idx := strings.LastIndexFunc(caller.File, func(rn rune) bool {
		if rn == '/' {
			cnt++
		}
		return cnt == 2
	})
	// idx == -1 (not found) falls through to the same "+1" trim, returning the whole path.
	return fmt.Sprintf("%s:%d", caller.File[idx+1:], caller.Line)
}
