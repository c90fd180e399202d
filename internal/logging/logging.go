// Package logging writes one JSON object per line: the access log, migration
// events and startup messages all share this format.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Fields are the key/value pairs of one log entry.
type Fields map[string]any

// Logger writes JSON log lines. It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a Logger writing to w with timestamps rendered in loc.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

// Stdout returns a Logger writing to standard output.
func Stdout(loc *time.Location) *Logger {
	return New(os.Stdout, loc)
}

// Log writes f as is, adding "ts" and, when absent, a "level" derived from
// "status" ("error" status logs at error level).
func (l *Logger) Log(f Fields) {
	entry := make(Fields, len(f)+2)
	for k, v := range f {
		entry[k] = v
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := entry["level"]; !ok {
		if entry["status"] == "error" {
			entry["level"] = "error"
		} else {
			entry["level"] = "info"
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string, f Fields) {
	l.Log(with(f, "info", msg))
}

// Error logs msg and err at error level.
func (l *Logger) Error(msg string, err error, f Fields) {
	entry := with(f, "error", msg)
	if err != nil {
		entry["error"] = err.Error()
	}
	l.Log(entry)
}

func with(f Fields, level, msg string) Fields {
	entry := make(Fields, len(f)+2)
	for k, v := range f {
		entry[k] = v
	}
	entry["level"] = level
	entry["msg"] = msg
	return entry
}
