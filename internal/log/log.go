// Package log provides leveled, categorized diagnostics for texindex.
// Logging is disabled by default and enabled via the --debug flag or the
// TEXINDEX_DEBUG environment variable; output rendering never depends on it.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatLatex   Category = "latex"   // LaTeX entry synthesis
	CatDocBook Category = "docbook" // DocBook indexterm output
	CatHTML    Category = "html"    // XHTML index grouping
	CatConfig  Category = "config"  // configuration loading
	CatInset   Category = "inset"   // element dispatch and serialization
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	enabled bool
)

// Enable turns logging on, writing to w.
func Enable(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	enabled = true
}

// Enabled reports whether logging is active.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// EnableFromEnv turns logging on to stderr when TEXINDEX_DEBUG is set.
func EnableFromEnv() {
	if os.Getenv("TEXINDEX_DEBUG") != "" {
		Enable(os.Stderr)
	}
}

func logf(level Level, cat Category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(out, "%s %-5s [%s] %s\n", ts, level, cat, fmt.Sprintf(format, args...))
}

func Debugf(cat Category, format string, args ...any) { logf(LevelDebug, cat, format, args...) }
func Infof(cat Category, format string, args ...any)  { logf(LevelInfo, cat, format, args...) }
func Warnf(cat Category, format string, args ...any)  { logf(LevelWarn, cat, format, args...) }
func Errorf(cat Category, format string, args ...any) { logf(LevelError, cat, format, args...) }
